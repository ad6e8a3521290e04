package assets

import (
	"github.com/google/uuid"
)

// Sample builds a small but complete graph touching every record type. Slot
// 1 of the sprites and rooms lists is empty.
func Sample(version Version) *GameAssets {
	codeAction := CodeAction{
		ID:            ActionExecuteCode,
		LibID:         LibraryMainActions,
		ActionKind:    ActionKindCode,
		ExecutionType: ExecutionCode,
		AppliesTo:     -1,
		ParamCount:    1,
	}
	codeAction.ParamTypes[0] = ParamTypeString
	codeAction.ParamStrings[0] = "x += spd_player; scr_move(obj_wall)"

	events := make([][]Event, NumEventTypes)
	events[0] = []Event{{Sub: 0, Actions: []CodeAction{codeAction}}}
	events[2] = []Event{
		{Sub: 0, Actions: []CodeAction{codeAction}},
		{Sub: 3, Actions: []CodeAction{}},
	}

	return &GameAssets{
		Version: version,
		GameID:  4242,
		GUID:    uuid.MustParse("6f1c2a9e-58b4-4f0e-a7d3-2b9c41e0d5aa"),
		Settings: Settings{
			DisplayCursor:      true,
			Scaling:            -1,
			ColourDepth:        1,
			VSync:              true,
			ForceCPURender:     true,
			F4FullscreenToggle: true,
			EscCloseGame:       true,
			LoadingBar:         1,
			ShowErrors:         true,
			ZeroUninitialized:  true,
			ErrorOnArgs:        true,
			Author:             "someone",
			VersionString:      "1.0",
			Major:              1,
		},
		Icon: []byte{0, 0, 1, 0, 1, 0},
		Triggers: []Slot[Trigger]{
			Occupied(&Trigger{Name: "on_ready", Condition: "return spd_player > 0", Moment: 1, ConstantName: "ev_ready"}),
		},
		Constants: []Constant{{Name: "spd_player", Expression: "4"}},
		Sounds: []Slot[Sound]{
			Occupied(&Sound{Name: "snd_jump", Extension: ".wav", Data: []byte("RIFF"), Volume: 1}),
		},
		Sprites: []Slot[Sprite]{
			Occupied(&Sprite{
				Name:   "spr_player",
				Frames: []Frame{{Width: 2, Height: 1, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}},
				BBox:   BoundingBox{Right: 1},
			}),
			Empty[Sprite](),
			Occupied(&Sprite{Name: "spr_wall", Frames: []Frame{{}}}),
		},
		Backgrounds: []Slot[Background]{
			Occupied(&Background{Name: "bg_sky", Width: 1, Height: 1, Data: []byte{0, 0, 255, 255}}),
		},
		Paths: []Slot[Path]{
			Occupied(&Path{Name: "pth_patrol", Precision: 4, Points: []PathPoint{{X: 1, Y: 2, Speed: 100}}}),
		},
		Scripts: []Slot[Script]{
			Occupied(&Script{Name: "scr_move", Source: "// move\nx += argument0.x; show_message(\"scr_move\")"}),
		},
		Fonts: []Slot[Font]{
			Occupied(&Font{Name: "fnt_main", SysName: "Arial", Size: 12, RangeStart: 32, RangeEnd: 127, Charset: 1, AALevel: 3}),
		},
		Timelines: []Slot[Timeline]{
			Occupied(&Timeline{Name: "tl_intro", Moments: []Moment{{Position: 30, Actions: []CodeAction{codeAction}}}}),
		},
		Objects: []Slot[Object]{
			Occupied(&Object{Name: "obj_player", SpriteIndex: 0, Visible: true, ParentIndex: -1, MaskIndex: -1, Events: events}),
			Occupied(&Object{Name: "obj_wall", SpriteIndex: 2, Solid: true, ParentIndex: -1, MaskIndex: -1}),
		},
		Rooms: []Slot[Room]{
			Occupied(&Room{
				Name:         "rm_start",
				Width:        640,
				Height:       480,
				Speed:        30,
				ClearScreen:  true,
				CreationCode: "global.score = 0",
				Backgrounds:  make([]RoomBackground, 8),
				Views:        make([]View, 8),
				Instances:    []Instance{{X: 32, Y: 32, Object: 0, ID: 100001, CreationCode: "hp = 3"}},
				Tiles:        []Tile{{Background: 0, Width: 16, Height: 16, Depth: 1000000, ID: 10000001}},
			}),
			Empty[Room](),
		},
		IncludedFiles: []IncludedFile{{
			FileName:    "readme.txt",
			DataExists:  true,
			StoredInGmk: true,
			Data:        []byte("hello"),
			Export:      ExportSetting{Kind: ExportTempFolder},
		}},
		Extensions:         []Extension{{Name: "GM Windows Dialogs"}},
		HelpDialog:         GameInformation{Caption: "Help", Width: 600, Height: 400, Info: "{\\rtf1}"},
		LibraryInitStrings: []string{"init"},
		RoomOrder:          []int32{0},
		LastInstanceID:     100001,
		LastTileID:         10000001,
	}
}
