package assets

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/repeale/fp-go"
)

// graphFile is the CBOR representation of a GameAssets. Slot lists are
// encoded as arrays where a nil entry marks an empty slot.
type graphFile struct {
	Version  Version
	GameID   uint32
	GUID     uuid.UUID
	Settings Settings
	Icon     []byte

	Triggers    []*Trigger
	Constants   []Constant
	Sounds      []*Sound
	Sprites     []*Sprite
	Backgrounds []*Background
	Paths       []*Path
	Scripts     []*Script
	Fonts       []*Font
	Timelines   []*Timeline
	Objects     []*Object
	Rooms       []*Room

	IncludedFiles      []IncludedFile
	Extensions         []Extension
	HelpDialog         GameInformation
	LibraryInitStrings []string
	RoomOrder          []int32

	LastInstanceID int32
	LastTileID     int32
}

func fromSlots[T any](slots []Slot[T]) []*T {
	return fp.Map(func(slot Slot[T]) *T { return slot.Get() })(slots)
}

func toSlots[T any](items []*T) []Slot[T] {
	return fp.Map(Occupied[T])(items)
}

func (g *GameAssets) toFile() graphFile {
	return graphFile{
		Version:            g.Version,
		GameID:             g.GameID,
		GUID:               g.GUID,
		Settings:           g.Settings,
		Icon:               g.Icon,
		Triggers:           fromSlots(g.Triggers),
		Constants:          g.Constants,
		Sounds:             fromSlots(g.Sounds),
		Sprites:            fromSlots(g.Sprites),
		Backgrounds:        fromSlots(g.Backgrounds),
		Paths:              fromSlots(g.Paths),
		Scripts:            fromSlots(g.Scripts),
		Fonts:              fromSlots(g.Fonts),
		Timelines:          fromSlots(g.Timelines),
		Objects:            fromSlots(g.Objects),
		Rooms:              fromSlots(g.Rooms),
		IncludedFiles:      g.IncludedFiles,
		Extensions:         g.Extensions,
		HelpDialog:         g.HelpDialog,
		LibraryInitStrings: g.LibraryInitStrings,
		RoomOrder:          g.RoomOrder,
		LastInstanceID:     g.LastInstanceID,
		LastTileID:         g.LastTileID,
	}
}

func (f *graphFile) toAssets() *GameAssets {
	return &GameAssets{
		Version:            f.Version,
		GameID:             f.GameID,
		GUID:               f.GUID,
		Settings:           f.Settings,
		Icon:               f.Icon,
		Triggers:           toSlots(f.Triggers),
		Constants:          f.Constants,
		Sounds:             toSlots(f.Sounds),
		Sprites:            toSlots(f.Sprites),
		Backgrounds:        toSlots(f.Backgrounds),
		Paths:              toSlots(f.Paths),
		Scripts:            toSlots(f.Scripts),
		Fonts:              toSlots(f.Fonts),
		Timelines:          toSlots(f.Timelines),
		Objects:            toSlots(f.Objects),
		Rooms:              toSlots(f.Rooms),
		IncludedFiles:      f.IncludedFiles,
		Extensions:         f.Extensions,
		HelpDialog:         f.HelpDialog,
		LibraryInitStrings: f.LibraryInitStrings,
		RoomOrder:          f.RoomOrder,
		LastInstanceID:     f.LastInstanceID,
		LastTileID:         f.LastTileID,
	}
}

// ReadGraph decodes an asset graph dump. In strict mode fields the decoder
// does not know about are an error instead of being dropped. Text is taken
// as raw bytes, so names and code in legacy code pages survive unchanged.
func ReadGraph(r io.Reader, strict bool) (*GameAssets, error) {
	options := cbor.DecOptions{
		MaxArrayElements: 1 << 24,
		MaxMapPairs:      1 << 24,
		UTF8:             cbor.UTF8DecodeInvalid,
	}
	if strict {
		options.ExtraReturnErrors = cbor.ExtraDecErrorUnknownField
	}

	mode, err := options.DecMode()
	if err != nil {
		return nil, err
	}

	var file graphFile
	err = mode.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset graph: %w", err)
	}

	g := file.toAssets()
	err = g.Validate()
	if err != nil {
		return nil, err
	}

	return g, nil
}

func WriteGraph(w io.Writer, g *GameAssets) error {
	bytes, err := cbor.Marshal(g.toFile())
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return err
}
