package assets

import (
	"fmt"

	"github.com/google/uuid"
)

// GameAssets is the complete asset graph of a decompiled game.
type GameAssets struct {
	Version  Version
	GameID   uint32
	GUID     uuid.UUID
	Settings Settings
	// raw .ico file, nil when the game had none
	Icon []byte

	Triggers    []Slot[Trigger]
	Constants   []Constant
	Sounds      []Slot[Sound]
	Sprites     []Slot[Sprite]
	Backgrounds []Slot[Background]
	Paths       []Slot[Path]
	Scripts     []Slot[Script]
	Fonts       []Slot[Font]
	Timelines   []Slot[Timeline]
	Objects     []Slot[Object]
	Rooms       []Slot[Room]

	IncludedFiles      []IncludedFile
	Extensions         []Extension
	HelpDialog         GameInformation
	LibraryInitStrings []string
	RoomOrder          []int32

	LastInstanceID int32
	LastTileID     int32
}

func (g *GameAssets) Validate() error {
	if !g.Version.Valid() {
		return fmt.Errorf("unsupported format version %d", uint32(g.Version))
	}
	return nil
}

// Category gives name-level access to one resource list regardless of its
// record type.
type Category struct {
	Kind    string
	Len     int
	name    func(int) (string, bool)
	setName func(int, string)
}

// Name returns the name of the asset at index i, and false if the slot is
// empty.
func (c Category) Name(i int) (string, bool) {
	return c.name(i)
}

func (c Category) SetName(i int, name string) {
	c.setName(i, name)
}

func (c Category) Occupied(i int) bool {
	_, ok := c.name(i)
	return ok
}

func category[T any](kind string, slots []Slot[T], field func(*T) *string) Category {
	return Category{
		Kind: kind,
		Len:  len(slots),
		name: func(i int) (string, bool) {
			asset := slots[i].Get()
			if asset == nil {
				return "", false
			}
			return *field(asset), true
		},
		setName: func(i int, name string) {
			asset := slots[i].Get()
			if asset == nil {
				return
			}
			*field(asset) = name
		},
	}
}

// Categories lists every named resource list in resource tree order.
func (g *GameAssets) Categories() []Category {
	return []Category{
		category("sprite", g.Sprites, func(a *Sprite) *string { return &a.Name }),
		category("sound", g.Sounds, func(a *Sound) *string { return &a.Name }),
		category("background", g.Backgrounds, func(a *Background) *string { return &a.Name }),
		category("path", g.Paths, func(a *Path) *string { return &a.Name }),
		category("script", g.Scripts, func(a *Script) *string { return &a.Name }),
		category("font", g.Fonts, func(a *Font) *string { return &a.Name }),
		category("timeline", g.Timelines, func(a *Timeline) *string { return &a.Name }),
		category("object", g.Objects, func(a *Object) *string { return &a.Name }),
		category("room", g.Rooms, func(a *Room) *string { return &a.Name }),
		category("trigger", g.Triggers, func(a *Trigger) *string { return &a.Name }),
	}
}

// ForEachAction calls fn with every action in every object event and every
// timeline moment, in slot order.
func (g *GameAssets) ForEachAction(fn func(action *CodeAction)) {
	for _, slot := range g.Objects {
		object := slot.Get()
		if object == nil {
			continue
		}
		for _, events := range object.Events {
			for i := range events {
				actions := events[i].Actions
				for j := range actions {
					fn(&actions[j])
				}
			}
		}
	}

	for _, slot := range g.Timelines {
		timeline := slot.Get()
		if timeline == nil {
			continue
		}
		for i := range timeline.Moments {
			actions := timeline.Moments[i].Actions
			for j := range actions {
				fn(&actions[j])
			}
		}
	}
}

// ForEachCode calls fn with a pointer to every piece of GML source text in the
// graph so it can be rewritten in place.
func (g *GameAssets) ForEachCode(fn func(code *string)) {
	for _, slot := range g.Scripts {
		if script := slot.Get(); script != nil {
			fn(&script.Source)
		}
	}

	for _, slot := range g.Triggers {
		if trigger := slot.Get(); trigger != nil {
			fn(&trigger.Condition)
		}
	}

	for _, slot := range g.Rooms {
		room := slot.Get()
		if room == nil {
			continue
		}
		fn(&room.CreationCode)
		for i := range room.Instances {
			fn(&room.Instances[i].CreationCode)
		}
	}

	g.ForEachAction(func(action *CodeAction) {
		if action.ActionKind == ActionKindCode {
			fn(&action.ParamStrings[0])
			return
		}
		count := int(action.ParamCount)
		if count > NumActionParams {
			count = NumActionParams
		}
		for i := 0; i < count; i++ {
			switch action.ParamTypes[i] {
			case ParamTypeExpression, ParamTypeBoth:
				fn(&action.ParamStrings[i])
			}
		}
	})
}
