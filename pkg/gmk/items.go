package gmk

import (
	"fmt"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"
)

// Record versions of each resource body.
const (
	triggerVersion     uint32 = 800
	soundVersion       uint32 = 800
	spriteVersion      uint32 = 800
	frameVersion       uint32 = 800
	backgroundVersion  uint32 = 710
	imageVersion       uint32 = 800
	pathVersion        uint32 = 530
	scriptVersion      uint32 = 800
	fontVersion        uint32 = 800
	timelineVersion    uint32 = 500
	objectVersion      uint32 = 430
	roomVersion        uint32 = 541
	includedVersion    uint32 = 800
	eventListSentinel  int32  = -1
	editorSnap         uint32 = 16
	pathNoRoom         int32  = -1
	bytesPerPixel             = 4
	maxEventType              = assets.NumEventTypes - 1
	roomEditorWidth    uint32 = 646
	roomEditorHeight   uint32 = 488
	roomEditorTabRooms uint32 = 0
)

// start writes the name, last-changed stamp and record version that open
// every resource body.
func (w *writer) start(p *io.Buffer, name string, version uint32) error {
	return p.Put(name, w.stamp, version)
}

func putImage(p *io.Buffer, width, height uint32, data []byte) error {
	p.PutUint(width)
	p.PutUint(height)
	if width == 0 || height == 0 {
		return nil
	}

	expected := uint64(width) * uint64(height) * bytesPerPixel
	if uint64(len(data)) != expected {
		return fmt.Errorf(
			"%dx%d image has %d bytes of pixel data, expected %d",
			width,
			height,
			len(data),
			expected,
		)
	}
	return p.PutBlob(data)
}

func (w *writer) trigger(trigger *assets.Trigger) ([]byte, error) {
	p := io.Buffer{}
	err := p.Put(
		triggerVersion,
		trigger.Name,
		trigger.Condition,
		trigger.Moment,
		trigger.ConstantName,
	)
	return p, err
}

func (w *writer) sound(sound *assets.Sound) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, sound.Name, soundVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		sound.Kind,
		sound.Extension,
		sound.Source,
		sound.Data != nil,
	)
	if err != nil {
		return nil, err
	}

	if sound.Data != nil {
		err = p.PutBlob(sound.Data)
		if err != nil {
			return nil, err
		}
	}

	err = p.Put(
		sound.Effects,
		sound.Volume,
		sound.Pan,
		sound.Preload,
	)
	return p, err
}

func (w *writer) sprite(sprite *assets.Sprite) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, sprite.Name, spriteVersion)
	if err != nil {
		return nil, err
	}

	p.PutInt(sprite.OriginX)
	p.PutInt(sprite.OriginY)
	p.PutUint(uint32(len(sprite.Frames)))

	for i, frame := range sprite.Frames {
		p.PutUint(frameVersion)
		err = putImage(&p, frame.Width, frame.Height, frame.Data)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	err = p.Put(
		sprite.MaskShape,
		sprite.AlphaTolerance,
		sprite.PerFrameColliders,
		sprite.BBoxMode,
		sprite.BBox.Left,
		sprite.BBox.Right,
		sprite.BBox.Bottom,
		sprite.BBox.Top,
	)
	return p, err
}

func (w *writer) background(background *assets.Background) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, background.Name, backgroundVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		background.IsTileset,
		background.TileWidth,
		background.TileHeight,
		background.HOffset,
		background.VOffset,
		background.HSep,
		background.VSep,
		imageVersion,
	)
	if err != nil {
		return nil, err
	}

	err = putImage(&p, background.Width, background.Height, background.Data)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (w *writer) path(path *assets.Path) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, path.Name, pathVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		path.Kind,
		path.Closed,
		path.Precision,
		pathNoRoom,
		editorSnap,
		editorSnap,
		uint32(len(path.Points)),
	)
	if err != nil {
		return nil, err
	}

	for _, point := range path.Points {
		p.PutFloat(point.X)
		p.PutFloat(point.Y)
		p.PutFloat(point.Speed)
	}

	return p, nil
}

func (w *writer) script(script *assets.Script) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, script.Name, scriptVersion)
	if err != nil {
		return nil, err
	}

	err = p.PutString(script.Source)
	return p, err
}

// fontRange packs the first character of the range. GameMaker 8.1 also
// stores the charset and anti-aliasing level in the upper bytes.
func (w *writer) fontRange(font *assets.Font) uint32 {
	if w.version == assets.GameMaker81 {
		return (font.RangeStart & 0xFFFF) | (font.Charset&0xFF)<<16 | (font.AALevel&0xFF)<<24
	}
	return font.RangeStart
}

func (w *writer) font(font *assets.Font) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, font.Name, fontVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		font.SysName,
		font.Size,
		font.Bold,
		font.Italic,
		w.fontRange(font),
		font.RangeEnd,
	)
	return p, err
}

func (w *writer) timeline(timeline *assets.Timeline) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, timeline.Name, timelineVersion)
	if err != nil {
		return nil, err
	}

	p.PutUint(uint32(len(timeline.Moments)))
	for i := range timeline.Moments {
		moment := &timeline.Moments[i]
		p.PutUint(moment.Position)
		err = writeActions(&p, moment.Actions)
		if err != nil {
			return nil, fmt.Errorf("moment %d: %w", moment.Position, err)
		}
	}

	return p, nil
}

func (w *writer) object(object *assets.Object) ([]byte, error) {
	if len(object.Events) > assets.NumEventTypes {
		return nil, fmt.Errorf(
			"object has %d event types, at most %d are supported",
			len(object.Events),
			assets.NumEventTypes,
		)
	}

	p := io.Buffer{}
	err := w.start(&p, object.Name, objectVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		object.SpriteIndex,
		object.Solid,
		object.Visible,
		object.Depth,
		object.Persistent,
		object.ParentIndex,
		object.MaskIndex,
		uint32(maxEventType),
	)
	if err != nil {
		return nil, err
	}

	for kind := 0; kind < assets.NumEventTypes; kind++ {
		if kind < len(object.Events) {
			for i := range object.Events[kind] {
				event := &object.Events[kind][i]
				p.PutUint(event.Sub)
				err = writeActions(&p, event.Actions)
				if err != nil {
					return nil, fmt.Errorf("event %d/%d: %w", kind, event.Sub, err)
				}
			}
		}
		p.PutInt(eventListSentinel)
	}

	return p, nil
}

func (w *writer) room(room *assets.Room) ([]byte, error) {
	p := io.Buffer{}
	err := w.start(&p, room.Name, roomVersion)
	if err != nil {
		return nil, err
	}

	err = p.Put(
		room.Caption,
		room.Width,
		room.Height,
		editorSnap,
		editorSnap,
		false, // isometric grid
		room.Speed,
		room.Persistent,
		room.BgColour,
		room.ClearScreen,
		room.CreationCode,
		uint32(len(room.Backgrounds)),
	)
	if err != nil {
		return nil, err
	}

	for _, bg := range room.Backgrounds {
		err = p.Put(
			bg.Visible,
			bg.Foreground,
			bg.Source,
			bg.X,
			bg.Y,
			bg.TileH,
			bg.TileV,
			bg.HSpeed,
			bg.VSpeed,
			bg.Stretch,
		)
		if err != nil {
			return nil, err
		}
	}

	p.PutBool(room.ViewsEnabled)
	p.PutUint(uint32(len(room.Views)))
	for _, view := range room.Views {
		err = p.Put(
			view.Visible,
			view.ViewX,
			view.ViewY,
			view.ViewW,
			view.ViewH,
			view.PortX,
			view.PortY,
			view.PortW,
			view.PortH,
			view.HBorder,
			view.VBorder,
			view.HSpeed,
			view.VSpeed,
			view.Target,
		)
		if err != nil {
			return nil, err
		}
	}

	p.PutUint(uint32(len(room.Instances)))
	for _, instance := range room.Instances {
		err = p.Put(
			instance.X,
			instance.Y,
			instance.Object,
			instance.ID,
			instance.CreationCode,
			false, // locked
		)
		if err != nil {
			return nil, err
		}
	}

	p.PutUint(uint32(len(room.Tiles)))
	for _, tile := range room.Tiles {
		err = p.Put(
			tile.X,
			tile.Y,
			tile.Background,
			tile.TileX,
			tile.TileY,
			tile.Width,
			tile.Height,
			tile.Depth,
			tile.ID,
			false, // locked
		)
		if err != nil {
			return nil, err
		}
	}

	// editor state
	err = p.Put(
		true, // remember room editor size
		roomEditorWidth,
		roomEditorHeight,
		true, // show grid
		true, // show objects
		true, // show tiles
		true, // show backgrounds
		true, // show foregrounds
		true, // show views
		true, // delete underlying objects
		true, // delete underlying tiles
		roomEditorTabRooms,
		uint32(0), // horizontal scroll
		uint32(0), // vertical scroll
	)
	return p, err
}

func (w *writer) includedFile(file *assets.IncludedFile) ([]byte, error) {
	p := io.Buffer{}
	err := p.Put(
		w.stamp,
		includedVersion,
		file.FileName,
		file.SourcePath,
		file.DataExists,
		file.SourceLength,
		file.StoredInGmk,
	)
	if err != nil {
		return nil, err
	}

	if file.StoredInGmk {
		err = p.PutBlob(file.Data)
		if err != nil {
			return nil, err
		}
	}

	err = p.Put(
		uint32(file.Export.Kind),
		file.Export.Folder,
		file.Overwrite,
		file.FreeMemory,
		file.RemoveAtEnd,
	)
	return p, err
}
