package gmk

import (
	"testing"

	"github.com/cfoust/gmk/pkg/assets"
	"github.com/cfoust/gmk/pkg/gmk/io"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter(version assets.Version) *writer {
	return &writer{version: version, stamp: 1.5}
}

// readStart consumes and checks the opening of a resource body.
func readStart(t *testing.T, p *io.Buffer, name string, version uint32) {
	value, ok := p.GetString()
	require.True(t, ok)
	assert.Equal(t, name, value)

	stamp, _ := p.GetFloat()
	assert.Equal(t, 1.5, stamp)

	recordVersion, _ := p.GetUint()
	assert.Equal(t, version, recordVersion)
}

func TestVersionGatedSettings(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)

	old, err := testWriter(assets.GameMaker80).settings(&g.Settings, g.Icon)
	require.NoError(t, err)
	updated, err := testWriter(assets.GameMaker81).settings(&g.Settings, g.Icon)
	require.NoError(t, err)
	require.Equal(t, len(old), len(updated))

	const (
		vsyncOffset  = 52
		uninitOffset = 134
	)

	var differing []int
	for i := range old {
		if old[i] != updated[i] {
			differing = append(differing, i)
		}
	}
	// vsync | force cpu << 7 and zero uninitialized | error on args << 1
	assert.Equal(t, []int{vsyncOffset, uninitOffset}, differing)
	assert.Equal(t, byte(1), old[vsyncOffset])
	assert.Equal(t, byte(129), updated[vsyncOffset])
	assert.Equal(t, byte(1), old[uninitOffset])
	assert.Equal(t, byte(3), updated[uninitOffset])
}

func TestCustomLoadingBar(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)
	w := testWriter(assets.GameMaker80)

	g.Settings.LoadingBar = assets.LoadingBarCustom
	g.Settings.LoadingForeground = []byte("foreground")
	custom, err := w.settings(&g.Settings, g.Icon)
	require.NoError(t, err)

	// skip to the loading bar images
	body := io.Buffer(custom)
	require.True(t, body.Skip(96))

	exists, _ := body.GetBool()
	assert.False(t, exists)

	exists, _ = body.GetBool()
	require.True(t, exists)
	foreground, err := body.GetBlock()
	require.NoError(t, err)
	assert.Equal(t, "foreground", string(foreground))

	// custom load image
	exists, _ = body.GetBool()
	assert.False(t, exists)
}

func TestFontRange(t *testing.T) {
	font := assets.Sample(assets.GameMaker80).Fonts[0].Get()

	assert.Equal(t, uint32(32), testWriter(assets.GameMaker80).fontRange(font))
	assert.Equal(t, uint32(32|1<<16|3<<24), testWriter(assets.GameMaker81).fontRange(font))
}

func TestObjectEvents(t *testing.T) {
	object := assets.Sample(assets.GameMaker80).Objects[0].Get()

	data, err := testWriter(assets.GameMaker80).object(object)
	require.NoError(t, err)

	p := io.Buffer(data)
	readStart(t, &p, "obj_player", 430)

	var sprite, depth, parent, mask int32
	var solid, visible, persistent, maxEvent uint32
	require.NoError(t, p.Get(&sprite, &solid, &visible, &depth, &persistent, &parent, &mask, &maxEvent))
	assert.Equal(t, uint32(1), visible)
	assert.Equal(t, int32(-1), parent)
	assert.Equal(t, uint32(11), maxEvent)

	for kind := 0; kind < assets.NumEventTypes; kind++ {
		for _, event := range object.Events[kind] {
			sub, _ := p.GetUint()
			assert.Equal(t, event.Sub, sub)

			version, _ := p.GetUint()
			assert.Equal(t, uint32(400), version)
			count, _ := p.GetUint()
			require.Equal(t, uint32(len(event.Actions)), count)
			for range event.Actions {
				readAction(t, &p)
			}
		}

		sentinel, _ := p.GetInt()
		assert.Equal(t, int32(-1), sentinel, "event type %d", kind)
	}
	assert.Zero(t, p.Len())
}

func readAction(t *testing.T, p *io.Buffer) {
	var version, lib, id, kind, relative, condition, something, execution uint32
	require.NoError(t, p.Get(&version, &lib, &id, &kind, &relative, &condition, &something, &execution))
	assert.Equal(t, uint32(440), version)
	assert.Equal(t, uint32(603), id)

	_, ok := p.GetString()
	require.True(t, ok)
	_, ok = p.GetString()
	require.True(t, ok)

	var count, typeCount uint32
	var types [assets.NumActionParams]uint32
	var appliesTo int32
	var isRelative, stringCount uint32
	require.NoError(t, p.Get(&count, &typeCount, &types, &appliesTo, &isRelative, &stringCount))
	assert.Equal(t, uint32(8), typeCount)
	assert.Equal(t, uint32(8), stringCount)

	code, _ := p.GetString()
	assert.Equal(t, "x += spd_player; scr_move(obj_wall)", code)
	for i := 1; i < assets.NumActionParams; i++ {
		p.GetString()
	}

	_, ok = p.GetBool()
	require.True(t, ok)
}

func TestTooManyEventTypes(t *testing.T) {
	object := &assets.Object{Events: make([][]assets.Event, assets.NumEventTypes+1)}
	_, err := testWriter(assets.GameMaker80).object(object)
	assert.Error(t, err)
}

func TestSoundData(t *testing.T) {
	w := testWriter(assets.GameMaker80)

	for _, data := range [][]byte{nil, []byte("RIFF")} {
		body, err := w.sound(&assets.Sound{Name: "snd", Data: data, Volume: 0.5})
		require.NoError(t, err)

		p := io.Buffer(body)
		readStart(t, &p, "snd", 800)

		kind, _ := p.GetUint()
		assert.Zero(t, kind)
		p.GetString()
		p.GetString()

		exists, _ := p.GetBool()
		assert.Equal(t, data != nil, exists)
		if exists {
			blob, _ := p.GetBlob()
			assert.Equal(t, data, blob)
		}

		var effects uint32
		var volume, pan float64
		var preload uint32
		require.NoError(t, p.Get(&effects, &volume, &pan, &preload))
		assert.Equal(t, 0.5, volume)
		assert.Zero(t, p.Len())
	}
}

func TestImageSize(t *testing.T) {
	w := testWriter(assets.GameMaker80)

	_, err := w.background(&assets.Background{Width: 2, Height: 2, Data: make([]byte, 16)})
	assert.NoError(t, err)

	_, err = w.background(&assets.Background{Width: 2, Height: 2, Data: make([]byte, 15)})
	assert.Error(t, err)

	// zero sized images carry no pixel blob
	body, err := w.background(&assets.Background{Name: "bg"})
	require.NoError(t, err)
	p := io.Buffer(body)
	readStart(t, &p, "bg", 710)
	require.True(t, p.Skip(7*4))
	version, _ := p.GetUint()
	assert.Equal(t, uint32(800), version)
	width, _ := p.GetUint()
	height, _ := p.GetUint()
	assert.Zero(t, width+height)
	assert.Zero(t, p.Len())
}

func TestTriggerBody(t *testing.T) {
	trigger := assets.Sample(assets.GameMaker80).Triggers[0].Get()
	body, err := testWriter(assets.GameMaker80).trigger(trigger)
	require.NoError(t, err)

	p := io.Buffer(body)
	version, _ := p.GetUint()
	assert.Equal(t, uint32(800), version)
	name, _ := p.GetString()
	assert.Equal(t, "on_ready", name)
	condition, _ := p.GetString()
	assert.Equal(t, "return spd_player > 0", condition)
	moment, _ := p.GetUint()
	assert.Equal(t, uint32(1), moment)
	constant, _ := p.GetString()
	assert.Equal(t, "ev_ready", constant)
	assert.Zero(t, p.Len())
}
