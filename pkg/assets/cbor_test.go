package assets

import (
	"bytes"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cmp(t *testing.T, before *GameAssets) {
	var buffer bytes.Buffer
	require.NoError(t, WriteGraph(&buffer, before))

	after, err := ReadGraph(&buffer, true)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGraphRoundTrip(t *testing.T) {
	cmp(t, Sample(GameMaker80))
	cmp(t, Sample(GameMaker81))
}

func TestGraphLegacyText(t *testing.T) {
	g := Sample(GameMaker80)
	// GBK
	source := "show_message(\"\xc4\xe3\xba\xc3\")"
	g.Scripts[0].Get().Source = source
	g.Scripts[0].Get().Name = "scr_\x82\xa0"

	var buffer bytes.Buffer
	require.NoError(t, WriteGraph(&buffer, g))

	for _, strict := range []bool{true, false} {
		after, err := ReadGraph(bytes.NewReader(buffer.Bytes()), strict)
		require.NoError(t, err)
		assert.Equal(t, []byte(source), []byte(after.Scripts[0].Get().Source))
		assert.Equal(t, "scr_\x82\xa0", after.Scripts[0].Get().Name)
	}
}

func TestGraphEmptySlots(t *testing.T) {
	g := Sample(GameMaker81)

	var buffer bytes.Buffer
	require.NoError(t, WriteGraph(&buffer, g))

	after, err := ReadGraph(&buffer, true)
	require.NoError(t, err)
	require.Len(t, after.Sprites, 3)
	assert.True(t, after.Sprites[1].IsEmpty())
	assert.True(t, after.Rooms[1].IsEmpty())
	assert.Equal(t, "spr_wall", after.Sprites[2].Get().Name)
}

func TestGraphStrict(t *testing.T) {
	data, err := cbor.Marshal(map[string]interface{}{
		"Version": 800,
		"Bogus":   1,
	})
	require.NoError(t, err)

	_, err = ReadGraph(bytes.NewReader(data), true)
	assert.Error(t, err)

	g, err := ReadGraph(bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Equal(t, GameMaker80, g.Version)
}

func TestGraphBadVersion(t *testing.T) {
	data, err := cbor.Marshal(map[string]interface{}{"Version": 900})
	require.NoError(t, err)

	_, err = ReadGraph(bytes.NewReader(data), false)
	assert.Error(t, err)
}

func TestGraphGarbage(t *testing.T) {
	_, err := ReadGraph(bytes.NewReader([]byte{0xFF, 0x00}), false)
	assert.Error(t, err)
}
