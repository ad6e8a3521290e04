package assets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransforms(t *testing.T) {
	g := Sample(GameMaker80)

	var order []string
	first := TransformFunc("first", func(g *GameAssets) error {
		order = append(order, "first")
		g.GameID = 1
		return nil
	})
	second := TransformFunc("second", func(g *GameAssets) error {
		order = append(order, "second")
		g.GameID++
		return nil
	})

	require.NoError(t, ApplyTransforms(g, first, second))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, uint32(2), g.GameID)
}

func TestApplyTransformsStops(t *testing.T) {
	g := Sample(GameMaker80)
	boom := errors.New("boom")

	called := false
	err := ApplyTransforms(
		g,
		TransformFunc("broken", func(g *GameAssets) error { return boom }),
		TransformFunc("never", func(g *GameAssets) error {
			called = true
			return nil
		}),
	)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, called)
}

func TestScriptDetector(t *testing.T) {
	g := Sample(GameMaker80)

	assert.True(t, g.HasScript("scr_move"))
	assert.False(t, g.HasScript("scr_move", "scr_missing"))
	assert.True(t, ScriptDetector()(g))
	assert.False(t, ScriptDetector("scr_missing")(g))
}
