package normalize

import (
	"testing"

	"github.com/cfoust/gmk/pkg/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obfuscated() *assets.GameAssets {
	g := assets.Sample(assets.GameMaker80)
	for _, slot := range g.Sprites {
		if sprite := slot.Get(); sprite != nil {
			sprite.Name = ""
		}
	}
	return g
}

func TestParseMode(t *testing.T) {
	for value, expected := range map[string]Mode{
		"":     ModeAuto,
		"auto": ModeAuto,
		"on":   ModeOn,
		"off":  ModeOff,
	} {
		mode, err := ParseMode(value)
		require.NoError(t, err)
		assert.Equal(t, expected, mode)
	}

	_, err := ParseMode("sometimes")
	assert.Error(t, err)
	assert.Equal(t, "off", ModeOff.String())
}

func TestIsObfuscated(t *testing.T) {
	assert.False(t, IsObfuscated(assets.Sample(assets.GameMaker80)))
	assert.True(t, IsObfuscated(obfuscated()))

	// unnamed scripts alone do not count
	g := assets.Sample(assets.GameMaker80)
	g.Scripts[0].Get().Name = ""
	assert.False(t, IsObfuscated(g))
}

func TestAutoDetection(t *testing.T) {
	g := obfuscated()

	report := Run(g, Options{Mode: ModeAuto, FixEvents: true})
	assert.True(t, report.Obfuscated)
	assert.True(t, report.Deobfuscated)

	seen := make(map[string]struct{})
	for _, category := range g.Categories() {
		for i := 0; i < category.Len; i++ {
			name, ok := category.Name(i)
			if !ok {
				continue
			}
			assert.NotEmpty(t, name)
			_, duplicate := seen[name]
			assert.False(t, duplicate, "name %s assigned twice", name)
			seen[name] = struct{}{}
		}
	}

	assert.Equal(t, "sprite_0", g.Sprites[0].Get().Name)
	assert.Equal(t, "sprite_2", g.Sprites[2].Get().Name)
	assert.True(t, g.Sprites[1].IsEmpty())
}

func TestModeOff(t *testing.T) {
	g := obfuscated()

	report := Run(g, Options{Mode: ModeOff})
	assert.True(t, report.Obfuscated)
	assert.False(t, report.Deobfuscated)
	assert.Equal(t, "", g.Sprites[0].Get().Name)
}

func TestModeOn(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)

	report := Run(g, Options{Mode: ModeOn})
	assert.False(t, report.Obfuscated)
	assert.True(t, report.Deobfuscated)
	assert.Equal(t, "script_0", g.Scripts[0].Get().Name)
	assert.Equal(t, "object_1", g.Objects[1].Get().Name)
}

func TestIdempotent(t *testing.T) {
	g := obfuscated()
	Run(g, Options{Mode: ModeOn, FixEvents: true})

	snapshot := snapshotNames(g)
	code := snapshotCode(g)

	report := Run(g, Options{Mode: ModeOn, FixEvents: true})
	assert.Equal(t, 0, report.RepairedActions)
	assert.Equal(t, 0, report.RewrittenCode)
	assert.Equal(t, snapshot, snapshotNames(g))
	assert.Equal(t, code, snapshotCode(g))
}

func snapshotNames(g *assets.GameAssets) []string {
	var names []string
	for _, category := range g.Categories() {
		for i := 0; i < category.Len; i++ {
			name, _ := category.Name(i)
			names = append(names, name)
		}
	}
	return names
}

func snapshotCode(g *assets.GameAssets) []string {
	var code []string
	g.ForEachCode(func(source *string) {
		code = append(code, *source)
	})
	return code
}

func TestDeobfuscateRewritesCode(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)
	Deobfuscate(g)

	assert.Equal(
		t,
		"// move\nx += argument0.x; show_message(\"scr_move\")",
		g.Scripts[0].Get().Source,
	)

	action := g.Objects[0].Get().Events[0][0].Actions[0]
	// constants keep their names
	assert.Equal(t, "x += spd_player; script_0(object_1)", action.ParamStrings[0])
}

func TestDeobfuscateAvoidsConstants(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)
	g.Constants = append(g.Constants, assets.Constant{Name: "sprite_0", Expression: "1"})

	Deobfuscate(g)
	assert.Equal(t, "sprite_0_", g.Sprites[0].Get().Name)
	assert.Equal(t, "sprite_2", g.Sprites[2].Get().Name)
}

func TestRepairActions(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)

	custom := assets.CodeAction{ID: 900, LibID: 77, ActionKind: assets.ActionKindCode, ExecutionType: assets.ExecutionCode}
	function := assets.CodeAction{ID: 901, LibID: 77, ActionKind: assets.ActionKindCode, ExecutionType: assets.ExecutionFunction}
	timeline := g.Timelines[0].Get()
	timeline.Moments[0].Actions = append(timeline.Moments[0].Actions, custom, function)

	assert.Equal(t, 1, RepairActions(g))

	actions := timeline.Moments[0].Actions
	assert.Equal(t, assets.ActionExecuteCode, actions[1].ID)
	assert.Equal(t, assets.LibraryMainActions, actions[1].LibID)
	assert.Equal(t, uint32(901), actions[2].ID)

	assert.Equal(t, 0, RepairActions(g))
}

func TestFixEventsDisabled(t *testing.T) {
	g := assets.Sample(assets.GameMaker80)
	action := &g.Objects[0].Get().Events[0][0].Actions[0]
	action.ID = 900

	report := Run(g, Options{Mode: ModeOff, FixEvents: false})
	assert.Equal(t, 0, report.RepairedActions)
	assert.Equal(t, uint32(900), action.ID)
}
