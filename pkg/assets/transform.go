package assets

import (
	"fmt"

	"github.com/repeale/fp-go"
	"github.com/rs/zerolog/log"
)

// A Transform rewrites the graph before it is written, e.g. to patch the
// runtime of a known engine.
type Transform interface {
	Name() string
	Apply(g *GameAssets) error
}

type transformFunc struct {
	name  string
	apply func(g *GameAssets) error
}

func (t transformFunc) Name() string { return t.name }
func (t transformFunc) Apply(g *GameAssets) error { return t.apply(g) }

func TransformFunc(name string, apply func(g *GameAssets) error) Transform {
	return transformFunc{name: name, apply: apply}
}

// ApplyTransforms runs each transform in order and stops at the first
// failure.
func ApplyTransforms(g *GameAssets, transforms ...Transform) error {
	for _, transform := range transforms {
		log.Info().Msgf("applying transform %s", transform.Name())
		err := transform.Apply(g)
		if err != nil {
			return fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
	}

	return nil
}

// HasScript reports whether every given name belongs to an occupied script
// slot.
func (g *GameAssets) HasScript(names ...string) bool {
	present := make(map[string]struct{})
	for _, script := range fp.Filter(func(s Slot[Script]) bool { return !s.IsEmpty() })(g.Scripts) {
		present[script.Get().Name] = struct{}{}
	}

	for _, name := range names {
		if _, ok := present[name]; !ok {
			return false
		}
	}
	return true
}

// ScriptDetector builds a predicate that matches graphs containing all of
// the given scripts.
func ScriptDetector(names ...string) func(g *GameAssets) bool {
	return func(g *GameAssets) bool {
		return g.HasScript(names...)
	}
}
