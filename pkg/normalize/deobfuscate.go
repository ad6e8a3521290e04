package normalize

import (
	"fmt"

	"github.com/cfoust/gmk/pkg/assets"

	"github.com/repeale/fp-go"
	"github.com/rs/zerolog/log"
)

// Scripts and triggers are not consulted: plenty of untouched games have
// unnamed ones.
var detectedKinds = map[string]struct{}{
	"sprite":     {},
	"sound":      {},
	"background": {},
	"path":       {},
	"font":       {},
	"timeline":   {},
	"object":     {},
	"room":       {},
}

// IsObfuscated reports whether any occupied asset of a detected kind has an
// empty name.
func IsObfuscated(g *assets.GameAssets) bool {
	categories := fp.Filter(func(c assets.Category) bool {
		_, ok := detectedKinds[c.Kind]
		return ok
	})(g.Categories())

	for _, category := range categories {
		for i := 0; i < category.Len; i++ {
			name, ok := category.Name(i)
			if ok && name == "" {
				return true
			}
		}
	}
	return false
}

type DeobfuscateResult struct {
	Renamed       int
	RewrittenCode int
}

// Deobfuscate gives every occupied asset a generated name of the form
// <kind>_<index>, then rewrites references to the old names in all GML
// code. Generated names never collide with constants or with each other.
func Deobfuscate(g *assets.GameAssets) DeobfuscateResult {
	taken := make(map[string]struct{})
	for _, constant := range g.Constants {
		taken[constant.Name] = struct{}{}
	}

	renames := make(map[string]string)
	result := DeobfuscateResult{}

	for _, category := range g.Categories() {
		for i := 0; i < category.Len; i++ {
			old, ok := category.Name(i)
			if !ok {
				continue
			}

			name := fmt.Sprintf("%s_%d", category.Kind, i)
			for {
				if _, exists := taken[name]; !exists {
					break
				}
				name += "_"
			}
			taken[name] = struct{}{}

			category.SetName(i, name)
			result.Renamed++

			if old == "" || old == name {
				continue
			}

			if previous, exists := renames[old]; exists {
				log.Debug().Msgf(
					"%s[%d] shares the name %q, references keep pointing at %s",
					category.Kind,
					i,
					old,
					previous,
				)
				continue
			}
			renames[old] = name
		}
	}

	if len(renames) == 0 {
		return result
	}

	g.ForEachCode(func(code *string) {
		rewritten := RewriteIdentifiers(*code, renames)
		if rewritten != *code {
			*code = rewritten
			result.RewrittenCode++
		}
	})

	return result
}
