package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteIdentifiers(t *testing.T) {
	renames := map[string]string{
		"spr_a": "sprite_0",
		"obj_b": "object_1",
	}

	for source, expected := range map[string]string{
		"":                                        "",
		"spr_a":                                   "sprite_0",
		"sprite_index = spr_a;":                   "sprite_index = sprite_0;",
		"instance_create(x, y, obj_b)":            "instance_create(x, y, object_1)",
		"spr_ab = spr_a_":                         "spr_ab = spr_a_",
		"obj_b.x = 3":                             "object_1.x = 3",
		"a = \"spr_a\" + 'obj_b'":                 "a = \"spr_a\" + 'obj_b'",
		"// spr_a\nspr_a":                         "// spr_a\nsprite_0",
		"/* obj_b */ obj_b":                       "/* obj_b */ object_1",
		"x = 1.5e3 + $ff":                         "x = 1.5e3 + $ff",
		"s = \"unterminated spr_a":                "s = \"unterminated spr_a",
		"/* open spr_a":                           "/* open spr_a",
		"// spr_a":                                "// spr_a",
		"if (spr_a==obj_b){spr_a}":                "if (sprite_0==object_1){sprite_0}",
	} {
		assert.Equal(t, expected, RewriteIdentifiers(source, renames), source)
	}
}
