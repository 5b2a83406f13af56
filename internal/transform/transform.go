// Package transform rewrites the object keys of a parsed JSON tree to
// a uniform casing convention. It operates on the dynamic Value tree
// through its public mutation API, so ordering mode and values are
// untouched.
package transform

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/gojson"
)

// KeyCaser renames object keys throughout a Value tree
type KeyCaser struct {
	rename func(string) string
}

// NewKeyCaser creates a KeyCaser for the given convention: "snake",
// "camel", "pascal", or "kebab"
func NewKeyCaser(convention string) (*KeyCaser, error) {
	var rename func(string) string
	switch convention {
	case "snake":
		rename = strcase.ToSnake
	case "camel":
		rename = strcase.ToLowerCamel
	case "pascal":
		rename = strcase.ToCamel
	case "kebab":
		rename = strcase.ToKebab
	default:
		return nil, fmt.Errorf("unknown key case %q", convention)
	}
	return &KeyCaser{rename: rename}, nil
}

// Apply rewrites all object keys in the tree rooted at v, recursing
// through arrays and nested objects. Keys that collide after renaming
// follow the codec's duplicate-key rule: the later entry wins.
func (k *KeyCaser) Apply(v *gojson.Value) {
	switch v.Type() {
	case gojson.TypeArray:
		v.ArrayEach(func(_ int, elem *gojson.Value) bool {
			k.Apply(elem)
			return true
		})
	case gojson.TypeObject:
		obj, _ := v.Object()
		type entry struct {
			key   string
			value *gojson.Value
		}
		var entries []entry
		obj.Each(func(key string, value *gojson.Value) bool {
			entries = append(entries, entry{key, value})
			return true
		})
		for _, e := range entries {
			obj.Delete(e.key)
		}
		for _, e := range entries {
			k.Apply(e.value)
			obj.Set(k.rename(e.key), e.value)
		}
	}
}
