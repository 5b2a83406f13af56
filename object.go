package gojson

import (
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
)

// Object is a JSON object: a mapping from string keys to Values. Keys
// are unique; setting an existing key overwrites its value and, in
// insertion-order mode, keeps the key's original position. Iteration
// order is insertion order when the object was created with
// NewOrderedObject (or parsed with WithPreserveOrder), lexicographic
// key order otherwise.
type Object struct {
	entries maps.Map
	ordered bool
}

// NewObject creates an empty Object with lexicographically sorted keys
func NewObject() *Object {
	return &Object{entries: treemap.NewWithStringComparator()}
}

// NewOrderedObject creates an empty Object that preserves insertion order
func NewOrderedObject() *Object {
	return &Object{entries: linkedhashmap.New(), ordered: true}
}

func newObjectWithOrder(preserveOrder bool) *Object {
	if preserveOrder {
		return NewOrderedObject()
	}
	return NewObject()
}

// Ordered reports whether the Object preserves insertion order
func (o *Object) Ordered() bool { return o.ordered }

// Len returns the number of entries
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.entries.Size()
}

// Set stores value under key, overwriting any prior value
func (o *Object) Set(key string, value *Value) {
	o.entries.Put(key, value)
}

// Get returns the value stored under key
func (o *Object) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.entries.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Value), true
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key and reports whether it was present
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.entries.Get(key); !ok {
		return false
	}
	o.entries.Remove(key)
	return true
}

// Keys returns all keys in the object's iteration order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	raw := o.entries.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Each calls fn for every entry in iteration order; fn returning false
// stops the walk
func (o *Object) Each(fn func(key string, value *Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.entries.Keys() {
		v, _ := o.entries.Get(k)
		if !fn(k.(string), v.(*Value)) {
			return
		}
	}
}

// Equal reports whether two objects hold equal values under the same
// keys. Iteration order does not participate in equality.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	equal := true
	o.Each(func(key string, value *Value) bool {
		ov, ok := other.Get(key)
		if !ok || !value.Equal(ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
