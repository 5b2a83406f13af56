package gojson

// Type identifies which variant a Value holds
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String returns the type name
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a dynamic JSON tree node: exactly one of null, bool, number,
// string, array, or object. A Value owns its children outright; trees
// are acyclic and share nothing, so independent trees may be used from
// separate goroutines without coordination.
type Value struct {
	t Type
	b bool
	n Number
	s string
	a []*Value
	o *Object
}

// NewNull creates a null Value
func NewNull() *Value {
	return &Value{t: TypeNull}
}

// NewBool creates a boolean Value
func NewBool(b bool) *Value {
	return &Value{t: TypeBool, b: b}
}

// NewString creates a string Value
func NewString(s string) *Value {
	return &Value{t: TypeString, s: s}
}

// NewNumber creates a numeric Value
func NewNumber(n Number) *Value {
	return &Value{t: TypeNumber, n: n}
}

// NewInt creates a numeric Value from a signed integer
func NewInt(i int64) *Value {
	return NewNumber(IntNumber(i))
}

// NewUint creates a numeric Value from an unsigned integer
func NewUint(u uint64) *Value {
	return NewNumber(UintNumber(u))
}

// NewFloat creates a numeric Value from a float
func NewFloat(f float64) *Value {
	return NewNumber(FloatNumber(f))
}

// NewArray creates an array Value holding the given elements
func NewArray(elems ...*Value) *Value {
	return &Value{t: TypeArray, a: elems}
}

// NewObjectValue creates an object Value backed by the given Object.
// A nil Object is replaced with an empty sorted one.
func NewObjectValue(o *Object) *Value {
	if o == nil {
		o = NewObject()
	}
	return &Value{t: TypeObject, o: o}
}

// Type returns the variant held by the Value. A nil Value is null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

// IsNull reports whether the Value is null
func (v *Value) IsNull() bool { return v == nil || v.t == TypeNull }

// AsBool returns the boolean value; false when the variant is not a bool
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.t != TypeBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the Number value; false when the variant is not a number
func (v *Value) AsNumber() (Number, bool) {
	if v == nil || v.t != TypeNumber {
		return Number{}, false
	}
	return v.n, true
}

// AsString returns the string value; false when the variant is not a string
func (v *Value) AsString() (string, bool) {
	if v == nil || v.t != TypeString {
		return "", false
	}
	return v.s, true
}

// Object returns the backing Object; false when the variant is not an object
func (v *Value) Object() (*Object, bool) {
	if v == nil || v.t != TypeObject {
		return nil, false
	}
	return v.o, true
}

// Len returns the element count of an array or object, zero otherwise
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return v.o.Len()
	default:
		return 0
	}
}

// Index returns the i-th element of an array, or nil when out of range
// or not an array
func (v *Value) Index(i int) *Value {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return nil
	}
	return v.a[i]
}

// SetIndex replaces the i-th element of an array, reporting whether the
// index was in range
func (v *Value) SetIndex(i int, elem *Value) bool {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return false
	}
	v.a[i] = elem
	return true
}

// Append adds elements to the end of an array
func (v *Value) Append(elems ...*Value) bool {
	if v == nil || v.t != TypeArray {
		return false
	}
	v.a = append(v.a, elems...)
	return true
}

// InsertIndex inserts elem before position i; i may equal Len to append
func (v *Value) InsertIndex(i int, elem *Value) bool {
	if v == nil || v.t != TypeArray || i < 0 || i > len(v.a) {
		return false
	}
	v.a = append(v.a, nil)
	copy(v.a[i+1:], v.a[i:])
	v.a[i] = elem
	return true
}

// RemoveIndex removes the i-th element of an array
func (v *Value) RemoveIndex(i int) bool {
	if v == nil || v.t != TypeArray || i < 0 || i >= len(v.a) {
		return false
	}
	v.a = append(v.a[:i], v.a[i+1:]...)
	return true
}

// ArrayEach walks an array's elements in order; fn returning false stops
func (v *Value) ArrayEach(fn func(i int, elem *Value) bool) {
	if v == nil || v.t != TypeArray {
		return
	}
	for i, elem := range v.a {
		if !fn(i, elem) {
			return
		}
	}
}

// ObjectEach walks an object's entries in iteration order; fn returning
// false stops
func (v *Value) ObjectEach(fn func(key string, value *Value) bool) {
	if v == nil || v.t != TypeObject {
		return
	}
	v.o.Each(fn)
}

// Get descends through the tree by path: object entries by key, array
// elements by decimal index. Returns nil on any miss.
//
//	v.Get("user", "name")
//	v.Get("items", "0")
func (v *Value) Get(path ...string) *Value {
	for _, key := range path {
		if v == nil {
			return nil
		}
		switch v.t {
		case TypeObject:
			child, ok := v.o.Get(key)
			if !ok {
				return nil
			}
			v = child
		case TypeArray:
			idx, ok := parseIndex(key)
			if !ok || idx >= len(v.a) {
				return nil
			}
			v = v.a[idx]
		default:
			return nil
		}
	}
	return v
}

// GetString returns the string at path, or "" on a miss or type mismatch
func (v *Value) GetString(path ...string) string {
	s, _ := v.Get(path...).AsString()
	return s
}

// GetBool returns the bool at path, or false on a miss or type mismatch
func (v *Value) GetBool(path ...string) bool {
	b, _ := v.Get(path...).AsBool()
	return b
}

// GetInt64 returns the integer at path, or 0 on a miss or type mismatch
func (v *Value) GetInt64(path ...string) int64 {
	n, ok := v.Get(path...).AsNumber()
	if !ok {
		return 0
	}
	i, _ := n.Int64()
	return i
}

// GetUint64 returns the unsigned integer at path, or 0 on a miss
func (v *Value) GetUint64(path ...string) uint64 {
	n, ok := v.Get(path...).AsNumber()
	if !ok {
		return 0
	}
	u, _ := n.Uint64()
	return u
}

// GetFloat64 returns the float at path, or 0 on a miss or type mismatch
func (v *Value) GetFloat64(path ...string) float64 {
	n, ok := v.Get(path...).AsNumber()
	if !ok {
		return 0
	}
	f, _ := n.Float64()
	return f
}

// Equal reports deep equality. Arrays compare element-wise in order;
// objects compare key-wise ignoring iteration order; numbers compare
// per Number.Equal.
func (v *Value) Equal(other *Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() && other.IsNull()
	}
	if v.t != other.t {
		return false
	}
	switch v.t {
	case TypeBool:
		return v.b == other.b
	case TypeNumber:
		return v.n.Equal(other.n)
	case TypeString:
		return v.s == other.s
	case TypeArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(other.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		return v.o.Equal(other.o)
	default:
		return false
	}
}

// parseIndex reads a non-negative decimal array index from a path segment
func parseIndex(s string) (int, bool) {
	if len(s) == 0 || len(s) > 10 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, false
		}
	}
	return n, true
}
