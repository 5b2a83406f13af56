package gojson

// Visitor is the read-side half of the generic data-model bridge. The
// Deserializer maps each JSON shape it encounters onto exactly one
// callback; container callbacks bracket the recursive calls for their
// contents. A Visitor that is offered a shape it does not accept
// reports that itself, normally with NewTypeMismatchError; the
// Deserializer never judges type compatibility.
//
// The contract is stateless: lifetime and mutation belong to whatever
// the concrete visitor is building, never to the interface.
type Visitor interface {
	VisitNull() error
	VisitBool(b bool) error
	VisitInt(i int64) error
	VisitUint(u uint64) error
	VisitFloat(f float64) error
	VisitDecimal(literal string) error
	VisitString(s string) error

	StartArray() error
	NextElement() error
	EndArray() error

	StartObject() error
	NextKey(key string) error
	NextValue() error
	EndObject() error
}

// Producer is the write-side half of the bridge: one operation that
// drives a Serializer through the producer's own shape. The dynamic
// Value implements it; generated code for typed records implements it
// externally.
type Producer interface {
	Produce(s *Serializer) error
}

// RejectingVisitor is an embeddable base whose callbacks all fail with
// TypeMismatch naming Expected. Typed visitors embed it and override
// only the shapes they accept.
type RejectingVisitor struct {
	Expected string
}

func (r RejectingVisitor) VisitNull() error     { return NewTypeMismatchError(r.Expected, "null") }
func (r RejectingVisitor) VisitBool(bool) error { return NewTypeMismatchError(r.Expected, "bool") }
func (r RejectingVisitor) VisitInt(int64) error {
	return NewTypeMismatchError(r.Expected, "integer")
}
func (r RejectingVisitor) VisitUint(uint64) error {
	return NewTypeMismatchError(r.Expected, "integer")
}
func (r RejectingVisitor) VisitFloat(float64) error {
	return NewTypeMismatchError(r.Expected, "number")
}
func (r RejectingVisitor) VisitDecimal(string) error {
	return NewTypeMismatchError(r.Expected, "number")
}
func (r RejectingVisitor) VisitString(string) error {
	return NewTypeMismatchError(r.Expected, "string")
}
func (r RejectingVisitor) StartArray() error    { return NewTypeMismatchError(r.Expected, "array") }
func (r RejectingVisitor) NextElement() error   { return nil }
func (r RejectingVisitor) EndArray() error      { return nil }
func (r RejectingVisitor) StartObject() error   { return NewTypeMismatchError(r.Expected, "object") }
func (r RejectingVisitor) NextKey(string) error { return nil }
func (r RejectingVisitor) NextValue() error     { return nil }
func (r RejectingVisitor) EndObject() error     { return nil }

// valueBuilder is the Visitor that assembles a dynamic Value tree.
// Leaves attach to the innermost open container as they arrive, so the
// tree grows bottom-up without a second pass.
type valueBuilder struct {
	preserveOrder bool
	root          *Value
	stack         []*Value
	keys          []string
}

func newValueBuilder(preserveOrder bool) *valueBuilder {
	return &valueBuilder{preserveOrder: preserveOrder}
}

// place attaches a finished value to the innermost open container, or
// records it as the root when none is open
func (vb *valueBuilder) place(v *Value) {
	if len(vb.stack) == 0 {
		vb.root = v
		return
	}
	parent := vb.stack[len(vb.stack)-1]
	switch parent.t {
	case TypeArray:
		parent.a = append(parent.a, v)
	case TypeObject:
		parent.o.Set(vb.keys[len(vb.keys)-1], v)
	}
}

func (vb *valueBuilder) VisitNull() error         { vb.place(NewNull()); return nil }
func (vb *valueBuilder) VisitBool(b bool) error   { vb.place(NewBool(b)); return nil }
func (vb *valueBuilder) VisitInt(i int64) error   { vb.place(NewInt(i)); return nil }
func (vb *valueBuilder) VisitUint(u uint64) error { vb.place(NewUint(u)); return nil }
func (vb *valueBuilder) VisitFloat(f float64) error {
	vb.place(NewFloat(f))
	return nil
}
func (vb *valueBuilder) VisitDecimal(literal string) error {
	vb.place(NewNumber(DecimalNumber(literal)))
	return nil
}
func (vb *valueBuilder) VisitString(s string) error { vb.place(NewString(s)); return nil }

func (vb *valueBuilder) StartArray() error {
	arr := NewArray()
	vb.place(arr)
	vb.stack = append(vb.stack, arr)
	return nil
}

func (vb *valueBuilder) NextElement() error { return nil }

func (vb *valueBuilder) EndArray() error {
	vb.stack = vb.stack[:len(vb.stack)-1]
	return nil
}

func (vb *valueBuilder) StartObject() error {
	obj := NewObjectValue(newObjectWithOrder(vb.preserveOrder))
	vb.place(obj)
	vb.stack = append(vb.stack, obj)
	vb.keys = append(vb.keys, "")
	return nil
}

func (vb *valueBuilder) NextKey(key string) error {
	vb.keys[len(vb.keys)-1] = key
	return nil
}

func (vb *valueBuilder) NextValue() error { return nil }

func (vb *valueBuilder) EndObject() error {
	vb.stack = vb.stack[:len(vb.stack)-1]
	vb.keys = vb.keys[:len(vb.keys)-1]
	return nil
}
