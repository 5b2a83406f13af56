package gojson

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Formatter decides where insignificant whitespace goes. The Serializer
// calls it around every structural element; formatters never see or
// reorder the data itself.
type Formatter interface {
	BeginArray(w io.Writer) error
	BeginArrayValue(w io.Writer, first bool) error
	EndArray(w io.Writer, empty bool) error
	BeginObject(w io.Writer) error
	BeginObjectKey(w io.Writer, first bool) error
	BeginObjectValue(w io.Writer) error
	EndObject(w io.Writer, empty bool) error
}

// CompactFormatter writes no insignificant whitespace
type CompactFormatter struct{}

func (CompactFormatter) BeginArray(w io.Writer) error { return writeByte(w, '[') }
func (CompactFormatter) BeginArrayValue(w io.Writer, first bool) error {
	if first {
		return nil
	}
	return writeByte(w, ',')
}
func (CompactFormatter) EndArray(w io.Writer, empty bool) error { return writeByte(w, ']') }
func (CompactFormatter) BeginObject(w io.Writer) error          { return writeByte(w, '{') }
func (CompactFormatter) BeginObjectKey(w io.Writer, first bool) error {
	if first {
		return nil
	}
	return writeByte(w, ',')
}
func (CompactFormatter) BeginObjectValue(w io.Writer) error      { return writeByte(w, ':') }
func (CompactFormatter) EndObject(w io.Writer, empty bool) error { return writeByte(w, '}') }

// PrettyFormatter indents one Indent unit per nesting level, breaks
// lines after separators, and pads colons with one space. Empty
// containers collapse to {} and []. NewSerializer resets its depth
// tracking, so one instance may serve successive operations.
type PrettyFormatter struct {
	Indent string
	depth  int
}

// NewPrettyFormatter creates a PrettyFormatter with the given indent
// unit; an empty unit defaults to two spaces
func NewPrettyFormatter(indent string) *PrettyFormatter {
	if indent == "" {
		indent = "  "
	}
	return &PrettyFormatter{Indent: indent}
}

func (p *PrettyFormatter) newline(w io.Writer) error {
	if err := writeByte(w, '\n'); err != nil {
		return err
	}
	_, err := io.WriteString(w, strings.Repeat(p.Indent, p.depth))
	return err
}

func (p *PrettyFormatter) BeginArray(w io.Writer) error {
	p.depth++
	return writeByte(w, '[')
}

func (p *PrettyFormatter) BeginArrayValue(w io.Writer, first bool) error {
	if !first {
		if err := writeByte(w, ','); err != nil {
			return err
		}
	}
	return p.newline(w)
}

func (p *PrettyFormatter) EndArray(w io.Writer, empty bool) error {
	p.depth--
	if !empty {
		if err := p.newline(w); err != nil {
			return err
		}
	}
	return writeByte(w, ']')
}

func (p *PrettyFormatter) BeginObject(w io.Writer) error {
	p.depth++
	return writeByte(w, '{')
}

func (p *PrettyFormatter) BeginObjectKey(w io.Writer, first bool) error {
	if !first {
		if err := writeByte(w, ','); err != nil {
			return err
		}
	}
	return p.newline(w)
}

func (p *PrettyFormatter) BeginObjectValue(w io.Writer) error {
	_, err := io.WriteString(w, ": ")
	return err
}

func (p *PrettyFormatter) EndObject(w io.Writer, empty bool) error {
	p.depth--
	if !empty {
		if err := p.newline(w); err != nil {
			return err
		}
	}
	return writeByte(w, '}')
}

// containerState tracks comma placement for one open container
type containerState struct {
	object bool
	count  int
}

// Serializer walks one Producer and writes a complete JSON encoding to
// a byte sink. Producers call its Write/Begin methods to describe their
// shape; the Serializer handles separators through its Formatter and
// verifies that exactly one complete top-level value is produced. It
// owns its sink for the duration of one operation; partial output on
// failure is left as-is, sinks needing all-or-nothing semantics should
// buffer externally.
type Serializer struct {
	w        io.Writer
	f        Formatter
	stack    []containerState
	produced int
}

// NewSerializer creates a Serializer writing to w through f. A
// PrettyFormatter carried over from an earlier operation is reset, so
// one formatter may be reused even after a failed serialization.
func NewSerializer(w io.Writer, f Formatter) *Serializer {
	if f == nil {
		f = CompactFormatter{}
	}
	if pf, ok := f.(*PrettyFormatter); ok {
		pf.depth = 0
	}
	return &Serializer{w: w, f: f}
}

// beginValue runs the formatter hooks owed before a value in the
// current context and counts the value
func (s *Serializer) beginValue() error {
	if len(s.stack) == 0 {
		s.produced++
		return nil
	}
	top := &s.stack[len(s.stack)-1]
	top.count++
	if !top.object {
		return s.f.BeginArrayValue(s.w, top.count == 1)
	}
	return nil
}

// WriteNull emits a null literal
func (s *Serializer) WriteNull() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "null")
	return err
}

// WriteBool emits true or false
func (s *Serializer) WriteBool(b bool) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	lit := "false"
	if b {
		lit = "true"
	}
	_, err := io.WriteString(s.w, lit)
	return err
}

// WriteInt emits a signed integer literal
func (s *Serializer) WriteInt(i int64) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	_, err := s.w.Write(strconv.AppendInt(nil, i, 10))
	return err
}

// WriteUint emits an unsigned integer literal
func (s *Serializer) WriteUint(u uint64) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	_, err := s.w.Write(strconv.AppendUint(nil, u, 10))
	return err
}

// WriteFloat emits a float in shortest round-trip form. NaN and the
// infinities have no JSON literal and fail with UnrepresentableNumber.
func (s *Serializer) WriteFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewUnrepresentableError(strconv.FormatFloat(f, 'g', -1, 64))
	}
	if err := s.beginValue(); err != nil {
		return err
	}
	_, err := s.w.Write(appendFloat(nil, f))
	return err
}

// WriteDecimal emits an arbitrary-precision literal verbatim
func (s *Serializer) WriteDecimal(literal string) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, literal)
	return err
}

// WriteNumber emits whichever variant the Number holds
func (s *Serializer) WriteNumber(n Number) error {
	switch {
	case n.IsInt():
		i, _ := n.Int64()
		return s.WriteInt(i)
	case n.IsUint():
		u, _ := n.Uint64()
		return s.WriteUint(u)
	case n.IsDecimal():
		return s.WriteDecimal(n.String())
	default:
		f, _ := n.Float64()
		return s.WriteFloat(f)
	}
}

// WriteString emits a quoted, escaped string literal
func (s *Serializer) WriteString(str string) error {
	if err := s.beginValue(); err != nil {
		return err
	}
	return writeEscapedString(s.w, str)
}

// BeginArray opens an array; elements follow as ordinary writes
func (s *Serializer) BeginArray() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.f.BeginArray(s.w); err != nil {
		return err
	}
	s.stack = append(s.stack, containerState{})
	return nil
}

// EndArray closes the innermost array
func (s *Serializer) EndArray() error {
	if len(s.stack) == 0 || s.stack[len(s.stack)-1].object {
		return NewSyntaxError("EndArray without matching BeginArray", Position{})
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return s.f.EndArray(s.w, top.count == 0)
}

// BeginObject opens an object; entries follow as WriteKey + one value
func (s *Serializer) BeginObject() error {
	if err := s.beginValue(); err != nil {
		return err
	}
	if err := s.f.BeginObject(s.w); err != nil {
		return err
	}
	s.stack = append(s.stack, containerState{object: true})
	return nil
}

// WriteKey emits one object key and its separator
func (s *Serializer) WriteKey(key string) error {
	if len(s.stack) == 0 || !s.stack[len(s.stack)-1].object {
		return NewSyntaxError("WriteKey outside an open object", Position{})
	}
	top := &s.stack[len(s.stack)-1]
	top.count++
	if err := s.f.BeginObjectKey(s.w, top.count == 1); err != nil {
		return err
	}
	if err := writeEscapedString(s.w, key); err != nil {
		return err
	}
	return s.f.BeginObjectValue(s.w)
}

// EndObject closes the innermost object
func (s *Serializer) EndObject() error {
	if len(s.stack) == 0 || !s.stack[len(s.stack)-1].object {
		return NewSyntaxError("EndObject without matching BeginObject", Position{})
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return s.f.EndObject(s.w, top.count == 0)
}

// finish verifies the producer emitted exactly one complete value
func (s *Serializer) finish() error {
	if len(s.stack) != 0 {
		return NewSyntaxError("unclosed container at end of serialization", Position{})
	}
	if s.produced != 1 {
		return NewSyntaxError("producer must emit exactly one top-level value", Position{})
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// writeEscapedString quotes s, escaping '"', '\\', and control bytes.
// Valid UTF-8 above ASCII passes through untouched.
func writeEscapedString(w io.Writer, s string) error {
	if err := writeByte(w, '"'); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '"' && b != '\\' && b >= 0x20 {
			continue
		}
		if start < i {
			if _, err := io.WriteString(w, s[start:i]); err != nil {
				return err
			}
		}
		var esc []byte
		switch b {
		case '"':
			esc = []byte{'\\', '"'}
		case '\\':
			esc = []byte{'\\', '\\'}
		case '\n':
			esc = []byte{'\\', 'n'}
		case '\r':
			esc = []byte{'\\', 'r'}
		case '\t':
			esc = []byte{'\\', 't'}
		case '\b':
			esc = []byte{'\\', 'b'}
		case '\f':
			esc = []byte{'\\', 'f'}
		default:
			esc = []byte{'\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF]}
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		if _, err := io.WriteString(w, s[start:]); err != nil {
			return err
		}
	}
	return writeByte(w, '"')
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// Produce implements Producer for the dynamic Value, walking the tree
// in the Object's configured iteration order. The formatter never
// reorders keys on its own.
func (v *Value) Produce(s *Serializer) error {
	switch v.Type() {
	case TypeNull:
		return s.WriteNull()
	case TypeBool:
		return s.WriteBool(v.b)
	case TypeNumber:
		return s.WriteNumber(v.n)
	case TypeString:
		return s.WriteString(v.s)
	case TypeArray:
		if err := s.BeginArray(); err != nil {
			return err
		}
		for _, elem := range v.a {
			if err := elem.Produce(s); err != nil {
				return err
			}
		}
		return s.EndArray()
	case TypeObject:
		if err := s.BeginObject(); err != nil {
			return err
		}
		var produceErr error
		v.o.Each(func(key string, value *Value) bool {
			if err := s.WriteKey(key); err != nil {
				produceErr = err
				return false
			}
			if err := value.Produce(s); err != nil {
				produceErr = err
				return false
			}
			return true
		})
		if produceErr != nil {
			return produceErr
		}
		return s.EndObject()
	default:
		return NewTypeMismatchError("value", "unknown")
	}
}

// String renders the Value as compact JSON, or a friendly error message
// when the tree is unserializable (a NaN or infinity leaf)
func (v *Value) String() string {
	data, err := Serialize(v)
	if err != nil {
		return "<" + FriendlyMessage(err) + ">"
	}
	return string(data)
}
