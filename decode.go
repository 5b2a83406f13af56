package gojson

import (
	"fmt"
	"io"
)

// Deserializer drives a Visitor from a token stream. One Deserializer
// owns its source for the duration of its use and must not be shared
// across concurrent operations; independent Deserializers need no
// coordination. Repeated Deserialize calls on the same instance read
// whitespace-separated documents from one source.
type Deserializer struct {
	sc    *scanner
	opts  *options
	depth int
}

// NewDeserializer creates a Deserializer over an in-memory byte slice
func NewDeserializer(data []byte, opts ...Option) *Deserializer {
	return &Deserializer{sc: newScanner(newSliceSource(data)), opts: buildOptions(opts)}
}

// NewStreamDeserializer creates a Deserializer over an incremental
// byte source. Input ending mid-value is reported as UnexpectedEOF so
// the caller can retry once more bytes are available.
func NewStreamDeserializer(r io.Reader, opts ...Option) *Deserializer {
	return &Deserializer{sc: newScanner(newStreamSource(r)), opts: buildOptions(opts)}
}

// Deserialize reads one complete JSON value, feeding v's callbacks. It
// does not look past the value's final byte; use End to require that
// only whitespace remains, or More to continue with further documents.
func (d *Deserializer) Deserialize(v Visitor) error {
	return d.any(v)
}

// More skips whitespace and reports whether another document begins
func (d *Deserializer) More() (bool, error) {
	_, ok, err := d.sc.peekSignificant()
	return ok, err
}

// End verifies that only whitespace remains in the source
func (d *Deserializer) End() error {
	_, ok, err := d.sc.peekSignificant()
	if err != nil {
		return err
	}
	if ok {
		return NewTrailingError(d.sc.pos())
	}
	return nil
}

// any dispatches on the next significant byte
func (d *Deserializer) any(v Visitor) error {
	b, ok, err := d.sc.peekSignificant()
	if err != nil {
		return err
	}
	if !ok {
		return NewEOFError("unexpected end of input, expected a value", d.sc.pos())
	}
	switch {
	case b == 'n':
		if err := d.sc.expectKeyword("null"); err != nil {
			return err
		}
		return v.VisitNull()
	case b == 't':
		if err := d.sc.expectKeyword("true"); err != nil {
			return err
		}
		return v.VisitBool(true)
	case b == 'f':
		if err := d.sc.expectKeyword("false"); err != nil {
			return err
		}
		return v.VisitBool(false)
	case b == '"':
		s, err := d.sc.scanString()
		if err != nil {
			return err
		}
		return v.VisitString(s)
	case b == '-' || (b >= '0' && b <= '9'):
		n, err := d.sc.scanNumber(d.opts.arbitraryPrecision)
		if err != nil {
			return err
		}
		return d.visitNumber(v, n)
	case b == '[':
		return d.array(v)
	case b == '{':
		return d.object(v)
	default:
		return NewSyntaxError(fmt.Sprintf("unexpected character %q, expected a value", b), d.sc.pos())
	}
}

// visitNumber dispatches a scanned Number onto the matching callback
func (d *Deserializer) visitNumber(v Visitor, n Number) error {
	switch {
	case n.IsInt():
		i, _ := n.Int64()
		return v.VisitInt(i)
	case n.IsUint():
		u, _ := n.Uint64()
		return v.VisitUint(u)
	case n.IsDecimal():
		return v.VisitDecimal(n.String())
	default:
		f, _ := n.Float64()
		return v.VisitFloat(f)
	}
}

// push charges one nesting level against the configured limit
func (d *Deserializer) push() error {
	d.depth++
	if d.depth > d.opts.maxDepth {
		return NewDepthError(d.opts.maxDepth, d.sc.pos())
	}
	return nil
}

func (d *Deserializer) array(v Visitor) error {
	if err := d.push(); err != nil {
		return err
	}
	if err := d.sc.expectByte('['); err != nil {
		return err
	}
	if err := v.StartArray(); err != nil {
		return err
	}
	first := true
	for {
		b, ok, err := d.sc.peekSignificant()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError("unterminated array", d.sc.pos())
		}
		if b == ']' {
			if !first {
				// a separator was consumed, so a value is owed
				return NewSyntaxError("trailing comma in array", d.sc.pos())
			}
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			d.depth--
			return v.EndArray()
		}
		if err := v.NextElement(); err != nil {
			return err
		}
		if err := d.any(v); err != nil {
			return err
		}
		b, ok, err = d.sc.peekSignificant()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError("unterminated array", d.sc.pos())
		}
		switch b {
		case ',':
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			first = false
		case ']':
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			d.depth--
			return v.EndArray()
		default:
			return NewSyntaxError(fmt.Sprintf("unexpected character %q, expected ',' or ']'", b), d.sc.pos())
		}
	}
}

func (d *Deserializer) object(v Visitor) error {
	if err := d.push(); err != nil {
		return err
	}
	if err := d.sc.expectByte('{'); err != nil {
		return err
	}
	if err := v.StartObject(); err != nil {
		return err
	}
	first := true
	for {
		b, ok, err := d.sc.peekSignificant()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError("unterminated object", d.sc.pos())
		}
		if b == '}' {
			if !first {
				return NewSyntaxError("trailing comma in object", d.sc.pos())
			}
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			d.depth--
			return v.EndObject()
		}
		if b != '"' {
			return NewSyntaxError(fmt.Sprintf("unexpected character %q, expected object key", b), d.sc.pos())
		}
		key, err := d.sc.scanString()
		if err != nil {
			return err
		}
		if err := v.NextKey(key); err != nil {
			return err
		}
		if err := d.sc.expectByte(':'); err != nil {
			return err
		}
		if err := v.NextValue(); err != nil {
			return err
		}
		if err := d.any(v); err != nil {
			return err
		}
		b, ok, err = d.sc.peekSignificant()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError("unterminated object", d.sc.pos())
		}
		switch b {
		case ',':
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			first = false
		case '}':
			if _, _, err := d.sc.src.next(); err != nil {
				return err
			}
			d.depth--
			return v.EndObject()
		default:
			return NewSyntaxError(fmt.Sprintf("unexpected character %q, expected ',' or '}'", b), d.sc.pos())
		}
	}
}
