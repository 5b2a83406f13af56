// Package gojson is a bidirectional codec between JSON text and a
// dynamic in-memory data model. JSON can be parsed into a Value tree or
// fed directly to a caller-supplied Visitor, and anything implementing
// Producer (Value included) can be serialized back to byte-exact JSON
// through a compact or pretty formatter.
package gojson

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// DefaultMaxDepth bounds container nesting when WithMaxDepth is not given
const DefaultMaxDepth = 128

type options struct {
	preserveOrder      bool
	arbitraryPrecision bool
	indent             string
	pretty             bool
	maxDepth           int
}

// Option configures parsing and serialization
type Option func(*options)

// WithPreserveOrder makes parsed objects keep key insertion order
// instead of lexicographic order
func WithPreserveOrder(preserve bool) Option {
	return func(o *options) { o.preserveOrder = preserve }
}

// WithArbitraryPrecision makes the parser retain numeric literals
// verbatim, so huge or high-precision numbers round-trip losslessly
func WithArbitraryPrecision(enabled bool) Option {
	return func(o *options) { o.arbitraryPrecision = enabled }
}

// WithIndent enables pretty printing with the given indent unit
func WithIndent(indent string) Option {
	return func(o *options) {
		o.pretty = true
		o.indent = indent
	}
}

// WithMaxDepth sets the container nesting limit; values below 1 keep
// the default
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth >= 1 {
			o.maxDepth = depth
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) formatter() Formatter {
	if o.pretty {
		return NewPrettyFormatter(o.indent)
	}
	return CompactFormatter{}
}

// Parse reads one JSON value from data into a dynamic Value tree. Only
// whitespace may follow the value; anything else is TrailingCharacters.
func Parse(data []byte, opts ...Option) (*Value, error) {
	d := NewDeserializer(data, opts...)
	return parseOne(d)
}

// ParseString parses JSON from a string
func ParseString(s string, opts ...Option) (*Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses JSON from an incremental byte source
func ParseReader(r io.Reader, opts ...Option) (*Value, error) {
	d := NewStreamDeserializer(r, opts...)
	return parseOne(d)
}

// ParseFile parses JSON from a file path
func ParseFile(path string, opts ...Option) (*Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ParseReader(f, opts...)
}

func parseOne(d *Deserializer) (*Value, error) {
	vb := newValueBuilder(d.opts.preserveOrder)
	if err := d.Deserialize(vb); err != nil {
		return nil, err
	}
	if err := d.End(); err != nil {
		return nil, err
	}
	return vb.root, nil
}

// Decode reads one JSON value from data and drives the given Visitor
// directly, building no intermediate tree. Only whitespace may follow
// the value.
func Decode(data []byte, v Visitor, opts ...Option) error {
	d := NewDeserializer(data, opts...)
	if err := d.Deserialize(v); err != nil {
		return err
	}
	return d.End()
}

// DecodeReader is Decode over an incremental byte source
func DecodeReader(r io.Reader, v Visitor, opts ...Option) error {
	d := NewStreamDeserializer(r, opts...)
	if err := d.Deserialize(v); err != nil {
		return err
	}
	return d.End()
}

// Serialize encodes one Producer as JSON bytes
func Serialize(p Producer, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeTo(&buf, p, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeString encodes one Producer as a JSON string
func SerializeString(p Producer, opts ...Option) (string, error) {
	data, err := Serialize(p, opts...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SerializeTo encodes one Producer into the given sink. The sink owns
// its own flushing and error semantics; partial output on failure is
// not rolled back.
func SerializeTo(w io.Writer, p Producer, opts ...Option) error {
	o := buildOptions(opts)
	s := NewSerializer(w, o.formatter())
	if err := p.Produce(s); err != nil {
		return err
	}
	return s.finish()
}
