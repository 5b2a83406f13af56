package gojson

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string, opts ...Option) *Value {
	t.Helper()
	v, err := ParseString(input, opts...)
	require.NoError(t, err)
	return v
}

func TestSerialize_Compact(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		want  string
	}{
		{"null", NewNull(), "null"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"int", NewInt(42), "42"},
		{"negative int", NewInt(-7), "-7"},
		{"zero", NewInt(0), "0"},
		{"uint max", NewUint(18446744073709551615), "18446744073709551615"},
		{"string", NewString("hi"), `"hi"`},
		{"empty array", NewArray(), "[]"},
		{"empty object", NewObjectValue(nil), "{}"},
		{"array", NewArray(NewInt(1), NewString("x"), NewNull()), `[1,"x",null]`},
		{"nested", NewArray(NewArray(NewInt(1)), NewArray()), "[[1],[]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SerializeString(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSerialize_CompactObject(t *testing.T) {
	obj := NewOrderedObject()
	obj.Set("b", NewInt(1))
	obj.Set("a", NewInt(2))
	out, err := SerializeString(NewObjectValue(obj))
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, out)
}

func TestSerialize_FloatFormatting(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want string
	}{
		{"simple", 3.25, "3.25"},
		{"whole-valued float keeps a point", 1.0, "1.0"},
		{"negative whole", -2.0, "-2.0"},
		{"zero", 0.0, "0.0"},
		{"small", 0.001, "0.001"},
		{"large uses exponent", 1e21, "1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SerializeString(NewFloat(tt.f))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)

			// output must parse back as a float, never an integer
			v, err := ParseString(out)
			require.NoError(t, err)
			n, _ := v.AsNumber()
			assert.True(t, n.IsFloat(), "output %q", out)
		})
	}
}

func TestSerialize_NonFiniteFloatsRejected(t *testing.T) {
	for name, f := range map[string]float64{
		"nan":          math.NaN(),
		"positive inf": math.Inf(1),
		"negative inf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Serialize(NewFloat(f))
			require.Error(t, err)
			assert.Equal(t, KindUnrepresentableNumber, kindOf(t, err))
		})
	}
}

func TestSerialize_NonFiniteInsideTreeLeavesPartialOutput(t *testing.T) {
	var buf bytes.Buffer
	err := SerializeTo(&buf, NewArray(NewInt(1), NewFloat(math.NaN())))
	require.Error(t, err)
	// partial output is not rolled back; callers buffer externally
	assert.Equal(t, "[1", buf.String())
}

func TestSerialize_StringEscaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"backspace", "a\bb", `"a\bb"`},
		{"formfeed", "a\fb", `"a\fb"`},
		{"other control", "a\x01b", `"ab"`},
		{"unit separator", "a\x1fb", `"ab"`},
		{"non-ascii passes through", "héllo 🎉", `"héllo 🎉"`},
		{"forward slash unescaped", "a/b", `"a/b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SerializeString(NewString(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSerialize_PrettySpec(t *testing.T) {
	v := mustParse(t, `{"a":[1,2]}`)
	out, err := SerializeString(v, WithIndent("  "))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", out)
}

func TestSerialize_PrettyEmptyContainersCollapse(t *testing.T) {
	v := mustParse(t, `{"a":[],"b":{}}`, WithPreserveOrder(true))
	out, err := SerializeString(v, WithIndent("  "))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}", out)
}

func TestSerialize_PrettyCustomIndent(t *testing.T) {
	v := mustParse(t, `[1]`)
	out, err := SerializeString(v, WithIndent("\t"))
	require.NoError(t, err)
	assert.Equal(t, "[\n\t1\n]", out)
}

func TestSerializer_ReusedPrettyFormatterStartsAtDepthZero(t *testing.T) {
	pf := NewPrettyFormatter("  ")

	// a failed serialization abandons the formatter mid-tree
	var failed bytes.Buffer
	s := NewSerializer(&failed, pf)
	err := NewArray(NewInt(1), NewFloat(math.NaN())).Produce(s)
	require.Error(t, err)

	var buf bytes.Buffer
	s = NewSerializer(&buf, pf)
	require.NoError(t, mustParse(t, `{"a":[1,2]}`).Produce(s))
	require.NoError(t, s.finish())
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", buf.String())
}

func TestSerialize_KeyOrderFollowsObjectMode(t *testing.T) {
	// insertion order preserved
	ordered := NewOrderedObject()
	ordered.Set("b", NewInt(1))
	ordered.Set("a", NewInt(2))
	out, err := SerializeString(NewObjectValue(ordered))
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, out)

	// sorted mode iterates lexicographically
	sorted := NewObject()
	sorted.Set("b", NewInt(1))
	sorted.Set("a", NewInt(2))
	out, err = SerializeString(NewObjectValue(sorted))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, out)
}

func TestSerialize_ArbitraryPrecisionVerbatim(t *testing.T) {
	literal := "1.00000000000000000000000000001e-100"
	v := mustParse(t, literal, WithArbitraryPrecision(true))
	out, err := SerializeString(v)
	require.NoError(t, err)
	assert.Equal(t, literal, out)
}

// pointProducer serializes a typed record without any dynamic tree
type pointProducer struct {
	X, Y int64
	Tags []string
}

func (p *pointProducer) Produce(s *Serializer) error {
	if err := s.BeginObject(); err != nil {
		return err
	}
	if err := s.WriteKey("x"); err != nil {
		return err
	}
	if err := s.WriteInt(p.X); err != nil {
		return err
	}
	if err := s.WriteKey("y"); err != nil {
		return err
	}
	if err := s.WriteInt(p.Y); err != nil {
		return err
	}
	if err := s.WriteKey("tags"); err != nil {
		return err
	}
	if err := s.BeginArray(); err != nil {
		return err
	}
	for _, tag := range p.Tags {
		if err := s.WriteString(tag); err != nil {
			return err
		}
	}
	if err := s.EndArray(); err != nil {
		return err
	}
	return s.EndObject()
}

func TestSerialize_TypedProducer(t *testing.T) {
	p := &pointProducer{X: 3, Y: -4, Tags: []string{"a", "b"}}
	out, err := SerializeString(p)
	require.NoError(t, err)
	assert.Equal(t, `{"x":3,"y":-4,"tags":["a","b"]}`, out)

	pretty, err := SerializeString(p, WithIndent("  "))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": 3,\n  \"y\": -4,\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}", pretty)
}

// emptyProducer produces nothing, violating the one-value contract
type emptyProducer struct{}

func (emptyProducer) Produce(*Serializer) error { return nil }

func TestSerialize_ProducerMustEmitOneValue(t *testing.T) {
	_, err := Serialize(emptyProducer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one top-level value")
}

func TestValue_StringIsCompactJSON(t *testing.T) {
	v := mustParse(t, `{ "a" : [ 1 , 2 ] }`)
	assert.Equal(t, `{"a":[1,2]}`, v.String())
}
