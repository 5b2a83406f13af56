package gojson

import (
	"math"
	"strconv"
)

// numberKind discriminates the Number variants
type numberKind uint8

const (
	numberInt numberKind = iota
	numberUint
	numberFloat
	numberDecimal
)

// Number represents a JSON numeric literal. It is one of: a signed
// 64-bit integer, an unsigned 64-bit integer, a 64-bit float, or (when
// arbitrary-precision mode is enabled during parsing) the verbatim
// literal text. Integer literals that fit the 64-bit range round-trip
// exactly, never through a float intermediate.
type Number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
	text string
}

// IntNumber creates a Number from a signed 64-bit integer
func IntNumber(i int64) Number {
	return Number{kind: numberInt, i: i}
}

// UintNumber creates a Number from an unsigned 64-bit integer
func UintNumber(u uint64) Number {
	return Number{kind: numberUint, u: u}
}

// FloatNumber creates a Number from a 64-bit float. NaN and infinities
// are representable in memory but fail at serialization time.
func FloatNumber(f float64) Number {
	return Number{kind: numberFloat, f: f}
}

// DecimalNumber creates an arbitrary-precision Number holding the given
// literal text verbatim. The text must already be a valid JSON number;
// DecimalNumber does not re-validate it.
func DecimalNumber(text string) Number {
	return Number{kind: numberDecimal, text: text}
}

// IsInt reports whether the Number holds a signed integer
func (n Number) IsInt() bool { return n.kind == numberInt }

// IsUint reports whether the Number holds an unsigned integer
func (n Number) IsUint() bool { return n.kind == numberUint }

// IsFloat reports whether the Number holds a float
func (n Number) IsFloat() bool { return n.kind == numberFloat }

// IsDecimal reports whether the Number holds verbatim literal text
func (n Number) IsDecimal() bool { return n.kind == numberDecimal }

// Int64 returns the value as int64. The bool is false when the variant
// is not an integer or the value does not fit.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case numberInt:
		return n.i, true
	case numberUint:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
	case numberDecimal:
		i, err := strconv.ParseInt(n.text, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// Uint64 returns the value as uint64. The bool is false when the
// variant is not a non-negative integer or the value does not fit.
func (n Number) Uint64() (uint64, bool) {
	switch n.kind {
	case numberInt:
		if n.i >= 0 {
			return uint64(n.i), true
		}
	case numberUint:
		return n.u, true
	case numberDecimal:
		u, err := strconv.ParseUint(n.text, 10, 64)
		return u, err == nil
	}
	return 0, false
}

// Float64 returns the value as float64, converting integer variants.
// The bool is only false for decimal text that strconv cannot parse,
// which cannot happen for text produced by the scanner.
func (n Number) Float64() (float64, bool) {
	switch n.kind {
	case numberInt:
		return float64(n.i), true
	case numberUint:
		return float64(n.u), true
	case numberFloat:
		return n.f, true
	default:
		f, err := strconv.ParseFloat(n.text, 64)
		return f, err == nil
	}
}

// String returns the canonical JSON rendering of the Number. Non-finite
// floats render as their Go representation here; serialization rejects
// them before this method is reached.
func (n Number) String() string {
	switch n.kind {
	case numberInt:
		return strconv.FormatInt(n.i, 10)
	case numberUint:
		return strconv.FormatUint(n.u, 10)
	case numberDecimal:
		return n.text
	default:
		return string(appendFloat(nil, n.f))
	}
}

// Equal reports whether two Numbers are equal. Integer variants
// cross-compare by value; floats compare bit-for-bit via ==; decimal
// text compares verbatim.
func (n Number) Equal(other Number) bool {
	if n.kind == other.kind {
		switch n.kind {
		case numberInt:
			return n.i == other.i
		case numberUint:
			return n.u == other.u
		case numberFloat:
			return n.f == other.f
		default:
			return n.text == other.text
		}
	}
	// int/uint cross-compare when both sides are representable
	ni, nok := n.Int64()
	oi, ook := other.Int64()
	if nok && ook && n.kind != numberFloat && other.kind != numberFloat && n.kind != numberDecimal && other.kind != numberDecimal {
		return ni == oi
	}
	nu, nok := n.Uint64()
	ou, ook := other.Uint64()
	if nok && ook && n.kind != numberFloat && other.kind != numberFloat && n.kind != numberDecimal && other.kind != numberDecimal {
		return nu == ou
	}
	return false
}

// appendFloat writes a float in shortest-round-trip form, guaranteeing
// the output contains a '.' or exponent so it cannot be read back as an
// integer literal
func appendFloat(dst []byte, f float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' || c == 'e' || c == 'E' {
			return dst
		}
	}
	return append(dst, '.', '0')
}
