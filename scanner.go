package gojson

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// scanner turns a byte source into JSON tokens: punctuation, the three
// bare keywords, string literals, and number literals. It owns all
// grammar-level validation (escapes, surrogate pairing, UTF-8
// well-formedness, the numeric grammar) and reports errors with the
// position the source had when the offending byte was seen.
type scanner struct {
	src     source
	scratch []byte
}

func newScanner(src source) *scanner {
	return &scanner{src: src}
}

func (sc *scanner) pos() Position {
	return sc.src.pos()
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// peekSignificant skips ASCII whitespace and returns the next byte
// without consuming it; ok is false at end of input
func (sc *scanner) peekSignificant() (byte, bool, error) {
	for {
		b, ok, err := sc.src.peek()
		if err != nil || !ok {
			return 0, ok, err
		}
		if !isWhitespace(b) {
			return b, true, nil
		}
		if _, _, err := sc.src.next(); err != nil {
			return 0, false, err
		}
	}
}

// expectByte consumes the next significant byte and requires it to be want
func (sc *scanner) expectByte(want byte) error {
	b, ok, err := sc.peekSignificant()
	if err != nil {
		return err
	}
	if !ok {
		return NewEOFError(fmt.Sprintf("expected %q", want), sc.pos())
	}
	if b != want {
		return NewSyntaxError(fmt.Sprintf("expected %q, found %q", want, b), sc.pos())
	}
	_, _, err = sc.src.next()
	return err
}

// expectKeyword consumes the remainder of a bare keyword whose first
// byte has already been peeked
func (sc *scanner) expectKeyword(word string) error {
	for i := 0; i < len(word); i++ {
		b, ok, err := sc.src.next()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError(fmt.Sprintf("unexpected end of input in %q", word), sc.pos())
		}
		if b != word[i] {
			return NewSyntaxError(fmt.Sprintf("invalid literal, expected %q", word), sc.pos())
		}
	}
	return nil
}

// scanString consumes a string literal, opening quote included. The
// returned string is always owned; when the source is an in-memory
// slice and the literal contains no escapes, it is converted straight
// from the source span without passing through the scratch buffer.
func (sc *scanner) scanString() (string, error) {
	if err := sc.expectByte('"'); err != nil {
		return "", err
	}
	sp, borrowable := sc.src.(spanner)
	var start int
	if borrowable {
		start = sp.offset()
	}
	sc.scratch = sc.scratch[:0]
	copied := false

	for {
		b, ok, err := sc.src.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", NewEOFError("unterminated string", sc.pos())
		}
		switch {
		case b == '"':
			if borrowable && !copied {
				return string(sp.span(start, sp.offset()-1)), nil
			}
			return string(sc.scratch), nil
		case b == '\\':
			if borrowable && !copied {
				sc.scratch = append(sc.scratch, sp.span(start, sp.offset()-1)...)
				copied = true
			}
			if err := sc.scanEscape(); err != nil {
				return "", err
			}
		case b < 0x20:
			return "", NewSyntaxError(fmt.Sprintf("control character 0x%02x in string", b), sc.pos())
		case b < utf8.RuneSelf:
			if copied || !borrowable {
				sc.scratch = append(sc.scratch, b)
			}
		default:
			if err := sc.scanRawRune(b, copied || !borrowable); err != nil {
				return "", err
			}
		}
	}
}

// scanEscape handles one backslash escape, the backslash already consumed
func (sc *scanner) scanEscape() error {
	b, ok, err := sc.src.next()
	if err != nil {
		return err
	}
	if !ok {
		return NewEOFError("unterminated escape sequence", sc.pos())
	}
	switch b {
	case '"', '\\', '/':
		sc.scratch = append(sc.scratch, b)
	case 'b':
		sc.scratch = append(sc.scratch, '\b')
	case 'f':
		sc.scratch = append(sc.scratch, '\f')
	case 'n':
		sc.scratch = append(sc.scratch, '\n')
	case 'r':
		sc.scratch = append(sc.scratch, '\r')
	case 't':
		sc.scratch = append(sc.scratch, '\t')
	case 'u':
		return sc.scanUnicodeEscape()
	default:
		return NewSyntaxError(fmt.Sprintf("invalid escape character %q", b), sc.pos())
	}
	return nil
}

// scanUnicodeEscape handles \uXXXX, pairing surrogates into one code point
func (sc *scanner) scanUnicodeEscape() error {
	n1, err := sc.scanHex4()
	if err != nil {
		return err
	}
	r := rune(n1)
	if utf16.IsSurrogate(r) {
		if r >= 0xDC00 {
			return NewUnicodeError(fmt.Sprintf("unexpected low surrogate \\u%04X", n1), sc.pos())
		}
		// a high surrogate must be immediately followed by \uXXXX low
		for _, want := range []byte{'\\', 'u'} {
			b, ok, err := sc.src.next()
			if err != nil {
				return err
			}
			if !ok {
				return NewEOFError("unterminated surrogate pair", sc.pos())
			}
			if b != want {
				return NewUnicodeError(fmt.Sprintf("unpaired high surrogate \\u%04X", n1), sc.pos())
			}
		}
		n2, err := sc.scanHex4()
		if err != nil {
			return err
		}
		paired := utf16.DecodeRune(r, rune(n2))
		if paired == utf8.RuneError {
			return NewUnicodeError(fmt.Sprintf("invalid surrogate pair \\u%04X\\u%04X", n1, n2), sc.pos())
		}
		r = paired
	}
	sc.scratch = utf8.AppendRune(sc.scratch, r)
	return nil
}

// scanHex4 reads four hex digits after \u
func (sc *scanner) scanHex4() (uint32, error) {
	var n uint32
	for i := 0; i < 4; i++ {
		b, ok, err := sc.src.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, NewEOFError("unterminated \\u escape", sc.pos())
		}
		var d uint32
		switch {
		case b >= '0' && b <= '9':
			d = uint32(b - '0')
		case b >= 'a' && b <= 'f':
			d = uint32(b-'a') + 10
		case b >= 'A' && b <= 'F':
			d = uint32(b-'A') + 10
		default:
			return 0, NewSyntaxError(fmt.Sprintf("invalid hex digit %q in \\u escape", b), sc.pos())
		}
		n = n<<4 | d
	}
	return n, nil
}

// scanRawRune validates one raw multi-byte UTF-8 sequence whose lead
// byte has already been consumed, appending it to the scratch buffer
// when copy is set
func (sc *scanner) scanRawRune(lead byte, copy bool) error {
	var width int
	switch {
	case lead&0xE0 == 0xC0:
		width = 2
	case lead&0xF0 == 0xE0:
		width = 3
	case lead&0xF8 == 0xF0:
		width = 4
	default:
		return NewUnicodeError(fmt.Sprintf("invalid UTF-8 lead byte 0x%02x", lead), sc.pos())
	}
	seq := [4]byte{lead}
	for i := 1; i < width; i++ {
		b, ok, err := sc.src.next()
		if err != nil {
			return err
		}
		if !ok {
			return NewEOFError("truncated UTF-8 sequence", sc.pos())
		}
		seq[i] = b
	}
	r, size := utf8.DecodeRune(seq[:width])
	if r == utf8.RuneError && size <= 1 {
		return NewUnicodeError("invalid UTF-8 sequence", sc.pos())
	}
	if copy {
		sc.scratch = append(sc.scratch, seq[:width]...)
	}
	return nil
}

// scanNumber consumes a number literal. Grammar:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// Integer-only literals that fit 64 bits become the integer variants;
// anything else becomes a float, unless arbitraryPrecision is set, in
// which case every literal is retained verbatim.
func (sc *scanner) scanNumber(arbitraryPrecision bool) (Number, error) {
	sc.scratch = sc.scratch[:0]
	negative := false
	isInteger := true

	b, ok, err := sc.src.peek()
	if err != nil {
		return Number{}, err
	}
	if ok && b == '-' {
		negative = true
		sc.scratch = append(sc.scratch, '-')
		if _, _, err := sc.src.next(); err != nil {
			return Number{}, err
		}
	}

	// integer part: 0 | [1-9][0-9]*
	b, ok, err = sc.src.peek()
	if err != nil {
		return Number{}, err
	}
	if !ok {
		return Number{}, NewEOFError("unexpected end of input in number", sc.pos())
	}
	switch {
	case b == '0':
		sc.scratch = append(sc.scratch, b)
		if _, _, err := sc.src.next(); err != nil {
			return Number{}, err
		}
		if b, ok, err = sc.src.peek(); err != nil {
			return Number{}, err
		}
		if ok && b >= '0' && b <= '9' {
			return Number{}, NewNumberError("leading zero in number", sc.pos())
		}
	case b >= '1' && b <= '9':
		if err := sc.scanDigits(); err != nil {
			return Number{}, err
		}
	default:
		return Number{}, NewNumberError(fmt.Sprintf("invalid character %q in number", b), sc.pos())
	}

	// fraction
	b, ok, err = sc.src.peek()
	if err != nil {
		return Number{}, err
	}
	if ok && b == '.' {
		isInteger = false
		sc.scratch = append(sc.scratch, '.')
		if _, _, err := sc.src.next(); err != nil {
			return Number{}, err
		}
		if err := sc.requireDigits("fraction"); err != nil {
			return Number{}, err
		}
		b, ok, err = sc.src.peek()
		if err != nil {
			return Number{}, err
		}
	}

	// exponent
	if ok && (b == 'e' || b == 'E') {
		isInteger = false
		sc.scratch = append(sc.scratch, b)
		if _, _, err := sc.src.next(); err != nil {
			return Number{}, err
		}
		if b, ok, err = sc.src.peek(); err != nil {
			return Number{}, err
		}
		if ok && (b == '+' || b == '-') {
			sc.scratch = append(sc.scratch, b)
			if _, _, err := sc.src.next(); err != nil {
				return Number{}, err
			}
		}
		if err := sc.requireDigits("exponent"); err != nil {
			return Number{}, err
		}
	}

	literal := string(sc.scratch)
	if arbitraryPrecision {
		return DecimalNumber(literal), nil
	}
	if isInteger {
		if negative {
			if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
				return IntNumber(i), nil
			}
		} else {
			if u, err := strconv.ParseUint(literal, 10, 64); err == nil {
				if u <= 1<<63-1 {
					return IntNumber(int64(u)), nil
				}
				return UintNumber(u), nil
			}
		}
		// beyond 64-bit range, falls through to float
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Number{}, NewNumberError(fmt.Sprintf("cannot represent %s", literal), sc.pos())
	}
	return FloatNumber(f), nil
}

// scanDigits appends a run of at least one digit starting at the
// current byte, which the caller has already checked is a digit
func (sc *scanner) scanDigits() error {
	for {
		b, ok, err := sc.src.peek()
		if err != nil {
			return err
		}
		if !ok || b < '0' || b > '9' {
			return nil
		}
		sc.scratch = append(sc.scratch, b)
		if _, _, err := sc.src.next(); err != nil {
			return err
		}
	}
}

// requireDigits demands at least one digit for a fraction or exponent part
func (sc *scanner) requireDigits(part string) error {
	b, ok, err := sc.src.peek()
	if err != nil {
		return err
	}
	if !ok {
		return NewEOFError(fmt.Sprintf("unexpected end of input in number %s", part), sc.pos())
	}
	if b < '0' || b > '9' {
		return NewNumberError(fmt.Sprintf("missing digits in number %s", part), sc.pos())
	}
	return sc.scanDigits()
}
