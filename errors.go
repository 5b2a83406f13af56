package gojson

import (
	"errors"
	"fmt"
)

// Kind categorizes codec errors
type Kind string

const (
	KindSyntax                  Kind = "syntax"
	KindUnexpectedEOF           Kind = "unexpected_eof"
	KindInvalidUnicodeCodePoint Kind = "invalid_unicode_code_point"
	KindInvalidNumber           Kind = "invalid_number"
	KindRecursionLimitExceeded  Kind = "recursion_limit_exceeded"
	KindTrailingCharacters      Kind = "trailing_characters"
	KindTypeMismatch            Kind = "type_mismatch"
	KindUnrepresentableNumber   Kind = "unrepresentable_number"
)

// Position is a location in the input, used only for error reporting.
// Offset counts bytes from the start of the input; Line and Column are
// 1-based and count lines and bytes-within-line respectively.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String renders the position as "line L, column C (offset O)".
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d (offset %d)", p.Line, p.Column, p.Offset)
}

// Error is a codec error with context. Every failure reported by the
// parser, deserializer, or serializer is an *Error.
type Error struct {
	Kind    Kind
	Message string
	Pos     Position
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s at %s: %v", e.Kind, e.Message, e.Pos, e.Err)
		}
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, e.Pos)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is so callers can match on Kind alone:
//
//	errors.Is(err, &Error{Kind: KindSyntax})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewSyntaxError creates an error for malformed JSON grammar
func NewSyntaxError(message string, pos Position) *Error {
	return &Error{Kind: KindSyntax, Message: message, Pos: pos}
}

// NewEOFError creates an error for input that ended mid-value. It is a
// distinct kind so that streaming callers can await more bytes instead
// of failing permanently.
func NewEOFError(message string, pos Position) *Error {
	return &Error{Kind: KindUnexpectedEOF, Message: message, Pos: pos}
}

// NewUnicodeError creates an error for an unpaired surrogate escape or
// malformed UTF-8 inside a string literal
func NewUnicodeError(message string, pos Position) *Error {
	return &Error{Kind: KindInvalidUnicodeCodePoint, Message: message, Pos: pos}
}

// NewNumberError creates an error for a malformed numeric literal
func NewNumberError(message string, pos Position) *Error {
	return &Error{Kind: KindInvalidNumber, Message: message, Pos: pos}
}

// NewDepthError creates an error for nesting beyond the configured limit
func NewDepthError(limit int, pos Position) *Error {
	return &Error{
		Kind:    KindRecursionLimitExceeded,
		Message: fmt.Sprintf("nesting exceeds limit of %d", limit),
		Pos:     pos,
	}
}

// NewTrailingError creates an error for non-whitespace content after a
// complete top-level value
func NewTrailingError(pos Position) *Error {
	return &Error{
		Kind:    KindTrailingCharacters,
		Message: "unexpected content after top-level value",
		Pos:     pos,
	}
}

// NewTypeMismatchError creates the error a Visitor reports when offered
// a shape it does not accept
func NewTypeMismatchError(expected, found string) *Error {
	return &Error{
		Kind:    KindTypeMismatch,
		Message: fmt.Sprintf("expected %s, found %s", expected, found),
	}
}

// NewUnrepresentableError creates an error for serializing a number
// JSON has no literal for (NaN or an infinity)
func NewUnrepresentableError(message string) *Error {
	return &Error{Kind: KindUnrepresentableNumber, Message: message}
}

// FriendlyMessage returns a user-friendly rendering of a codec error,
// suitable for CLI output
func FriendlyMessage(err error) string {
	var codecErr *Error
	if errors.As(err, &codecErr) {
		switch codecErr.Kind {
		case KindSyntax:
			return fmt.Sprintf("Syntax error: %s at %s", codecErr.Message, codecErr.Pos)
		case KindUnexpectedEOF:
			return fmt.Sprintf("Input ended unexpectedly: %s at %s", codecErr.Message, codecErr.Pos)
		case KindInvalidUnicodeCodePoint:
			return fmt.Sprintf("Invalid unicode: %s at %s", codecErr.Message, codecErr.Pos)
		case KindInvalidNumber:
			return fmt.Sprintf("Invalid number: %s at %s", codecErr.Message, codecErr.Pos)
		case KindRecursionLimitExceeded:
			return fmt.Sprintf("Input is nested too deeply: %s", codecErr.Message)
		case KindTrailingCharacters:
			return fmt.Sprintf("Trailing content: %s at %s", codecErr.Message, codecErr.Pos)
		case KindTypeMismatch:
			return fmt.Sprintf("Type mismatch: %s", codecErr.Message)
		case KindUnrepresentableNumber:
			return fmt.Sprintf("Unrepresentable number: %s", codecErr.Message)
		default:
			return fmt.Sprintf("Error: %s", codecErr.Message)
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
