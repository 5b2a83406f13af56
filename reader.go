package gojson

import (
	"bufio"
	"io"
)

// source is the byte-source abstraction the scanner reads from. Two
// implementations exist: an in-memory slice and an incremental stream.
// The ok result is false at end of input; err is reserved for real I/O
// failures from a stream's underlying reader.
type source interface {
	// peek returns the next byte without consuming it
	peek() (b byte, ok bool, err error)
	// next consumes and returns the next byte
	next() (b byte, ok bool, err error)
	// pos returns the position of the next unconsumed byte
	pos() Position
}

// spanner is implemented by sources that can hand back a span of the
// original input. The scanner uses it to materialize escape-free
// strings in one step instead of byte-by-byte through the scratch
// buffer.
type spanner interface {
	offset() int
	span(start, end int) []byte
}

// sliceSource reads from an in-memory byte slice
type sliceSource struct {
	data []byte
	off  int
	line int
	col  int
}

func newSliceSource(data []byte) *sliceSource {
	return &sliceSource{data: data, line: 1, col: 1}
}

func (s *sliceSource) peek() (byte, bool, error) {
	if s.off >= len(s.data) {
		return 0, false, nil
	}
	return s.data[s.off], true, nil
}

func (s *sliceSource) next() (byte, bool, error) {
	if s.off >= len(s.data) {
		return 0, false, nil
	}
	b := s.data[s.off]
	s.off++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b, true, nil
}

func (s *sliceSource) pos() Position {
	return Position{Offset: s.off, Line: s.line, Column: s.col}
}

func (s *sliceSource) offset() int { return s.off }

func (s *sliceSource) span(start, end int) []byte { return s.data[start:end] }

// streamSource reads incrementally from an io.Reader
type streamSource struct {
	br   *bufio.Reader
	off  int
	line int
	col  int
}

func newStreamSource(r io.Reader) *streamSource {
	return &streamSource{br: bufio.NewReader(r), line: 1, col: 1}
}

func (s *streamSource) peek() (byte, bool, error) {
	b, err := s.br.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	// ReadByte advanced the reader; put the byte back
	_ = s.br.UnreadByte()
	return b, true, nil
}

func (s *streamSource) next() (byte, bool, error) {
	b, err := s.br.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	s.off++
	if b == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return b, true, nil
}

func (s *streamSource) pos() Position {
	return Position{Offset: s.off, Line: s.line, Column: s.col}
}
