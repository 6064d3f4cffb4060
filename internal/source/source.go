// Package source provides two concrete ByteSource implementations: a
// random-access buffer source and a single-pass pull-based source backed
// by an io.Reader. Both expose the same narrow Peek/Advance capability the
// scanner needs; neither type is named in any exported signature
// elsewhere in this module, so callers only ever see them through the
// ByteSource interface.
package source

import (
	"bufio"
	"io"

	"github.com/tidalgo/utf8scan/internal/outcome"
)

// Buffer is a random-access ByteSource over an in-memory slice.
type Buffer struct {
	buf []byte
	pos int
}

// NewBuffer wraps buf for scanning. buf is not copied; the caller must not
// mutate it while a scan is in flight.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// Peek returns the byte at the current cursor without consuming it.
// Repeated calls without an intervening Advance return the same byte.
func (b *Buffer) Peek() (byte, error) {
	if b.pos >= len(b.buf) {
		return 0, outcome.ErrEndOfInput
	}
	return b.buf[b.pos], nil
}

// Advance commits the byte last returned by Peek.
func (b *Buffer) Advance() error {
	if b.pos >= len(b.buf) {
		return outcome.ErrEndOfInput
	}
	b.pos++
	return nil
}

// Pos returns the current cursor, the offset of the next byte Peek will
// return.
func (b *Buffer) Pos() int { return b.pos }

// Stream is a single-pass ByteSource pulling from an io.Reader. It reads
// one byte ahead of the cursor to give Peek its non-destructive,
// idempotent semantics; Advance drops the held byte so the next Peek
// reads a fresh one.
//
// Error mapping: io.EOF becomes SourceEndOfInput; an error satisfying
// `interface{ Temporary() bool }` with Temporary() == true (the net.Error
// convention) becomes SourceTransientFail; any other non-nil read error
// becomes SourceBroken; a reader that returns (0, nil) forever would
// otherwise loop, so that case surfaces as SourceUnexpected after
// bufio.Reader's own retry budget is exhausted.
type Stream struct {
	r       *bufio.Reader
	held    byte
	haveOne bool
	err     error
}

// NewStream wraps r for single-pass scanning.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

func (s *Stream) fill() error {
	if s.haveOne {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.err = mapReadError(err)
		return s.err
	}
	s.held = b
	s.haveOne = true
	return nil
}

func (s *Stream) Peek() (byte, error) {
	if err := s.fill(); err != nil {
		return 0, err
	}
	return s.held, nil
}

func (s *Stream) Advance() error {
	if err := s.fill(); err != nil {
		return err
	}
	s.haveOne = false
	return nil
}

type temporary interface {
	Temporary() bool
}

func mapReadError(err error) error {
	if err == io.EOF {
		return outcome.ErrEndOfInput
	}
	if err == io.ErrNoProgress {
		return outcome.ErrUnexpected
	}
	if t, ok := err.(temporary); ok && t.Temporary() {
		return outcome.ErrTransient
	}
	if err != nil {
		return outcome.ErrBroken
	}
	return outcome.ErrUnexpected
}
