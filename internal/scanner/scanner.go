// Package scanner implements the core decode state machine: it consumes
// bytes one at a time from a ByteSource, writes every committed byte to a
// Sink, and returns a single tagged Outcome. It is deliberately the only
// stateful-looking type in the module, though it in fact carries no state
// across calls — pooling it (see pool.go) follows the sync.Pool idiom used
// for short-lived per-call state elsewhere in this module.
package scanner

import (
	"errors"
	"io"

	"github.com/tidalgo/utf8scan/internal/assemble"
	"github.com/tidalgo/utf8scan/internal/classify"
	"github.com/tidalgo/utf8scan/internal/outcome"
)

// byteSource is the narrow capability contract the scanner needs. It is
// declared locally (rather than imported) so any concrete source —
// including the ones in internal/source — satisfies it structurally.
type byteSource interface {
	Peek() (byte, error)
	Advance() error
}

// Scanner runs one scan per call. It holds no fields because it carries no
// state across calls; see pool.go for the sync.Pool it's drawn from.
type Scanner struct{}

// Scan performs one scan: it decodes one character, or diagnoses one
// ill-formed sequence, from src, writing every committed byte to sink.
// sink may be nil only when the caller doesn't care about the consumed
// byte window (e.g. probing); committed bytes are still consumed from src
// either way.
func (s *Scanner) Scan(src byteSource, sink io.ByteWriter) outcome.Outcome {
	b0, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}

	switch {
	case classify.IsASCII(b0):
		s.commit(src, sink, b0)
		return outcome.Outcome{Code: outcome.Valid, Scalar: assemble.Ascii(b0)}

	case classify.Is2ByteLead(b0):
		s.commit(src, sink, b0)
		return s.scan2(src, sink, b0)

	case classify.Is3ByteLead(b0):
		s.commit(src, sink, b0)
		return s.scan3(src, sink, b0)

	case classify.Is4ByteLead(b0):
		s.commit(src, sink, b0)
		return s.scan4(src, sink, b0)

	case classify.IsContinuation(b0):
		s.commit(src, sink, b0)
		return outcome.Outcome{Code: outcome.StartWithContinuation}

	default:
		s.commit(src, sink, b0)
		return outcome.Outcome{Code: outcome.DisallowedStartByte}
	}
}

// scan2 runs the AWAIT_2ND state: lead is a validated 2-byte lead.
func (s *Scanner) scan2(src byteSource, sink io.ByteWriter, lead byte) outcome.Outcome {
	b1, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}
	if !classify.IsContinuation(b1) {
		return outcome.Outcome{Code: outcome.Incomplete2}
	}
	s.commit(src, sink, b1)
	return outcome.Outcome{Code: outcome.Valid, Scalar: assemble.From2Unchecked(lead, b1)}
}

// scan3 runs AWAIT_3_OF_3_B1 then AWAIT_3_OF_3_B2. lead is a validated
// 3-byte lead. Diagnostic order: overlong-3 → surrogate → continuation.
func (s *Scanner) scan3(src byteSource, sink io.ByteWriter, lead byte) outcome.Outcome {
	b1, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}

	switch {
	case classify.Is3ByteOverlong(lead, b1):
		s.commit(src, sink, b1)
		return outcome.Outcome{Code: outcome.Overlong3}

	case classify.IsUtf16Surrogate(lead, b1):
		s.commit(src, sink, b1)
		return outcome.Outcome{Code: outcome.Utf16Surrogate}

	case classify.IsContinuation(b1):
		s.commit(src, sink, b1)
	default:
		return outcome.Outcome{Code: outcome.Incomplete3}
	}

	b2, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}
	if !classify.IsContinuation(b2) {
		return outcome.Outcome{Code: outcome.Incomplete3}
	}
	s.commit(src, sink, b2)
	return outcome.Outcome{Code: outcome.Valid, Scalar: assemble.From3Unchecked(lead, b1, b2)}
}

// scan4 runs AWAIT_4_OF_4_B1 through AWAIT_4_OF_4_B3. lead is a validated
// 4-byte lead. Diagnostic order: overlong-4 → above-range → continuation.
func (s *Scanner) scan4(src byteSource, sink io.ByteWriter, lead byte) outcome.Outcome {
	b1, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}

	switch {
	case classify.Is4ByteOverlong(lead, b1):
		s.commit(src, sink, b1)
		return outcome.Outcome{Code: outcome.Overlong4}

	case classify.IsAboveRange(lead, b1):
		s.commit(src, sink, b1)
		return outcome.Outcome{Code: outcome.AboveRange}

	case classify.IsContinuation(b1):
		s.commit(src, sink, b1)
	default:
		return outcome.Outcome{Code: outcome.Incomplete4}
	}

	b2, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}
	if !classify.IsContinuation(b2) {
		return outcome.Outcome{Code: outcome.Incomplete4}
	}
	s.commit(src, sink, b2)

	b3, err := src.Peek()
	if err != nil {
		return mapSourceError(err)
	}
	if !classify.IsContinuation(b3) {
		return outcome.Outcome{Code: outcome.Incomplete4}
	}
	s.commit(src, sink, b3)
	return outcome.Outcome{Code: outcome.Valid, Scalar: assemble.From4Unchecked(lead, b1, b2, b3)}
}

// commit advances src past the just-peeked byte and appends it to sink.
// Advance is infallible here: b was just returned by a successful Peek,
// and ByteSource implementations only fail Advance when the preceding
// Peek already failed.
func (s *Scanner) commit(src byteSource, sink io.ByteWriter, b byte) {
	_ = src.Advance()
	if sink != nil {
		_ = sink.WriteByte(b)
	}
}

func mapSourceError(err error) outcome.Outcome {
	switch {
	case errors.Is(err, outcome.ErrEndOfInput):
		return outcome.Outcome{Code: outcome.SourceEndOfInput}
	case errors.Is(err, outcome.ErrBroken):
		return outcome.Outcome{Code: outcome.SourceBroken}
	case errors.Is(err, outcome.ErrTransient):
		return outcome.Outcome{Code: outcome.SourceTransientFail}
	default:
		return outcome.Outcome{Code: outcome.SourceUnexpected}
	}
}
