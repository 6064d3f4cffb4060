package utf8scan

import (
	"io"

	"github.com/tidalgo/utf8scan/internal/scanner"
)

// Scan consumes one character, or diagnoses one ill-formed sequence, from
// src, appending every committed byte to sink. sink may be nil if the
// caller only cares about the Outcome. Scan never clears sink: a caller
// reusing one clears it before each call to see only that call's bytes,
// or leaves it to accumulate the bytes of several Scan calls.
func Scan(src ByteSource, sink io.ByteWriter) Outcome {
	s := scanner.New()
	defer s.Release()
	return s.Scan(src, sink)
}
