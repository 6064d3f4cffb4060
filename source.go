package utf8scan

import (
	"io"

	"github.com/tidalgo/utf8scan/internal/source"
)

// NewBufferSource returns a random-access ByteSource over buf. buf is not
// copied; the caller must not mutate it while a scan is in flight.
func NewBufferSource(buf []byte) ByteSource {
	return source.NewBuffer(buf)
}

// NewStreamSource returns a single-pass, pull-based ByteSource over r.
// See internal/source for the io.Reader error mapping this source
// applies.
func NewStreamSource(r io.Reader) ByteSource {
	return source.NewStream(r)
}
