package utf8scan

import (
	"golang.org/x/text/transform"

	"github.com/tidalgo/utf8scan/internal/lossy"
)

// ToLossy returns a new byte sequence with every invalid subsequence in
// buf replaced by U+FFFD. If buf is already well-formed, the returned
// sequence is byte-identical to buf.
func ToLossy(buf []byte) []byte {
	return lossy.ToLossy(buf)
}

// ToLossyIfInvalid returns (repaired, true) if buf contained any invalid
// subsequence, or (nil, false) if buf was already well-formed.
func ToLossyIfInvalid(buf []byte) ([]byte, bool) {
	return lossy.ToLossyIfInvalid(buf)
}

// Transformer returns a golang.org/x/text/transform.Transformer that
// applies the same U+FFFD repair as ToLossy to a byte stream, so this
// module's repair can be one stage of a transform.Chain alongside other
// golang.org/x/text/encoding transforms.
func Transformer() transform.Transformer {
	return lossy.Transformer()
}
