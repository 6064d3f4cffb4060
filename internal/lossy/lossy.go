// Package lossy replaces every invalid subsequence in a buffer with
// U+FFFD (EF BF BD), built entirely on top of internal/validator. Two
// buffer surfaces are exposed (ToLossy, always a new sequence;
// ToLossyIfInvalid, nil unless a repair was needed) plus a streaming
// golang.org/x/text/transform.Transformer for the same family of
// operation.
package lossy

import "github.com/tidalgo/utf8scan/internal/validator"

var replacementChar = []byte{0xEF, 0xBF, 0xBD} // U+FFFD

// ToLossy returns a new byte sequence with every invalid subsequence in
// buf replaced by U+FFFD. If buf is already well-formed, the returned
// sequence is byte-identical to buf.
func ToLossy(buf []byte) []byte {
	out, changed := repair(buf)
	if !changed {
		cp := make([]byte, len(buf))
		copy(cp, buf)
		return cp
	}
	return out
}

// ToLossyIfInvalid returns (repaired, true) if buf contained any invalid
// subsequence, or (nil, false) if buf was already well-formed — letting
// the caller skip copying when nothing needs to change.
func ToLossyIfInvalid(buf []byte) ([]byte, bool) {
	return repair(buf)
}

func repair(buf []byte) (result []byte, changed bool) {
	pos := 0
	for pos < len(buf) {
		cerr := validator.Validate(buf[pos:])
		if cerr == nil {
			break
		}
		if result == nil {
			result = make([]byte, 0, len(buf)+len(replacementChar))
		}
		result = append(result, buf[pos:pos+cerr.Start]...)
		result = append(result, replacementChar...)
		pos += cerr.Start + cerr.Length
		changed = true
	}
	if changed {
		result = append(result, buf[pos:]...)
	}
	return result, changed
}
