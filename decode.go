package utf8scan

import (
	"github.com/tidalgo/utf8scan/internal/assemble"
	"github.com/tidalgo/utf8scan/internal/classify"
)

// ExpectedLength returns the number of bytes the character starting with
// lead occupies (1, 2, 3, or 4), or 0 if lead can never start a
// character.
func ExpectedLength(lead byte) int {
	return classify.ExpectedLength(lead)
}

// Decode1 validates and assembles a one-byte character.
func Decode1(b0 byte) Outcome {
	return assemble.Checked1(b0)
}

// Decode2 validates and assembles a two-byte sequence.
func Decode2(b0, b1 byte) Outcome {
	return assemble.Checked2(b0, b1)
}

// Decode3 validates and assembles a three-byte sequence.
func Decode3(b0, b1, b2 byte) Outcome {
	return assemble.Checked3(b0, b1, b2)
}

// Decode4 validates and assembles a four-byte sequence.
func Decode4(b0, b1, b2, b3 byte) Outcome {
	return assemble.Checked4(b0, b1, b2, b3)
}

// DecodeUnchecked1 assembles a one-byte character. The caller must have
// already validated b0; behavior is undefined otherwise.
func DecodeUnchecked1(b0 byte) Scalar {
	return assemble.Ascii(b0)
}

// DecodeUnchecked2 assembles a two-byte sequence. The caller must have
// already validated b0 and b1; behavior is undefined otherwise.
func DecodeUnchecked2(b0, b1 byte) Scalar {
	return assemble.From2Unchecked(b0, b1)
}

// DecodeUnchecked3 assembles a three-byte sequence. The caller must have
// already validated b0, b1, and b2; behavior is undefined otherwise.
func DecodeUnchecked3(b0, b1, b2 byte) Scalar {
	return assemble.From3Unchecked(b0, b1, b2)
}

// DecodeUnchecked4 assembles a four-byte sequence. The caller must have
// already validated b0, b1, b2, and b3; behavior is undefined otherwise.
func DecodeUnchecked4(b0, b1, b2, b3 byte) Scalar {
	return assemble.From4Unchecked(b0, b1, b2, b3)
}
