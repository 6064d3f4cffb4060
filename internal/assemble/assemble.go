// Package assemble turns 1-4 already-positioned UTF-8 bytes into the
// Unicode scalar value they encode. Each arity has an Unchecked variant
// (precondition: caller already validated the bytes) and a checked
// variant that runs the classifier gates first and reports the matching
// outcome.OutcomeCode on failure.
package assemble

import (
	"github.com/tidalgo/utf8scan/internal/classify"
	"github.com/tidalgo/utf8scan/internal/outcome"
)

// Ascii returns the scalar for a validated one-byte character.
func Ascii(b0 byte) outcome.Scalar {
	return outcome.Scalar(b0)
}

// From2Unchecked returns the scalar for a validated two-byte sequence.
func From2Unchecked(b0, b1 byte) outcome.Scalar {
	return outcome.Scalar(b0&0x1F)<<6 | outcome.Scalar(b1&0x3F)
}

// From3Unchecked returns the scalar for a validated three-byte sequence.
func From3Unchecked(b0, b1, b2 byte) outcome.Scalar {
	return outcome.Scalar(b0&0x0F)<<12 | outcome.Scalar(b1&0x3F)<<6 | outcome.Scalar(b2&0x3F)
}

// From4Unchecked returns the scalar for a validated four-byte sequence.
func From4Unchecked(b0, b1, b2, b3 byte) outcome.Scalar {
	return outcome.Scalar(b0&0x07)<<18 | outcome.Scalar(b1&0x3F)<<12 |
		outcome.Scalar(b2&0x3F)<<6 | outcome.Scalar(b3&0x3F)
}

// Checked1 validates and assembles a one-byte character.
func Checked1(b0 byte) outcome.Outcome {
	if !classify.IsASCII(b0) {
		return disallowedOrContinuation(b0)
	}
	return outcome.Outcome{Code: outcome.Valid, Scalar: Ascii(b0)}
}

// Checked2 validates and assembles a two-byte sequence.
func Checked2(lead, second byte) outcome.Outcome {
	if !classify.Is2ByteLead(lead) {
		return disallowedOrContinuation(lead)
	}
	if !classify.IsContinuation(second) {
		return outcome.Outcome{Code: outcome.Incomplete2}
	}
	return outcome.Outcome{Code: outcome.Valid, Scalar: From2Unchecked(lead, second)}
}

// Checked3 validates and assembles a three-byte sequence. Diagnostic
// order: overlong-3 → surrogate → continuation-shape.
func Checked3(lead, b1, b2 byte) outcome.Outcome {
	if !classify.Is3ByteLead(lead) {
		return disallowedOrContinuation(lead)
	}
	if classify.Is3ByteOverlong(lead, b1) {
		return outcome.Outcome{Code: outcome.Overlong3}
	}
	if classify.IsUtf16Surrogate(lead, b1) {
		return outcome.Outcome{Code: outcome.Utf16Surrogate}
	}
	if !classify.IsContinuation(b1) {
		return outcome.Outcome{Code: outcome.Incomplete3}
	}
	if !classify.IsContinuation(b2) {
		return outcome.Outcome{Code: outcome.Incomplete3}
	}
	return outcome.Outcome{Code: outcome.Valid, Scalar: From3Unchecked(lead, b1, b2)}
}

// Checked4 validates and assembles a four-byte sequence. Diagnostic
// order: overlong-4 → above-range → continuation-shape.
func Checked4(lead, b1, b2, b3 byte) outcome.Outcome {
	if !classify.Is4ByteLead(lead) {
		return disallowedOrContinuation(lead)
	}
	if classify.Is4ByteOverlong(lead, b1) {
		return outcome.Outcome{Code: outcome.Overlong4}
	}
	if classify.IsAboveRange(lead, b1) {
		return outcome.Outcome{Code: outcome.AboveRange}
	}
	if !classify.IsContinuation(b1) {
		return outcome.Outcome{Code: outcome.Incomplete4}
	}
	if !classify.IsContinuation(b2) {
		return outcome.Outcome{Code: outcome.Incomplete4}
	}
	if !classify.IsContinuation(b3) {
		return outcome.Outcome{Code: outcome.Incomplete4}
	}
	return outcome.Outcome{Code: outcome.Valid, Scalar: From4Unchecked(lead, b1, b2, b3)}
}

func disallowedOrContinuation(b0 byte) outcome.Outcome {
	if classify.IsContinuation(b0) {
		return outcome.Outcome{Code: outcome.StartWithContinuation}
	}
	return outcome.Outcome{Code: outcome.DisallowedStartByte}
}
