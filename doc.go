// Package utf8scan is a strict UTF-8 decoder and validator: it converts a
// stream or buffer of bytes into Unicode scalar values and rejects every
// ill-formed sequence the Unicode standard defines, distinguishing
// overlong encodings, UTF-16-surrogate-shaped sequences, and
// above-U+10FFFF sequences instead of collapsing them into one generic
// "invalid" result.
//
// The entry points are Scan, for a single pull-based ByteSource, and
// Validate/ValidateAll, for a random-access buffer. ToLossy and
// ToLossyIfInvalid repair a buffer by replacing each invalid subsequence
// with U+FFFD; Transformer exposes the same repair as a
// golang.org/x/text/transform.Transformer for use in a transform chain.
package utf8scan
