// Package classify holds the pure, stateless byte predicates the scanner
// and buffer validator are built from: lead-byte classification and the
// joint (lead, second) predicates that catch the four classes of
// bit-plausible-but-ill-formed sequence. Every function here is total and
// side-effect-free; none of them allocate.
package classify

// expectedLength indexes by the first byte of a character and reports how
// many bytes the character occupies, or 0 if the byte can never start a
// character.
var expectedLength = [256]uint8{
	// 0x00-0x7F: ASCII, one byte.
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	// 0x80-0xBF: continuation bytes, never a lead.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0xC0-0xC1: permanently disallowed overlong-ASCII leads.
	0, 0,
	// 0xC2-0xDF: two-byte leads.
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	// 0xE0-0xEF: three-byte leads.
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	// 0xF0-0xF4: four-byte leads.
	4, 4, 4, 4, 4,
	// 0xF5-0xFF: permanently disallowed.
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// ExpectedLength returns the number of bytes the character starting with
// lead occupies, or 0 if lead can never start a character.
func ExpectedLength(lead byte) int {
	return int(expectedLength[lead])
}

// IsASCII reports whether b is a one-byte character (high bit clear).
func IsASCII(b byte) bool {
	return b&0x80 == 0
}

// IsContinuation reports whether b matches the continuation-byte pattern
// 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Is2ByteLead reports whether b starts a two-byte sequence (0xC2..0xDF).
func Is2ByteLead(b byte) bool {
	return expectedLength[b] == 2
}

// Is3ByteLead reports whether b starts a three-byte sequence (0xE0..0xEF).
func Is3ByteLead(b byte) bool {
	return expectedLength[b] == 3
}

// Is4ByteLead reports whether b starts a four-byte sequence (0xF0..0xF4).
func Is4ByteLead(b byte) bool {
	return expectedLength[b] == 4
}

// IsDisallowedLead reports whether b can never start a character
// (0xC0, 0xC1, 0x80..0xBF, 0xF5..0xFF). It is also true for continuation
// bytes; use with IsContinuation to distinguish
// DisallowedStartByte from StartWithContinuation.
func IsDisallowedLead(b byte) bool {
	return expectedLength[b] == 0
}

// Is3ByteOverlong reports whether (lead, second) is the overlong encoding
// of a 3-byte sequence (lead 0xE0, second < 0xA0). Only meaningful when
// lead is a 3-byte lead.
func Is3ByteOverlong(lead, second byte) bool {
	return lead == 0xE0 && second < 0xA0
}

// IsUtf16Surrogate reports whether (lead, second) encodes a UTF-16
// surrogate half (lead 0xED, second >= 0xA0). Only meaningful when lead
// is a 3-byte lead.
func IsUtf16Surrogate(lead, second byte) bool {
	return lead == 0xED && second >= 0xA0
}

// Is4ByteOverlong reports whether (lead, second) is the overlong encoding
// of a 4-byte sequence (lead 0xF0, second < 0x90). Only meaningful when
// lead is a 4-byte lead.
func Is4ByteOverlong(lead, second byte) bool {
	return lead == 0xF0 && second < 0x90
}

// IsAboveRange reports whether (lead, second) would assemble to a scalar
// above U+10FFFF (lead 0xF4, second >= 0x90). Only meaningful when lead
// is a 4-byte lead.
func IsAboveRange(lead, second byte) bool {
	return lead == 0xF4 && second >= 0x90
}
