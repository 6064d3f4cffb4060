// Package outcome holds the shared result vocabulary for the scanner and
// the buffer validator: the scalar type, the tagged Outcome returned by a
// single scan, the finer-grained CheckError returned by the buffer
// validator, and the sentinel errors a ByteSource reports on failure.
package outcome

import "errors"

// Scalar is a decoded Unicode scalar value.
type Scalar = rune

// OutcomeCode tags an Outcome. The zero value is never produced by a real
// scan; Valid is the first meaningful code.
type OutcomeCode uint8

const (
	Valid OutcomeCode = iota + 1

	DisallowedStartByte
	StartWithContinuation

	Incomplete2
	Incomplete3
	Incomplete4

	Overlong3
	Overlong4
	Utf16Surrogate
	AboveRange

	SourceEndOfInput
	SourceBroken
	SourceTransientFail
	SourceUnexpected
)

var codeNames = map[OutcomeCode]string{
	Valid:                 "Valid",
	DisallowedStartByte:   "DisallowedStartByte",
	StartWithContinuation: "StartWithContinuation",
	Incomplete2:           "Incomplete2",
	Incomplete3:           "Incomplete3",
	Incomplete4:           "Incomplete4",
	Overlong3:             "Overlong3",
	Overlong4:             "Overlong4",
	Utf16Surrogate:        "Utf16Surrogate",
	AboveRange:            "AboveRange",
	SourceEndOfInput:      "SourceEndOfInput",
	SourceBroken:          "SourceBroken",
	SourceTransientFail:   "SourceTransientFail",
	SourceUnexpected:      "SourceUnexpected",
}

func (c OutcomeCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "OutcomeCode(unknown)"
}

// Outcome is the tagged result of one Scan. Scalar is meaningful only when
// Code == Valid.
type Outcome struct {
	Code   OutcomeCode
	Scalar Scalar
}

// IsValid reports whether the scan decoded a scalar value.
func (o Outcome) IsValid() bool { return o.Code == Valid }

// Error satisfies the error interface so callers that only care whether a
// scan failed can do `if err := outcome; err != nil`-style checks via
// AsError, without losing the taxonomy for callers that switch on Code.
func (o Outcome) Error() string {
	if o.Code == Valid {
		return "utf8scan: valid"
	}
	return "utf8scan: " + o.Code.String()
}

// AsError returns o as an error, or nil when the scan was valid. This lets
// Outcome participate in ordinary Go error handling without forcing every
// caller to inspect Code first.
func (o Outcome) AsError() error {
	if o.Code == Valid {
		return nil
	}
	return o
}

// CheckErrorKind tags a CheckError produced by the buffer validator. Unlike
// OutcomeCode, the buffer validator distinguishes "ran out of input"
// (Incomplete*) from "saw a non-continuation byte" (NotSecondContinuation
// and friends), because it has the whole buffer available to report both
// precisely.
type CheckErrorKind uint8

const (
	KindDisallowedStartByte CheckErrorKind = iota + 1
	KindIncomplete2
	KindIncomplete3
	KindIncomplete4
	KindNotSecondContinuation
	KindNotThirdContinuation
	KindNotFourthContinuation
	KindOverlong3
	KindOverlong4
	KindUtf16Surrogate
	KindAboveRange
)

var kindNames = map[CheckErrorKind]string{
	KindDisallowedStartByte:   "DisallowedStartByte",
	KindIncomplete2:           "Incomplete2",
	KindIncomplete3:           "Incomplete3",
	KindIncomplete4:           "Incomplete4",
	KindNotSecondContinuation: "NotSecondContinuation",
	KindNotThirdContinuation:  "NotThirdContinuation",
	KindNotFourthContinuation: "NotFourthContinuation",
	KindOverlong3:             "Overlong3",
	KindOverlong4:             "Overlong4",
	KindUtf16Surrogate:        "Utf16Surrogate",
	KindAboveRange:            "AboveRange",
}

func (k CheckErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "CheckErrorKind(unknown)"
}

// CheckError reports the first ill-formed subsequence found by the buffer
// validator. Start is the offset of the lead byte; Length is the number of
// bytes the diagnosis consumes (always 1..4). For an overlong, surrogate or
// above-range diagnosis that includes the second byte; a missing byte or a
// non-continuation byte where a continuation was required is not counted.
type CheckError struct {
	Kind   CheckErrorKind
	Start  int
	Length int
}

func (e CheckError) Error() string {
	return "utf8scan: " + e.Kind.String()
}

// Sentinel errors a ByteSource reports from Peek/Advance. Scan maps these
// into the matching Source* OutcomeCode.
var (
	ErrEndOfInput = errors.New("utf8scan: end of input")
	ErrBroken     = errors.New("utf8scan: source broken")
	ErrTransient  = errors.New("utf8scan: transient read failure")
	ErrUnexpected = errors.New("utf8scan: unexpected source error")
)
