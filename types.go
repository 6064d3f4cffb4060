package utf8scan

import "github.com/tidalgo/utf8scan/internal/outcome"

// Scalar is a decoded Unicode scalar value.
type Scalar = outcome.Scalar

// OutcomeCode tags an Outcome; see the taxonomy below.
type OutcomeCode = outcome.OutcomeCode

// Outcome is the tagged result of one Scan: either Valid (with Scalar set)
// or one of the error codes below. Outcome implements error, so it can be
// used directly wherever an error is expected — see Outcome.AsError.
type Outcome = outcome.Outcome

// The full outcome taxonomy.
const (
	Valid                 = outcome.Valid
	DisallowedStartByte   = outcome.DisallowedStartByte
	StartWithContinuation = outcome.StartWithContinuation
	Incomplete2           = outcome.Incomplete2
	Incomplete3           = outcome.Incomplete3
	Incomplete4           = outcome.Incomplete4
	Overlong3             = outcome.Overlong3
	Overlong4             = outcome.Overlong4
	Utf16Surrogate        = outcome.Utf16Surrogate
	AboveRange            = outcome.AboveRange
	SourceEndOfInput      = outcome.SourceEndOfInput
	SourceBroken          = outcome.SourceBroken
	SourceTransientFail   = outcome.SourceTransientFail
	SourceUnexpected      = outcome.SourceUnexpected
)

// CheckErrorKind tags a CheckError returned by Validate/ValidateAll.
type CheckErrorKind = outcome.CheckErrorKind

// CheckError reports the first (or, from ValidateAll, one of several)
// ill-formed subsequence in a buffer: Start is the offset of its lead
// byte, Length is how many bytes the diagnosis consumes (a non-continuation
// byte where a continuation was required is not counted).
type CheckError = outcome.CheckError

// The buffer-validator error taxonomy. It is finer-grained than the
// Outcome taxonomy above: where Scan collapses "ran out of input" and
// "saw a non-continuation byte" into one Incomplete* code, Validate has
// the whole buffer available and reports them separately.
const (
	KindDisallowedStartByte   = outcome.KindDisallowedStartByte
	KindIncomplete2           = outcome.KindIncomplete2
	KindIncomplete3           = outcome.KindIncomplete3
	KindIncomplete4           = outcome.KindIncomplete4
	KindNotSecondContinuation = outcome.KindNotSecondContinuation
	KindNotThirdContinuation  = outcome.KindNotThirdContinuation
	KindNotFourthContinuation = outcome.KindNotFourthContinuation
	KindOverlong3             = outcome.KindOverlong3
	KindOverlong4             = outcome.KindOverlong4
	KindUtf16Surrogate        = outcome.KindUtf16Surrogate
	KindAboveRange            = outcome.KindAboveRange
)

// ByteSource is the capability contract a scan source must satisfy: peek
// the current byte without consuming it, or advance past it. Peek is
// idempotent — repeated calls without an intervening Advance return the
// same byte — and Advance's precondition is that the last Peek returned a
// byte rather than an error.
type ByteSource interface {
	Peek() (byte, error)
	Advance() error
}
