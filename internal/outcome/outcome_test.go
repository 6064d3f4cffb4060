package outcome

import (
	"errors"
	"testing"
)

func TestOutcomeIsValid(t *testing.T) {
	valid := Outcome{Code: Valid, Scalar: 'A'}
	if !valid.IsValid() {
		t.Error("IsValid() = false for Valid outcome")
	}

	invalid := Outcome{Code: DisallowedStartByte}
	if invalid.IsValid() {
		t.Error("IsValid() = true for DisallowedStartByte outcome")
	}
}

func TestOutcomeAsError(t *testing.T) {
	if err := (Outcome{Code: Valid}).AsError(); err != nil {
		t.Errorf("AsError() on Valid = %v, want nil", err)
	}

	o := Outcome{Code: Incomplete2}
	err := o.AsError()
	if err == nil {
		t.Fatal("AsError() on Incomplete2 = nil, want non-nil")
	}
	if err.Error() != "utf8scan: Incomplete2" {
		t.Errorf("Error() = %q, want %q", err.Error(), "utf8scan: Incomplete2")
	}
}

func TestOutcomeCodeStringUnknown(t *testing.T) {
	var c OutcomeCode = 255
	if got := c.String(); got != "OutcomeCode(unknown)" {
		t.Errorf("String() = %q, want OutcomeCode(unknown)", got)
	}
}

func TestCheckErrorKindStringUnknown(t *testing.T) {
	var k CheckErrorKind = 255
	if got := k.String(); got != "CheckErrorKind(unknown)" {
		t.Errorf("String() = %q, want CheckErrorKind(unknown)", got)
	}
}

func TestCheckErrorError(t *testing.T) {
	e := CheckError{Kind: KindOverlong3, Start: 5, Length: 2}
	if got := e.Error(); got != "utf8scan: Overlong3" {
		t.Errorf("Error() = %q, want %q", got, "utf8scan: Overlong3")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrEndOfInput, ErrBroken, ErrTransient, ErrUnexpected}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("sentinel %d unexpectedly matches sentinel %d", i, j)
			}
		}
	}
}
