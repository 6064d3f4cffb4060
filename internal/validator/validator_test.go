package validator

import (
	"testing"

	"github.com/tidalgo/utf8scan/internal/outcome"
)

func TestValidateWellFormed(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x41, 0x42, 0x43},
		{0xC2, 0xA2},
		{0xE2, 0x82, 0xAC},
		{0xF0, 0x9F, 0x98, 0x80},
		[]byte("hello, é€\U0001F600 world"),
	}
	for _, buf := range cases {
		if err := Validate(buf); err != nil {
			t.Errorf("Validate(%X) = %v, want nil", buf, err)
		}
	}
}

func TestValidateDiagnostics(t *testing.T) {
	cases := []struct {
		name       string
		buf        []byte
		wantKind   outcome.CheckErrorKind
		wantStart  int
		wantLength int
	}{
		{"disallowed_lead", []byte{0x41, 0xC0, 0x80}, outcome.KindDisallowedStartByte, 1, 1},
		{"lone_continuation", []byte{0x80}, outcome.KindDisallowedStartByte, 0, 1},
		{"incomplete_2_at_eof", []byte{0x41, 0xC2}, outcome.KindIncomplete2, 1, 1},
		{"not_second_continuation", []byte{0xC2, 0x41}, outcome.KindNotSecondContinuation, 0, 1},
		{"overlong_3", []byte{0xE0, 0x80, 0x80}, outcome.KindOverlong3, 0, 2},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, outcome.KindUtf16Surrogate, 0, 2},
		{"incomplete_3_third_byte", []byte{0xE2, 0x82}, outcome.KindIncomplete3, 0, 2},
		{"not_third_continuation", []byte{0xE2, 0x82, 0x41}, outcome.KindNotThirdContinuation, 0, 2},
		{"overlong_4", []byte{0xF0, 0x80, 0x80, 0x80}, outcome.KindOverlong4, 0, 2},
		{"above_range", []byte{0xF4, 0x90, 0x80, 0x80}, outcome.KindAboveRange, 0, 2},
		{"incomplete_4_fourth_byte", []byte{0xF0, 0x9F, 0x98}, outcome.KindIncomplete4, 0, 3},
		{"not_fourth_continuation", []byte{0xF0, 0x9F, 0x98, 0x41}, outcome.KindNotFourthContinuation, 0, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.buf)
			if err == nil {
				t.Fatalf("Validate(%X) = nil, want %v", c.buf, c.wantKind)
			}
			if err.Kind != c.wantKind {
				t.Errorf("Kind = %v, want %v", err.Kind, c.wantKind)
			}
			if err.Start != c.wantStart {
				t.Errorf("Start = %d, want %d", err.Start, c.wantStart)
			}
			if err.Length != c.wantLength {
				t.Errorf("Length = %d, want %d", err.Length, c.wantLength)
			}
		})
	}
}

func TestValidateAllFindsEveryError(t *testing.T) {
	// Two independent disallowed leads separated by well-formed ASCII.
	buf := []byte{0xC0, 0x41, 0x42, 0xC1, 0x43}
	errs := ValidateAll(buf)

	if len(errs) != 2 {
		t.Fatalf("len(errs) = %d, want 2", len(errs))
	}
	if errs[0].Start != 0 || errs[1].Start != 3 {
		t.Errorf("Starts = %d, %d, want 0, 3", errs[0].Start, errs[1].Start)
	}
	for _, e := range errs {
		if e.Kind != outcome.KindDisallowedStartByte {
			t.Errorf("Kind = %v, want KindDisallowedStartByte", e.Kind)
		}
	}
}

func TestValidateAllOnWellFormedReturnsEmpty(t *testing.T) {
	errs := ValidateAll([]byte("all good here"))
	if len(errs) != 0 {
		t.Errorf("len(errs) = %d, want 0", len(errs))
	}
}

func TestValidateAllAbsoluteOffsets(t *testing.T) {
	// The overlong-3 diagnosis consumes E0 80; the trailing 80 is then a
	// lone continuation reported as a second error.
	buf := []byte{0x41, 0x41, 0x41, 0xE0, 0x80, 0x80, 0x41}
	errs := ValidateAll(buf)
	if len(errs) != 2 {
		t.Fatalf("len(errs) = %d, want 2", len(errs))
	}
	if errs[0].Start != 3 {
		t.Errorf("Start = %d, want 3 (absolute offset)", errs[0].Start)
	}
}
