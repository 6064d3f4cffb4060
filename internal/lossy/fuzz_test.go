package lossy

import (
	"testing"

	"github.com/tidalgo/utf8scan/internal/validator"
)

// FuzzToLossyAlwaysValidates checks that the repaired output of arbitrary
// input is always well-formed UTF-8, and that ToLossyIfInvalid's changed
// flag agrees with whether Validate found anything in the first place.
func FuzzToLossyAlwaysValidates(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte{0x80})
	f.Add([]byte{0xC0, 0x80})
	f.Add([]byte{0xE0, 0x80, 0x80})
	f.Add([]byte{0xED, 0xA0, 0x80})
	f.Add([]byte{0xF0, 0x80, 0x80, 0x80})
	f.Add([]byte{0xF4, 0x90, 0x80, 0x80})
	f.Add([]byte{0xC2})
	f.Add([]byte("mixed \xff garbage \xc2"))

	f.Fuzz(func(t *testing.T, buf []byte) {
		out := ToLossy(buf)
		if err := validator.Validate(out); err != nil {
			t.Fatalf("Validate(ToLossy(%X)) = %v, want nil", buf, err)
		}

		_, changed := ToLossyIfInvalid(buf)
		wasInvalid := validator.Validate(buf) != nil
		if changed != wasInvalid {
			t.Fatalf("ToLossyIfInvalid changed=%v, but Validate(buf)!=nil is %v", changed, wasInvalid)
		}
	})
}
