package classify

import "testing"

func TestExpectedLength_Ranges(t *testing.T) {
	cases := []struct {
		name     string
		lo, hi   int
		expected int
	}{
		{"ascii", 0x00, 0x7F, 1},
		{"continuation", 0x80, 0xBF, 0},
		{"disallowed_c0_c1", 0xC0, 0xC1, 0},
		{"2byte_leads", 0xC2, 0xDF, 2},
		{"3byte_leads", 0xE0, 0xEF, 3},
		{"4byte_leads", 0xF0, 0xF4, 4},
		{"disallowed_f5_ff", 0xF5, 0xFF, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for b := c.lo; b <= c.hi; b++ {
				if got := ExpectedLength(byte(b)); got != c.expected {
					t.Errorf("ExpectedLength(0x%02X) = %d, want %d", b, got, c.expected)
				}
			}
		})
	}
}

func TestIsASCII(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		want := b <= 0x7F
		if got := IsASCII(byte(b)); got != want {
			t.Errorf("IsASCII(0x%02X) = %v, want %v", b, got, want)
		}
	}
}

func TestIsContinuation(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		want := b >= 0x80 && b <= 0xBF
		if got := IsContinuation(byte(b)); got != want {
			t.Errorf("IsContinuation(0x%02X) = %v, want %v", b, got, want)
		}
	}
}

func TestLeadPredicates(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		byteVal := byte(b)
		if got, want := Is2ByteLead(byteVal), b >= 0xC2 && b <= 0xDF; got != want {
			t.Errorf("Is2ByteLead(0x%02X) = %v, want %v", b, got, want)
		}
		if got, want := Is3ByteLead(byteVal), b >= 0xE0 && b <= 0xEF; got != want {
			t.Errorf("Is3ByteLead(0x%02X) = %v, want %v", b, got, want)
		}
		if got, want := Is4ByteLead(byteVal), b >= 0xF0 && b <= 0xF4; got != want {
			t.Errorf("Is4ByteLead(0x%02X) = %v, want %v", b, got, want)
		}
	}
}

func TestJointPredicates(t *testing.T) {
	for b0 := 0; b0 <= 0xFF; b0++ {
		for b1 := 0; b1 <= 0xFF; b1++ {
			lead, second := byte(b0), byte(b1)

			if got, want := Is3ByteOverlong(lead, second), b0 == 0xE0 && b1 < 0xA0; got != want {
				t.Fatalf("Is3ByteOverlong(0x%02X,0x%02X) = %v, want %v", b0, b1, got, want)
			}
			if got, want := IsUtf16Surrogate(lead, second), b0 == 0xED && b1 >= 0xA0; got != want {
				t.Fatalf("IsUtf16Surrogate(0x%02X,0x%02X) = %v, want %v", b0, b1, got, want)
			}
			if got, want := Is4ByteOverlong(lead, second), b0 == 0xF0 && b1 < 0x90; got != want {
				t.Fatalf("Is4ByteOverlong(0x%02X,0x%02X) = %v, want %v", b0, b1, got, want)
			}
			if got, want := IsAboveRange(lead, second), b0 == 0xF4 && b1 >= 0x90; got != want {
				t.Fatalf("IsAboveRange(0x%02X,0x%02X) = %v, want %v", b0, b1, got, want)
			}
		}
	}
}
