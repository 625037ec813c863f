package face

import (
	"strconv"
	"strings"
	"testing"
)

func decodeBits(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.ParseUint(s, 2, 32)
	if err != nil {
		t.Fatalf("not a binary string: %q: %v", s, err)
	}
	return int(v)
}

func TestEncodeBitsRoundTrip(t *testing.T) {
	for width := 1; width <= 8; width++ {
		max := 1 << width
		for v := 0; v < max; v++ {
			s := EncodeBits(v, width)
			if len(s) != width {
				t.Fatalf("EncodeBits(%d, %d) length %d", v, width, len(s))
			}
			if got := decodeBits(t, s); got != v {
				t.Fatalf("EncodeBits(%d, %d) = %q decodes to %d", v, width, s, got)
			}
		}
	}
}

func TestEncodeBitsZero(t *testing.T) {
	for width := 1; width <= 8; width++ {
		if got, want := EncodeBits(0, width), strings.Repeat("0", width); got != want {
			t.Fatalf("EncodeBits(0, %d) = %q, want %q", width, got, want)
		}
	}
}

func TestEncodeBitsTruncation(t *testing.T) {
	// Overflow is exact modular behavior, not arbitrary clipping.
	for width := 1; width <= 6; width++ {
		mod := 1 << width
		for _, v := range []int{mod, mod + 1, 3*mod + 5, 1000} {
			if got, want := EncodeBits(v, width), EncodeBits(v%mod, width); got != want {
				t.Fatalf("EncodeBits(%d, %d) = %q, want %q", v, width, got, want)
			}
		}
	}
}

func TestEncodeBitsNegative(t *testing.T) {
	// A misbehaving clock source must degrade, not crash: negatives
	// reduce modulo 2^width like everything else.
	if got, want := EncodeBits(-1, 4), "1111"; got != want {
		t.Fatalf("EncodeBits(-1, 4) = %q, want %q", got, want)
	}
}

func TestEncodeBitsWidthOne(t *testing.T) {
	if got := EncodeBits(0, 1); got != "0" {
		t.Fatalf("EncodeBits(0, 1) = %q", got)
	}
	if got := EncodeBits(1, 1); got != "1" {
		t.Fatalf("EncodeBits(1, 1) = %q", got)
	}
	if got := EncodeBits(2, 1); got != "0" {
		t.Fatalf("EncodeBits(2, 1) = %q", got)
	}
}

func TestEncodeBitsDegenerateWidth(t *testing.T) {
	if got := EncodeBits(5, 0); got != "" {
		t.Fatalf("EncodeBits(5, 0) = %q, want empty", got)
	}
	if got := EncodeBits(5, -3); got != "" {
		t.Fatalf("EncodeBits(5, -3) = %q, want empty", got)
	}
}

func TestFieldWidthsCoverDomains(t *testing.T) {
	// The maximum of each field's domain must survive its width
	// without truncation.
	cases := []struct {
		name  string
		v     int
		width int
	}{
		{"hour24", 23, HourBits},
		{"hour12", 12, HourBits},
		{"minute", 59, MinuteBits},
		{"month", 12, MonthBits},
		{"day", 31, DayBits},
	}
	for _, tc := range cases {
		if got := decodeBits(t, EncodeBits(tc.v, tc.width)); got != tc.v {
			t.Fatalf("%s: %d does not fit %d bits (decoded %d)", tc.name, tc.v, tc.width, got)
		}
	}
}
