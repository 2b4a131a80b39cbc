package receipt

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("35.35")
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if a.Minor() != 3535 {
		t.Errorf("Expected 3535 minor units, got %d", a.Minor())
	}

	a, err = ParseAmount("0.89")
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if a.Minor() != 89 {
		t.Errorf("Expected 89 minor units, got %d", a.Minor())
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	bad := []string{
		"",
		"35",
		"35.3",
		"35.355",
		".35",
		"35.",
		"-1.00",
		"1,00",
		"1.0a",
		"a.00",
		"1.00 ",
	}
	for _, s := range bad {
		if _, err := ParseAmount(s); err == nil {
			t.Errorf("ParseAmount(%q): expected error", s)
		}
	}
}

// Dollar parts whose cent value exceeds int64 must be rejected, not
// silently wrapped into a negative Amount.
func TestParseAmount_Overflow(t *testing.T) {
	huge := []string{
		"922337203685477581.00",
		"92233720368547758.08",
		"99999999999999999999.99",
	}
	for _, s := range huge {
		a, err := ParseAmount(s)
		if err == nil {
			t.Errorf("ParseAmount(%q): expected error, got %d minor units", s, a.Minor())
		}
	}

	// The largest representable amount still parses exactly.
	a, err := ParseAmount("92233720368547758.07")
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if a.Minor() != math.MaxInt64 {
		t.Errorf("Expected %d minor units, got %d", int64(math.MaxInt64), a.Minor())
	}
	if a.Minor() < 0 {
		t.Error("parsed Amount must never be negative")
	}
}

func TestAmount_WholeDollars(t *testing.T) {
	whole, _ := ParseAmount("9.00")
	if !whole.WholeDollars() {
		t.Error("9.00 should be a whole dollar amount")
	}
	cents, _ := ParseAmount("9.01")
	if cents.WholeDollars() {
		t.Error("9.01 should not be a whole dollar amount")
	}
}

// Quarter classification must hold under exact arithmetic; these are the
// amounts a float64 modulo can misclassify.
func TestAmount_QuarterMultiples(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1.25", true},
		{"9.00", true},
		{"0.75", true},
		{"100.50", true},
		{"35.35", false},
		{"0.89", false},
		{"1.26", false},
	}
	for _, tc := range cases {
		a, err := ParseAmount(tc.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) failed: %v", tc.in, err)
		}
		if got := a.MultipleOf(25); got != tc.want {
			t.Errorf("MultipleOf(25) for %s: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAmount_String(t *testing.T) {
	a, _ := ParseAmount("7.05")
	if a.String() != "7.05" {
		t.Errorf("Expected 7.05, got %s", a.String())
	}
}
