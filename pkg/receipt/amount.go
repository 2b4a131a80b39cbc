package receipt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a non-negative currency value held in minor units (cents).
// It uses integer math to avoid floating point errors; quarter-multiple
// and whole-dollar checks would silently misclassify under float64.
type Amount int64

// ParseAmount parses the textual currency form the wire contract requires:
// one or more digits, a dot, exactly two fractional digits ("35.35").
// Any other shape, including negative values, is rejected.
func ParseAmount(s string) (Amount, error) {
	dollars, cents, ok := strings.Cut(s, ".")
	if !ok || dollars == "" || len(cents) != 2 {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	if !allDigits(dollars) || !allDigits(cents) {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	d, err := strconv.ParseInt(dollars, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	c, err := strconv.ParseInt(cents, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	// d*100+c must stay within int64; a wrapped Amount would smuggle a
	// negative value past validation.
	if d > (math.MaxInt64-c)/100 {
		return 0, fmt.Errorf("amount %q out of range", s)
	}
	return Amount(d*100 + c), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Minor returns the value in minor units.
func (a Amount) Minor() int64 {
	return int64(a)
}

// WholeDollars reports whether the amount has a zero fractional part.
func (a Amount) WholeDollars() bool {
	return a%100 == 0
}

// MultipleOf reports whether the amount is an exact integer multiple of q.
func (a Amount) MultipleOf(q Amount) bool {
	return q != 0 && a%q == 0
}

// String renders the amount back into its two-decimal textual form.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a/100, a%100)
}
