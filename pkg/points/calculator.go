// Package points implements the reward score calculation. Calculate is a
// pure function over a validated receipt; all currency arithmetic stays
// in integer minor units so quarter-multiple and rounding decisions are
// bit-reproducible.
package points

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tallyworks/receiptor/pkg/receipt"
)

const (
	wholeDollarBonus     = 50
	quarterMultipleBonus = 25
	itemPairBonus        = 5
	oddDayBonus          = 6
	afternoonBonus       = 10

	quarter = receipt.Amount(25) // minor units

	afternoonStart = 14 * 60 // minutes since midnight, exclusive
	afternoonEnd   = 16 * 60 // exclusive
)

// Calculate returns the reward score for a validated receipt. The seven
// contributions are additive and independent, so evaluation order does
// not matter.
func Calculate(r *receipt.Receipt) int {
	points := 0

	// One point per alphanumeric character in the retailer name.
	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			points++
		}
	}

	// 50 points for a round dollar total, 25 for a quarter multiple.
	if r.Total.WholeDollars() {
		points += wholeDollarBonus
	}
	if r.Total.MultipleOf(quarter) {
		points += quarterMultipleBonus
	}

	// 5 points per complete pair of items.
	points += itemPairBonus * (len(r.Items) / 2)

	// Description-length bonus: ceil(price * 0.2) dollars per item whose
	// space-trimmed description length is a positive multiple of 3.
	// Interior whitespace counts toward the length.
	for _, it := range r.Items {
		points += descriptionBonus(it)
	}

	// 6 points for an odd day of month.
	if r.PurchaseDate.Day()%2 == 1 {
		points += oddDayBonus
	}

	// 10 points for a purchase strictly between 14:00 and 16:00.
	minute := r.PurchaseTime.Hour()*60 + r.PurchaseTime.Minute()
	if minute > afternoonStart && minute < afternoonEnd {
		points += afternoonBonus
	}

	return points
}

// descriptionBonus returns ceil(price * 0.2) in whole dollars when the
// trimmed description length qualifies, otherwise 0. With the price in
// cents, price * 0.2 dollars is cents/500, so the bonus is the ceiling
// division (cents + 499) / 500 — no floating point involved.
func descriptionBonus(it receipt.Item) int {
	trimmed := strings.Trim(it.ShortDescription, " ")
	n := utf8.RuneCountInString(trimmed)
	if n == 0 || n%3 != 0 {
		return 0
	}
	return int((it.Price.Minor() + 499) / 500)
}
