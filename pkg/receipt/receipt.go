// Package receipt defines the typed purchase receipt model and the
// validator that is the single gate between untyped submissions and
// the scoring pipeline.
package receipt

import "time"

// Item is a single line item on a receipt.
type Item struct {
	// ShortDescription is the human-readable item text. Leading and
	// trailing whitespace is preserved as submitted.
	ShortDescription string
	// Price is the item price in exact minor units.
	Price Amount
}

// Receipt is a structurally valid purchase receipt. Values are only
// constructed by the Validator, so holding a Receipt implies every
// field already passed the structural contract.
type Receipt struct {
	Retailer     string
	PurchaseDate time.Time
	PurchaseTime time.Time
	Total        Amount
	Items        []Item
}
