package receipt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidReceipt is the single uniform rejection for every structural,
// format, or calendar violation. Callers get no field-level detail.
var ErrInvalidReceipt = errors.New("the receipt is invalid")

//go:embed schema/receipt.yml
var receiptSchemaYAML []byte

const schemaURL = "https://receiptor.schemas.local/receipt.schema.json"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Validator checks untyped submitted documents against the receipt
// structural contract. It is stateless after construction and safe for
// concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded receipt schema. The schema document
// is authored in YAML and converted to JSON for the compiler.
func NewValidator() (*Validator, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(receiptSchemaYAML, &doc); err != nil {
		return nil, fmt.Errorf("receipt schema load failed: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("receipt schema convert failed: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("receipt schema load failed: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("receipt schema compile failed: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// wireReceipt mirrors the wire contract. Every field is textual; a
// numeric total or price never reaches this struct because the schema
// rejects it by type first.
type wireReceipt struct {
	Retailer     string     `json:"retailer"`
	PurchaseDate string     `json:"purchaseDate"`
	PurchaseTime string     `json:"purchaseTime"`
	Total        string     `json:"total"`
	Items        []wireItem `json:"items"`
}

type wireItem struct {
	ShortDescription string `json:"shortDescription"`
	Price            string `json:"price"`
}

// Validate classifies an untyped document (as produced by json.Unmarshal
// into any) and returns the typed Receipt on success. All checks run
// before any arithmetic; a single violation yields ErrInvalidReceipt.
//
// The schema enforces presence, types, and textual formats. The second
// pass enforces what a pattern cannot: the date must exist on the
// calendar (2023-02-30 matches the pattern but is rejected here).
func (v *Validator) Validate(doc any) (*Receipt, error) {
	if err := v.schema.Validate(doc); err != nil {
		return nil, ErrInvalidReceipt
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, ErrInvalidReceipt
	}
	var wire wireReceipt
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, ErrInvalidReceipt
	}

	date, err := time.Parse(dateLayout, wire.PurchaseDate)
	if err != nil {
		return nil, ErrInvalidReceipt
	}
	clock, err := time.Parse(timeLayout, wire.PurchaseTime)
	if err != nil {
		return nil, ErrInvalidReceipt
	}
	total, err := ParseAmount(wire.Total)
	if err != nil {
		return nil, ErrInvalidReceipt
	}

	items := make([]Item, 0, len(wire.Items))
	for _, it := range wire.Items {
		price, err := ParseAmount(it.Price)
		if err != nil {
			return nil, ErrInvalidReceipt
		}
		items = append(items, Item{ShortDescription: it.ShortDescription, Price: price})
	}

	return &Receipt{
		Retailer:     wire.Retailer,
		PurchaseDate: date,
		PurchaseTime: clock,
		Total:        total,
		Items:        items,
	}, nil
}
