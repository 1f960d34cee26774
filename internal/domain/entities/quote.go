package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// TBD is the sentinel carried by price fields of items with no catalog match.
const TBD = "TBD"

// Amount is a money value that may be the "TBD" sentinel.
type Amount struct {
	Value float64
	TBD   bool
}

// Price builds a numeric amount rounded to cents.
func Price(v float64) Amount { return Amount{Value: Round2(v)} }

// TBDAmount builds the "to be determined" sentinel.
func TBDAmount() Amount { return Amount{TBD: true} }

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.TBD {
		return json.Marshal(TBD)
	}
	return json.Marshal(a.Value)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(s), TBD) {
			return fmt.Errorf("amount must be a number or %q, got %q", TBD, s)
		}
		*a = TBDAmount()
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("amount must be a number or %q, got null", TBD)
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = Amount{Value: v}
	return nil
}

func (a Amount) String() string {
	if a.TBD {
		return TBD
	}
	return FormatMoney(a.Value)
}

// QuoteItem is one priced line of a quote.
type QuoteItem struct {
	Item          string  `json:"item"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     Amount  `json:"unit_price"`
	LineTotal     Amount  `json:"line_total"`
	CostBreakdown string  `json:"cost_breakdown"`
}

// QuoteDraft is an itemized quote. The same shape is used for the
// human-approved final quote.
//
// Invariant: TotalEstimatedCost == Round2(Subtotal + Shipping).
// TBD lines do not contribute to Subtotal.
type QuoteDraft struct {
	QuoteItems         []QuoteItem `json:"quote_items"`
	Subtotal           float64     `json:"subtotal"`
	Shipping           float64     `json:"shipping"`
	TotalEstimatedCost float64     `json:"total_estimated_cost"`
	Notes              *string     `json:"notes,omitempty"`
}

// HasTBD reports whether any line could not be priced from the catalog.
func (q QuoteDraft) HasTBD() bool {
	for _, it := range q.QuoteItems {
		if it.UnitPrice.TBD || it.LineTotal.TBD {
			return true
		}
	}
	return false
}

func (q QuoteDraft) Validate() error {
	if q.QuoteItems == nil {
		return &ValidationError{Artifact: ArtifactQuote, Reason: "quote_items is required"}
	}
	for i, it := range q.QuoteItems {
		if strings.TrimSpace(it.Item) == "" {
			return &ValidationError{Artifact: ArtifactQuote, Reason: fmt.Sprintf("quote_items[%d].item is required", i)}
		}
		if it.Quantity < 0 {
			return &ValidationError{Artifact: ArtifactQuote, Reason: fmt.Sprintf("quote_items[%d].quantity must not be negative", i)}
		}
		if (!it.UnitPrice.TBD && it.UnitPrice.Value < 0) || (!it.LineTotal.TBD && it.LineTotal.Value < 0) {
			return &ValidationError{Artifact: ArtifactQuote, Reason: fmt.Sprintf("quote_items[%d] prices must not be negative", i)}
		}
	}
	if q.Subtotal < 0 || q.Shipping < 0 {
		return &ValidationError{Artifact: ArtifactQuote, Reason: "subtotal and shipping must not be negative"}
	}
	if priced := q.pricedTotal(); !CentsEqual(q.Subtotal, priced) {
		return &ValidationError{
			Artifact: ArtifactQuote,
			Reason: fmt.Sprintf("subtotal %s does not equal the sum of priced line totals %s",
				FormatMoney(q.Subtotal), FormatMoney(priced)),
		}
	}
	if !CentsEqual(q.TotalEstimatedCost, q.Subtotal+q.Shipping) {
		return &ValidationError{
			Artifact: ArtifactQuote,
			Reason: fmt.Sprintf("total_estimated_cost %s does not equal subtotal + shipping %s",
				FormatMoney(q.TotalEstimatedCost), FormatMoney(q.Subtotal+q.Shipping)),
		}
	}
	return nil
}

// pricedTotal sums the numeric line totals; TBD lines add nothing.
func (q QuoteDraft) pricedTotal() float64 {
	var sum float64
	for _, it := range q.QuoteItems {
		if !it.LineTotal.TBD {
			sum += Round2(it.LineTotal.Value)
		}
	}
	return Round2(sum)
}

// quoteItemInput and quoteDraftInput mirror the quote schema with pointer
// fields so a missing key is told apart from a zero value.
type quoteItemInput struct {
	Item          *string  `json:"item"`
	Quantity      *float64 `json:"quantity"`
	UnitPrice     *Amount  `json:"unit_price"`
	LineTotal     *Amount  `json:"line_total"`
	CostBreakdown *string  `json:"cost_breakdown"`
}

type quoteDraftInput struct {
	QuoteItems         *[]quoteItemInput `json:"quote_items"`
	Subtotal           *float64          `json:"subtotal"`
	Shipping           *float64          `json:"shipping"`
	TotalEstimatedCost *float64          `json:"total_estimated_cost"`
	Notes              *string           `json:"notes"`
}

func (in quoteDraftInput) missing() []string {
	var fields []string
	if in.QuoteItems == nil {
		fields = append(fields, "quote_items")
	} else {
		for i, it := range *in.QuoteItems {
			for name, absent := range map[string]bool{
				"item":           it.Item == nil,
				"quantity":       it.Quantity == nil,
				"unit_price":     it.UnitPrice == nil,
				"line_total":     it.LineTotal == nil,
				"cost_breakdown": it.CostBreakdown == nil,
			} {
				if absent {
					fields = append(fields, fmt.Sprintf("quote_items[%d].%s", i, name))
				}
			}
		}
	}
	if in.Subtotal == nil {
		fields = append(fields, "subtotal")
	}
	if in.Shipping == nil {
		fields = append(fields, "shipping")
	}
	if in.TotalEstimatedCost == nil {
		fields = append(fields, "total_estimated_cost")
	}
	sort.Strings(fields)
	return fields
}

// ParseQuoteDraft is the modify-gate validator for quotes. Every field except
// notes must be present; a missing price is never read as zero.
func ParseQuoteDraft(raw []byte) (QuoteDraft, error) {
	var in quoteDraftInput
	if err := decodeStrict(raw, &in); err != nil {
		return QuoteDraft{}, &ValidationError{Artifact: ArtifactQuote, Reason: "malformed JSON", Err: err}
	}
	if missing := in.missing(); len(missing) > 0 {
		return QuoteDraft{}, &ValidationError{
			Artifact: ArtifactQuote,
			Reason:   "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	q := QuoteDraft{
		QuoteItems:         make([]QuoteItem, 0, len(*in.QuoteItems)),
		Subtotal:           *in.Subtotal,
		Shipping:           *in.Shipping,
		TotalEstimatedCost: *in.TotalEstimatedCost,
		Notes:              in.Notes,
	}
	for _, it := range *in.QuoteItems {
		q.QuoteItems = append(q.QuoteItems, QuoteItem{
			Item:          *it.Item,
			Quantity:      *it.Quantity,
			UnitPrice:     *it.UnitPrice,
			LineTotal:     *it.LineTotal,
			CostBreakdown: *it.CostBreakdown,
		})
	}
	if err := q.Validate(); err != nil {
		return QuoteDraft{}, err
	}
	return q, nil
}

// ParseEmail is the modify-gate validator for the email text.
func ParseEmail(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &ValidationError{Artifact: ArtifactEmail, Reason: "email text must not be empty"}
	}
	return raw, nil
}

// Round2 rounds to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CentsEqual compares two money values at cent precision.
func CentsEqual(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}

// FormatMoney renders v as "$1234.50".
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", Round2(v))
}
