package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// PartRequest is one replacement part line in the customer's request.
type PartRequest struct {
	PartName string `json:"part_name"`
	Quantity int    `json:"quantity"`
}

// UnmarshalJSON accepts a whole-number quantity written as a float ("2.0")
// and keeps rejecting unknown keys.
func (p *PartRequest) UnmarshalJSON(data []byte) error {
	var in struct {
		PartName string   `json:"part_name"`
		Quantity *float64 `json:"quantity"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return err
	}

	*p = PartRequest{PartName: in.PartName}
	if in.Quantity != nil {
		q := *in.Quantity
		if q != math.Trunc(q) || q > math.MaxInt32 || q < math.MinInt32 {
			return fmt.Errorf("parts_needed quantity must be a whole number, got %v", q)
		}
		p.Quantity = int(q)
	}
	return nil
}

// ExtractedDetails is the structured form of a customer request.
//
// Every field is optional: a nil pointer or nil slice means "not stated".
// The same shape is used for the human-approved details.
type ExtractedDetails struct {
	ItemRequested   *string       `json:"item_requested,omitempty"`
	Model           *string       `json:"model,omitempty"`
	HoseLengthFt    *float64      `json:"hose_length_ft,omitempty"`
	AttachmentSet   *string       `json:"attachment_set,omitempty"`
	PartsNeeded     []PartRequest `json:"parts_needed,omitempty"`
	Services        []string      `json:"services,omitempty"`
	CustomerName    *string       `json:"customer_name,omitempty"`
	CustomerAddress *string       `json:"customer_address,omitempty"`
}

// Validate checks the semantic rules JSON decoding cannot express.
func (d ExtractedDetails) Validate() error {
	for _, s := range []*string{d.ItemRequested, d.Model, d.AttachmentSet, d.CustomerName, d.CustomerAddress} {
		if s != nil && strings.TrimSpace(*s) == "" {
			return &ValidationError{Artifact: ArtifactDetails, Reason: "optional text fields must be omitted instead of empty"}
		}
	}
	if d.HoseLengthFt != nil && *d.HoseLengthFt <= 0 {
		return &ValidationError{Artifact: ArtifactDetails, Reason: "hose_length_ft must be positive"}
	}
	for _, p := range d.PartsNeeded {
		if strings.TrimSpace(p.PartName) == "" {
			return &ValidationError{Artifact: ArtifactDetails, Reason: "parts_needed entries require part_name"}
		}
		if p.Quantity < 1 {
			return &ValidationError{Artifact: ArtifactDetails, Reason: "parts_needed quantity must be at least 1"}
		}
	}
	for _, s := range d.Services {
		if strings.TrimSpace(s) == "" {
			return &ValidationError{Artifact: ArtifactDetails, Reason: "services entries must not be empty"}
		}
	}
	return nil
}

// ParseExtractedDetails is the modify-gate validator for details: the input
// must be a single JSON object with only known keys and well-typed values.
func ParseExtractedDetails(raw []byte) (ExtractedDetails, error) {
	var d ExtractedDetails
	if err := decodeStrict(raw, &d); err != nil {
		return ExtractedDetails{}, &ValidationError{Artifact: ArtifactDetails, Reason: "malformed JSON", Err: err}
	}
	if err := d.Validate(); err != nil {
		return ExtractedDetails{}, err
	}
	return d, nil
}

// Artifact names used in validation errors and proposals.
const (
	ArtifactDetails = "extracted_details"
	ArtifactQuote   = "quote"
	ArtifactEmail   = "email"
)

var errNotObject = errors.New("expected a JSON object")

func decodeStrict(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotObject
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// StringPtr returns a pointer to s; handy for building optional fields.
func StringPtr(s string) *string { return &s }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }
