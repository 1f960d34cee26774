package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// Extractor turns the customer's free text into ExtractedDetails with Gemini.
type Extractor struct {
	model   ContentGenerator
	timeout time.Duration
}

var _ interfaces.IRequestExtractor = (*Extractor)(nil)

func NewExtractor(model ContentGenerator, timeout time.Duration) *Extractor {
	return &Extractor{model: model, timeout: timeout}
}

func (e *Extractor) Extract(ctx context.Context, customerRequest string) (entities.ExtractedDetails, error) {
	text, err := generate(ctx, e.model, e.timeout, "Customer Request: "+customerRequest)
	if err != nil {
		log.Printf("[llm][extractor] generate failed err=%v", err)
		return entities.ExtractedDetails{}, &entities.ExtractionError{Err: err}
	}

	d, err := parseDetailsResponse(text)
	if err != nil {
		log.Printf("[llm][extractor] unusable response err=%v body=%q", err, text)
		return entities.ExtractedDetails{}, &entities.ExtractionError{Err: err}
	}
	return d, nil
}

// parseDetailsResponse accepts the model's looser output: "N/A" or empty
// values are dropped, unknown keys are ignored, numeric strings are converted
// and parts without a quantity get 1.
func parseDetailsResponse(text string) (entities.ExtractedDetails, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return entities.ExtractedDetails{}, fmt.Errorf("decode details: %w", err)
	}

	var d entities.ExtractedDetails
	d.ItemRequested = optionalText(raw["item_requested"])
	d.Model = optionalText(raw["model"])
	d.AttachmentSet = optionalText(raw["attachment_set"])
	d.CustomerName = optionalText(raw["customer_name"])
	d.CustomerAddress = optionalText(raw["customer_address"])

	if v, ok := toNumber(raw["hose_length_ft"]); ok && v > 0 {
		d.HoseLengthFt = entities.FloatPtr(v)
	}

	if parts, ok := raw["parts_needed"].([]any); ok {
		for _, p := range parts {
			obj, ok := p.(map[string]any)
			if !ok {
				continue
			}
			name := optionalText(obj["part_name"])
			if name == nil {
				continue
			}
			qty := 1
			if v, ok := toNumber(obj["quantity"]); ok && v >= 1 {
				qty = int(math.Round(v))
			}
			d.PartsNeeded = append(d.PartsNeeded, entities.PartRequest{PartName: *name, Quantity: qty})
		}
	}

	if services, ok := raw["services"].([]any); ok {
		for _, s := range services {
			if name := optionalText(s); name != nil {
				d.Services = append(d.Services, *name)
			}
		}
	}

	if err := d.Validate(); err != nil {
		return entities.ExtractedDetails{}, err
	}
	return d, nil
}

func optionalText(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}
	return &s
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
