package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// Quoter prices approved details against the catalog with Gemini.
type Quoter struct {
	model   ContentGenerator
	timeout time.Duration
}

var _ interfaces.IQuoteGenerator = (*Quoter)(nil)

func NewQuoter(model ContentGenerator, timeout time.Duration) *Quoter {
	return &Quoter{model: model, timeout: timeout}
}

func (q *Quoter) GenerateQuote(ctx context.Context, d entities.ExtractedDetails, catalog []entities.PricingEntry) (entities.QuoteDraft, error) {
	details, err := json.Marshal(d)
	if err != nil {
		return entities.QuoteDraft{}, &entities.QuotingError{Err: err}
	}
	prompt := fmt.Sprintf("Pricing Data:\n%s\n\nGenerate quote for the following extracted details:\n%s",
		PricingContext(catalog), details)

	text, err := generate(ctx, q.model, q.timeout, prompt)
	if err != nil {
		log.Printf("[llm][quoter] generate failed err=%v", err)
		return entities.QuoteDraft{}, &entities.QuotingError{Err: err}
	}

	quote, err := parseQuoteResponse(text)
	if err != nil {
		log.Printf("[llm][quoter] unusable response err=%v body=%q", err, text)
		return entities.QuoteDraft{}, &entities.QuotingError{Err: err}
	}
	return quote, nil
}

// PricingContext renders the catalog as prompt lines.
func PricingContext(catalog []entities.PricingEntry) string {
	lines := make([]string, 0, len(catalog))
	for _, p := range catalog {
		lines = append(lines, fmt.Sprintf("- Item Type: %s, Material: %s, Unit Cost: %s %s",
			p.ItemType, p.Material, entities.FormatMoney(p.UnitCost), p.UnitKind))
	}
	return strings.Join(lines, "\n")
}

func parseQuoteResponse(text string) (entities.QuoteDraft, error) {
	var quote entities.QuoteDraft
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &quote); err != nil {
		return entities.QuoteDraft{}, fmt.Errorf("decode quote: %w", err)
	}
	if quote.QuoteItems == nil {
		quote.QuoteItems = []entities.QuoteItem{}
	}
	quote.Subtotal = entities.Round2(quote.Subtotal)
	quote.Shipping = entities.Round2(quote.Shipping)
	quote.TotalEstimatedCost = entities.Round2(quote.TotalEstimatedCost)
	if quote.Notes != nil && strings.TrimSpace(*quote.Notes) == "" {
		quote.Notes = nil
	}
	if err := quote.Validate(); err != nil {
		return entities.QuoteDraft{}, err
	}
	return quote, nil
}
