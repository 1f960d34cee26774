package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

// Drafter writes the customer email with Gemini.
type Drafter struct {
	model   ContentGenerator
	timeout time.Duration
}

var _ interfaces.IEmailDrafter = (*Drafter)(nil)

func NewDrafter(model ContentGenerator, timeout time.Duration) *Drafter {
	return &Drafter{model: model, timeout: timeout}
}

func (d *Drafter) DraftEmail(
	ctx context.Context,
	customerRequest string,
	details entities.ExtractedDetails,
	quote entities.QuoteDraft,
	availability entities.AvailabilityInfo,
) (string, error) {
	prompt, err := draftPrompt(customerRequest, details, quote, availability)
	if err != nil {
		return "", &entities.DraftingError{Err: err}
	}

	text, err := generate(ctx, d.model, d.timeout, prompt)
	if err != nil {
		log.Printf("[llm][drafter] generate failed err=%v", err)
		return "", &entities.DraftingError{Err: err}
	}
	return stripCodeFence(text), nil
}

func draftPrompt(customerRequest string, details entities.ExtractedDetails, quote entities.QuoteDraft, availability entities.AvailabilityInfo) (string, error) {
	d, err := json.Marshal(details)
	if err != nil {
		return "", err
	}
	q, err := json.Marshal(quote)
	if err != nil {
		return "", err
	}
	a, err := json.Marshal(availability)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Customer Request:\n%s\n\nExtracted Details:\n%s\n\nFinal Approved Quote:\n%s\n\nAvailability Information:\n%s\n\nDraft an email for the customer.",
		customerRequest, d, q, a,
	), nil
}
