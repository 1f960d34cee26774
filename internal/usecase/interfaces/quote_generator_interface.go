package interfaces

import (
	"context"
	"quotebot/internal/domain/entities"
)

// IQuoteGenerator prices approved details against the catalog.
//
// Items with no catalog match are tagged with the "TBD" sentinel instead of
// failing the call. Failures are reported as *entities.QuotingError.
type IQuoteGenerator interface {
	GenerateQuote(ctx context.Context, details entities.ExtractedDetails, catalog []entities.PricingEntry) (entities.QuoteDraft, error)
}
