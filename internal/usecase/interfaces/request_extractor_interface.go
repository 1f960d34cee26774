package interfaces

import (
	"context"
	"quotebot/internal/domain/entities"
)

// IRequestExtractor turns a free-text customer request into structured details.
// Failures are reported as *entities.ExtractionError.
type IRequestExtractor interface {
	Extract(ctx context.Context, customerRequest string) (entities.ExtractedDetails, error)
}
