package interfaces

import (
	"context"
	"quotebot/internal/domain/entities"
)

// IEmailDrafter writes the customer reply. Failures are reported as
// *entities.DraftingError.
type IEmailDrafter interface {
	DraftEmail(
		ctx context.Context,
		customerRequest string,
		details entities.ExtractedDetails,
		quote entities.QuoteDraft,
		availability entities.AvailabilityInfo,
	) (string, error)
}
