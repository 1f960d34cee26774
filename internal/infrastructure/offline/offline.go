// Package offline holds deterministic stand-ins for the Gemini collaborators.
// They are selected with LLM_MOCK=true and back the end-to-end tests.
package offline

import (
	"context"
	"strconv"

	"quotebot/internal/domain/entities"
)

// CatalogSource provides the ordered pricing catalog.
type CatalogSource interface {
	All(ctx context.Context) ([]entities.PricingEntry, error)
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
