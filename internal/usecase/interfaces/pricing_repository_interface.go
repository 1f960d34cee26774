package interfaces

import (
	"context"
	"quotebot/internal/domain/entities"
)

// IPricingRepository abstracts persistence for the pricing catalog.
//
// Seed is insert-or-ignore on (item_type, material) and returns how many rows
// were new, so seeding twice never duplicates entries.

type IPricingRepository interface {
	Seed(ctx context.Context, entries []entities.PricingEntry) (int, error)
	List(ctx context.Context) ([]entities.PricingEntry, error)
}
