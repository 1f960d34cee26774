package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"quotebot/internal/domain/entities"
	"quotebot/internal/usecase/interfaces"
)

var (
	ErrInvalidCatalogEntry = errors.New("invalid catalog entry")
	ErrDuplicateCatalogKey = errors.New("duplicate catalog key")
	ErrEmptyCatalog        = errors.New("pricing catalog is empty")
)

// ICatalogUseCase exposes the read-only pricing catalog.
//
//   - Load seeds the store (insert-or-ignore) and caches the ordered entries
//   - All returns the cached entries, loading them on first use

type ICatalogUseCase interface {
	Load(ctx context.Context) ([]entities.PricingEntry, error)
	All(ctx context.Context) ([]entities.PricingEntry, error)
}

type CatalogUseCase struct {
	repo interfaces.IPricingRepository
	seed []entities.PricingEntry

	mu      sync.Mutex
	entries []entities.PricingEntry
	loaded  bool
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IPricingRepository, seed []entities.PricingEntry) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, seed: seed}
}

func (u *CatalogUseCase) Load(ctx context.Context) ([]entities.PricingEntry, error) {
	if err := ValidateCatalog(u.seed); err != nil {
		return nil, err
	}

	inserted, err := u.repo.Seed(ctx, u.seed)
	if err != nil {
		log.Printf("[catalog][usecase] seed failed err=%v", err)
		return nil, err
	}
	log.Printf("[catalog][usecase] seed checked entries=%d inserted=%d", len(u.seed), inserted)

	entries, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed err=%v", err)
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	SortCatalog(entries)

	u.mu.Lock()
	u.entries = entries
	u.loaded = true
	u.mu.Unlock()

	return cloneEntries(entries), nil
}

func (u *CatalogUseCase) All(ctx context.Context) ([]entities.PricingEntry, error) {
	u.mu.Lock()
	loaded := u.loaded
	entries := u.entries
	u.mu.Unlock()

	if loaded {
		return cloneEntries(entries), nil
	}
	return u.Load(ctx)
}

// ValidateCatalog rejects seed data with bad unit kinds, negative costs or
// repeated (item_type, material) keys.
func ValidateCatalog(entries []entities.PricingEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ItemType == "" || e.Material == "" || e.UnitCost < 0 || !e.UnitKind.Valid() {
			return fmt.Errorf("%w: %+v", ErrInvalidCatalogEntry, e)
		}
		if _, ok := seen[e.Key()]; ok {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateCatalogKey, e.ItemType, e.Material)
		}
		seen[e.Key()] = struct{}{}
	}
	return nil
}

// SortCatalog orders entries by (item_type, material).
func SortCatalog(entries []entities.PricingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ItemType != entries[j].ItemType {
			return entries[i].ItemType < entries[j].ItemType
		}
		return entries[i].Material < entries[j].Material
	})
}

func cloneEntries(in []entities.PricingEntry) []entities.PricingEntry {
	out := make([]entities.PricingEntry, len(in))
	copy(out, in)
	return out
}
