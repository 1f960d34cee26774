package usecase

import (
	"context"
	"errors"
	"testing"

	"quotebot/internal/domain/entities"
	mock_interfaces "quotebot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Load(t *testing.T) {
	seed := []entities.PricingEntry{
		{ItemType: entities.ItemTypeService, Material: "Clog_Removal", UnitCost: 150, UnitKind: entities.UnitKindFlatFee},
		{ItemType: entities.ItemTypePowerUnit, Material: "PP650", UnitCost: 1200, UnitKind: entities.UnitKindUnit},
	}

	t.Run("invalid seed", func(t *testing.T) {
		bad := append([]entities.PricingEntry(nil), seed...)
		bad = append(bad, entities.PricingEntry{ItemType: "hose", Material: "50ft", UnitCost: 3, UnitKind: "per_mile"})
		uc := NewCatalogUseCase(nil, bad)
		if _, err := uc.Load(context.Background()); !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		dup := append([]entities.PricingEntry(nil), seed...)
		dup = append(dup, seed[0])
		uc := NewCatalogUseCase(nil, dup)
		if _, err := uc.Load(context.Background()); !errors.Is(err, ErrDuplicateCatalogKey) {
			t.Fatalf("expected ErrDuplicateCatalogKey, got %v", err)
		}
	})

	t.Run("seed error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewCatalogUseCase(repo, seed)

		repo.EXPECT().Seed(gomock.Any(), seed).Return(0, errors.New("db"))

		if _, err := uc.Load(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil)

		repo.EXPECT().Seed(gomock.Any(), gomock.Any()).Return(0, nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		if _, err := uc.Load(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
			t.Fatalf("expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("success sorts and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRepository(ctrl)
		uc := NewCatalogUseCase(repo, seed)

		stored := append([]entities.PricingEntry(nil), seed...)
		repo.EXPECT().Seed(gomock.Any(), seed).Return(2, nil).Times(1)
		repo.EXPECT().List(gomock.Any()).Return(stored, nil).Times(1)

		got, err := uc.All(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Material != "PP650" || got[1].Material != "Clog_Removal" {
			t.Fatalf("expected power_unit before service, got %+v", got)
		}

		got[0].UnitCost = 0
		again, err := uc.All(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again[0].UnitCost != 1200 {
			t.Fatalf("callers must not mutate the cached catalog")
		}
	})
}
