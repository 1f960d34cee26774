package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"quotebot/internal/domain/entities"
	"quotebot/internal/infrastructure/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "quotebot-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPricingSQLiteRepository_SeedIsInsertOrIgnore(t *testing.T) {
	ctx := context.Background()
	repo := NewPricingSQLiteRepository(openTestDB(t))

	seed := []entities.PricingEntry{
		{ItemType: entities.ItemTypePowerUnit, Material: "PP650", UnitCost: 1200, UnitKind: entities.UnitKindUnit},
		{ItemType: entities.ItemTypeService, Material: "New_System_Installation", UnitCost: 750, UnitKind: entities.UnitKindFlatFee},
	}
	n, err := repo.Seed(ctx, seed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted, got %d", n)
	}

	changed := []entities.PricingEntry{
		{ItemType: entities.ItemTypePowerUnit, Material: "PP650", UnitCost: 9999, UnitKind: entities.UnitKindUnit},
	}
	n, err = repo.Seed(ctx, changed)
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 inserted on reseed, got %d", n)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// ordered by item_type then material
	if got[0].ItemType != entities.ItemTypePowerUnit || got[0].UnitCost != 1200 {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].Material != "New_System_Installation" || got[1].UnitKind != entities.UnitKindFlatFee {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
}

func TestProjectSQLiteRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectSQLiteRepository(openTestDB(t))
	later := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return later }

	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:              "p-1",
		CustomerRequest: "I need a PP650",
		Status:          entities.ProjectStatusPendingExtraction,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "p-1" || got.CustomerRequest != "I need a PP650" || got.ExtractedDetails != nil {
		t.Fatalf("unexpected project: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at mismatch: %v", got.CreatedAt)
	}

	details := entities.ExtractedDetails{Model: entities.StringPtr("PP650"), Services: []string{"installation"}}
	got, err = repo.Update(ctx, "p-1", entities.ProjectUpdate{
		Status:           entities.ProjectStatusPendingExtractionApproval,
		ExtractedDetails: &details,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != entities.ProjectStatusPendingExtractionApproval {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if got.ExtractedDetails == nil || *got.ExtractedDetails.Model != "PP650" || got.ExtractedDetails.Services[0] != "installation" {
		t.Fatalf("details not stored: %+v", got.ExtractedDetails)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("updated_at not bumped: %v", got.UpdatedAt)
	}

	// a later update must not clear earlier artifacts
	msg := "model timeout"
	got, err = repo.Update(ctx, "p-1", entities.ProjectUpdate{
		Status:       entities.ProjectStatusQuoteFailed,
		ErrorDetails: &msg,
	})
	if err != nil {
		t.Fatalf("update failure: %v", err)
	}
	if got.ExtractedDetails == nil {
		t.Fatalf("extracted details cleared by later update")
	}
	if got.ErrorDetails == nil || *got.ErrorDetails != msg {
		t.Fatalf("error details not stored: %+v", got.ErrorDetails)
	}
}

func TestProjectSQLiteRepository_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectSQLiteRepository(openTestDB(t))

	got, err := repo.GetByID(ctx, "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero project, got %+v", got)
	}

	got, err = repo.Update(ctx, "missing", entities.ProjectUpdate{Status: entities.ProjectStatusAbortedByHuman})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero project, got %+v", got)
	}
}

func TestProjectSQLiteRepository_DuplicateCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectSQLiteRepository(openTestDB(t))
	p := entities.Project{ID: "dup", CustomerRequest: "x", Status: entities.ProjectStatusPendingExtraction}
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, p); err == nil {
		t.Fatalf("expected primary key violation")
	}
}
