package app

import (
	"context"
	"path/filepath"
	"testing"

	"quotebot/internal/domain/entities"
	"quotebot/internal/infrastructure/config"
)

func TestNew_OfflineSQLite(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: config.BackendSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "app.db"),
		LLMMock:      true,
	}
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	entries, err := a.Catalog.All(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(entries) != 22 {
		t.Fatalf("expected 22 catalog entries, got %d", len(entries))
	}

	p, err := a.Workflow.Submit(context.Background(), "I need a PP650 with installation")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.Status != entities.ProjectStatusPendingExtractionApproval {
		t.Fatalf("unexpected status: %s", p.Status)
	}
}

func TestNew_BadCatalogPath(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: config.BackendSQLite,
		SQLitePath:   filepath.Join(t.TempDir(), "app.db"),
		CatalogPath:  filepath.Join(t.TempDir(), "missing.yaml"),
		LLMMock:      true,
	}
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
