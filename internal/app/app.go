// Package app assembles the repositories, collaborators and use cases shared
// by the HTTP server and the terminal client.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"quotebot/internal/adapter/persistence/repository"
	"quotebot/internal/domain/entities"
	"quotebot/internal/infrastructure/catalog"
	"quotebot/internal/infrastructure/config"
	"quotebot/internal/infrastructure/database"
	"quotebot/internal/infrastructure/llm"
	"quotebot/internal/infrastructure/offline"
	"quotebot/internal/usecase"
	"quotebot/internal/usecase/interfaces"
)

type App struct {
	Config   *config.Config
	Catalog  *usecase.CatalogUseCase
	Workflow *usecase.WorkflowUseCase

	closers []io.Closer
}

// Stores opens the configured record store.
func Stores(ctx context.Context, cfg *config.Config) (interfaces.IProjectRepository, interfaces.IPricingRepository, []io.Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.EnsureDynamoTables(ctx, ddb, cfg.ProjectsTable, cfg.PricingTable); err != nil {
			return nil, nil, nil, err
		}
		log.Printf("[app][store] backend=dynamodb projects_table=%s pricing_table=%s", cfg.ProjectsTable, cfg.PricingTable)
		return repository.NewProjectDynamoRepository(ddb, cfg.ProjectsTable),
			repository.NewPricingDynamoRepository(ddb, cfg.PricingTable), nil, nil
	default:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Printf("[app][store] backend=sqlite path=%s", cfg.SQLitePath)
		return repository.NewProjectSQLiteRepository(db),
			repository.NewPricingSQLiteRepository(db), []io.Closer{db}, nil
	}
}

// SeedEntries returns the catalog rows from CATALOG_PATH or the built-in set.
func SeedEntries(cfg *config.Config) ([]entities.PricingEntry, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.Default()
}

// New wires everything and loads the catalog. Callers must Close the result.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.ValidateLLM(); err != nil {
		return nil, err
	}
	projects, pricing, closers, err := Stores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a := &App{Config: cfg, closers: closers}

	seed, err := SeedEntries(cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	a.Catalog = usecase.NewCatalogUseCase(pricing, seed)
	if _, err := a.Catalog.Load(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var (
		extractor interfaces.IRequestExtractor
		quoter    interfaces.IQuoteGenerator
		drafter   interfaces.IEmailDrafter
	)
	if cfg.LLMMock {
		log.Printf("[app][llm] mock mode enabled; using offline collaborators")
		extractor = offline.NewKeywordExtractor(a.Catalog)
		quoter = offline.NewCatalogQuoter()
		drafter = offline.NewTemplateDrafter("CustomCraft")
	} else {
		vc, err := llm.NewVertexClient(ctx, cfg.GCPProject, cfg.VertexAIRegion, cfg.GeminiModel)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("vertex client: %w", err)
		}
		a.closers = append(a.closers, vc)
		log.Printf("[app][llm] vertex ai project=%s region=%s model=%s", cfg.GCPProject, cfg.VertexAIRegion, cfg.GeminiModel)
		extractor = llm.NewExtractor(vc.ExtractorModel, cfg.LLMTimeout)
		quoter = llm.NewQuoter(vc.QuoterModel, cfg.LLMTimeout)
		drafter = llm.NewDrafter(vc.DrafterModel, cfg.LLMTimeout)
	}

	a.Workflow = usecase.NewWorkflowUseCase(projects, a.Catalog, extractor, quoter, drafter)
	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
