package main

import (
	"context"
	"fmt"
	"os"

	"github.com/transport-catalogue/internal/config"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/loader"
	"github.com/transport-catalogue/internal/usecase"
)

// loadCatalogue загружает начальный каталог из источника, заданного в конфигурации.
// routing_settings документа или снимка важнее значений из конфигурации.
func loadCatalogue(
	ctx context.Context,
	cfg *config.Config,
	uc *usecase.CatalogueUseCase,
	sources map[string]repository.SnapshotRepository,
	fallback *domain.RoutingSettings,
) error {
	switch cfg.Catalogue.Source {
	case config.SourceJSON:
		f, err := os.Open(cfg.Catalogue.InputFile)
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()

		doc, err := loader.Decode(f)
		if err != nil {
			return err
		}
		cat, err := loader.Build(doc)
		if err != nil {
			return fmt.Errorf("build catalogue: %w", err)
		}

		settings := doc.RoutingSettings
		if settings == nil {
			settings = fallback
		}
		return uc.ReplaceCatalogue(ctx, cat, settings)

	case config.SourceSnapshot:
		return uc.LoadSnapshot(ctx, sources[domain.SnapshotSourceFile], fallback)

	case config.SourcePostgres:
		repo, ok := sources[domain.SnapshotSourcePostgres]
		if !ok {
			return fmt.Errorf("postgres source is not configured")
		}
		return uc.LoadSnapshot(ctx, repo, fallback)

	default:
		return fmt.Errorf("unknown catalogue source %q", cfg.Catalogue.Source)
	}
}
