package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/config"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/loader"
	"github.com/transport-catalogue/internal/repository/cache"
	"github.com/transport-catalogue/internal/repository/postgres"
	redisRepo "github.com/transport-catalogue/internal/repository/redis"
	"github.com/transport-catalogue/internal/repository/snapshotfile"
	"github.com/transport-catalogue/internal/usecase"
	"github.com/transport-catalogue/internal/usecase/dto"
)

// snapshotPath - файл из serialization_settings, иначе из конфигурации
func snapshotPath(doc *dto.Document, cfg *config.Config) string {
	if doc.SerializationSettings != nil && doc.SerializationSettings.File != "" {
		return doc.SerializationSettings.File
	}
	return cfg.Catalogue.SnapshotFile
}

// routingSettings - параметры графа из документа, иначе из конфигурации
func routingSettings(doc *dto.Document, cfg *config.Config) *domain.RoutingSettings {
	if doc.RoutingSettings != nil {
		return doc.RoutingSettings
	}
	return cfg.RoutingFallback()
}

func newUseCase(cfg *config.Config, log *zap.Logger) *usecase.CatalogueUseCase {
	return usecase.NewCatalogueUseCase(nil, usecase.CatalogueConfig{
		SkipSelfLoops: cfg.Routing.SkipSelfLoops,
	}, log)
}

// makeBase строит каталог по base_requests, проверяет, что граф строится,
// и сохраняет снимок в файл и, если включено, в Postgres
func makeBase(ctx context.Context, cfg *config.Config, in io.Reader, log *zap.Logger) error {
	doc, err := loader.Decode(in)
	if err != nil {
		return err
	}

	cat, err := loader.Build(doc)
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}

	uc := newUseCase(cfg, log)
	if err := uc.ReplaceCatalogue(ctx, cat, routingSettings(doc, cfg)); err != nil {
		return err
	}
	snap := uc.Snapshot()

	path := snapshotPath(doc, cfg)
	if err := snapshotfile.NewSnapshotRepository(path, log).Save(ctx, snap); err != nil {
		return err
	}
	source := domain.SnapshotSourceFile

	if cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer db.Close()

		if err := postgres.NewSnapshotRepository(db).Save(ctx, snap); err != nil {
			return err
		}
		source = domain.SnapshotSourcePostgres
	}

	stops, busLines := uc.Stats()
	log.Info("Base saved",
		zap.String("file", path),
		zap.String("source", source),
		zap.Int("stops", stops),
		zap.Int("bus_lines", busLines),
		zap.Bool("routing", snap.Routing != nil))

	if !cfg.Redis.Enabled {
		return nil
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()

	event := domain.CatalogueUpdatedEvent{
		EventID:     uuid.New(),
		Source:      source,
		Stops:       stops,
		BusLines:    busLines,
		PublishedAt: time.Now().UTC(),
	}
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	if err := streamRepo.PublishToStream(ctx, domain.StreamCatalogueUpdated, event); err != nil {
		return err
	}

	log.Info("Catalogue update published", zap.String("event_id", event.EventID.String()))
	return nil
}

// processRequests загружает снимок и печатает ответы на stat_requests
func processRequests(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	doc, err := loader.Decode(in)
	if err != nil {
		return err
	}

	uc := newUseCase(cfg, log)
	repo := snapshotfile.NewSnapshotRepository(snapshotPath(doc, cfg), log)
	// параметры из снимка важнее, документ и конфигурация - запасной вариант
	if err := uc.LoadSnapshot(ctx, repo, routingSettings(doc, cfg)); err != nil {
		return err
	}

	answers, err := loader.Answer(ctx, uc, doc.StatRequests)
	if err != nil {
		return err
	}
	return loader.WriteAnswers(out, answers)
}

// processText строит каталог из текстового формата и сразу отвечает на запросы.
// Снимок не пишется, маршруты строятся по параметрам из конфигурации.
func processText(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	doc, err := loader.DecodeText(in)
	if err != nil {
		return err
	}

	cat, err := loader.Build(doc)
	if err != nil {
		return fmt.Errorf("build catalogue: %w", err)
	}

	uc := newUseCase(cfg, log)
	if err := uc.ReplaceCatalogue(ctx, cat, cfg.RoutingFallback()); err != nil {
		return err
	}

	answers, err := loader.Answer(ctx, uc, doc.StatRequests)
	if err != nil {
		return err
	}
	return loader.WriteTextAnswers(out, doc.StatRequests, answers)
}
