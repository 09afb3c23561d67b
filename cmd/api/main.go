package main

// @title Transport Catalogue API
// @version 1.0.0
// @description Справочник транспортной сети: статистика маршрутов, маршруты через остановку
// @description и поиск самого быстрого пути с пересадками.

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/config"
	httpDelivery "github.com/transport-catalogue/internal/delivery/http"
	"github.com/transport-catalogue/internal/delivery/http/handler"
	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/pkg/logger"
	"github.com/transport-catalogue/internal/repository/cache"
	"github.com/transport-catalogue/internal/repository/postgres"
	redisRepo "github.com/transport-catalogue/internal/repository/redis"
	"github.com/transport-catalogue/internal/repository/snapshotfile"
	"github.com/transport-catalogue/internal/usecase"
	"github.com/transport-catalogue/internal/worker"
	"github.com/transport-catalogue/internal/worker/reload"
)

func main() {
	configPath := flag.String("config", ".env", "path to .env configuration file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transport Catalogue")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalogue_source", cfg.Catalogue.Source),
		zap.Bool("database", cfg.Database.Enabled),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("worker", cfg.Worker.Enabled),
	)

	// 3. Optional connections
	var db *postgres.DB
	if cfg.Database.Enabled {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
	}

	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	// 4. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}
	cancel()

	// 5. Initialize Repositories
	sources := map[string]repository.SnapshotRepository{
		domain.SnapshotSourceFile: snapshotfile.NewSnapshotRepository(cfg.Catalogue.SnapshotFile, log),
	}
	if db != nil {
		sources[domain.SnapshotSourcePostgres] = postgres.NewSnapshotRepository(db)
	}

	var cacheRepo repository.CacheRepository
	if redisClient != nil {
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	// 6. Initialize Use Cases
	catalogueUC := usecase.NewCatalogueUseCase(cacheRepo, usecase.CatalogueConfig{
		RouteInfoTTL:  cfg.Cache.RouteInfoTTL,
		ItineraryTTL:  cfg.Cache.ItineraryTTL,
		SkipSelfLoops: cfg.Routing.SkipSelfLoops,
	}, log)

	fallback := cfg.RoutingFallback()

	loadCtx, loadCancel := context.WithTimeout(context.Background(), time.Minute)
	err = loadCatalogue(loadCtx, cfg, catalogueUC, sources, fallback)
	loadCancel()
	if err != nil {
		log.Fatal("Failed to load catalogue", zap.String("source", cfg.Catalogue.Source), zap.Error(err))
	}

	// 7. Workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var (
		workerManager  *worker.WorkerManager
		workerStatuses handler.WorkerStatusProvider
		workerFailures <-chan worker.Failure
	)
	if cfg.Worker.Enabled {
		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(reload.NewCatalogueReloadWorker(
			streamRepo,
			catalogueUC,
			sources,
			fallback,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.BatchSize,
			log,
		))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
		workerStatuses = workerManager
		workerFailures = workerManager.Failures()
	}

	// 8. HTTP
	catalogueHandler := handler.NewCatalogueHandler(catalogueUC, workerStatuses, log)
	server := httpDelivery.NewServer(cfg, log, catalogueHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.Uint64("generation", catalogueUC.Generation()),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Упавший воркер не роняет сервис: ответы идут по последнему снимку, /health - degraded
wait:
	for {
		select {
		case <-quit:
			break wait
		case f := <-workerFailures:
			log.Error("Catalogue reload stopped, serving the last loaded snapshot",
				zap.String("worker", f.Worker),
				zap.Uint64("generation", catalogueUC.Generation()),
				zap.Error(f.Err),
			)
		}
	}

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workerManager != nil {
		workerCancel()
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
