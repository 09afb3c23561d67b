// Package reload подменяет каталог в процессе по событию CatalogueUpdatedEvent.
package reload

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/worker"
)

const (
	errorSleep      = time.Second
	emptyQueueSleep = 100 * time.Millisecond
)

// SnapshotLoader - загрузка снимка в текущий каталог
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, repo repository.SnapshotRepository, fallback *domain.RoutingSettings) error
}

// CatalogueReloadWorker слушает stream:catalogue:updated и перечитывает снимок
type CatalogueReloadWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	loader       SnapshotLoader
	sources      map[string]repository.SnapshotRepository
	fallback     *domain.RoutingSettings
	consumerName string
	batchSize    int
}

// NewCatalogueReloadWorker создает воркер. sources - репозитории снимков по полю
// Source события. Каждый процесс читает стрим своей consumer group, иначе событие
// получит только один экземпляр сервиса.
func NewCatalogueReloadWorker(
	streamRepo repository.StreamRepository,
	loader SnapshotLoader,
	sources map[string]repository.SnapshotRepository,
	fallback *domain.RoutingSettings,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *CatalogueReloadWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CatalogueReloadWorker{
		BaseWorker:   worker.NewBaseWorker("catalogue-reload", consumerGroup+":"+consumerName, logger),
		streamRepo:   streamRepo,
		loader:       loader,
		sources:      sources,
		fallback:     fallback,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start запускает воркер
func (w *CatalogueReloadWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CatalogueReloadWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCatalogueUpdated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		err = fmt.Errorf("failed to create consumer group: %w", err)
		w.MarkFailed(err)
		return err
	}
	w.MarkRunning()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, errorSleep)
				continue
			}
			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

func (w *CatalogueReloadWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// processBatch читает пачку событий и перечитывает снимок один раз по последнему событию.
// Возвращает количество прочитанных сообщений.
func (w *CatalogueReloadWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamCatalogueUpdated,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	var latest *domain.CatalogueUpdatedEvent
	messageIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamCatalogueUpdated, w.ConsumerGroup(), msg.ID)
			continue
		}
		latest = event
		messageIDs = append(messageIDs, msg.ID)
	}

	if latest == nil {
		return len(messages), nil
	}

	repo, ok := w.sources[latest.Source]
	if !ok {
		logger.Warn("Unknown snapshot source, event skipped",
			zap.String("event_id", latest.EventID.String()),
			zap.String("source", latest.Source))
		// метка источника ограничена известными значениями
		w.RecordSkipped("unknown")
		_ = w.streamRepo.AckMessages(ctx, domain.StreamCatalogueUpdated, w.ConsumerGroup(), messageIDs)
		return len(messages), nil
	}

	// при ошибке остается прежний каталог, события остаются в pending
	if err := w.loader.LoadSnapshot(ctx, repo, w.fallback); err != nil {
		w.RecordFailure(latest.Source, err)
		return 0, fmt.Errorf("reload catalogue from %s: %w", latest.Source, err)
	}
	w.RecordReload(latest.Source)

	if err := w.streamRepo.AckMessages(ctx, domain.StreamCatalogueUpdated, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Catalogue reloaded",
		zap.String("event_id", latest.EventID.String()),
		zap.String("source", latest.Source),
		zap.Int("stops", latest.Stops),
		zap.Int("bus_lines", latest.BusLines),
		zap.Int("events", len(messageIDs)))

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в CatalogueUpdatedEvent
func (w *CatalogueReloadWorker) parseMessage(msg domain.StreamMessage) (*domain.CatalogueUpdatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.CatalogueUpdatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
