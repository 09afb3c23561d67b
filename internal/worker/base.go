package worker

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/pkg/metrics"
)

// BaseWorker - общая часть воркеров каталога: остановка и учет перезагрузок
// снимка сети. Встраивается в конкретный воркер.
type BaseWorker struct {
	name          string
	consumerGroup string
	logger        *zap.Logger
	stopChan      chan struct{}

	mu     sync.Mutex
	status Status
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
		status: Status{
			Name:          name,
			ConsumerGroup: consumerGroup,
			State:         StateRegistered,
		},
	}
}

// Name возвращает имя воркера
func (w *BaseWorker) Name() string {
	return w.name
}

// Stop останавливает воркер. Состояние failed сохраняется.
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return nil
	default:
	}

	w.logger.Info("Stopping worker")
	close(w.stopChan)
	if w.status.State != StateFailed {
		w.status.State = StateStopped
	}
	return nil
}

// IsStopped проверяет, остановлен ли воркер
func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

// ConsumerGroup возвращает имя consumer group
func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

// Logger возвращает логгер с полем worker
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// MarkRunning - воркер подписан на стрим и ждет событий
func (w *BaseWorker) MarkRunning() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.status.State == StateRegistered {
		w.status.State = StateRunning
	}
}

// MarkFailed - воркер завершился с ошибкой
func (w *BaseWorker) MarkFailed(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status.State = StateFailed
	w.status.LastError = err.Error()
}

// RecordReload учитывает успешную замену снимка из source
func (w *BaseWorker) RecordReload(source string) {
	now := time.Now().UTC()

	w.mu.Lock()
	w.status.Reloads++
	w.status.LastSource = source
	w.status.LastReloadAt = &now
	w.status.LastError = ""
	w.mu.Unlock()

	metrics.CatalogueReloads.WithLabelValues(source, metrics.ReloadOK).Inc()
}

// RecordFailure учитывает неудачную загрузку снимка. Текущий каталог остается.
func (w *BaseWorker) RecordFailure(source string, err error) {
	w.mu.Lock()
	w.status.Failures++
	w.status.LastError = err.Error()
	w.mu.Unlock()

	metrics.CatalogueReloads.WithLabelValues(source, metrics.ReloadFailed).Inc()
}

// RecordSkipped учитывает событие, которое не привело к загрузке
func (w *BaseWorker) RecordSkipped(source string) {
	w.mu.Lock()
	w.status.Skipped++
	w.mu.Unlock()

	metrics.CatalogueReloads.WithLabelValues(source, metrics.ReloadSkipped).Inc()
}

// Status - копия текущего состояния
func (w *BaseWorker) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := w.status
	if st.LastReloadAt != nil {
		at := *st.LastReloadAt
		st.LastReloadAt = &at
	}
	return st
}
