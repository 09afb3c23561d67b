package worker

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// shutdownTimeout - максимальное время ожидания завершения воркеров
	shutdownTimeout = 30 * time.Second

	failureBuffer = 8
)

// WorkerManager запускает воркеры каталога и сообщает об их падении.
// Упавший воркер не останавливает сервис: API продолжает отвечать по
// последнему загруженному снимку, а /health показывает состояние degraded.
type WorkerManager struct {
	workers  []Worker
	failed   map[string]error
	failures chan Failure
	logger   *zap.Logger
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewWorkerManager создает новый WorkerManager
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:  make([]Worker, 0),
		failed:   make(map[string]error),
		failures: make(chan Failure, failureBuffer),
		logger:   logger,
	}
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все зарегистрированные воркеры
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, worker := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			err := w.Start(ctx)
			if err == nil || stderrors.Is(err, context.Canceled) {
				return
			}
			m.reportFailure(w, err)
		}(worker)
	}

	return nil
}

func (m *WorkerManager) reportFailure(w Worker, err error) {
	m.mu.Lock()
	m.failed[w.Name()] = err
	m.mu.Unlock()

	m.logger.Error("Worker failed, catalogue updates are no longer applied",
		zap.String("name", w.Name()),
		zap.Error(err))

	select {
	case m.failures <- Failure{Worker: w.Name(), Err: err}:
	default:
		m.logger.Warn("Failure channel is full, failure not delivered", zap.String("name", w.Name()))
	}
}

// Failures - канал падений воркеров
func (m *WorkerManager) Failures() <-chan Failure {
	return m.failures
}

// Statuses - состояние всех воркеров. Падение, замеченное менеджером,
// важнее состояния, которое воркер сообщает сам.
func (m *WorkerManager) Statuses() []Status {
	workers := m.snapshot()

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Status, 0, len(workers))
	for _, w := range workers {
		st := w.Status()
		if err, ok := m.failed[w.Name()]; ok {
			st.State = StateFailed
			st.LastError = err.Error()
		}
		out = append(out, st)
	}
	return out
}

// Healthy - ни один воркер не упал
func (m *WorkerManager) Healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.failed) == 0
}

// Stop останавливает все воркеры с timeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, worker := range workers {
		if err := worker.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", worker.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped gracefully")
	case <-time.After(shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out, a reload may still be in progress",
			zap.Duration("timeout", shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", shutdownTimeout)
	}

	return nil
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()

	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}
