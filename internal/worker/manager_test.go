package worker_test

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/worker"
)

type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.MarkRunning()
	w.started.Store(true)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// failingWorker падает при старте, как воркер без доступа к Redis
type failingWorker struct {
	*worker.BaseWorker
	err error
}

func (w *failingWorker) Start(ctx context.Context) error {
	return w.err
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
	assert.Empty(t, m.Statuses())
	assert.True(t, m.Healthy())
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	w := &blockingWorker{BaseWorker: worker.NewBaseWorker("blocking", "group", zap.NewNop())}
	m.Register(w)

	assert.Equal(t, worker.StateRegistered, m.Statuses()[0].State)

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)
	assert.Equal(t, worker.StateRunning, m.Statuses()[0].State)

	require.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())
	assert.True(t, m.Healthy())

	statuses := m.Statuses()
	require.Len(t, statuses, 1)
	assert.Equal(t, "blocking", statuses[0].Name)
	assert.Equal(t, "group", statuses[0].ConsumerGroup)
	assert.Equal(t, worker.StateStopped, statuses[0].State)
}

func TestWorkerManager_ReportsFailure(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	healthy := &blockingWorker{BaseWorker: worker.NewBaseWorker("healthy", "group", zap.NewNop())}
	failing := &failingWorker{
		BaseWorker: worker.NewBaseWorker("catalogue-reload", "group", zap.NewNop()),
		err:        stderrors.New("failed to create consumer group: connection refused"),
	}
	m.Register(healthy)
	m.Register(failing)

	require.NoError(t, m.Start(context.Background()))

	select {
	case f := <-m.Failures():
		assert.Equal(t, "catalogue-reload", f.Worker)
		assert.ErrorContains(t, f.Err, "connection refused")
	case <-time.After(2 * time.Second):
		t.Fatal("failure was not reported")
	}

	assert.False(t, m.Healthy())
	statuses := m.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, worker.StateFailed, statuses[1].State)
	assert.Contains(t, statuses[1].LastError, "connection refused")

	require.NoError(t, m.Stop())
	// после остановки упавший воркер остается failed
	assert.Equal(t, worker.StateFailed, m.Statuses()[1].State)
	assert.Equal(t, worker.StateStopped, m.Statuses()[0].State)
}

func TestWorkerManager_ContextCancelIsNotFailure(t *testing.T) {
	m := worker.NewWorkerManager(zap.NewNop())
	w := &blockingWorker{BaseWorker: worker.NewBaseWorker("blocking", "group", zap.NewNop())}
	m.Register(w)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, m.Start(ctx))
	assert.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)
	cancel()

	require.NoError(t, m.Stop())
	assert.True(t, m.Healthy())
	select {
	case f := <-m.Failures():
		t.Fatalf("unexpected failure: %v", f.Err)
	default:
	}
}
