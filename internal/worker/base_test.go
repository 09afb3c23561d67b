package worker_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/worker"
)

func TestBaseWorker_ReloadAccounting(t *testing.T) {
	w := worker.NewBaseWorker("catalogue-reload", "group:host-1", zap.NewNop())

	st := w.Status()
	assert.Equal(t, worker.StateRegistered, st.State)
	assert.Nil(t, st.LastReloadAt)

	w.MarkRunning()
	w.RecordFailure(domain.SnapshotSourceFile, stderrors.New("snapshot is corrupt"))
	st = w.Status()
	assert.Equal(t, worker.StateRunning, st.State)
	assert.Equal(t, 1, st.Failures)
	assert.Equal(t, "snapshot is corrupt", st.LastError)

	w.RecordReload(domain.SnapshotSourcePostgres)
	w.RecordSkipped("unknown")
	st = w.Status()
	assert.Equal(t, 1, st.Reloads)
	assert.Equal(t, 1, st.Skipped)
	assert.Equal(t, domain.SnapshotSourcePostgres, st.LastSource)
	require.NotNil(t, st.LastReloadAt)
	assert.Empty(t, st.LastError, "successful reload clears the last error")

	// Status отдает копию
	st.LastReloadAt = nil
	assert.NotNil(t, w.Status().LastReloadAt)
}

func TestBaseWorker_Stop(t *testing.T) {
	w := worker.NewBaseWorker("catalogue-reload", "group", zap.NewNop())
	w.MarkRunning()

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	assert.Equal(t, worker.StateStopped, w.Status().State)

	select {
	case <-w.StopChan():
	default:
		t.Fatal("stop channel must be closed")
	}
}

func TestBaseWorker_FailedSurvivesStop(t *testing.T) {
	w := worker.NewBaseWorker("catalogue-reload", "group", zap.NewNop())
	w.MarkFailed(stderrors.New("redis unavailable"))
	require.NoError(t, w.Stop())

	st := w.Status()
	assert.Equal(t, worker.StateFailed, st.State)
	assert.Equal(t, "redis unavailable", st.LastError)
}
