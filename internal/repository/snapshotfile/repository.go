// Package snapshotfile хранит снимок каталога в бинарном файле (protobuf wire format).
package snapshotfile

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/pkg/errors"
)

type snapshotRepository struct {
	path   string
	logger *zap.Logger
}

// NewSnapshotRepository создает репозиторий снимка в файле path
func NewSnapshotRepository(path string, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		path:   path,
		logger: logger,
	}
}

// Save пишет снимок во временный файл и переименовывает его,
// поэтому читатель никогда не увидит недописанный файл.
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}

	r.logger.Info("Snapshot saved",
		zap.String("path", r.path),
		zap.Int("bytes", len(data)),
		zap.Int("stops", len(snap.Stops)),
		zap.Int("bus_lines", len(snap.BusLines)))
	return nil
}

// Load читает снимок. Отсутствующий файл - ErrNotFound
func (r *snapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"snapshot": r.path})
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snap, err := Unmarshal(data)
	if err != nil {
		r.logger.Error("Failed to decode snapshot", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("decode snapshot %s: %w", r.path, err)
	}

	r.logger.Debug("Snapshot loaded",
		zap.String("path", r.path),
		zap.Int("stops", len(snap.Stops)))
	return snap, nil
}
