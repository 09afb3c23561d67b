package repository

import (
	"context"

	"github.com/transport-catalogue/internal/domain"
)

// SnapshotRepository сохраняет и загружает снимок транспортной сети.
// Load для пустого хранилища возвращает ErrNotFound.
type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}
