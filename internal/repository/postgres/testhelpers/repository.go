package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewSnapshotRepositoryForTest creates a snapshot repository with test database and logger
func NewSnapshotRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SnapshotRepository {
	return postgres.NewSnapshotRepository(NewDBForTest(db, logger))
}
