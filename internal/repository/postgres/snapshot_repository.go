package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/transport-catalogue/internal/domain"
	"github.com/transport-catalogue/internal/domain/repository"
	"github.com/transport-catalogue/internal/pkg/errors"
)

type snapshotRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSnapshotRepository создает репозиторий снимка каталога в PostgreSQL
func NewSnapshotRepository(db *DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db:     db,
		logger: db.logger,
	}
}

type metaRow struct {
	BusWaitTime sql.NullInt64   `db:"bus_wait_time"`
	BusVelocity sql.NullFloat64 `db:"bus_velocity"`
}

type stopRow struct {
	ID        int     `db:"id"`
	Name      string  `db:"name"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

type busLineRow struct {
	Position  int            `db:"position"`
	Name      string         `db:"name"`
	Roundtrip bool           `db:"is_roundtrip"`
	Stops     pq.StringArray `db:"stops"`
}

type distanceRow struct {
	FromStopID int    `db:"from_stop_id"`
	ToStopID   int    `db:"to_stop_id"`
	FromStop   string `db:"from_stop"`
	ToStop     string `db:"to_stop"`
	Meters     int    `db:"meters"`
}

// Save заменяет сохраненный снимок целиком в одной транзакции
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"road_distances", "bus_lines", "stops", "snapshot_meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return r.dbError("clear "+table, err)
		}
	}

	meta := metaRow{}
	if snap.Routing != nil {
		meta.BusWaitTime = sql.NullInt64{Int64: int64(snap.Routing.BusWaitTime), Valid: true}
		meta.BusVelocity = sql.NullFloat64{Float64: snap.Routing.BusVelocity, Valid: true}
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO snapshot_meta (id, bus_wait_time, bus_velocity)
		VALUES (1, :bus_wait_time, :bus_velocity)`, meta); err != nil {
		return r.dbError("insert snapshot meta", err)
	}

	stopIDs := make(map[string]int, len(snap.Stops))
	if len(snap.Stops) > 0 {
		rows := make([]stopRow, len(snap.Stops))
		for i, s := range snap.Stops {
			rows[i] = stopRow{ID: i, Name: s.Name, Latitude: s.Coordinates.Lat, Longitude: s.Coordinates.Lon}
			stopIDs[s.Name] = i
		}
		if err := namedInsertBatches(ctx, tx, `
			INSERT INTO stops (id, name, latitude, longitude)
			VALUES (:id, :name, :latitude, :longitude)`, rows); err != nil {
			return r.dbError("insert stops", err)
		}
	}

	if len(snap.BusLines) > 0 {
		rows := make([]busLineRow, len(snap.BusLines))
		for i, b := range snap.BusLines {
			rows[i] = busLineRow{Position: i, Name: b.Name, Roundtrip: b.Roundtrip, Stops: pq.StringArray(b.Stops)}
		}
		if err := namedInsertBatches(ctx, tx, `
			INSERT INTO bus_lines (position, name, is_roundtrip, stops)
			VALUES (:position, :name, :is_roundtrip, :stops)`, rows); err != nil {
			return r.dbError("insert bus lines", err)
		}
	}

	if len(snap.Distances) > 0 {
		rows := make([]distanceRow, len(snap.Distances))
		for i, d := range snap.Distances {
			from, ok := stopIDs[d.From]
			if !ok {
				return errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": d.From})
			}
			to, ok := stopIDs[d.To]
			if !ok {
				return errors.ErrUnknownStop.WithDetails(map[string]interface{}{"stop": d.To})
			}
			rows[i] = distanceRow{FromStopID: from, ToStopID: to, Meters: d.Meters}
		}
		if err := namedInsertBatches(ctx, tx, `
			INSERT INTO road_distances (from_stop_id, to_stop_id, meters)
			VALUES (:from_stop_id, :to_stop_id, :meters)`, rows); err != nil {
			return r.dbError("insert road distances", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return r.dbError("commit snapshot", err)
	}

	r.logger.Info("Snapshot saved to database",
		zap.Int("stops", len(snap.Stops)),
		zap.Int("bus_lines", len(snap.BusLines)),
		zap.Int("distances", len(snap.Distances)))
	return nil
}

// Load читает снимок. Если снимок ни разу не сохранялся - ErrNotFound
func (r *snapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	var meta metaRow
	err := r.db.GetContext(ctx, &meta, `SELECT bus_wait_time, bus_velocity FROM snapshot_meta WHERE id = 1`)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{"snapshot": "postgres"})
	}
	if err != nil {
		return nil, r.dbError("select snapshot meta", err)
	}

	var stops []stopRow
	if err := r.db.SelectContext(ctx, &stops,
		`SELECT id, name, latitude, longitude FROM stops ORDER BY id`); err != nil {
		return nil, r.dbError("select stops", err)
	}

	var buses []busLineRow
	if err := r.db.SelectContext(ctx, &buses,
		`SELECT position, name, is_roundtrip, stops FROM bus_lines ORDER BY position`); err != nil {
		return nil, r.dbError("select bus lines", err)
	}

	var distances []distanceRow
	if err := r.db.SelectContext(ctx, &distances, `
		SELECT d.from_stop_id, d.to_stop_id, f.name AS from_stop, t.name AS to_stop, d.meters
		FROM road_distances d
		JOIN stops f ON f.id = d.from_stop_id
		JOIN stops t ON t.id = d.to_stop_id
		ORDER BY d.from_stop_id, d.to_stop_id`); err != nil {
		return nil, r.dbError("select road distances", err)
	}

	snap := &domain.Snapshot{
		Stops:     make([]domain.Stop, len(stops)),
		BusLines:  make([]domain.SnapshotBusLine, len(buses)),
		Distances: make([]domain.DistanceEntry, len(distances)),
	}
	for i, s := range stops {
		snap.Stops[i] = domain.Stop{
			ID:          domain.StopID(i),
			Name:        s.Name,
			Coordinates: domain.Coordinates{Lat: s.Latitude, Lon: s.Longitude},
		}
	}
	for i, b := range buses {
		snap.BusLines[i] = domain.SnapshotBusLine{Name: b.Name, Roundtrip: b.Roundtrip, Stops: []string(b.Stops)}
	}
	for i, d := range distances {
		snap.Distances[i] = domain.DistanceEntry{From: d.FromStop, To: d.ToStop, Meters: d.Meters}
	}
	if meta.BusWaitTime.Valid && meta.BusVelocity.Valid {
		snap.Routing = &domain.RoutingSettings{
			BusWaitTime: int(meta.BusWaitTime.Int64),
			BusVelocity: meta.BusVelocity.Float64,
		}
	}

	r.logger.Debug("Snapshot loaded from database",
		zap.Int("stops", len(snap.Stops)),
		zap.Int("bus_lines", len(snap.BusLines)))
	return snap, nil
}

func (r *snapshotRepository) dbError(op string, err error) error {
	r.logger.Error("Snapshot query failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, errors.ErrDatabaseError.WithDetails(map[string]interface{}{
		"op":    op,
		"error": err.Error(),
	}))
}

// insertBatchSize ограничивает число параметров одного INSERT (лимит PostgreSQL - 65535)
const insertBatchSize = 1000

func namedInsertBatches[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}
