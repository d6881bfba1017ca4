package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

// checkpointRowID is the id of the single sync_state row.
const checkpointRowID = 1

type checkpointRepository struct {
	*DB
	logger *logger.Logger
}

// NewCheckpointRepository constructs a [CheckpointStore] on the device
// database.
func NewCheckpointRepository(db *DB, logger *logger.Logger) CheckpointStore {
	return &checkpointRepository{
		DB:     db,
		logger: logger,
	}
}

// LastSync implements [CheckpointStore].
func (c *checkpointRepository) LastSync(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.Select("last_sync").
		From(tableSyncState).
		Where(sq.Eq{"id": checkpointRowID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ts int64
	err = c.QueryRowContext(ctx, query, args...).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).Str("func", "checkpointRepository.LastSync").Msg("failed to read checkpoint")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ts, nil
}

// SaveLastSync implements [CheckpointStore]. The row is replaced in a
// single statement.
func (c *checkpointRepository) SaveLastSync(ctx context.Context, ts int64) error {
	q := c.builder.Replace(tableSyncState).
		Columns("id", "last_sync").
		Values(checkpointRowID, ts)

	if _, err := execBuilt(ctx, c.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "checkpointRepository.SaveLastSync").Int64("checkpoint", ts).Msg("failed to save checkpoint")
		return err
	}

	return nil
}
