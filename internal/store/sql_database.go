package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

const (
	// maxTxAttempts bounds how often a transaction classified as Retryable
	// is run in total.
	maxTxAttempts = 3
	// txRetryBase is the first backoff step; later steps double it.
	txRetryBase = 25 * time.Millisecond
)

// DB is an open database handle together with the dialect-specific pieces
// repositories need: the squirrel placeholder format, the error classifier
// and the migration set.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	schema             migrations.Schema
	logger             *logger.Logger
	// retryBase overrides txRetryBase when non-zero.
	retryBase time.Duration
}

// ErrorClassification tells inTx whether a failed transaction is worth
// another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator decides how a driver error is handled.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a primary key or unique
	// constraint violation.
	IsUniqueViolation(err error) bool
	// IsForeignKeyViolation reports whether err names a parent row that
	// does not exist.
	IsForeignKeyViolation(err error) bool
}

// Migrate applies the pending migrations of the database's schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.schema)
}

// inTx runs fn inside a transaction and commits it. A failure the
// classifier marks as Retryable reruns the whole transaction after an
// exponential backoff, until maxTxAttempts is reached or ctx is done.
func (db *DB) inTx(ctx context.Context, name string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	base := db.retryBase
	if base == 0 {
		base = txRetryBase
	}
	backoff := retry.WithMaxRetries(maxTxAttempts-1, retry.NewExponential(base))

	var (
		attempt int
		lastErr error
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		lastErr = db.runTx(ctx, fn)
		if lastErr == nil || db.errorClassificator.Classify(lastErr) != Retryable {
			return lastErr
		}
		log.Warn().Err(lastErr).Str("func", name).Int("attempt", attempt).Msg("retryable transaction failure")
		return retry.RetryableError(lastErr)
	})

	// retry.Do reports only ctx.Err() when the context ends between attempts.
	if lastErr != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) && !errors.Is(lastErr, ctx.Err()) {
		return fmt.Errorf("%w: %w", lastErr, err)
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// execBuilt builds q and executes it on runner.
func execBuilt(ctx context.Context, runner sq.ExecerContext, q sq.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := runner.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res, nil
}

// requireAffected turns an UPDATE that touched no rows into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
