package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	Records RecordRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies the server migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records: NewRecordRepository(db, logger),
		db:      db,
	}, nil
}

// Close closes the database.
func (s *Storages) Close() error {
	return s.db.Close()
}
