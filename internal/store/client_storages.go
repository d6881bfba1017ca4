package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/logger"
)

// ClientStorages groups the device-side repositories, all backed by one
// SQLite database.
type ClientStorages struct {
	// Entities is what the sync engine reads and writes.
	Entities EntityStore
	// Checkpoints holds the time of the last completed sync.
	Checkpoints CheckpointStore
	// DataEntry is how new data is recorded between syncs.
	DataEntry DataEntryStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite file named by cfg.DB.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Entities:    NewEntityRepository(db, logger),
		Checkpoints: NewCheckpointRepository(db, logger),
		DataEntry:   NewDataEntryRepository(db, logger),
		db:          db,
	}
}

// Close closes the database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
