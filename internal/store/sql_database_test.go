package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestDB_InTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	db.retryBase = time.Millisecond
	repo := NewDataEntryRepository(db, logger.Nop())

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectExec(q("INSERT INTO patients")).WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
		mock.ExpectRollback()
	}

	err := repo.CreatePatient(context.Background(), models.PatientAndReadings{Patient: models.Patient{ID: "p1"}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_InTx_StopsWhenContextEnds(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	db.retryBase = time.Hour
	repo := NewDataEntryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO patients")).WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectRollback()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := repo.CreatePatient(ctx, models.PatientAndReadings{Patient: models.Patient{ID: "p1"}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Less(t, time.Since(start), time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_InTx_NonRetryableRunsOnce(t *testing.T) {
	db, mock := newTestSQLiteDB(t)
	repo := NewDataEntryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO readings")).WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	err := repo.AddReading(context.Background(), models.Reading{ID: "r1", PatientID: "p1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
