package store

import (
	"context"

	"github.com/MKhiriev/fieldsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntityStore is the device-side store of patients and their records as the
// sync engine sees it.
type EntityStore interface {
	// GetUnsyncedNewPatients returns patients the server has never seen,
	// each with all of its readings.
	GetUnsyncedNewPatients(ctx context.Context) ([]models.PatientAndReadings, error)

	// GetUnsyncedReadingsForSyncedPatients returns readings not yet uploaded
	// that belong to patients the server already knows.
	GetUnsyncedReadingsForSyncedPatients(ctx context.Context) ([]models.Reading, error)

	// GetEditedPatientsSince returns synced patients edited locally after
	// since (epoch seconds) that still differ from their server baseline.
	GetEditedPatientsSince(ctx context.Context, since int64) ([]models.Patient, error)

	// UpsertPatient inserts or fully replaces a patient row, Base included.
	UpsertPatient(ctx context.Context, patient models.Patient) error

	// UpsertReading inserts or replaces a reading row. Embedded referral and
	// follow-up are not written.
	UpsertReading(ctx context.Context, reading models.Reading) error

	// UpsertReferral inserts or replaces the referral of a reading.
	UpsertReferral(ctx context.Context, referral models.Referral) error

	// UpsertAssessment inserts or replaces an assessment.
	UpsertAssessment(ctx context.Context, assessment models.Assessment) error

	// MarkReadingUploaded flags a reading (and its referral) as known to
	// the server.
	MarkReadingUploaded(ctx context.Context, readingID string) error

	// MarkPatientSynced sets the server baseline of a patient without
	// touching any other column.
	MarkPatientSynced(ctx context.Context, patientID string, base int64) error
}

// CheckpointStore persists the time of the last completed sync.
type CheckpointStore interface {
	// LastSync returns the stored checkpoint in epoch seconds, 0 if none.
	LastSync(ctx context.Context) (int64, error)

	// SaveLastSync atomically replaces the checkpoint.
	SaveLastSync(ctx context.Context, ts int64) error
}

// DataEntryStore is how the device records new data between syncs.
type DataEntryStore interface {
	// CreatePatient stores a new, never-synced patient with its readings.
	CreatePatient(ctx context.Context, patient models.PatientAndReadings) error

	// AddReading stores a new reading for an existing patient.
	AddReading(ctx context.Context, reading models.Reading) error

	// EditPatient replaces the demographic fields of a patient and bumps
	// LastEdited; Base is left as is.
	EditPatient(ctx context.Context, patient models.Patient) error

	// GetPatient returns one patient with its readings.
	GetPatient(ctx context.Context, patientID string) (models.PatientAndReadings, error)

	// CountPending returns how many records wait for upload.
	CountPending(ctx context.Context) (models.PendingCounts, error)
}
