package store

import (
	"context"

	"github.com/MKhiriev/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordRepository is the server-side store of patients and their records.
// Every write takes the server time it happened at; the sync manifest is
// computed from those times.
type RecordRepository interface {
	// CreatePatient stores a patient together with its readings and their
	// referrals. Returns ErrAlreadyExists if the patient id is taken.
	CreatePatient(ctx context.Context, patient models.PatientAndReadings, workerID string, now int64) error
	// GetPatient returns one patient without readings.
	GetPatient(ctx context.Context, patientID string) (models.Patient, error)
	// GetPatientReadings returns every reading of a patient with its
	// referral.
	GetPatientReadings(ctx context.Context, patientID string) ([]models.Reading, error)
	// UpdatePatient replaces the demographic fields of a patient.
	UpdatePatient(ctx context.Context, patient models.Patient, now int64) error

	// CreateReading stores a reading and its referral.
	CreateReading(ctx context.Context, reading models.Reading, workerID string, now int64) error
	// GetReading returns one reading with its referral and latest
	// assessment.
	GetReading(ctx context.Context, readingID string) (models.Reading, error)

	// GetAssessments returns every assessment of a reading.
	GetAssessments(ctx context.Context, readingID string) ([]models.Assessment, error)
	// CreateAssessment stores an assessment and returns it with its id.
	CreateAssessment(ctx context.Context, assessment models.Assessment, now int64) (models.Assessment, error)

	// ChangedSince lists what was created or edited after since.
	ChangedSince(ctx context.Context, since int64) (models.SyncManifest, error)
	// ReadingsSince returns the records a device downloads in batched mode.
	ReadingsSince(ctx context.Context, since int64) (models.ReadingsBundle, error)
}
