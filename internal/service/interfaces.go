package service

import (
	"context"

	"github.com/MKhiriev/fieldsync/models"
)

// RecordService is the server side of the record endpoints. Write methods
// stamp records with the service clock so they show up in later sync
// manifests.
type RecordService interface {
	CreatePatient(ctx context.Context, patient models.PatientAndReadings) (models.PatientAndReadings, error)
	GetPatient(ctx context.Context, patientID string) (models.PatientAndReadings, error)
	GetPatientInfo(ctx context.Context, patientID string) (models.Patient, error)
	UpdatePatientInfo(ctx context.Context, patient models.Patient) (models.Patient, error)

	CreateReading(ctx context.Context, reading models.Reading) (models.Reading, error)
	GetReading(ctx context.Context, readingID string) (models.Reading, error)

	GetAssessments(ctx context.Context, readingID string) ([]models.Assessment, error)
	CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error)
}

// SyncService answers the two sync queries of a device.
type SyncService interface {
	// Updates lists what changed on the server after since.
	Updates(ctx context.Context, since int64) (models.SyncManifest, error)
	// ReadingsSince returns the records of the batched download.
	ReadingsSince(ctx context.Context, since int64) (models.ReadingsBundle, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, workerID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}
