package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fieldsync/models"
)

// ClientSyncService runs sync cycles between the device store and the
// server.
type ClientSyncService interface {
	// RunSyncCycle fetches the server manifest, uploads local changes the
	// server does not conflict with, downloads the server's changes and, if
	// the manifest was fetched, advances the checkpoint. cb receives progress
	// and always receives OnCycleFinish. Only one cycle runs at a time; a
	// second caller waits for the first to finish.
	RunSyncCycle(ctx context.Context, cb SyncCallback) models.CycleOutcome
}

// ClientSyncJob defines the contract for a background worker that runs
// sync cycles on a fixed interval.
type ClientSyncJob interface {
	// Run starts the job with its configured interval. It makes the job a
	// workers.Worker.
	Run()

	// Start launches the background goroutine. Any previously running job
	// is stopped first. A non-positive interval leaves the job idle.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ClientDataService records data on the device between syncs.
type ClientDataService interface {
	// ImportPatients stores new, never-synced patients with their readings.
	// Ids and timestamps are filled in where missing. Returns how many
	// patients were stored.
	ImportPatients(ctx context.Context, patients []models.PatientAndReadings) (int, error)

	// AddReading stores a new reading for an existing patient.
	AddReading(ctx context.Context, reading models.Reading) error

	// EditPatient replaces the demographic fields of a patient.
	EditPatient(ctx context.Context, patient models.Patient) error

	// Pending reports how many records wait for upload.
	Pending(ctx context.Context) (models.PendingCounts, error)
}
