package service

import (
	"github.com/MKhiriev/fieldsync/models"
)

// ComputeUploadSets subtracts what the server changed since the last sync
// from what the device wants to upload.
//
// The server wins every conflict, and no record is merged field by field:
//
//   - an edited patient the server also edited is not uploaded; the download
//     phase will overwrite the local copy;
//   - a new patient the server already reports as new is not uploaded, but
//     its readings are moved to the readings set so local measurements are
//     not lost;
//   - a reading the server already reports as new is not uploaded.
//
// The function is pure: inputs are never modified and the result does not
// share backing arrays with them.
func ComputeUploadSets(
	manifest models.SyncManifest,
	localNewPatients []models.PatientAndReadings,
	localNewReadings []models.Reading,
	localEditedPatients []models.Patient,
) models.UploadSets {
	var sets models.UploadSets

	// ── Edited patients: drop the ones the server edited too ─────────────────
	for _, p := range localEditedPatients {
		if manifest.IsEditedPatient(p.ID) {
			continue
		}
		sets.EditedPatients = append(sets.EditedPatients, p)
	}

	// ── New patients: drop server-known ones, rescue their readings ──────────
	rescued := make([]models.Reading, 0)
	for _, p := range localNewPatients {
		if manifest.IsNewPatient(p.ID) {
			rescued = append(rescued, p.Readings...)
			continue
		}

		copied := p
		copied.Readings = append([]models.Reading(nil), p.Readings...)
		sets.Patients = append(sets.Patients, copied)
	}

	// ── Readings: local ones plus rescued ones, minus server-known ones ──────
	for _, r := range append(append([]models.Reading(nil), localNewReadings...), rescued...) {
		if manifest.IsNewReading(r.ID) {
			continue
		}
		sets.Readings = append(sets.Readings, r)
	}

	return sets
}
