package models

import "time"

// TotalRequestStatus counts how many requests of a phase have completed or
// failed. Failed+Completed never exceeds Total.
type TotalRequestStatus struct {
	Total     int `json:"total"`
	Failed    int `json:"failed"`
	Completed int `json:"completed"`
}

// AllRequestsCompleted reports whether every request has settled, either way.
func (s TotalRequestStatus) AllRequestsCompleted() bool {
	return s.Failed+s.Completed == s.Total
}

// AllRequestsSucceeded reports whether every request settled successfully.
func (s TotalRequestStatus) AllRequestsSucceeded() bool {
	return s.Completed == s.Total
}

// UploadSets is what remains to upload after server-side changes have been
// subtracted from the local pending changes.
type UploadSets struct {
	Patients       []PatientAndReadings
	Readings       []Reading
	EditedPatients []Patient
}

// Total is the number of upload requests the sets imply.
func (u UploadSets) Total() int {
	return len(u.Patients) + len(u.Readings) + len(u.EditedPatients)
}

// CycleOutcome summarizes one sync cycle for the caller.
type CycleOutcome struct {
	// Success is true when the manifest was fetched and the cycle was not
	// cancelled. Individual uploads or downloads may still have failed.
	Success  bool
	Upload   TotalRequestStatus
	Download TotalRequestStatus
	// Entities splits the requests of both phases by the kind of record
	// they carried.
	Entities EntityCounts
	// Errors maps a status code to the message shown for it.
	Errors map[int]string
	// Failures counts failed requests of both phases per status code.
	Failures map[int]int
	// Checkpoint is the value persisted at the end of the cycle, 0 if none.
	Checkpoint int64

	StartedAt  time.Time
	FinishedAt time.Time
}

// EntityKind names the record type a sync request transfers.
type EntityKind string

const (
	KindPatients       EntityKind = "patients"
	KindEditedPatients EntityKind = "edited_patients"
	KindReadings       EntityKind = "readings"
	KindAssessments    EntityKind = "assessments"
)

// RequestCounts is how many requests for one record type settled each way.
type RequestCounts struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// EntityCounts holds RequestCounts per record type. New patients and
// readings are counted in both directions: uploaded local ones and
// downloaded server ones. Follow-ups are downloaded only.
type EntityCounts struct {
	Patients       RequestCounts `json:"patients"`
	EditedPatients RequestCounts `json:"editedPatients"`
	Readings       RequestCounts `json:"readings"`
	Assessments    RequestCounts `json:"assessments"`
}

// Add counts n requests of kind as succeeded or failed. Unknown kinds are
// ignored.
func (e *EntityCounts) Add(kind EntityKind, ok bool, n int) {
	var c *RequestCounts
	switch kind {
	case KindPatients:
		c = &e.Patients
	case KindEditedPatients:
		c = &e.EditedPatients
	case KindReadings:
		c = &e.Readings
	case KindAssessments:
		c = &e.Assessments
	default:
		return
	}
	if ok {
		c.Succeeded += n
	} else {
		c.Failed += n
	}
}

// PendingCounts is how much local data waits for the next upload.
type PendingCounts struct {
	NewPatients    int `json:"newPatients"`
	NewReadings    int `json:"newReadings"`
	EditedPatients int `json:"editedPatients"`
}
