package tui

import "github.com/MKhiriev/fieldsync/models"

type fetchCompleteMsg struct {
	success bool
}

type uploadProgressMsg struct {
	status models.TotalRequestStatus
	final  bool
}

type downloadProgressMsg struct {
	status models.TotalRequestStatus
	final  bool
}

type streamProgressMsg struct {
	processed int
	total     int
}

type cycleFinishMsg struct {
	errors map[int]string
}

// cycleDoneMsg carries the value RunSyncCycle returned. It always follows
// cycleFinishMsg.
type cycleDoneMsg struct {
	outcome models.CycleOutcome
}
