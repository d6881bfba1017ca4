// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"

	"github.com/goccy/go-json"

	mapset "github.com/deckarep/golang-set/v2"
)

// SyncManifest is the server's answer to "what changed since T". It lists
// the ids of records created or edited on the server after the checkpoint.
// A manifest is read-only once built.
type SyncManifest struct {
	NewPatientIDs    mapset.Set[string]
	EditedPatientIDs mapset.Set[string]
	NewReadingIDs    mapset.Set[string]
	// NewFollowupIDs are ids of readings that received new assessments.
	NewFollowupIDs mapset.Set[string]
}

// syncManifestDTO is the wire shape of a SyncManifest.
type syncManifestDTO struct {
	NewPatients    []string `json:"newPatients"`
	EditedPatients []string `json:"editedPatients"`
	Readings       []string `json:"readings"`
	Followups      []string `json:"followups"`
}

// NewSyncManifest builds a manifest from plain id lists. Nil lists produce
// empty sets.
func NewSyncManifest(newPatients, editedPatients, readings, followups []string) SyncManifest {
	return SyncManifest{
		NewPatientIDs:    mapset.NewSet(newPatients...),
		EditedPatientIDs: mapset.NewSet(editedPatients...),
		NewReadingIDs:    mapset.NewSet(readings...),
		NewFollowupIDs:   mapset.NewSet(followups...),
	}
}

// EmptySyncManifest returns a manifest with no entries.
func EmptySyncManifest() SyncManifest {
	return NewSyncManifest(nil, nil, nil, nil)
}

// Total is the number of download requests the manifest implies.
func (m SyncManifest) Total() int {
	return cardinality(m.NewPatientIDs) +
		cardinality(m.EditedPatientIDs) +
		cardinality(m.NewReadingIDs) +
		cardinality(m.NewFollowupIDs)
}

// IsNewPatient reports whether the server lists id as a newly created patient.
func (m SyncManifest) IsNewPatient(id string) bool {
	return m.NewPatientIDs != nil && m.NewPatientIDs.ContainsOne(id)
}

// IsEditedPatient reports whether the server edited patient id since the checkpoint.
func (m SyncManifest) IsEditedPatient(id string) bool {
	return m.EditedPatientIDs != nil && m.EditedPatientIDs.ContainsOne(id)
}

// IsNewReading reports whether the server lists id as a newly created reading.
func (m SyncManifest) IsNewReading(id string) bool {
	return m.NewReadingIDs != nil && m.NewReadingIDs.ContainsOne(id)
}

// Sorted id lists, for deterministic request order.
func (m SyncManifest) NewPatients() []string    { return sorted(m.NewPatientIDs) }
func (m SyncManifest) EditedPatients() []string { return sorted(m.EditedPatientIDs) }
func (m SyncManifest) NewReadings() []string    { return sorted(m.NewReadingIDs) }
func (m SyncManifest) Followups() []string      { return sorted(m.NewFollowupIDs) }

func (m SyncManifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(syncManifestDTO{
		NewPatients:    m.NewPatients(),
		EditedPatients: m.EditedPatients(),
		Readings:       m.NewReadings(),
		Followups:      m.Followups(),
	})
}

func (m *SyncManifest) UnmarshalJSON(b []byte) error {
	var dto syncManifestDTO
	if err := json.Unmarshal(b, &dto); err != nil {
		return err
	}

	*m = NewSyncManifest(dto.NewPatients, dto.EditedPatients, dto.Readings, dto.Followups)
	return nil
}

func cardinality(s mapset.Set[string]) int {
	if s == nil {
		return 0
	}
	return s.Cardinality()
}

func sorted(s mapset.Set[string]) []string {
	if s == nil {
		return []string{}
	}
	ids := s.ToSlice()
	slices.Sort(ids)
	return ids
}
