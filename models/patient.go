// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sex is the patient's recorded sex.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// Patient is a single patient record as stored on the device and exchanged
// with the server.
//
// LastEdited and Base drive synchronization: Base is the LastEdited value
// the server acknowledged at the last successful upload or download. A nil
// Base means the server has never seen this patient.
type Patient struct {
	ID              string  `json:"patientId"`
	Name            string  `json:"patientName"`
	DOB             *string `json:"dob,omitempty"`
	IsExactDOB      bool    `json:"isExactDob"`
	Sex             Sex     `json:"patientSex"`
	IsPregnant      bool    `json:"isPregnant"`
	Zone            *string `json:"zone,omitempty"`
	VillageNumber   *string `json:"villageNumber,omitempty"`
	HouseholdNumber *string `json:"householdNumber,omitempty"`
	DrugHistory     string  `json:"drugHistory"`
	MedicalHistory  string  `json:"medicalHistory"`

	// LastEdited is the epoch second of the last local mutation.
	LastEdited *int64 `json:"lastEdited,omitempty"`
	// Base is the LastEdited value last acknowledged by the server.
	Base *int64 `json:"base,omitempty"`
}

// IsNew reports whether the patient has never been synced with the server.
func (p Patient) IsNew() bool {
	return p.Base == nil
}

// HasPendingEdits reports whether a synced patient was edited locally after
// the last time the server acknowledged it.
func (p Patient) HasPendingEdits() bool {
	if p.Base == nil || p.LastEdited == nil {
		return false
	}
	return *p.Base != *p.LastEdited
}

// MarkSynced moves the server baseline up to the current local edit time.
// A patient without LastEdited gets a zero baseline so it no longer reads
// as new.
func (p *Patient) MarkSynced() {
	var base int64
	if p.LastEdited != nil {
		base = *p.LastEdited
	}
	p.Base = &base
}

// PatientAndReadings bundles a patient with all of its readings, which is
// the unit the server accepts when a brand-new patient is uploaded.
type PatientAndReadings struct {
	Patient
	Readings []Reading `json:"readings"`
}
