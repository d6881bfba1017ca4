package models

// BloodPressure holds a single set of vital signs.
type BloodPressure struct {
	Systolic  int `json:"bpSystolic"`
	Diastolic int `json:"bpDiastolic"`
	HeartRate int `json:"heartRateBPM"`
}

// Reading is one vitals measurement taken for a patient. A reading may
// carry the referral that was issued for it and the follow-up assessment
// the health facility produced.
type Reading struct {
	ID            string `json:"readingId"`
	PatientID     string `json:"patientId"`
	DateTimeTaken int64  `json:"dateTimeTaken"`
	BloodPressure
	Symptoms []string `json:"symptoms"`

	Referral *Referral   `json:"referral,omitempty"`
	FollowUp *Assessment `json:"followup,omitempty"`

	DateRecheckVitalsNeeded *int64 `json:"dateRecheckVitalsNeeded,omitempty"`
	IsFlaggedForFollowUp    bool   `json:"isFlaggedForFollowup"`

	// IsUploadedToServer is device-local bookkeeping and never crosses the wire.
	IsUploadedToServer bool `json:"-"`
}

// Referral records that a reading was escalated to a health facility.
type Referral struct {
	ID                 *int64  `json:"id,omitempty"`
	ReadingID          string  `json:"readingId"`
	PatientID          string  `json:"patientId"`
	DateReferred       int64   `json:"dateReferred"`
	HealthFacilityName string  `json:"referralHealthFacilityName"`
	Comment            *string `json:"comment,omitempty"`
	UserID             *int64  `json:"userId,omitempty"`
	IsAssessed         bool    `json:"isAssessed"`

	IsUploadedToServer bool `json:"-"`
}

// Assessment is the follow-up a health worker records against a reading.
type Assessment struct {
	ID                    *int64  `json:"id,omitempty"`
	ReadingID             string  `json:"readingId"`
	DateAssessed          int64   `json:"dateAssessed"`
	HealthcareWorkerID    int64   `json:"healthcareWorkerId"`
	Diagnosis             *string `json:"diagnosis,omitempty"`
	Treatment             *string `json:"treatment,omitempty"`
	MedicationPrescribed  *string `json:"medicationPrescribed,omitempty"`
	SpecialInvestigations *string `json:"specialInvestigations,omitempty"`
	FollowupNeeded        bool    `json:"followupNeeded"`
	FollowupInstructions  *string `json:"followupInstructions,omitempty"`
}
