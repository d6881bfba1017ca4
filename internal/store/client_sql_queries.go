package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/MKhiriev/fieldsync/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
)

// Device tables and columns. The order of each column list is the order of
// the matching scan and values helpers.
const (
	tablePatients    = "patients"
	tableReadings    = "readings"
	tableReferrals   = "referrals"
	tableAssessments = "assessments"
	tableSyncState   = "sync_state"
)

var (
	patientColumns = []string{
		"id", "name", "dob", "is_exact_dob", "sex", "is_pregnant", "zone",
		"village_number", "household_number", "drug_history", "medical_history",
		"last_edited", "base",
	}

	readingColumns = []string{
		"id", "patient_id", "date_time_taken", "bp_systolic", "bp_diastolic",
		"heart_rate", "symptoms", "date_recheck_vitals_needed",
		"is_flagged_for_followup", "is_uploaded_to_server",
	}

	referralColumns = []string{
		"reading_id", "id", "patient_id", "date_referred", "health_facility_name",
		"comment", "user_id", "is_assessed", "is_uploaded_to_server",
	}

	assessmentColumns = []string{
		"assessment_key", "id", "reading_id", "date_assessed", "healthcare_worker_id",
		"diagnosis", "treatment", "medication_prescribed", "special_investigations",
		"followup_needed", "followup_instructions",
	}
)

// prefixed qualifies every column with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// readingWithReferralSelect selects readings joined with their optional
// referral, in the layout scanReadingWithReferral expects.
func readingWithReferralSelect(b sq.StatementBuilderType) sq.SelectBuilder {
	columns := append(prefixed("r", readingColumns), prefixed("rf", referralColumns)...)
	return b.Select(columns...).
		From(tableReadings + " r").
		LeftJoin(tableReferrals + " rf ON rf.reading_id = r.id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (models.Patient, error) {
	var p models.Patient
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.DOB,
		&p.IsExactDOB,
		&p.Sex,
		&p.IsPregnant,
		&p.Zone,
		&p.VillageNumber,
		&p.HouseholdNumber,
		&p.DrugHistory,
		&p.MedicalHistory,
		&p.LastEdited,
		&p.Base,
	)
	return p, err
}

func patientValues(p models.Patient) []any {
	return []any{
		p.ID, p.Name, p.DOB, p.IsExactDOB, string(p.Sex), p.IsPregnant, p.Zone,
		p.VillageNumber, p.HouseholdNumber, p.DrugHistory, p.MedicalHistory,
		p.LastEdited, p.Base,
	}
}

func scanReadingWithReferral(row rowScanner) (models.Reading, error) {
	var (
		r        models.Reading
		symptoms string

		refReadingID  sql.NullString
		refID         *int64
		refPatientID  sql.NullString
		refDate       sql.NullInt64
		refFacility   sql.NullString
		refComment    *string
		refUserID     *int64
		refIsAssessed sql.NullBool
		refUploaded   sql.NullBool
	)

	err := row.Scan(
		&r.ID,
		&r.PatientID,
		&r.DateTimeTaken,
		&r.Systolic,
		&r.Diastolic,
		&r.HeartRate,
		&symptoms,
		&r.DateRecheckVitalsNeeded,
		&r.IsFlaggedForFollowUp,
		&r.IsUploadedToServer,
		&refReadingID,
		&refID,
		&refPatientID,
		&refDate,
		&refFacility,
		&refComment,
		&refUserID,
		&refIsAssessed,
		&refUploaded,
	)
	if err != nil {
		return models.Reading{}, err
	}

	if r.Symptoms, err = decodeSymptoms(symptoms); err != nil {
		return models.Reading{}, err
	}

	if refReadingID.Valid {
		r.Referral = &models.Referral{
			ID:                 refID,
			ReadingID:          refReadingID.String,
			PatientID:          refPatientID.String,
			DateReferred:       refDate.Int64,
			HealthFacilityName: refFacility.String,
			Comment:            refComment,
			UserID:             refUserID,
			IsAssessed:         refIsAssessed.Bool,
			IsUploadedToServer: refUploaded.Bool,
		}
	}

	return r, nil
}

func readingValues(r models.Reading) ([]any, error) {
	symptoms, err := encodeSymptoms(r.Symptoms)
	if err != nil {
		return nil, err
	}

	return []any{
		r.ID, r.PatientID, r.DateTimeTaken, r.Systolic, r.Diastolic, r.HeartRate,
		symptoms, r.DateRecheckVitalsNeeded, r.IsFlaggedForFollowUp, r.IsUploadedToServer,
	}, nil
}

func referralValues(r models.Referral) []any {
	return []any{
		r.ReadingID, r.ID, r.PatientID, r.DateReferred, r.HealthFacilityName,
		r.Comment, r.UserID, r.IsAssessed, r.IsUploadedToServer,
	}
}

func assessmentValues(a models.Assessment) []any {
	return []any{
		assessmentKey(a), a.ID, a.ReadingID, a.DateAssessed, a.HealthcareWorkerID,
		a.Diagnosis, a.Treatment, a.MedicationPrescribed, a.SpecialInvestigations,
		a.FollowupNeeded, a.FollowupInstructions,
	}
}

// assessmentKey identifies an assessment on the device: its server id when
// known, its reading and date otherwise.
func assessmentKey(a models.Assessment) string {
	if a.ID != nil {
		return strconv.FormatInt(*a.ID, 10)
	}
	return a.ReadingID + "@" + strconv.FormatInt(a.DateAssessed, 10)
}

func encodeSymptoms(symptoms []string) (string, error) {
	if symptoms == nil {
		symptoms = []string{}
	}
	b, err := json.Marshal(symptoms)
	if err != nil {
		return "", fmt.Errorf("encoding symptoms: %w", err)
	}
	return string(b), nil
}

func decodeSymptoms(raw string) ([]string, error) {
	symptoms := []string{}
	if raw == "" {
		return symptoms, nil
	}
	if err := json.Unmarshal([]byte(raw), &symptoms); err != nil {
		return nil, fmt.Errorf("decoding symptoms: %w", err)
	}
	return symptoms, nil
}
