package store

import (
	"database/sql"

	"github.com/MKhiriev/fieldsync/models"
	sq "github.com/Masterminds/squirrel"
)

// Server columns. Bookkeeping columns (created_by, created_at, updated_at)
// are written but never read back into models.
var (
	serverPatientColumns = []string{
		"id", "name", "dob", "is_exact_dob", "sex", "is_pregnant", "zone",
		"village_number", "household_number", "drug_history", "medical_history",
		"last_edited",
	}

	serverReadingColumns = []string{
		"id", "patient_id", "date_time_taken", "bp_systolic", "bp_diastolic",
		"heart_rate", "symptoms", "date_recheck_vitals_needed", "is_flagged_for_followup",
	}

	serverReferralColumns = []string{
		"id", "reading_id", "patient_id", "date_referred", "health_facility_name",
		"comment", "user_id", "is_assessed",
	}

	// serverReferralInsertColumns leaves id to the sequence.
	serverReferralInsertColumns = serverReferralColumns[1:]

	serverAssessmentColumns = []string{
		"id", "reading_id", "date_assessed", "healthcare_worker_id", "diagnosis",
		"treatment", "medication_prescribed", "special_investigations",
		"followup_needed", "followup_instructions",
	}

	serverAssessmentInsertColumns = serverAssessmentColumns[1:]
)

func serverReadingSelect(b sq.StatementBuilderType) sq.SelectBuilder {
	columns := append(prefixed("r", serverReadingColumns), prefixed("rf", serverReferralColumns)...)
	return b.Select(columns...).
		From(tableReadings + " r").
		LeftJoin(tableReferrals + " rf ON rf.reading_id = r.id")
}

func scanServerPatient(row rowScanner) (models.Patient, error) {
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
	)
	return p, err
}

func scanServerReading(row rowScanner) (models.Reading, error) {
	var (
		r        models.Reading
		symptoms []byte

		refID         *int64
		refReadingID  sql.NullString
		refPatientID  sql.NullString
		refDate       sql.NullInt64
		refFacility   sql.NullString
		refComment    *string
		refUserID     *int64
		refIsAssessed sql.NullBool
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
		&refID,
		&refReadingID,
		&refPatientID,
		&refDate,
		&refFacility,
		&refComment,
		&refUserID,
		&refIsAssessed,
	)
	if err != nil {
		return models.Reading{}, err
	}

	if r.Symptoms, err = decodeSymptoms(string(symptoms)); err != nil {
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
		}
	}

	return r, nil
}

func scanServerReferral(row rowScanner) (models.Referral, error) {
	var r models.Referral
	err := row.Scan(
		&r.ID,
		&r.ReadingID,
		&r.PatientID,
		&r.DateReferred,
		&r.HealthFacilityName,
		&r.Comment,
		&r.UserID,
		&r.IsAssessed,
	)
	return r, err
}

func scanServerAssessment(row rowScanner) (models.Assessment, error) {
	var a models.Assessment
	err := row.Scan(
		&a.ID,
		&a.ReadingID,
		&a.DateAssessed,
		&a.HealthcareWorkerID,
		&a.Diagnosis,
		&a.Treatment,
		&a.MedicationPrescribed,
		&a.SpecialInvestigations,
		&a.FollowupNeeded,
		&a.FollowupInstructions,
	)
	return a, err
}
