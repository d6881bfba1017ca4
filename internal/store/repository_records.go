// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
	sq "github.com/Masterminds/squirrel"
)

// recordRepository is the PostgreSQL implementation of [RecordRepository].
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] on the server database.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// ── Patients ────────────────────────────────────────────────────────────────

// CreatePatient implements [RecordRepository].
func (r *recordRepository) CreatePatient(ctx context.Context, patient models.PatientAndReadings, workerID string, now int64) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, "recordRepository.CreatePatient", func(tx *sql.Tx) error {
		q := r.builder.Insert(tablePatients).
			Columns(append(serverPatientColumns, "created_by", "created_at", "updated_at")...).
			Values(append(serverPatientValues(patient.Patient), workerID, now, now)...)
		if _, err := execBuilt(ctx, tx, q); err != nil {
			return r.classify(err)
		}

		for _, reading := range patient.Readings {
			// readings of a new patient belong to it regardless of what they say
			reading.PatientID = patient.ID
			if err := r.insertReading(ctx, tx, reading, workerID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreatePatient").
			Str("patient_id", patient.ID).
			Int("readings", len(patient.Readings)).
			Msg("failed to create patient")
		return err
	}

	return nil
}

// GetPatient implements [RecordRepository].
func (r *recordRepository) GetPatient(ctx context.Context, patientID string) (models.Patient, error) {
	q := r.builder.Select(serverPatientColumns...).From(tablePatients).Where(sq.Eq{"id": patientID})

	patients, err := queryAll(ctx, r.DB, q, scanServerPatient)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordRepository.GetPatient").Str("patient_id", patientID).Msg("failed to select patient")
		return models.Patient{}, err
	}
	if len(patients) == 0 {
		return models.Patient{}, ErrNotFound
	}

	return patients[0], nil
}

// GetPatientReadings implements [RecordRepository].
func (r *recordRepository) GetPatientReadings(ctx context.Context, patientID string) ([]models.Reading, error) {
	q := serverReadingSelect(r.builder).
		Where(sq.Eq{"r.patient_id": patientID}).
		OrderBy("r.date_time_taken", "r.id")

	readings, err := queryAll(ctx, r.DB, q, scanServerReading)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordRepository.GetPatientReadings").Str("patient_id", patientID).Msg("failed to select readings")
		return nil, err
	}

	return readings, nil
}

// UpdatePatient implements [RecordRepository].
func (r *recordRepository) UpdatePatient(ctx context.Context, patient models.Patient, now int64) error {
	q := r.builder.Update(tablePatients).
		Set("name", patient.Name).
		Set("dob", patient.DOB).
		Set("is_exact_dob", patient.IsExactDOB).
		Set("sex", string(patient.Sex)).
		Set("is_pregnant", patient.IsPregnant).
		Set("zone", patient.Zone).
		Set("village_number", patient.VillageNumber).
		Set("household_number", patient.HouseholdNumber).
		Set("drug_history", patient.DrugHistory).
		Set("medical_history", patient.MedicalHistory).
		Set("last_edited", patient.LastEdited).
		Set("updated_at", now).
		Where(sq.Eq{"id": patient.ID})

	res, err := execBuilt(ctx, r.DB, q)
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordRepository.UpdatePatient").Str("patient_id", patient.ID).Msg("failed to update patient")
		return err
	}

	return nil
}

// ── Readings ────────────────────────────────────────────────────────────────

// CreateReading implements [RecordRepository].
func (r *recordRepository) CreateReading(ctx context.Context, reading models.Reading, workerID string, now int64) error {
	err := r.inTx(ctx, "recordRepository.CreateReading", func(tx *sql.Tx) error {
		return r.insertReading(ctx, tx, reading, workerID, now)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.CreateReading").
			Str("reading_id", reading.ID).
			Str("patient_id", reading.PatientID).
			Msg("failed to create reading")
		return err
	}

	return nil
}

// GetReading implements [RecordRepository].
func (r *recordRepository) GetReading(ctx context.Context, readingID string) (models.Reading, error) {
	log := logger.FromContext(ctx)

	readings, err := queryAll(ctx, r.DB, serverReadingSelect(r.builder).Where(sq.Eq{"r.id": readingID}), scanServerReading)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.GetReading").Str("reading_id", readingID).Msg("failed to select reading")
		return models.Reading{}, err
	}
	if len(readings) == 0 {
		return models.Reading{}, ErrNotFound
	}
	reading := readings[0]

	latest := r.builder.Select(serverAssessmentColumns...).
		From(tableAssessments).
		Where(sq.Eq{"reading_id": readingID}).
		OrderBy("date_assessed DESC", "id DESC").
		Limit(1)

	assessments, err := queryAll(ctx, r.DB, latest, scanServerAssessment)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.GetReading").Str("reading_id", readingID).Msg("failed to select latest assessment")
		return models.Reading{}, err
	}
	if len(assessments) > 0 {
		reading.FollowUp = &assessments[0]
	}

	return reading, nil
}

// ── Assessments ─────────────────────────────────────────────────────────────

// GetAssessments implements [RecordRepository].
func (r *recordRepository) GetAssessments(ctx context.Context, readingID string) ([]models.Assessment, error) {
	q := r.builder.Select(serverAssessmentColumns...).
		From(tableAssessments).
		Where(sq.Eq{"reading_id": readingID}).
		OrderBy("date_assessed", "id")

	assessments, err := queryAll(ctx, r.DB, q, scanServerAssessment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordRepository.GetAssessments").Str("reading_id", readingID).Msg("failed to select assessments")
		return nil, err
	}

	return assessments, nil
}

// CreateAssessment implements [RecordRepository]. The reading's referral,
// if any, is marked assessed in the same transaction.
func (r *recordRepository) CreateAssessment(ctx context.Context, assessment models.Assessment, now int64) (models.Assessment, error) {
	err := r.inTx(ctx, "recordRepository.CreateAssessment", func(tx *sql.Tx) error {
		query, args, err := r.builder.Insert(tableAssessments).
			Columns(append(serverAssessmentInsertColumns, "created_at")...).
			Values(
				assessment.ReadingID, assessment.DateAssessed, assessment.HealthcareWorkerID,
				assessment.Diagnosis, assessment.Treatment, assessment.MedicationPrescribed,
				assessment.SpecialInvestigations, assessment.FollowupNeeded,
				assessment.FollowupInstructions, now,
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
		assessment.ID = &id

		_, err = execBuilt(ctx, tx, r.builder.Update(tableReferrals).
			Set("is_assessed", true).
			Where(sq.Eq{"reading_id": assessment.ReadingID}))
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "recordRepository.CreateAssessment").Str("reading_id", assessment.ReadingID).Msg("failed to create assessment")
		return models.Assessment{}, err
	}

	return assessment, nil
}

// ── Sync ────────────────────────────────────────────────────────────────────

// ChangedSince implements [RecordRepository].
//
// A patient created after since is new, not edited. A reading counts only
// when its patient is older than since; readings of new patients travel
// with the patient.
func (r *recordRepository) ChangedSince(ctx context.Context, since int64) (models.SyncManifest, error) {
	log := logger.FromContext(ctx)

	queries := []struct {
		name string
		q    sq.SelectBuilder
	}{
		{"new_patients", r.builder.Select("id").From(tablePatients).
			Where(sq.Gt{"created_at": since}).OrderBy("id")},
		{"edited_patients", r.builder.Select("id").From(tablePatients).
			Where(sq.And{sq.Gt{"updated_at": since}, sq.LtOrEq{"created_at": since}}).OrderBy("id")},
		{"readings", r.builder.Select("r.id").From(tableReadings + " r").
			Join(tablePatients + " p ON p.id = r.patient_id").
			Where(sq.And{sq.Gt{"r.created_at": since}, sq.LtOrEq{"p.created_at": since}}).OrderBy("r.id")},
		{"followups", r.builder.Select("DISTINCT reading_id").From(tableAssessments).
			Where(sq.Gt{"created_at": since}).OrderBy("reading_id")},
	}

	lists := make([][]string, len(queries))
	for i, q := range queries {
		ids, err := queryAll(ctx, r.DB, q.q, scanID)
		if err != nil {
			log.Err(err).Str("func", "recordRepository.ChangedSince").Str("list", q.name).Int64("since", since).Msg("failed to select changed ids")
			return models.SyncManifest{}, err
		}
		lists[i] = ids
	}

	return models.NewSyncManifest(lists[0], lists[1], lists[2], lists[3]), nil
}

// ReadingsSince implements [RecordRepository]. Referrals added to readings
// that are older than since are returned on their own; referrals of new
// readings are embedded in them.
func (r *recordRepository) ReadingsSince(ctx context.Context, since int64) (models.ReadingsBundle, error) {
	log := logger.FromContext(ctx)

	readingsQuery := serverReadingSelect(r.builder).
		Join(tablePatients+" p ON p.id = r.patient_id").
		Where(sq.And{sq.Gt{"r.created_at": since}, sq.LtOrEq{"p.created_at": since}}).
		OrderBy("r.date_time_taken", "r.id")

	readings, err := queryAll(ctx, r.DB, readingsQuery, scanServerReading)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ReadingsSince").Int64("since", since).Msg("failed to select readings")
		return models.ReadingsBundle{}, err
	}

	referralsQuery := r.builder.Select(prefixed("rf", serverReferralColumns)...).
		From(tableReferrals + " rf").
		Join(tableReadings + " r ON r.id = rf.reading_id").
		Where(sq.And{sq.Gt{"rf.created_at": since}, sq.LtOrEq{"r.created_at": since}}).
		OrderBy("rf.id")

	referrals, err := queryAll(ctx, r.DB, referralsQuery, scanServerReferral)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ReadingsSince").Int64("since", since).Msg("failed to select referrals")
		return models.ReadingsBundle{}, err
	}

	followupsQuery := r.builder.Select(serverAssessmentColumns...).
		From(tableAssessments).
		Where(sq.Gt{"created_at": since}).
		OrderBy("id")

	followups, err := queryAll(ctx, r.DB, followupsQuery, scanServerAssessment)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.ReadingsSince").Int64("since", since).Msg("failed to select follow-ups")
		return models.ReadingsBundle{}, err
	}

	return models.ReadingsBundle{
		Readings:  readings,
		Referrals: referrals,
		Followups: followups,
	}, nil
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func (r *recordRepository) insertReading(ctx context.Context, tx *sql.Tx, reading models.Reading, workerID string, now int64) error {
	symptoms, err := encodeSymptoms(reading.Symptoms)
	if err != nil {
		return err
	}

	q := r.builder.Insert(tableReadings).
		Columns(append(serverReadingColumns, "created_by", "created_at")...).
		Values(
			reading.ID, reading.PatientID, reading.DateTimeTaken, reading.Systolic,
			reading.Diastolic, reading.HeartRate, symptoms, reading.DateRecheckVitalsNeeded,
			reading.IsFlaggedForFollowUp, workerID, now,
		)
	if _, err := execBuilt(ctx, tx, q); err != nil {
		return r.classify(err)
	}

	if reading.Referral == nil {
		return nil
	}

	ref := reading.Referral
	q = r.builder.Insert(tableReferrals).
		Columns(append(serverReferralInsertColumns, "created_at")...).
		Values(
			reading.ID, reading.PatientID, ref.DateReferred, ref.HealthFacilityName,
			ref.Comment, ref.UserID, ref.IsAssessed, now,
		)
	if _, err := execBuilt(ctx, tx, q); err != nil {
		return r.classify(err)
	}

	return nil
}

// classify maps constraint violations to the store's sentinel errors. A
// missing parent row reads as ErrNotFound.
func (r *recordRepository) classify(err error) error {
	switch {
	case r.errorClassificator.IsUniqueViolation(err):
		return errors.Join(ErrAlreadyExists, err)
	case r.errorClassificator.IsForeignKeyViolation(err):
		return errors.Join(ErrNotFound, err)
	default:
		return err
	}
}

func serverPatientValues(p models.Patient) []any {
	return []any{
		p.ID, p.Name, p.DOB, p.IsExactDOB, string(p.Sex), p.IsPregnant, p.Zone,
		p.VillageNumber, p.HouseholdNumber, p.DrugHistory, p.MedicalHistory, p.LastEdited,
	}
}

func scanID(row rowScanner) (string, error) {
	var id string
	err := row.Scan(&id)
	return id, err
}

// queryAll runs q on runner and scans every row with scan. The rows are
// closed before it returns.
func queryAll[T any](ctx context.Context, runner sq.QueryerContext, q sq.Sqlizer, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := runner.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
