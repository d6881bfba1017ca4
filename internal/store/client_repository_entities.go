package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
	sq "github.com/Masterminds/squirrel"
)

// entityRepository is the SQLite implementation of [EntityStore].
type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityStore] on the device database.
func NewEntityRepository(db *DB, logger *logger.Logger) EntityStore {
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// GetUnsyncedNewPatients implements [EntityStore].
func (e *entityRepository) GetUnsyncedNewPatients(ctx context.Context) ([]models.PatientAndReadings, error) {
	log := logger.FromContext(ctx)

	patients, err := selectPatients(ctx, e.DB, e.builder, sq.Eq{"base": nil})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetUnsyncedNewPatients").Msg("failed to select new patients")
		return nil, err
	}
	if len(patients) == 0 {
		return []models.PatientAndReadings{}, nil
	}

	ids := make([]string, len(patients))
	for i, p := range patients {
		ids[i] = p.ID
	}

	readings, err := selectReadings(ctx, e.DB, e.builder, sq.Eq{"r.patient_id": ids})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetUnsyncedNewPatients").Int("patients", len(ids)).Msg("failed to select readings of new patients")
		return nil, err
	}

	byPatient := make(map[string][]models.Reading, len(patients))
	for _, r := range readings {
		byPatient[r.PatientID] = append(byPatient[r.PatientID], r)
	}

	result := make([]models.PatientAndReadings, len(patients))
	for i, p := range patients {
		rs := byPatient[p.ID]
		if rs == nil {
			rs = []models.Reading{}
		}
		result[i] = models.PatientAndReadings{Patient: p, Readings: rs}
	}

	return result, nil
}

// GetUnsyncedReadingsForSyncedPatients implements [EntityStore].
func (e *entityRepository) GetUnsyncedReadingsForSyncedPatients(ctx context.Context) ([]models.Reading, error) {
	log := logger.FromContext(ctx)

	// the inner join drops readings whose patient row is missing
	readings, err := selectReadings(ctx, e.DB, e.builder, sq.And{
		sq.Eq{"r.is_uploaded_to_server": false},
		sq.NotEq{"p.base": nil},
	}, "patients p ON p.id = r.patient_id")
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetUnsyncedReadingsForSyncedPatients").Msg("failed to select readings")
		return nil, err
	}

	return readings, nil
}

// GetEditedPatientsSince implements [EntityStore].
func (e *entityRepository) GetEditedPatientsSince(ctx context.Context, since int64) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	patients, err := selectPatients(ctx, e.DB, e.builder, sq.And{
		sq.NotEq{"base": nil},
		sq.Gt{"last_edited": since},
		sq.Expr("last_edited <> base"),
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetEditedPatientsSince").Int64("since", since).Msg("failed to select edited patients")
		return nil, err
	}

	return patients, nil
}

// UpsertPatient implements [EntityStore].
func (e *entityRepository) UpsertPatient(ctx context.Context, patient models.Patient) error {
	q := e.builder.Replace(tablePatients).Columns(patientColumns...).Values(patientValues(patient)...)
	if _, err := execBuilt(ctx, e.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entityRepository.UpsertPatient").Str("patient_id", patient.ID).Msg("failed to upsert patient")
		return err
	}
	return nil
}

// UpsertReading implements [EntityStore].
func (e *entityRepository) UpsertReading(ctx context.Context, reading models.Reading) error {
	values, err := readingValues(reading)
	if err != nil {
		return err
	}

	q := e.builder.Replace(tableReadings).Columns(readingColumns...).Values(values...)
	if _, err := execBuilt(ctx, e.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entityRepository.UpsertReading").Str("reading_id", reading.ID).Msg("failed to upsert reading")
		return err
	}
	return nil
}

// UpsertReferral implements [EntityStore].
func (e *entityRepository) UpsertReferral(ctx context.Context, referral models.Referral) error {
	q := e.builder.Replace(tableReferrals).Columns(referralColumns...).Values(referralValues(referral)...)
	if _, err := execBuilt(ctx, e.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entityRepository.UpsertReferral").Str("reading_id", referral.ReadingID).Msg("failed to upsert referral")
		return err
	}
	return nil
}

// UpsertAssessment implements [EntityStore].
func (e *entityRepository) UpsertAssessment(ctx context.Context, assessment models.Assessment) error {
	q := e.builder.Replace(tableAssessments).Columns(assessmentColumns...).Values(assessmentValues(assessment)...)
	if _, err := execBuilt(ctx, e.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entityRepository.UpsertAssessment").Str("reading_id", assessment.ReadingID).Msg("failed to upsert assessment")
		return err
	}
	return nil
}

// MarkReadingUploaded implements [EntityStore].
func (e *entityRepository) MarkReadingUploaded(ctx context.Context, readingID string) error {
	log := logger.FromContext(ctx)

	err := e.inTx(ctx, "entityRepository.MarkReadingUploaded", func(tx *sql.Tx) error {
		res, err := execBuilt(ctx, tx, e.builder.Update(tableReadings).
			Set("is_uploaded_to_server", true).
			Where(sq.Eq{"id": readingID}))
		if err != nil {
			return err
		}
		if err := requireAffected(res); err != nil {
			return err
		}

		_, err = execBuilt(ctx, tx, e.builder.Update(tableReferrals).
			Set("is_uploaded_to_server", true).
			Where(sq.Eq{"reading_id": readingID}))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.MarkReadingUploaded").Str("reading_id", readingID).Msg("failed to mark reading uploaded")
		return err
	}

	return nil
}

// MarkPatientSynced implements [EntityStore].
func (e *entityRepository) MarkPatientSynced(ctx context.Context, patientID string, base int64) error {
	res, err := execBuilt(ctx, e.DB, e.builder.Update(tablePatients).
		Set("base", base).
		Where(sq.Eq{"id": patientID}))
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "entityRepository.MarkPatientSynced").Str("patient_id", patientID).Msg("failed to set patient baseline")
		return err
	}

	return nil
}

func selectPatients(ctx context.Context, runner sq.QueryerContext, b sq.StatementBuilderType, where sq.Sqlizer) ([]models.Patient, error) {
	query, args, err := b.Select(patientColumns...).
		From(tablePatients).
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := runner.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0, 16)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}

func selectReadings(ctx context.Context, runner sq.QueryerContext, b sq.StatementBuilderType, where sq.Sqlizer, joins ...string) ([]models.Reading, error) {
	sb := readingWithReferralSelect(b)
	for _, j := range joins {
		sb = sb.Join(j)
	}

	query, args, err := sb.Where(where).OrderBy("r.date_time_taken", "r.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := runner.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	readings := make([]models.Reading, 0, 32)
	for rows.Next() {
		r, err := scanReadingWithReferral(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return readings, nil
}
