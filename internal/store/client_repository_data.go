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

type dataEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDataEntryRepository constructs a [DataEntryStore] on the device
// database.
func NewDataEntryRepository(db *DB, logger *logger.Logger) DataEntryStore {
	return &dataEntryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePatient implements [DataEntryStore]. The patient and its readings
// are written in one transaction.
func (d *dataEntryRepository) CreatePatient(ctx context.Context, patient models.PatientAndReadings) error {
	log := logger.FromContext(ctx)

	err := d.inTx(ctx, "dataEntryRepository.CreatePatient", func(tx *sql.Tx) error {
		q := d.builder.Insert(tablePatients).Columns(patientColumns...).Values(patientValues(patient.Patient)...)
		if _, err := execBuilt(ctx, tx, q); err != nil {
			return d.classify(err)
		}

		for _, r := range patient.Readings {
			if err := d.insertReading(ctx, tx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "dataEntryRepository.CreatePatient").
			Str("patient_id", patient.ID).
			Int("readings", len(patient.Readings)).
			Msg("failed to create patient")
		return err
	}

	return nil
}

// AddReading implements [DataEntryStore].
func (d *dataEntryRepository) AddReading(ctx context.Context, reading models.Reading) error {
	err := d.inTx(ctx, "dataEntryRepository.AddReading", func(tx *sql.Tx) error {
		return d.insertReading(ctx, tx, reading)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "dataEntryRepository.AddReading").
			Str("reading_id", reading.ID).
			Msg("failed to add reading")
		return err
	}

	return nil
}

// EditPatient implements [DataEntryStore].
func (d *dataEntryRepository) EditPatient(ctx context.Context, patient models.Patient) error {
	q := d.builder.Update(tablePatients).
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
		Where(sq.Eq{"id": patient.ID})

	res, err := execBuilt(ctx, d.DB, q)
	if err == nil {
		err = requireAffected(res)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "dataEntryRepository.EditPatient").Str("patient_id", patient.ID).Msg("failed to edit patient")
		return err
	}

	return nil
}

// GetPatient implements [DataEntryStore].
func (d *dataEntryRepository) GetPatient(ctx context.Context, patientID string) (models.PatientAndReadings, error) {
	log := logger.FromContext(ctx)

	patients, err := selectPatients(ctx, d.DB, d.builder, sq.Eq{"id": patientID})
	if err != nil {
		log.Err(err).Str("func", "dataEntryRepository.GetPatient").Str("patient_id", patientID).Msg("failed to select patient")
		return models.PatientAndReadings{}, err
	}
	if len(patients) == 0 {
		return models.PatientAndReadings{}, ErrNotFound
	}

	readings, err := selectReadings(ctx, d.DB, d.builder, sq.Eq{"r.patient_id": patientID})
	if err != nil {
		log.Err(err).Str("func", "dataEntryRepository.GetPatient").Str("patient_id", patientID).Msg("failed to select readings")
		return models.PatientAndReadings{}, err
	}

	return models.PatientAndReadings{Patient: patients[0], Readings: readings}, nil
}

// CountPending implements [DataEntryStore].
func (d *dataEntryRepository) CountPending(ctx context.Context) (models.PendingCounts, error) {
	log := logger.FromContext(ctx)

	var counts models.PendingCounts
	targets := []struct {
		table string
		where sq.Sqlizer
		dst   *int
	}{
		{tablePatients, sq.Eq{"base": nil}, &counts.NewPatients},
		{tableReadings, sq.Eq{"is_uploaded_to_server": false}, &counts.NewReadings},
		{tablePatients, sq.And{sq.NotEq{"base": nil}, sq.Expr("last_edited <> base")}, &counts.EditedPatients},
	}

	for _, t := range targets {
		query, args, err := d.builder.Select("COUNT(*)").From(t.table).Where(t.where).ToSql()
		if err != nil {
			return models.PendingCounts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := d.QueryRowContext(ctx, query, args...).Scan(t.dst); err != nil {
			log.Err(err).Str("func", "dataEntryRepository.CountPending").Str("table", t.table).Msg("failed to count pending records")
			return models.PendingCounts{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return counts, nil
}

func (d *dataEntryRepository) insertReading(ctx context.Context, tx *sql.Tx, r models.Reading) error {
	values, err := readingValues(r)
	if err != nil {
		return err
	}

	if _, err := execBuilt(ctx, tx, d.builder.Insert(tableReadings).Columns(readingColumns...).Values(values...)); err != nil {
		return d.classify(err)
	}

	if r.Referral == nil {
		return nil
	}

	q := d.builder.Insert(tableReferrals).Columns(referralColumns...).Values(referralValues(*r.Referral)...)
	if _, err := execBuilt(ctx, tx, q); err != nil {
		return d.classify(err)
	}

	return nil
}

// classify maps a constraint violation to ErrAlreadyExists.
func (d *dataEntryRepository) classify(err error) error {
	if d.errorClassificator.IsUniqueViolation(err) {
		return errors.Join(ErrAlreadyExists, err)
	}
	return err
}
