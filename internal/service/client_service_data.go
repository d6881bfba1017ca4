package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/internal/validators"
	"github.com/MKhiriev/fieldsync/models"
)

type clientDataService struct {
	entries   store.DataEntryStore
	validator validators.Validator
	ids       *utils.UUIDGenerator
	clock     func() time.Time

	logger *logger.Logger
}

func NewClientDataService(entries store.DataEntryStore, logger *logger.Logger) ClientDataService {
	return &clientDataService{
		entries:   entries,
		validator: validators.NewRecordValidator(),
		ids:       utils.NewUUIDGenerator(),
		clock:     time.Now,
		logger:    logger,
	}
}

func (d *clientDataService) ImportPatients(ctx context.Context, patients []models.PatientAndReadings) (int, error) {
	if len(patients) == 0 {
		return 0, ErrNoRecordsProvided
	}

	now := d.clock().Unix()
	stored := 0
	var errs []error

	for i, p := range patients {
		if p.ID == "" {
			p.ID = d.ids.Generate()
		}
		if p.LastEdited == nil {
			p.LastEdited = &now
		}
		// an imported patient is always new to the server
		p.Base = nil

		p.Readings = append([]models.Reading(nil), p.Readings...)
		for j := range p.Readings {
			d.fillReading(&p.Readings[j], p.ID, now)
		}

		if err := d.validator.Validate(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("patient %d (%s): %w: %w", i, p.ID, ErrInvalidDataProvided, err))
			continue
		}

		if err := d.entries.CreatePatient(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("patient %d (%s): %w", i, p.ID, err))
			continue
		}
		stored++
	}

	d.logger.Info().
		Str("func", "clientDataService.ImportPatients").
		Int("received", len(patients)).
		Int("stored", stored).
		Msg("patients imported")

	return stored, errors.Join(errs...)
}

func (d *clientDataService) AddReading(ctx context.Context, reading models.Reading) error {
	if reading.PatientID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPatientID)
	}

	if _, err := d.entries.GetPatient(ctx, reading.PatientID); err != nil {
		return fmt.Errorf("find patient %s: %w", reading.PatientID, err)
	}

	d.fillReading(&reading, reading.PatientID, d.clock().Unix())
	if err := d.validator.Validate(ctx, reading); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := d.entries.AddReading(ctx, reading); err != nil {
		return fmt.Errorf("add reading: %w", err)
	}
	return nil
}

// EditPatient stamps a fresh LastEdited so the edit is picked up by the
// next upload. The server baseline of the stored patient is kept.
func (d *clientDataService) EditPatient(ctx context.Context, patient models.Patient) error {
	if err := d.validator.Validate(ctx, patient); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := d.entries.GetPatient(ctx, patient.ID)
	if err != nil {
		return fmt.Errorf("find patient %s: %w", patient.ID, err)
	}

	edited := d.clock().Unix()
	if current.Base != nil && edited <= *current.Base {
		edited = *current.Base + 1
	}
	patient.Base = current.Base
	patient.LastEdited = &edited

	if err = d.entries.EditPatient(ctx, patient); err != nil {
		return fmt.Errorf("edit patient: %w", err)
	}
	return nil
}

func (d *clientDataService) Pending(ctx context.Context) (models.PendingCounts, error) {
	counts, err := d.entries.CountPending(ctx)
	if err != nil {
		return models.PendingCounts{}, fmt.Errorf("count pending records: %w", err)
	}
	return counts, nil
}

func (d *clientDataService) fillReading(r *models.Reading, patientID string, now int64) {
	if r.ID == "" {
		r.ID = d.ids.Generate()
	}
	if r.DateTimeTaken == 0 {
		r.DateTimeTaken = now
	}
	r.PatientID = patientID
	r.IsUploadedToServer = false

	if r.Referral != nil {
		ref := *r.Referral
		ref.ReadingID = r.ID
		ref.PatientID = patientID
		if ref.DateReferred == 0 {
			ref.DateReferred = now
		}
		ref.IsUploadedToServer = false
		r.Referral = &ref
	}
}
