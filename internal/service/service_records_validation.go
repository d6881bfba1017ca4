package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/internal/validators"
	"github.com/MKhiriev/fieldsync/models"
)

// RecordValidationService rejects malformed uploads before they reach the
// wrapped RecordService. Every rejection wraps ErrInvalidDataProvided.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) CreatePatient(ctx context.Context, patient models.PatientAndReadings) (models.PatientAndReadings, error) {
	// the server attaches readings to the patient itself
	fields := []string{validators.FieldID, validators.FieldName, validators.FieldSex, validators.FieldLocation}
	if err := v.validator.Validate(ctx, patient, fields...); err != nil {
		return models.PatientAndReadings{}, invalid("patient", err)
	}
	for i, r := range patient.Readings {
		err := v.validator.Validate(ctx, r,
			validators.FieldID, validators.FieldVitals, validators.FieldDateTaken)
		if err != nil {
			return models.PatientAndReadings{}, invalid(fmt.Sprintf("reading %d", i), err)
		}
		if r.Referral != nil {
			if err := v.validator.Validate(ctx, *r.Referral, validators.FieldFacility); err != nil {
				return models.PatientAndReadings{}, invalid(fmt.Sprintf("reading %d referral", i), err)
			}
		}
	}

	return v.inner.CreatePatient(ctx, patient)
}

func (v *RecordValidationService) GetPatient(ctx context.Context, patientID string) (models.PatientAndReadings, error) {
	if patientID == "" {
		return models.PatientAndReadings{}, invalid("patient id", validators.ErrInvalidPatientID)
	}
	return v.inner.GetPatient(ctx, patientID)
}

func (v *RecordValidationService) GetPatientInfo(ctx context.Context, patientID string) (models.Patient, error) {
	if patientID == "" {
		return models.Patient{}, invalid("patient id", validators.ErrInvalidPatientID)
	}
	return v.inner.GetPatientInfo(ctx, patientID)
}

func (v *RecordValidationService) UpdatePatientInfo(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if err := v.validator.Validate(ctx, patient); err != nil {
		return models.Patient{}, invalid("patient", err)
	}
	return v.inner.UpdatePatientInfo(ctx, patient)
}

func (v *RecordValidationService) CreateReading(ctx context.Context, reading models.Reading) (models.Reading, error) {
	fields := []string{validators.FieldID, validators.FieldPatientID, validators.FieldVitals, validators.FieldDateTaken}
	if err := v.validator.Validate(ctx, reading, fields...); err != nil {
		return models.Reading{}, invalid("reading", err)
	}
	if reading.Referral != nil {
		if err := v.validator.Validate(ctx, *reading.Referral, validators.FieldFacility); err != nil {
			return models.Reading{}, invalid("referral", err)
		}
	}
	return v.inner.CreateReading(ctx, reading)
}

func (v *RecordValidationService) GetReading(ctx context.Context, readingID string) (models.Reading, error) {
	if readingID == "" {
		return models.Reading{}, invalid("reading id", validators.ErrInvalidReadingID)
	}
	return v.inner.GetReading(ctx, readingID)
}

func (v *RecordValidationService) GetAssessments(ctx context.Context, readingID string) ([]models.Assessment, error) {
	if readingID == "" {
		return nil, invalid("reading id", validators.ErrInvalidReadingID)
	}
	return v.inner.GetAssessments(ctx, readingID)
}

func (v *RecordValidationService) CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	if err := v.validator.Validate(ctx, assessment); err != nil {
		return models.Assessment{}, invalid("assessment", err)
	}
	return v.inner.CreateAssessment(ctx, assessment)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}

func invalid(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidDataProvided, what, err)
}
