package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fieldsync/models"
)

// Field name constants restrict validation to a subset of fields.
const (
	FieldID               = "id"
	FieldPatientID        = "patient_id"
	FieldName             = "name"
	FieldSex              = "sex"
	FieldLocation         = "location"
	FieldReadings         = "readings"
	FieldVitals           = "vitals"
	FieldDateTaken        = "date_taken"
	FieldReadingID        = "reading_id"
	FieldReferral         = "referral"
	FieldFacility         = "facility"
	FieldHealthcareWorker = "healthcare_worker"
)

// Vital sign bounds accepted on a reading.
const (
	MinSystolic  = 50
	MaxSystolic  = 300
	MinDiastolic = 30
	MaxDiastolic = 200
	MinHeartRate = 30
	MaxHeartRate = 250
)

const (
	nameMaxLength     = 50
	zoneMaxLength     = 20
	locationMaxLength = 50
)

var allowedSexes = []models.Sex{models.SexMale, models.SexFemale, models.SexOther}

// RecordValidator implements Validator for the health records exchanged
// during sync: Patient, PatientAndReadings, Reading, Referral and
// Assessment, in value or pointer form.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted, the default set of the
// type is validated. Returns ErrUnsupportedType for any other type.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Patient:
		return v.validatePatient(ctx, value, fields...)
	case *models.Patient:
		return v.validatePatient(ctx, *value, fields...)

	case models.PatientAndReadings:
		return v.validatePatientAndReadings(ctx, value, fields...)
	case *models.PatientAndReadings:
		return v.validatePatientAndReadings(ctx, *value, fields...)

	case models.Reading:
		return v.validateReading(ctx, value, fields...)
	case *models.Reading:
		return v.validateReading(ctx, *value, fields...)

	case models.Referral:
		return v.validateReferral(ctx, value, fields...)
	case *models.Referral:
		return v.validateReferral(ctx, *value, fields...)

	case models.Assessment:
		return v.validateAssessment(ctx, value, fields...)
	case *models.Assessment:
		return v.validateAssessment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidSex(s models.Sex) bool {
	for _, allowed := range allowedSexes {
		if s == allowed {
			return true
		}
	}
	return false
}

func tooLong(s *string, limit int) bool {
	return s != nil && len(*s) > limit
}

func (v *RecordValidator) validatePatient(_ context.Context, p models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldSex, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if p.ID == "" {
				return ErrInvalidPatientID
			}
		case FieldName:
			if p.Name == "" {
				return ErrInvalidName
			}
			if len(p.Name) > nameMaxLength {
				return fmt.Errorf("%w: name longer than %d", ErrFieldTooLong, nameMaxLength)
			}
		case FieldSex:
			if !isValidSex(p.Sex) {
				return ErrInvalidSex
			}
		case FieldLocation:
			if tooLong(p.Zone, zoneMaxLength) {
				return fmt.Errorf("%w: zone longer than %d", ErrFieldTooLong, zoneMaxLength)
			}
			if tooLong(p.VillageNumber, locationMaxLength) || tooLong(p.HouseholdNumber, locationMaxLength) {
				return fmt.Errorf("%w: village or household longer than %d", ErrFieldTooLong, locationMaxLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatientAndReadings validates the patient and every reading,
// requiring each reading to point at the patient.
func (v *RecordValidator) validatePatientAndReadings(ctx context.Context, p models.PatientAndReadings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldSex, FieldLocation, FieldReadings}
	}

	var patientFields []string
	checkReadings := false
	for _, f := range fields {
		if f == FieldReadings {
			checkReadings = true
			continue
		}
		patientFields = append(patientFields, f)
	}

	if len(patientFields) > 0 {
		if err := v.validatePatient(ctx, p.Patient, patientFields...); err != nil {
			return err
		}
	}

	if !checkReadings {
		return nil
	}

	for i, r := range p.Readings {
		if r.PatientID != p.ID {
			return fmt.Errorf("reading %d: %w", i, ErrReadingForeignKey)
		}
		if err := v.validateReading(ctx, r); err != nil {
			return fmt.Errorf("reading %d: %w", i, err)
		}
	}

	return nil
}

func (v *RecordValidator) validateReading(ctx context.Context, r models.Reading, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldPatientID, FieldVitals, FieldDateTaken, FieldReferral}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID == "" {
				return ErrInvalidReadingID
			}
		case FieldPatientID:
			if r.PatientID == "" {
				return ErrInvalidPatientID
			}
		case FieldVitals:
			bp := r.BloodPressure
			if bp.Systolic < MinSystolic || bp.Systolic > MaxSystolic ||
				bp.Diastolic < MinDiastolic || bp.Diastolic > MaxDiastolic ||
				bp.HeartRate < MinHeartRate || bp.HeartRate > MaxHeartRate {
				return ErrInvalidVitals
			}
		case FieldDateTaken:
			if r.DateTimeTaken <= 0 {
				return ErrInvalidTimestamp
			}
		case FieldReferral:
			if r.Referral == nil {
				continue
			}
			if err := v.validateReferral(ctx, *r.Referral); err != nil {
				return fmt.Errorf("referral: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateReferral(_ context.Context, r models.Referral, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReadingID, FieldPatientID, FieldFacility}
	}

	for _, f := range fields {
		switch f {
		case FieldReadingID:
			if r.ReadingID == "" {
				return ErrInvalidReadingID
			}
		case FieldPatientID:
			if r.PatientID == "" {
				return ErrInvalidPatientID
			}
		case FieldFacility:
			if r.HealthFacilityName == "" {
				return ErrInvalidFacility
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateAssessment(_ context.Context, a models.Assessment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReadingID, FieldHealthcareWorker}
	}

	for _, f := range fields {
		switch f {
		case FieldReadingID:
			if a.ReadingID == "" {
				return ErrInvalidReadingID
			}
		case FieldHealthcareWorker:
			if a.HealthcareWorkerID <= 0 {
				return ErrInvalidWorkerID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
