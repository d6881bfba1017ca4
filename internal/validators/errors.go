package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPatientID  = errors.New("invalid patient id")
	ErrInvalidName       = errors.New("invalid patient name")
	ErrInvalidSex        = errors.New("invalid patient sex")
	ErrFieldTooLong      = errors.New("field is too long")
	ErrInvalidReadingID  = errors.New("invalid reading id")
	ErrInvalidVitals     = errors.New("blood pressure or heart rate out of range")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrReadingForeignKey = errors.New("reading belongs to another patient")
	ErrInvalidFacility   = errors.New("referral health facility is required")
	ErrInvalidWorkerID   = errors.New("invalid healthcare worker id")
)
