package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoRecordsProvided   = errors.New("no records provided")
	ErrInvalidSince        = errors.New("since must not be negative")
	ErrNoWorkerInContext   = errors.New("no health worker id in context")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
