package utils

import "github.com/google/uuid"

// UUIDGenerator mints record ids on the device. Patients and readings are
// created offline, so their ids must be unique without asking the server.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

// IsValidID reports whether id parses as a UUID of any version.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
