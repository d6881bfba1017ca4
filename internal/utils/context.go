// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// WorkerIDCtxKey is the key the auth middleware stores the authenticated
// health worker's id under.
//
//	ctx := context.WithValue(ctx, utils.WorkerIDCtxKey, "worker-7")
var WorkerIDCtxKey = contextKey("workerID")

// GetWorkerIDFromContext retrieves the health worker id from the context.
// ok is false if the value is missing, empty or not a string.
func GetWorkerIDFromContext(ctx context.Context) (string, bool) {
	workerID, ok := ctx.Value(WorkerIDCtxKey).(string)
	return workerID, ok && workerID != ""
}
