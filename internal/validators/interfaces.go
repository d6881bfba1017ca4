// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks patients, readings, referrals and follow-up
// assessments before the server stores them or the device queues them for
// upload.
//
// Validation can be scoped to named fields, so the same rules serve both
// a full create and a partial update such as the demographic fields of
// an edited patient.
package validators

import "context"

// Validator validates a record. With fields given, only those fields are
// checked; names are the Field* constants.
type Validator interface {
	Validate(ctx context.Context, record any, fields ...string) error
}
