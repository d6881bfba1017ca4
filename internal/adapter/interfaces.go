// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the sync engine uses to talk
// to the server.
//
// The primary abstraction is [ServerAdapter]. Every call returns a
// [result.NetworkResult] instead of an error so that the engine can count
// HTTP failures and transport exceptions without aborting a phase. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
package adapter

import (
	"context"

	"github.com/MKhiriev/fieldsync/internal/ingest"
	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/MKhiriev/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the sync server. Implementations
// are responsible for serialisation, the bearer token and mapping transport
// failures to [result.NetworkException].
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// GetUpdatesSince asks which records the server created or edited after
	// since (epoch seconds).
	GetUpdatesSince(ctx context.Context, since int64) result.NetworkResult[models.SyncManifest]

	// PostPatient uploads a brand-new patient together with its readings.
	PostPatient(ctx context.Context, patient models.PatientAndReadings) result.NetworkResult[models.PatientAndReadings]

	// PostReading uploads a new reading of a patient the server already has.
	PostReading(ctx context.Context, reading models.Reading) result.NetworkResult[models.Reading]

	// UpdatePatient uploads the demographic fields of an edited patient.
	UpdatePatient(ctx context.Context, patient models.Patient) result.NetworkResult[models.Patient]

	// GetPatient fetches the demographic fields of one patient.
	GetPatient(ctx context.Context, patientID string) result.NetworkResult[models.Patient]

	// GetPatientAndReadings fetches one patient with all of its readings.
	GetPatientAndReadings(ctx context.Context, patientID string) result.NetworkResult[models.PatientAndReadings]

	// GetReading fetches one reading with its referral and follow-up.
	GetReading(ctx context.Context, readingID string) result.NetworkResult[models.Reading]

	// GetAssessmentsForReading fetches the assessments recorded for a reading.
	GetAssessmentsForReading(ctx context.Context, readingID string) result.NetworkResult[[]models.Assessment]

	// StreamReadingsSince downloads every reading, referral and follow-up
	// created after since as one streamed response, feeding records into
	// sinks while the body is read. All sinks are closed when it returns.
	StreamReadingsSince(ctx context.Context, since int64, sinks ingest.Sinks, onProgress ingest.ProgressFunc) result.NetworkResult[struct{}]
}
