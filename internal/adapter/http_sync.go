// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/fieldsync/internal/ingest"
	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/MKhiriev/fieldsync/models"
)

// GetUpdatesSince implements [ServerAdapter] via GET /api/sync/updates?since=TS.
func (h *httpServerAdapter) GetUpdatesSince(ctx context.Context, since int64) result.NetworkResult[models.SyncManifest] {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		Get(pathSyncUpdates)

	return toResult[models.SyncManifest](resp, err)
}

// PostPatient implements [ServerAdapter] via POST /api/patients.
func (h *httpServerAdapter) PostPatient(ctx context.Context, patient models.PatientAndReadings) result.NetworkResult[models.PatientAndReadings] {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patient).
		Post(pathPatients)

	return toResult[models.PatientAndReadings](resp, err)
}

// PostReading implements [ServerAdapter] via POST /api/readings.
func (h *httpServerAdapter) PostReading(ctx context.Context, reading models.Reading) result.NetworkResult[models.Reading] {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reading).
		Post(pathReadings)

	return toResult[models.Reading](resp, err)
}

// UpdatePatient implements [ServerAdapter] via PUT /api/patients/{id}/info.
func (h *httpServerAdapter) UpdatePatient(ctx context.Context, patient models.Patient) result.NetworkResult[models.Patient] {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", patient.ID).
		SetBody(patient).
		Put(pathPatientInfo)

	return toResult[models.Patient](resp, err)
}

// GetPatient implements [ServerAdapter] via GET /api/patients/{id}/info.
func (h *httpServerAdapter) GetPatient(ctx context.Context, patientID string) result.NetworkResult[models.Patient] {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", patientID).
		Get(pathPatientInfo)

	return toResult[models.Patient](resp, err)
}

// GetPatientAndReadings implements [ServerAdapter] via GET /api/patients/{id}.
func (h *httpServerAdapter) GetPatientAndReadings(ctx context.Context, patientID string) result.NetworkResult[models.PatientAndReadings] {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", patientID).
		Get(pathPatient)

	return toResult[models.PatientAndReadings](resp, err)
}

// GetReading implements [ServerAdapter] via GET /api/readings/{id}.
func (h *httpServerAdapter) GetReading(ctx context.Context, readingID string) result.NetworkResult[models.Reading] {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", readingID).
		Get(pathReading)

	return toResult[models.Reading](resp, err)
}

// GetAssessmentsForReading implements [ServerAdapter] via
// GET /api/readings/{id}/assessments.
func (h *httpServerAdapter) GetAssessmentsForReading(ctx context.Context, readingID string) result.NetworkResult[[]models.Assessment] {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", readingID).
		Get(pathReadingAssessments)

	return toResult[[]models.Assessment](resp, err)
}

// StreamReadingsSince implements [ServerAdapter] via
// GET /api/sync/readings?since=TS. The response body is handed to
// [ingest.Ingest] unbuffered, so records reach the sinks while the download
// is still in progress. Every sink is closed before it returns.
func (h *httpServerAdapter) StreamReadingsSince(
	ctx context.Context,
	since int64,
	sinks ingest.Sinks,
	onProgress ingest.ProgressFunc,
) result.NetworkResult[struct{}] {
	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("since", strconv.FormatInt(since, 10)).
		Get(pathSyncReadings)
	if err != nil {
		sinks.CloseAll(fmt.Errorf("%w: %w", ErrStreamNotStarted, err))
		return result.NetworkException[struct{}]{Cause: err}
	}

	body := resp.RawBody()
	if body == nil {
		sinks.CloseAll(ErrStreamNotStarted)
		return result.NetworkException[struct{}]{Cause: ErrStreamNotStarted}
	}
	defer body.Close()

	if !resp.IsSuccess() {
		data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		sinks.CloseAll(fmt.Errorf("%w: http %d", ErrStreamNotStarted, resp.StatusCode()))
		return result.Failure[struct{}]{Code: resp.StatusCode(), Body: data}
	}

	if err = ingest.Ingest(ctx, body, sinks, onProgress); err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.StreamReadingsSince").
			Int64("since", since).
			Msg("readings stream aborted")
		return result.NetworkException[struct{}]{Cause: err}
	}

	return result.Success[struct{}]{Value: struct{}{}, Code: resp.StatusCode()}
}
