// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/fieldsync/internal/config"
	"github.com/MKhiriev/fieldsync/internal/ingest"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(
		config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second},
		config.ClientApp{AuthToken: " test-token "},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080"},
		{name: "host and port", address: "localhost:8080"},
		{name: "trailing slash", address: "https://sync.example.org/"},
		{name: "empty", address: "   ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, config.ClientApp{}, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:9000/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", got)
}

func TestHTTPServerAdapter_Token(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")
	assert.Equal(t, "test-token", a.Token())

	a.SetToken("other")
	assert.Equal(t, "other", a.Token())
}

// ── request/response mapping ────────────────────────────────────────────────

func TestHTTPServerAdapter_GetUpdatesSince(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, pathSyncUpdates, r.URL.Path)
		assert.Equal(t, "1700000000", r.URL.Query().Get("since"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_, _ = io.WriteString(w, `{"newPatients":["p1"],"editedPatients":[],"readings":["r1","r2"],"followups":["r0"]}`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL).GetUpdatesSince(context.Background(), 1700000000)

	manifest, err := result.Unwrapped(res)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, manifest.NewPatients())
	assert.Equal(t, []string{"r1", "r2"}, manifest.NewReadings())
	assert.Equal(t, []string{"r0"}, manifest.Followups())
	assert.Equal(t, 4, manifest.Total())
}

func TestHTTPServerAdapter_PostPatient(t *testing.T) {
	var got models.PatientAndReadings
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, pathPatients, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, got)
	}))
	defer srv.Close()

	patient := models.PatientAndReadings{
		Patient:  models.Patient{ID: "p1", Name: "Asha", Sex: models.SexFemale},
		Readings: []models.Reading{{ID: "r1", PatientID: "p1", Symptoms: []string{"headache"}}},
	}
	res := newTestAdapter(t, srv.URL).PostPatient(context.Background(), patient)

	require.IsType(t, result.Success[models.PatientAndReadings]{}, res)
	assert.Equal(t, http.StatusCreated, res.StatusCode())
	assert.Equal(t, "Asha", got.Name)
	require.Len(t, got.Readings, 1)
	assert.Equal(t, []string{"headache"}, got.Readings[0].Symptoms)
}

func TestHTTPServerAdapter_PathParams(t *testing.T) {
	tests := []struct {
		name       string
		wantMethod string
		wantPath   string
		call       func(a ServerAdapter) result.NetworkResult[struct{}]
	}{
		{
			name: "update patient", wantMethod: http.MethodPut, wantPath: "/api/patients/p7/info",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.UpdatePatient(context.Background(), models.Patient{ID: "p7"}))
			},
		},
		{
			name: "get patient", wantMethod: http.MethodGet, wantPath: "/api/patients/p7/info",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.GetPatient(context.Background(), "p7"))
			},
		},
		{
			name: "get patient and readings", wantMethod: http.MethodGet, wantPath: "/api/patients/p7",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.GetPatientAndReadings(context.Background(), "p7"))
			},
		},
		{
			name: "post reading", wantMethod: http.MethodPost, wantPath: "/api/readings",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.PostReading(context.Background(), models.Reading{ID: "r7"}))
			},
		},
		{
			name: "get reading", wantMethod: http.MethodGet, wantPath: "/api/readings/r7",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.GetReading(context.Background(), "r7"))
			},
		},
		{
			name: "get assessments", wantMethod: http.MethodGet, wantPath: "/api/readings/r7/assessments",
			call: func(a ServerAdapter) result.NetworkResult[struct{}] {
				return result.Discard(a.GetAssessmentsForReading(context.Background(), "r7"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			res := tt.call(newTestAdapter(t, srv.URL))
			assert.False(t, result.Failed(res))
		})
	}
}

func TestHTTPServerAdapter_FailureKeepsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "patient already exists", http.StatusConflict)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL).PostPatient(context.Background(), models.PatientAndReadings{})

	failure, ok := res.(result.Failure[models.PatientAndReadings])
	require.True(t, ok, "got %T", res)
	assert.Equal(t, http.StatusConflict, failure.Code)
	assert.Equal(t, "patient already exists", string(failure.Body))
}

func TestHTTPServerAdapter_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"readingId":`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL).GetReading(context.Background(), "r1")

	exc, ok := res.(result.NetworkException[models.Reading])
	require.True(t, ok, "got %T", res)
	assert.ErrorIs(t, exc.Cause, ErrDecodingResponse)
}

func TestHTTPServerAdapter_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := newTestAdapter(t, url).GetPatient(context.Background(), "p1")

	_, ok := res.(result.NetworkException[models.Patient])
	assert.True(t, ok, "got %T", res)
	assert.Zero(t, res.StatusCode())
}

func TestHTTPServerAdapter_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := newTestAdapter(t, srv.URL).GetReading(ctx, "r1")

	exc, ok := res.(result.NetworkException[models.Reading])
	require.True(t, ok, "got %T", res)
	assert.True(t, errors.Is(exc.Cause, context.Canceled))
}

// ── streaming ───────────────────────────────────────────────────────────────

type collected struct {
	mu          sync.Mutex
	readings    []models.Reading
	referrals   []models.Referral
	assessments []models.Assessment
}

func drainAll(ctx context.Context, sinks ingest.Sinks, c *collected) *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		_ = sinks.Readings.Drain(ctx, func(r models.Reading) {
			c.mu.Lock()
			c.readings = append(c.readings, r)
			c.mu.Unlock()
		})
	}()
	go func() {
		defer wg.Done()
		_ = sinks.Referrals.Drain(ctx, func(r models.Referral) {
			c.mu.Lock()
			c.referrals = append(c.referrals, r)
			c.mu.Unlock()
		})
	}()
	go func() {
		defer wg.Done()
		_ = sinks.Assessments.Drain(ctx, func(a models.Assessment) {
			c.mu.Lock()
			c.assessments = append(c.assessments, a)
			c.mu.Unlock()
		})
	}()
	return &wg
}

func TestHTTPServerAdapter_StreamReadingsSince(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathSyncReadings, r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("since"))
		_, _ = io.WriteString(w, `{"total":3,`+
			`"readings":[{"readingId":"r1","patientId":"p1","symptoms":[]}],`+
			`"newReferrals":[{"readingId":"r0","patientId":"p0","referralHealthFacilityName":"Clinic"}],`+
			`"newFollowups":[{"id":5,"readingId":"r0","dateAssessed":10}]}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	sinks := ingest.NewSinks(1)
	var c collected
	wg := drainAll(ctx, sinks, &c)

	var (
		mu       sync.Mutex
		progress [][2]int
	)
	res := newTestAdapter(t, srv.URL).StreamReadingsSince(ctx, 42, sinks, func(processed, total int) {
		mu.Lock()
		progress = append(progress, [2]int{processed, total})
		mu.Unlock()
	})
	wg.Wait()

	assert.False(t, result.Failed(res))
	require.Len(t, c.readings, 1)
	require.Len(t, c.referrals, 1)
	require.Len(t, c.assessments, 1)
	assert.Equal(t, "Clinic", c.referrals[0].HealthFacilityName)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
}

func TestHTTPServerAdapter_StreamReadingsSince_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	sinks := ingest.NewSinks(1)
	res := newTestAdapter(t, srv.URL).StreamReadingsSince(context.Background(), 0, sinks, nil)

	failure, ok := res.(result.Failure[struct{}])
	require.True(t, ok, "got %T", res)
	assert.Equal(t, http.StatusUnauthorized, failure.Code)

	<-sinks.Readings.Done()
	assert.ErrorIs(t, sinks.Readings.Err(), ErrStreamNotStarted)
}

func TestHTTPServerAdapter_StreamReadingsSince_Truncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"total":2,"readings":[{"readingId":"r1","patientId":"p1"}`)
	}))
	defer srv.Close()

	ctx := context.Background()
	sinks := ingest.NewSinks(4)
	var c collected
	wg := drainAll(ctx, sinks, &c)

	res := newTestAdapter(t, srv.URL).StreamReadingsSince(ctx, 0, sinks, nil)
	wg.Wait()

	exc, ok := res.(result.NetworkException[struct{}])
	require.True(t, ok, "got %T", res)
	assert.ErrorIs(t, exc.Cause, ingest.ErrIngestAborted)
	assert.ErrorIs(t, sinks.Readings.Err(), ingest.ErrIngestAborted)
}
