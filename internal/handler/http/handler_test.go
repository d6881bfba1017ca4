package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) CreateToken(_ context.Context, workerID string) (models.Token, error) {
	return models.Token{SignedString: testToken, WorkerID: workerID}, nil
}

func (m *mockAuthSvc) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, WorkerID: "worker-7"}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoSvc struct{}

func (m *mockAppInfoSvc) GetVersionInfo(_ context.Context) models.VersionInfo {
	return models.VersionInfo{Version: "test-version", StartedAt: 1700000000}
}

// ---- Mock: SyncService ----

type mockSyncSvc struct {
	updatesFn  func(ctx context.Context, since int64) (models.SyncManifest, error)
	readingsFn func(ctx context.Context, since int64) (models.ReadingsBundle, error)
}

func (m *mockSyncSvc) Updates(ctx context.Context, since int64) (models.SyncManifest, error) {
	if m.updatesFn != nil {
		return m.updatesFn(ctx, since)
	}
	return models.EmptySyncManifest(), nil
}

func (m *mockSyncSvc) ReadingsSince(ctx context.Context, since int64) (models.ReadingsBundle, error) {
	if m.readingsFn != nil {
		return m.readingsFn(ctx, since)
	}
	return models.ReadingsBundle{}, nil
}

// ---- Mock: RecordService ----

type mockRecordSvc struct {
	createPatientFn    func(ctx context.Context, p models.PatientAndReadings) (models.PatientAndReadings, error)
	getPatientFn       func(ctx context.Context, id string) (models.PatientAndReadings, error)
	getPatientInfoFn   func(ctx context.Context, id string) (models.Patient, error)
	updatePatientFn    func(ctx context.Context, p models.Patient) (models.Patient, error)
	createReadingFn    func(ctx context.Context, r models.Reading) (models.Reading, error)
	getReadingFn       func(ctx context.Context, id string) (models.Reading, error)
	getAssessmentsFn   func(ctx context.Context, id string) ([]models.Assessment, error)
	createAssessmentFn func(ctx context.Context, a models.Assessment) (models.Assessment, error)
}

func (m *mockRecordSvc) CreatePatient(ctx context.Context, p models.PatientAndReadings) (models.PatientAndReadings, error) {
	if m.createPatientFn != nil {
		return m.createPatientFn(ctx, p)
	}
	return p, nil
}

func (m *mockRecordSvc) GetPatient(ctx context.Context, id string) (models.PatientAndReadings, error) {
	if m.getPatientFn != nil {
		return m.getPatientFn(ctx, id)
	}
	return models.PatientAndReadings{Patient: models.Patient{ID: id}}, nil
}

func (m *mockRecordSvc) GetPatientInfo(ctx context.Context, id string) (models.Patient, error) {
	if m.getPatientInfoFn != nil {
		return m.getPatientInfoFn(ctx, id)
	}
	return models.Patient{ID: id}, nil
}

func (m *mockRecordSvc) UpdatePatientInfo(ctx context.Context, p models.Patient) (models.Patient, error) {
	if m.updatePatientFn != nil {
		return m.updatePatientFn(ctx, p)
	}
	return p, nil
}

func (m *mockRecordSvc) CreateReading(ctx context.Context, r models.Reading) (models.Reading, error) {
	if m.createReadingFn != nil {
		return m.createReadingFn(ctx, r)
	}
	return r, nil
}

func (m *mockRecordSvc) GetReading(ctx context.Context, id string) (models.Reading, error) {
	if m.getReadingFn != nil {
		return m.getReadingFn(ctx, id)
	}
	return models.Reading{ID: id}, nil
}

func (m *mockRecordSvc) GetAssessments(ctx context.Context, id string) ([]models.Assessment, error) {
	if m.getAssessmentsFn != nil {
		return m.getAssessmentsFn(ctx, id)
	}
	return []models.Assessment{}, nil
}

func (m *mockRecordSvc) CreateAssessment(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	if m.createAssessmentFn != nil {
		return m.createAssessmentFn(ctx, a)
	}
	return a, nil
}

// ---- Helpers ----

func newTestHandler(records *mockRecordSvc, syncSvc *mockSyncSvc) *Handler {
	if records == nil {
		records = &mockRecordSvc{}
	}
	if syncSvc == nil {
		syncSvc = &mockSyncSvc{}
	}
	return NewHandler(&service.Services{
		AuthService:    &mockAuthSvc{},
		RecordService:  records,
		SyncService:    syncSvc,
		AppInfoService: &mockAppInfoSvc{},
	}, logger.Nop())
}

// do sends an authenticated request through the full router.
func do(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func workerFrom(ctx context.Context) string {
	id, _ := utils.GetWorkerIDFromContext(ctx)
	return id
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rr)["error"]
}
