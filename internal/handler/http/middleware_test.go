package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/service"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- auth ----

func TestAuth(t *testing.T) {
	h := newTestHandler(nil, nil)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantWorker string
	}{
		{name: "valid token", header: "Bearer " + testToken, wantStatus: http.StatusOK, wantWorker: "worker-7"},
		{name: "lowercase scheme", header: "bearer " + testToken, wantStatus: http.StatusOK, wantWorker: "worker-7"},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer expired", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotWorker string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotWorker, _ = utils.GetWorkerIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sync/updates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantWorker, gotWorker)
		})
	}
}

func TestAuth_ErrorBody(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/updates", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()
	h.auth(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), errorMessage(t, rr))
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Ctx(r.Context()).Info().Msg("inside")
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(traceIDHeader, "0190b6f2-4a7e-7c3d-9b1a-2f5e8d6c4a10")
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, "0190b6f2-4a7e-7c3d-9b1a-2f5e8d6c4a10", rr.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"0190b6f2-4a7e-7c3d-9b1a-2f5e8d6c4a10"`)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(traceIDHeader, "abc\"injected")
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, req)

		traceID := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, "abc\"injected", traceID)
		_, err := uuid.Parse(traceID)
		require.NoError(t, err)
	})

	t.Run("generates uuid", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, req)

		traceID := rr.Header().Get(traceIDHeader)
		_, err := uuid.Parse(traceID)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), traceID)
	})
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantInLogs []string
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("abc"))
			},
			wantInLogs: []string{`"status":201`, `"size":3`, `"method":"POST"`, `"uri":"/api/patients"`},
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			},
			wantInLogs: []string{`"status":200`, `"size":2`, `"level":"info"`},
		},
		{
			name:       "nothing written",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantInLogs: []string{`"status":200`, `"size":0`},
		},
		{
			name: "rejected request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
			},
			wantInLogs: []string{`"status":409`, `"level":"warn"`},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantInLogs: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			req := httptest.NewRequest(http.MethodPost, "/api/patients", nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rr := httptest.NewRecorder()

			(&Handler{logger: logger.Nop()}).withLogging(tt.handler).ServeHTTP(rr, req)

			for _, want := range tt.wantInLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter_HeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("xy"))
	require.NoError(t, err)
	w.Flush()

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 2, w.size)
	assert.True(t, rr.Flushed)
}
