// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_, _ = w.Write([]byte("got:" + string(body)))
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		wantGzipped     bool
		wantBody        string
	}{
		{name: "compress when client accepts gzip", acceptEncoding: "gzip", body: []byte("a"), wantGzipped: true, wantBody: "got:a"},
		{name: "plain when client does not", body: []byte("a"), wantBody: "got:a"},
		{name: "accept list with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", body: []byte("b"), wantGzipped: true, wantBody: "got:b"},
		{name: "decompress request body", contentEncoding: "gzip", body: []byte("c"), wantBody: "got:c"},
		{name: "both ways", acceptEncoding: "gzip", contentEncoding: "gzip", body: []byte("d"), wantGzipped: true, wantBody: "got:d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.body
			if tt.contentEncoding != "" {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/readings", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(http.HandlerFunc(echoHandler)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/readings", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
}

func TestGZip_StatusKeptAndFlushable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/sync/readings", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"part":1}`))

		f, ok := w.(http.Flusher)
		if assert.True(t, ok) {
			f.Flush()
		}
		// the first part is already readable before the handler returns
		assert.NotEmpty(t, rr.Body.Bytes())
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, rr.Flushed)
	assert.Equal(t, `{"part":1}`, gunzip(t, rr.Body.Bytes()))
}
