// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"net/http"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/goccy/go-json"
)

// flushEvery is how many records are written between two flushes of the
// readings stream.
const flushEvery = 32

func (h *Handler) getUpdates(w http.ResponseWriter, r *http.Request) {
	since, err := sinceParam(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUpdates").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	manifest, err := h.services.SyncService.Updates(r.Context(), since)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getUpdates", "error computing sync manifest")
		return
	}

	utils.WriteJSON(w, manifest, http.StatusOK)
}

// streamReadings writes the batched download as
//
//	{"total":N,"readings":[...],"newReferrals":[...],"newFollowups":[...]}
//
// one record at a time, flushing as it goes, so the device can store
// records while the rest is still on the wire.
func (h *Handler) streamReadings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	since, err := sinceParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.streamReadings").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle, err := h.services.SyncService.ReadingsSince(r.Context(), since)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.streamReadings", "error loading readings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	sw := &streamWriter{w: bufio.NewWriter(w), flusher: w}
	sw.raw(`{"total":`)
	sw.value(bundle.Total())
	sw.raw(`,"readings":`)
	writeArray(sw, bundle.Readings)
	sw.raw(`,"newReferrals":`)
	writeArray(sw, bundle.Referrals)
	sw.raw(`,"newFollowups":`)
	writeArray(sw, bundle.Followups)
	sw.raw(`}`)
	sw.flush()

	if sw.err != nil {
		// headers are gone, the device sees a truncated stream
		log.Err(sw.err).Str("func", "*Handler.streamReadings").Msg("readings stream interrupted")
		return
	}

	log.Debug().
		Str("func", "*Handler.streamReadings").
		Int64("since", since).
		Int("total", bundle.Total()).
		Msg("readings streamed")
}

// streamWriter remembers the first write error and ignores everything after
// it.
type streamWriter struct {
	w       *bufio.Writer
	flusher http.ResponseWriter
	written int
	err     error
}

func (s *streamWriter) raw(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(str)
}

func (s *streamWriter) value(v any) {
	if s.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		s.err = err
		return
	}
	_, s.err = s.w.Write(b)
}

func (s *streamWriter) flush() {
	if s.err != nil {
		return
	}
	if s.err = s.w.Flush(); s.err != nil {
		return
	}
	if f, ok := s.flusher.(http.Flusher); ok {
		f.Flush()
	}
}

func writeArray[T any](s *streamWriter, items []T) {
	s.raw("[")
	for i, item := range items {
		if i > 0 {
			s.raw(",")
		}
		s.value(item)
		s.written++
		if s.written%flushEvery == 0 {
			s.flush()
		}
	}
	s.raw("]")
}
