// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/fieldsync/models"
)

type trackerEvent struct {
	success bool
	code    int
}

// RequestTracker counts the settled requests of one sync phase.
//
// Counters are owned by a single goroutine that applies events in arrival
// order, so callers on any goroutine can record results without further
// locking. onUpdate runs on that goroutine after every applied event, which
// keeps progress reports serialized. Once Failed+Completed reaches Total the
// Settled channel is closed and the goroutine exits; later events are
// dropped.
type RequestTracker struct {
	events   chan trackerEvent
	settled  chan struct{}
	onUpdate func(models.TotalRequestStatus)

	mu       sync.RWMutex
	status   models.TotalRequestStatus
	failures map[int]int
}

// NewRequestTracker creates a tracker expecting total results. A tracker
// with total == 0 is settled on return and never calls onUpdate.
func NewRequestTracker(total int, onUpdate func(models.TotalRequestStatus)) *RequestTracker {
	if total < 0 {
		total = 0
	}

	t := &RequestTracker{
		events:   make(chan trackerEvent),
		settled:  make(chan struct{}),
		onUpdate: onUpdate,
		status:   models.TotalRequestStatus{Total: total},
		failures: make(map[int]int),
	}

	if total == 0 {
		close(t.settled)
		return t
	}

	go t.run()
	return t
}

func (t *RequestTracker) run() {
	for ev := range t.events {
		t.mu.Lock()
		if ev.success {
			t.status.Completed++
		} else {
			t.status.Failed++
			t.failures[ev.code]++
		}
		status := t.status
		t.mu.Unlock()

		if t.onUpdate != nil {
			t.onUpdate(status)
		}

		if status.AllRequestsCompleted() {
			close(t.settled)
			return
		}
	}
}

// RecordSuccess counts one successful request.
func (t *RequestTracker) RecordSuccess() {
	t.send(trackerEvent{success: true})
}

// RecordFailure counts one failed request under the given error code.
func (t *RequestTracker) RecordFailure(code int) {
	t.send(trackerEvent{code: code})
}

func (t *RequestTracker) send(ev trackerEvent) {
	select {
	case t.events <- ev:
	case <-t.settled:
	}
}

// IsSettled reports whether every expected result has been recorded.
func (t *RequestTracker) IsSettled() bool {
	select {
	case <-t.settled:
		return true
	default:
		return false
	}
}

// Settled is closed once the tracker is settled.
func (t *RequestTracker) Settled() <-chan struct{} {
	return t.settled
}

// wait blocks until the tracker is settled or ctx is done and returns the
// status at that moment.
func (t *RequestTracker) wait(ctx context.Context) (models.TotalRequestStatus, error) {
	select {
	case <-t.settled:
		return t.Status(), nil
	case <-ctx.Done():
		return t.Status(), ctx.Err()
	}
}

// Status returns a consistent snapshot of the counters.
func (t *RequestTracker) Status() models.TotalRequestStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// FailuresByCode returns how many requests failed with each code.
func (t *RequestTracker) FailuresByCode() map[int]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[int]int, len(t.failures))
	for code, n := range t.failures {
		out[code] = n
	}
	return out
}
