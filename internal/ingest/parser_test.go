// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ingest

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/fieldsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type progressCall struct {
	processed, total int
}

type progressRecorder struct {
	mu    sync.Mutex
	calls []progressCall
}

func (r *progressRecorder) record(processed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, progressCall{processed, total})
}

// collected is what the three consumers saw, in the order they saw it.
type collected struct {
	readings    []string
	referrals   []string
	assessments []string

	readingsErr    error
	referralsErr   error
	assessmentsErr error
}

// consume starts one consumer per sink and returns a func that waits for
// all of them to finish.
func consume(ctx context.Context, sinks Sinks) func() collected {
	var (
		wg  sync.WaitGroup
		out collected
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		out.readingsErr = sinks.Readings.Drain(ctx, func(r models.Reading) {
			out.readings = append(out.readings, r.ID)
		})
	}()
	go func() {
		defer wg.Done()
		out.referralsErr = sinks.Referrals.Drain(ctx, func(r models.Referral) {
			out.referrals = append(out.referrals, r.ReadingID)
		})
	}()
	go func() {
		defer wg.Done()
		out.assessmentsErr = sinks.Assessments.Drain(ctx, func(a models.Assessment) {
			out.assessments = append(out.assessments, a.ReadingID)
		})
	}()

	return func() collected {
		wg.Wait()
		return out
	}
}

// failingReader returns err once the wrapped reader is exhausted.
type failingReader struct {
	r   io.Reader
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if errors.Is(err, io.EOF) {
		return n, f.err
	}
	return n, err
}

// ── Ingest ────────────────────────────────────────────────────────────────────

func TestIngest_DispatchesRecordsInOrder(t *testing.T) {
	body := `{
		"total": 5,
		"readings": [
			{"readingId":"r1","patientId":"p1","bpSystolic":120},
			{"readingId":"r2","patientId":"p1"},
			{"readingId":"r3","patientId":"p2"}
		],
		"newReferrals": [{"readingId":"r0","referralHealthFacilityName":"H1"}],
		"newFollowups": [{"readingId":"r0","followupNeeded":true}]
	}`

	ctx := context.Background()
	sinks := NewSinks(1)
	wait := consume(ctx, sinks)
	progress := &progressRecorder{}

	err := Ingest(ctx, strings.NewReader(body), sinks, progress.record)
	require.NoError(t, err)

	got := wait()
	assert.Equal(t, []string{"r1", "r2", "r3"}, got.readings)
	assert.Equal(t, []string{"r0"}, got.referrals)
	assert.Equal(t, []string{"r0"}, got.assessments)
	assert.NoError(t, got.readingsErr)
	assert.NoError(t, got.referralsErr)
	assert.NoError(t, got.assessmentsErr)

	assert.Equal(t, []progressCall{{1, 5}, {2, 5}, {3, 5}, {4, 5}, {5, 5}}, progress.calls)
}

func TestIngest_ClosesEachSinkAfterItsArray(t *testing.T) {
	body := `{"total":2,"readings":[{"readingId":"r1"}],"newReferrals":[{"readingId":"r1"}]`

	sinks := NewSinks(4)
	readingsClosedFirst := make(chan bool, 1)

	progress := func(processed, _ int) {
		// When the first referral is reported the readings sink must
		// already be closed.
		if processed == 2 {
			select {
			case <-sinks.Readings.Done():
				readingsClosedFirst <- true
			default:
				readingsClosedFirst <- false
			}
		}
	}

	err := Ingest(context.Background(), strings.NewReader(body), sinks, progress)
	require.Error(t, err, "payload is truncated before the closing brace")

	assert.True(t, <-readingsClosedFirst)
	assert.NoError(t, sinks.Readings.Err(), "readings array completed before the failure")
	assert.NoError(t, sinks.Referrals.Err(), "referrals array completed before the failure")
	assert.ErrorIs(t, sinks.Assessments.Err(), ErrIngestAborted)
}

func TestIngest_ZeroTotalShortCircuits(t *testing.T) {
	// Everything after the total is garbage and must never be looked at.
	body := `{"total":0,"readings":[{"readingId":`

	sinks := NewSinks(4)
	calls := 0

	err := Ingest(context.Background(), strings.NewReader(body), sinks, func(int, int) { calls++ })
	require.NoError(t, err)

	assert.Zero(t, calls)
	for _, s := range []interface{ Err() error }{sinks.Readings, sinks.Referrals, sinks.Assessments} {
		assert.NoError(t, s.Err())
	}
	_, open := <-sinks.Readings.Items()
	assert.False(t, open)
}

func TestIngest_TruncatedStreamClosesSinksWithError(t *testing.T) {
	body := `{"total":3,"readings":[{"readingId":"r1"},{"readingId":"r2"`

	ctx := context.Background()
	sinks := NewSinks(1)
	wait := consume(ctx, sinks)

	err := Ingest(ctx, strings.NewReader(body), sinks, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIngestAborted)

	got := wait()
	assert.Equal(t, []string{"r1"}, got.readings)
	assert.ErrorIs(t, got.readingsErr, ErrIngestAborted)
	assert.ErrorIs(t, got.referralsErr, ErrIngestAborted)
	assert.ErrorIs(t, got.assessmentsErr, ErrIngestAborted)
}

func TestIngest_TransportErrorAborts(t *testing.T) {
	reader := &failingReader{
		r:   strings.NewReader(`{"total":2,"readings":[{"readingId":"r1"},`),
		err: errors.New("connection reset by peer"),
	}

	sinks := NewSinks(4)
	err := Ingest(context.Background(), reader, sinks, nil)

	require.Error(t, err)
	assert.ErrorIs(t, sinks.Readings.Err(), ErrIngestAborted)
	assert.ErrorIs(t, sinks.Assessments.Err(), ErrIngestAborted)
}

func TestIngest_AcceptsLegacyFieldNamesAndSkipsUnknown(t *testing.T) {
	body := `{
		"total": 3,
		"serverVersion": {"major": 1, "tags": ["a", "b"]},
		"readings": [{"readingId":"r1"}],
		"newReferralsForOldReadings": [{"readingId":"r7"}],
		"newFollowupsForOldReadings": [{"readingId":"r8"}],
		"trailer": null
	}`

	ctx := context.Background()
	sinks := NewSinks(4)
	wait := consume(ctx, sinks)

	require.NoError(t, Ingest(ctx, strings.NewReader(body), sinks, nil))

	got := wait()
	assert.Equal(t, []string{"r1"}, got.readings)
	assert.Equal(t, []string{"r7"}, got.referrals)
	assert.Equal(t, []string{"r8"}, got.assessments)
}

func TestIngest_NullAndMissingArrays(t *testing.T) {
	body := `{"total":1,"readings":null,"newFollowups":[{"readingId":"r1"}]}`

	ctx := context.Background()
	sinks := NewSinks(4)
	wait := consume(ctx, sinks)

	require.NoError(t, Ingest(ctx, strings.NewReader(body), sinks, nil))

	got := wait()
	assert.Empty(t, got.readings)
	assert.Empty(t, got.referrals)
	assert.Equal(t, []string{"r1"}, got.assessments)
	assert.NoError(t, got.referralsErr)
}

func TestIngest_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "not an object", body: `[1,2,3]`, wantErr: ErrMalformedPayload},
		{name: "array before total", body: `{"readings":[],"total":0}`, wantErr: ErrTotalNotFirst},
		{name: "readings is an object", body: `{"total":1,"readings":{}}`, wantErr: ErrMalformedPayload},
		{name: "empty body", body: ``, wantErr: io.ErrUnexpectedEOF},
		{name: "bad record", body: `{"total":1,"readings":[{"readingId":5}]}`, wantErr: ErrIngestAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sinks := NewSinks(4)
			err := Ingest(context.Background(), strings.NewReader(tt.body), sinks, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIngestAborted)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, sinks.Readings.Err(), ErrIngestAborted)
		})
	}
}

func TestIngest_CancelledWhileBlockedOnSlowConsumer(t *testing.T) {
	body := `{"total":3,"readings":[{"readingId":"r1"},{"readingId":"r2"},{"readingId":"r3"}]}`

	ctx, cancel := context.WithCancel(context.Background())
	sinks := NewSinks(1)

	progress := func(processed, _ int) {
		// Nobody consumes: the second Send blocks until the context ends.
		if processed == 1 {
			cancel()
		}
	}

	err := Ingest(ctx, strings.NewReader(body), sinks, progress)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, sinks.Readings.Err(), ErrIngestAborted)
}
