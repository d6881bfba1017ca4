package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/fieldsync/internal/adapter"
	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/ingest"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/MKhiriev/fieldsync/models"
	"golang.org/x/sync/errgroup"
)

// download pulls every manifest entry and stores it with the server's
// version winning. All requests of the phase settle before it returns.
func (c *syncCycle) download(ctx context.Context) {
	total := c.manifest.Total()
	tracker := NewRequestTracker(total, c.cb.OnDownloadProgress)
	if total == 0 {
		c.outcome.Download = tracker.Status()
		c.cb.OnDownloadPhaseComplete(c.outcome.Download)
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(c.opts.MaxConcurrentRequests)

	for _, id := range c.manifest.NewPatients() {
		g.Go(func() error {
			c.downloadNewPatient(ctx, tracker, id)
			return nil
		})
	}
	for _, id := range c.manifest.EditedPatients() {
		g.Go(func() error {
			c.downloadEditedPatient(ctx, tracker, id)
			return nil
		})
	}

	switch c.opts.DownloadMode {
	case DownloadBatched:
		slots := streamSlots{
			readings:  len(c.manifest.NewReadings()),
			followups: len(c.manifest.Followups()),
		}
		if slots.total() > 0 {
			g.Go(func() error {
				c.streamReadings(ctx, tracker, slots)
				return nil
			})
		}
	default:
		for _, id := range c.manifest.NewReadings() {
			g.Go(func() error {
				c.downloadReading(ctx, tracker, id)
				return nil
			})
		}
		for _, id := range c.manifest.Followups() {
			g.Go(func() error {
				c.downloadAssessments(ctx, tracker, id)
				return nil
			})
		}
	}

	_ = g.Wait()
	<-tracker.Settled()

	c.outcome.Download = c.phaseSettled(tracker)
	c.cb.OnDownloadPhaseComplete(c.outcome.Download)
}

func (c *syncCycle) downloadNewPatient(ctx context.Context, tracker *RequestTracker, id string) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqGetPatientAndReadings)
		return
	}

	res := c.server.GetPatientAndReadings(ctx, id)
	settle(ctx, c, tracker, reqGetPatientAndReadings, id, res, func(p models.PatientAndReadings) error {
		p.MarkSynced()
		if err := c.entities.UpsertPatient(ctx, p.Patient); err != nil {
			return err
		}
		for _, r := range p.Readings {
			if err := c.saveReading(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *syncCycle) downloadEditedPatient(ctx context.Context, tracker *RequestTracker, id string) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqGetPatient)
		return
	}

	res := c.server.GetPatient(ctx, id)
	settle(ctx, c, tracker, reqGetPatient, id, res, func(p models.Patient) error {
		p.MarkSynced()
		return c.entities.UpsertPatient(ctx, p)
	})
}

func (c *syncCycle) downloadReading(ctx context.Context, tracker *RequestTracker, id string) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqGetReading)
		return
	}

	res := c.server.GetReading(ctx, id)
	settle(ctx, c, tracker, reqGetReading, id, res, func(r models.Reading) error {
		return c.saveReading(ctx, r)
	})
}

func (c *syncCycle) downloadAssessments(ctx context.Context, tracker *RequestTracker, readingID string) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqGetAssessments)
		return
	}

	res := c.server.GetAssessmentsForReading(ctx, readingID)
	settle(ctx, c, tracker, reqGetAssessments, readingID, res, func(list []models.Assessment) error {
		for _, a := range list {
			if err := c.entities.UpsertAssessment(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
}

// saveReading stores a reading that came from the server, together with
// the referral and follow-up embedded in it.
func (c *syncCycle) saveReading(ctx context.Context, r models.Reading) error {
	r.IsUploadedToServer = true
	if err := c.entities.UpsertReading(ctx, r); err != nil {
		return err
	}

	if r.Referral != nil {
		ref := *r.Referral
		ref.IsUploadedToServer = true
		if err := c.entities.UpsertReferral(ctx, ref); err != nil {
			return err
		}
	}

	if r.FollowUp != nil {
		if err := c.entities.UpsertAssessment(ctx, *r.FollowUp); err != nil {
			return err
		}
	}

	return nil
}

// streamSlots is how many manifest entries one readings stream stands for.
type streamSlots struct {
	readings  int
	followups int
}

func (s streamSlots) total() int { return s.readings + s.followups }

// streamReadings downloads readings, referrals and follow-ups in a single
// streamed response. The slots of the manifest's readings and follow-ups
// settle together when the stream ends: all succeed or all fail.
func (c *syncCycle) streamReadings(ctx context.Context, tracker *RequestTracker, slots streamSlots) {
	log := logger.FromContext(ctx)

	if ctx.Err() != nil {
		for range slots.readings {
			c.cancelled(tracker, reqGetReading)
		}
		for range slots.followups {
			c.cancelled(tracker, reqGetAssessments)
		}
		return
	}

	sinks := ingest.NewSinks(c.opts.SinkCapacity)

	var (
		wg          sync.WaitGroup
		storeErrors atomic.Int64
		readings    atomic.Int64
		referrals   atomic.Int64
		assessments atomic.Int64
	)

	drain := func(name string, fn func() error, count *atomic.Int64) {
		if err := fn(); err != nil {
			storeErrors.Add(1)
			log.Err(err).Str("func", "syncCycle.streamReadings").Str("sink", name).Msg("failed to store streamed record")
			return
		}
		count.Add(1)
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		_ = sinks.Readings.Drain(ctx, func(r models.Reading) {
			drain("readings", func() error {
				r.IsUploadedToServer = true
				return c.entities.UpsertReading(ctx, r)
			}, &readings)
		})
	}()
	go func() {
		defer wg.Done()
		_ = sinks.Referrals.Drain(ctx, func(r models.Referral) {
			drain("referrals", func() error {
				r.IsUploadedToServer = true
				return c.entities.UpsertReferral(ctx, r)
			}, &referrals)
		})
	}()
	go func() {
		defer wg.Done()
		_ = sinks.Assessments.Drain(ctx, func(a models.Assessment) {
			drain("assessments", func() error {
				return c.entities.UpsertAssessment(ctx, a)
			}, &assessments)
		})
	}()

	onProgress := func(processed, total int) {
		c.cb.OnStreamProgress(processed, total)
		log.Debug().Str("func", "syncCycle.streamReadings").Int("processed", processed).Int("total", total).Msg("stream progress")
	}

	res := c.server.StreamReadingsSince(ctx, c.since, sinks, onProgress)
	// the adapter closes every sink, this only guards against one that did not
	sinks.CloseAll(adapter.ErrStreamNotStarted)
	wg.Wait()

	log.Info().
		Str("func", "syncCycle.streamReadings").
		Int64("readings", readings.Load()).
		Int64("referrals", referrals.Load()).
		Int64("assessments", assessments.Load()).
		Int64("store_errors", storeErrors.Load()).
		Msg("readings stream finished")

	code := result.Fold(res,
		func(struct{}, int) int {
			if storeErrors.Load() > 0 {
				return app.CodeLocalStore
			}
			return 0
		},
		func(code int, body []byte) int {
			log.Warn().Str("func", "syncCycle.streamReadings").Int("status", code).Bytes("body", body).Msg("server rejected readings stream")
			return code
		},
		func(cause error) int {
			log.Warn().Err(cause).Str("func", "syncCycle.streamReadings").Msg("readings stream failed")
			return exceptionCode(cause)
		},
	)

	ok := code == 0
	c.tally.add(models.KindReadings, ok, slots.readings)
	c.tally.add(models.KindAssessments, ok, slots.followups)

	if ok {
		for range slots.total() {
			tracker.RecordSuccess()
		}
		return
	}

	c.errs.add(code)
	for range slots.total() {
		tracker.RecordFailure(code)
	}
}
