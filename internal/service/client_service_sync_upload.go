package service

import (
	"context"

	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
	"golang.org/x/sync/errgroup"
)

// upload sends every local change the manifest does not conflict with.
// All requests of the phase settle before it returns.
func (c *syncCycle) upload(ctx context.Context) {
	log := logger.FromContext(ctx)

	newPatients, err := c.entities.GetUnsyncedNewPatients(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncCycle.upload").Msg("failed to load new patients")
		c.errs.add(app.CodeLocalStore)
		newPatients = nil
	}

	newReadings, err := c.entities.GetUnsyncedReadingsForSyncedPatients(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncCycle.upload").Msg("failed to load new readings")
		c.errs.add(app.CodeLocalStore)
		newReadings = nil
	}

	editedPatients, err := c.entities.GetEditedPatientsSince(ctx, c.since)
	if err != nil {
		log.Err(err).Str("func", "syncCycle.upload").Msg("failed to load edited patients")
		c.errs.add(app.CodeLocalStore)
		editedPatients = nil
	}

	sets := ComputeUploadSets(c.manifest, newPatients, newReadings, editedPatients)
	log.Info().
		Str("func", "syncCycle.upload").
		Int("patients", len(sets.Patients)).
		Int("readings", len(sets.Readings)).
		Int("edited_patients", len(sets.EditedPatients)).
		Msg("upload sets computed")

	tracker := NewRequestTracker(sets.Total(), c.cb.OnUploadProgress)
	if sets.Total() == 0 {
		c.outcome.Upload = tracker.Status()
		c.cb.OnUploadPhaseComplete(c.outcome.Upload)
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(c.opts.MaxConcurrentRequests)

	for _, p := range sets.Patients {
		g.Go(func() error {
			c.postPatient(ctx, tracker, p)
			return nil
		})
	}
	for _, r := range sets.Readings {
		g.Go(func() error {
			c.postReading(ctx, tracker, r)
			return nil
		})
	}
	for _, p := range sets.EditedPatients {
		g.Go(func() error {
			c.updatePatient(ctx, tracker, p)
			return nil
		})
	}

	_ = g.Wait()
	<-tracker.Settled()

	c.outcome.Upload = c.phaseSettled(tracker)
	c.cb.OnUploadPhaseComplete(c.outcome.Upload)
}

func (c *syncCycle) postPatient(ctx context.Context, tracker *RequestTracker, p models.PatientAndReadings) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqPostPatient)
		return
	}

	res := c.server.PostPatient(ctx, p)
	settle(ctx, c, tracker, reqPostPatient, p.ID, res, func(models.PatientAndReadings) error {
		if err := c.entities.MarkPatientSynced(ctx, p.ID, lastEdited(p.Patient)); err != nil {
			return err
		}
		for _, r := range p.Readings {
			if err := c.entities.MarkReadingUploaded(ctx, r.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *syncCycle) postReading(ctx context.Context, tracker *RequestTracker, r models.Reading) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqPostReading)
		return
	}

	res := c.server.PostReading(ctx, r)
	settle(ctx, c, tracker, reqPostReading, r.ID, res, func(models.Reading) error {
		return c.entities.MarkReadingUploaded(ctx, r.ID)
	})
}

func (c *syncCycle) updatePatient(ctx context.Context, tracker *RequestTracker, p models.Patient) {
	if ctx.Err() != nil {
		c.cancelled(tracker, reqUpdatePatient)
		return
	}

	res := c.server.UpdatePatient(ctx, p)
	settle(ctx, c, tracker, reqUpdatePatient, p.ID, res, func(models.Patient) error {
		return c.entities.MarkPatientSynced(ctx, p.ID, lastEdited(p))
	})
}

// cancelled settles a request that was never sent.
func (c *syncCycle) cancelled(tracker *RequestTracker, what string) {
	c.tally.add(requestKinds[what], false, 1)
	c.errs.add(app.CodeCancelled)
	tracker.RecordFailure(app.CodeCancelled)
}

// lastEdited is the baseline a patient gets once the server accepted it:
// the edit time that was sent, not whatever the row holds now.
func lastEdited(p models.Patient) int64 {
	if p.LastEdited == nil {
		return 0
	}
	return *p.LastEdited
}
