package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/fieldsync/internal/adapter"
	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/ingest"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/result"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/models"
	"github.com/rs/zerolog"
)

// DownloadMode selects how readings and follow-ups are downloaded.
type DownloadMode string

const (
	// DownloadIndividual fetches every manifest entry with its own request.
	DownloadIndividual DownloadMode = "individual"
	// DownloadBatched fetches all new readings, referrals and follow-ups in
	// one streamed response.
	DownloadBatched DownloadMode = "batched"
)

const defaultMaxConcurrentRequests = 8

// SyncOptions tune a ClientSyncService.
type SyncOptions struct {
	// MaxConcurrentRequests bounds in-flight requests per phase.
	MaxConcurrentRequests int
	// DownloadMode defaults to DownloadIndividual.
	DownloadMode DownloadMode
	// SinkCapacity is the buffer of each streaming sink in batched mode.
	SinkCapacity int
	// Dispatcher runs callbacks; nil runs them inline.
	Dispatcher Dispatcher
	// Clock returns the time stored as checkpoint; nil means time.Now.
	Clock func() time.Time
}

type syncPhase int

const (
	phaseFetchingUpdates syncPhase = iota
	phaseUploading
	phaseDownloading
	phaseFinishing
)

func (p syncPhase) String() string {
	switch p {
	case phaseFetchingUpdates:
		return "fetching_updates"
	case phaseUploading:
		return "uploading"
	case phaseDownloading:
		return "downloading"
	case phaseFinishing:
		return "finishing"
	default:
		return "unknown"
	}
}

type clientSyncService struct {
	entities    store.EntityStore
	checkpoints store.CheckpointStore
	server      adapter.ServerAdapter
	opts        SyncOptions
	ids         *utils.UUIDGenerator

	// one cycle at a time
	mu sync.Mutex

	logger *logger.Logger
}

// NewClientSyncService wires the sync orchestrator to its collaborators.
func NewClientSyncService(
	entities store.EntityStore,
	checkpoints store.CheckpointStore,
	server adapter.ServerAdapter,
	opts SyncOptions,
	logger *logger.Logger,
) ClientSyncService {
	if opts.MaxConcurrentRequests <= 0 {
		opts.MaxConcurrentRequests = defaultMaxConcurrentRequests
	}
	if opts.DownloadMode == "" {
		opts.DownloadMode = DownloadIndividual
	}
	if opts.SinkCapacity <= 0 {
		opts.SinkCapacity = ingest.DefaultSinkCapacity
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = InlineDispatcher{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &clientSyncService{
		entities:    entities,
		checkpoints: checkpoints,
		server:      server,
		opts:        opts,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// syncCycle is the state of one RunSyncCycle call.
type syncCycle struct {
	*clientSyncService

	cb      *dispatchedCallback
	errs    *errorReport
	tally   *entityTally
	since   int64
	phase   syncPhase
	outcome models.CycleOutcome

	manifest models.SyncManifest
}

// RunSyncCycle implements ClientSyncService.
//
// The cycle is a four-state machine:
//
//	FetchingUpdates -> Uploading -> Downloading -> Finishing(true)
//	       |                                            ^
//	       +------------- fetch failed / cancelled ----> Finishing(false)
//
// Per-request failures never change the path; they are counted by the
// phase tracker and listed in the error report.
func (s *clientSyncService) RunSyncCycle(ctx context.Context, cb SyncCallback) models.CycleOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	cycleLogger := s.logger.GetChildLogger()
	cycleLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("cycle_id", s.ids.Generate())
	})
	ctx = cycleLogger.WithContext(ctx)

	c := &syncCycle{
		clientSyncService: s,
		cb:                withDispatcher(cb, s.opts.Dispatcher),
		errs:              newErrorReport(),
		tally:             &entityTally{},
		phase:             phaseFetchingUpdates,
		outcome:           models.CycleOutcome{StartedAt: s.opts.Clock()},
		manifest:          models.EmptySyncManifest(),
	}

	return c.run(ctx)
}

func (c *syncCycle) run(ctx context.Context) models.CycleOutcome {
	log := logger.FromContext(ctx)
	success := false

	for c.phase != phaseFinishing {
		log.Debug().Str("func", "syncCycle.run").Stringer("phase", c.phase).Msg("entering sync phase")

		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("func", "syncCycle.run").Stringer("phase", c.phase).Msg("sync cycle cancelled")
			c.errs.add(app.CodeCancelled)
			break
		}

		switch c.phase {
		case phaseFetchingUpdates:
			if c.fetchUpdates(ctx) {
				c.phase = phaseUploading
			} else {
				c.phase = phaseFinishing
			}
		case phaseUploading:
			c.upload(ctx)
			c.phase = phaseDownloading
		case phaseDownloading:
			c.download(ctx)
			// cancelled mid-download: keep the old checkpoint
			if ctx.Err() != nil {
				c.errs.add(app.CodeCancelled)
			} else {
				success = true
			}
			c.phase = phaseFinishing
		}
	}

	return c.finish(ctx, success)
}

// fetchUpdates reads the checkpoint and asks the server what changed since.
func (c *syncCycle) fetchUpdates(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	since, err := c.checkpoints.LastSync(ctx)
	if err != nil {
		log.Err(err).Str("func", "syncCycle.fetchUpdates").Msg("failed to read sync checkpoint")
		c.errs.add(app.CodeLocalStore)
		c.cb.OnFetchComplete(false)
		return false
	}
	c.since = since

	res := c.server.GetUpdatesSince(ctx, since)
	ok := result.Fold(res,
		func(manifest models.SyncManifest, _ int) bool {
			c.manifest = manifest
			log.Info().
				Str("func", "syncCycle.fetchUpdates").
				Int64("since", since).
				Int("new_patients", len(manifest.NewPatients())).
				Int("edited_patients", len(manifest.EditedPatients())).
				Int("new_readings", len(manifest.NewReadings())).
				Int("followups", len(manifest.Followups())).
				Msg("sync manifest received")
			return true
		},
		func(code int, body []byte) bool {
			log.Error().Str("func", "syncCycle.fetchUpdates").Int("status", code).Bytes("body", body).Msg("server rejected updates request")
			c.errs.add(code)
			return false
		},
		func(cause error) bool {
			log.Err(cause).Str("func", "syncCycle.fetchUpdates").Msg("updates request failed")
			c.errs.add(exceptionCode(cause))
			return false
		},
	)

	c.cb.OnFetchComplete(ok)
	return ok
}

// finish persists the checkpoint on the success path and reports the end
// of the cycle. It is the only exit of run.
func (c *syncCycle) finish(ctx context.Context, success bool) models.CycleOutcome {
	log := logger.FromContext(ctx)

	if success {
		checkpoint := c.opts.Clock().Unix()
		if err := c.checkpoints.SaveLastSync(ctx, checkpoint); err != nil {
			log.Err(err).Str("func", "syncCycle.finish").Int64("checkpoint", checkpoint).Msg("failed to save sync checkpoint")
			c.errs.add(app.CodeLocalStore)
			success = false
		} else {
			c.outcome.Checkpoint = checkpoint
		}
	}

	c.outcome.Success = success
	c.outcome.Entities = c.tally.snapshot()
	c.outcome.Errors = c.errs.snapshot()
	c.outcome.FinishedAt = c.opts.Clock()

	log.Info().
		Str("func", "syncCycle.finish").
		Bool("success", success).
		Any("upload", c.outcome.Upload).
		Any("download", c.outcome.Download).
		Any("entities", c.outcome.Entities).
		Any("failures", c.outcome.Failures).
		Msg("sync cycle finished")

	c.cb.OnCycleFinish(c.errs.snapshot())
	return c.outcome
}

// settle records the result of one request in the phase tracker and the
// error report. onSuccess persists what the server returned; if it fails
// the request counts as failed with app.CodeLocalStore.
func settle[T any](
	ctx context.Context,
	c *syncCycle,
	tracker *RequestTracker,
	what, id string,
	res result.NetworkResult[T],
	onSuccess func(T) error,
) {
	log := logger.FromContext(ctx)

	out := result.Fold(res,
		func(v T, _ int) requestOutcome {
			if err := onSuccess(v); err != nil {
				log.Err(err).Str("func", "settle").Str("request", what).Str("id", id).Msg("failed to store synced record")
				return requestOutcome{code: app.CodeLocalStore}
			}
			return requestOutcome{ok: true}
		},
		func(code int, body []byte) requestOutcome {
			log.Warn().Str("func", "settle").Str("request", what).Str("id", id).Int("status", code).Bytes("body", body).Msg("server rejected request")
			return requestOutcome{code: code}
		},
		func(cause error) requestOutcome {
			log.Warn().Err(cause).Str("func", "settle").Str("request", what).Str("id", id).Msg("request failed")
			return requestOutcome{code: exceptionCode(cause)}
		},
	)

	c.tally.add(requestKinds[what], out.ok, 1)
	if out.ok {
		tracker.RecordSuccess()
		return
	}

	c.errs.add(out.code)
	tracker.RecordFailure(out.code)
}

// phaseSettled stores the final status of a phase tracker in the outcome.
// It runs after every request of the phase has returned.
func (c *syncCycle) phaseSettled(tracker *RequestTracker) models.TotalRequestStatus {
	for code, n := range tracker.FailuresByCode() {
		if c.outcome.Failures == nil {
			c.outcome.Failures = make(map[int]int)
		}
		c.outcome.Failures[code] += n
	}
	return tracker.Status()
}

// Request names, as logged and as counted per record type.
const (
	reqPostPatient           = "post_patient"
	reqPostReading           = "post_reading"
	reqUpdatePatient         = "update_patient"
	reqGetPatientAndReadings = "get_patient_and_readings"
	reqGetPatient            = "get_patient"
	reqGetReading            = "get_reading"
	reqGetAssessments        = "get_assessments"
)

var requestKinds = map[string]models.EntityKind{
	reqPostPatient:           models.KindPatients,
	reqGetPatientAndReadings: models.KindPatients,
	reqUpdatePatient:         models.KindEditedPatients,
	reqGetPatient:            models.KindEditedPatients,
	reqPostReading:           models.KindReadings,
	reqGetReading:            models.KindReadings,
	reqGetAssessments:        models.KindAssessments,
}

// entityTally is the per record type part of the outcome. It is shared by
// all request goroutines.
type entityTally struct {
	mu     sync.Mutex
	counts models.EntityCounts
}

func (t *entityTally) add(kind models.EntityKind, ok bool, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts.Add(kind, ok, n)
}

func (t *entityTally) snapshot() models.EntityCounts {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts
}

type requestOutcome struct {
	ok   bool
	code int
}

// exceptionCode classifies a request that got no server answer.
func exceptionCode(cause error) int {
	switch {
	case errors.Is(cause, context.Canceled), errors.Is(cause, context.DeadlineExceeded):
		return app.CodeCancelled
	case errors.Is(cause, ingest.ErrIngestAborted):
		return app.CodeStream
	default:
		return app.CodeNetwork
	}
}
