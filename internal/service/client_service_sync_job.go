package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/fieldsync/internal/logger"
)

// SyncJobOptions configure a ClientSyncJob.
type SyncJobOptions struct {
	// Interval is used by Run. A non-positive value leaves the job idle.
	Interval time.Duration
	// CycleTimeout bounds one cycle; zero means no bound.
	CycleTimeout time.Duration
	// Callback receives the progress of every cycle.
	Callback SyncCallback
}

type clientSyncJob struct {
	syncService ClientSyncService
	opts        SyncJobOptions

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls
// syncService.RunSyncCycle on a ticker. The job is idle until Start or Run
// is called.
func NewClientSyncJob(syncService ClientSyncService, opts SyncJobOptions, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, opts: opts, logger: logger}
}

// Run implements workers.Worker. It starts the job with the configured
// interval and returns immediately.
func (j *clientSyncJob) Run() {
	j.Start(context.Background(), j.opts.Interval)
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that runs a sync cycle every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		j.logger.Info().Str("func", "clientSyncJob.Start").Msg("sync interval not set, periodic sync disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("func", "clientSyncJob.Start").Dur("interval", interval).Msg("periodic sync started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	if j.opts.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.opts.CycleTimeout)
		defer cancel()
	}

	out := j.syncService.RunSyncCycle(ctx, j.opts.Callback)
	if !out.Success {
		j.logger.Warn().
			Str("func", "clientSyncJob.runOnce").
			Any("errors", out.Errors).
			Msg("periodic sync cycle did not complete")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
