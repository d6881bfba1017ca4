package service

import (
	"sync"

	"github.com/MKhiriev/fieldsync/internal/app"
	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/models"
)

// SyncCallback receives the progress of a sync cycle. Calls arrive in phase
// order and OnCycleFinish is always the last one, whatever happened.
type SyncCallback interface {
	// OnFetchComplete reports whether the server manifest was fetched.
	OnFetchComplete(success bool)
	// OnUploadProgress is called after every settled upload request.
	OnUploadProgress(status models.TotalRequestStatus)
	// OnUploadPhaseComplete is called once, after every upload settled.
	OnUploadPhaseComplete(status models.TotalRequestStatus)
	// OnDownloadProgress is called after every settled download request.
	OnDownloadProgress(status models.TotalRequestStatus)
	// OnDownloadPhaseComplete is called once, after every download settled.
	OnDownloadPhaseComplete(status models.TotalRequestStatus)
	// OnCycleFinish reports the errors of the cycle keyed by status code.
	OnCycleFinish(errors map[int]string)
}

// StreamProgressCallback is optionally implemented by a SyncCallback that
// wants record-level progress of a batched readings download.
type StreamProgressCallback interface {
	OnStreamProgress(processed, total int)
}

// Dispatcher decides on which goroutine callbacks run. The engine hands
// every callback invocation to Dispatch in the order the events happened.
type Dispatcher interface {
	Dispatch(fn func())
}

// InlineDispatcher runs callbacks on the goroutine that produced the event.
// Callbacks must then be safe for concurrent use.
type InlineDispatcher struct{}

func (InlineDispatcher) Dispatch(fn func()) { fn() }

// SerialDispatcher runs callbacks one at a time, in submission order, on a
// dedicated goroutine.
type SerialDispatcher struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewSerialDispatcher starts the dispatch goroutine. backlog bounds how many
// callbacks may wait before Dispatch blocks.
func NewSerialDispatcher(backlog int) *SerialDispatcher {
	if backlog <= 0 {
		backlog = 64
	}

	d := &SerialDispatcher{
		queue: make(chan func(), backlog),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(d.done)
		for fn := range d.queue {
			fn()
		}
	}()

	return d
}

func (d *SerialDispatcher) Dispatch(fn func()) {
	d.queue <- fn
}

// Close stops accepting callbacks and waits until the queued ones have run.
func (d *SerialDispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}

// dispatchedCallback routes every call of the wrapped callback through a
// Dispatcher.
type dispatchedCallback struct {
	cb         SyncCallback
	dispatcher Dispatcher
}

func withDispatcher(cb SyncCallback, d Dispatcher) *dispatchedCallback {
	if cb == nil {
		cb = NopCallback{}
	}
	if d == nil {
		d = InlineDispatcher{}
	}
	return &dispatchedCallback{cb: cb, dispatcher: d}
}

func (c *dispatchedCallback) OnFetchComplete(success bool) {
	c.dispatcher.Dispatch(func() { c.cb.OnFetchComplete(success) })
}

func (c *dispatchedCallback) OnUploadProgress(status models.TotalRequestStatus) {
	c.dispatcher.Dispatch(func() { c.cb.OnUploadProgress(status) })
}

func (c *dispatchedCallback) OnUploadPhaseComplete(status models.TotalRequestStatus) {
	c.dispatcher.Dispatch(func() { c.cb.OnUploadPhaseComplete(status) })
}

func (c *dispatchedCallback) OnDownloadProgress(status models.TotalRequestStatus) {
	c.dispatcher.Dispatch(func() { c.cb.OnDownloadProgress(status) })
}

func (c *dispatchedCallback) OnDownloadPhaseComplete(status models.TotalRequestStatus) {
	c.dispatcher.Dispatch(func() { c.cb.OnDownloadPhaseComplete(status) })
}

func (c *dispatchedCallback) OnCycleFinish(errors map[int]string) {
	c.dispatcher.Dispatch(func() { c.cb.OnCycleFinish(errors) })
}

func (c *dispatchedCallback) OnStreamProgress(processed, total int) {
	sp, ok := c.cb.(StreamProgressCallback)
	if !ok {
		return
	}
	c.dispatcher.Dispatch(func() { sp.OnStreamProgress(processed, total) })
}

// NopCallback ignores every event.
type NopCallback struct{}

func (NopCallback) OnFetchComplete(bool)                              {}
func (NopCallback) OnUploadProgress(models.TotalRequestStatus)        {}
func (NopCallback) OnUploadPhaseComplete(models.TotalRequestStatus)   {}
func (NopCallback) OnDownloadProgress(models.TotalRequestStatus)      {}
func (NopCallback) OnDownloadPhaseComplete(models.TotalRequestStatus) {}
func (NopCallback) OnCycleFinish(map[int]string)                      {}

// LogCallback writes cycle progress to a logger. It is what the client uses
// when no terminal UI is attached.
type LogCallback struct {
	Logger *logger.Logger
}

func (l LogCallback) OnFetchComplete(success bool) {
	l.Logger.Info().Str("func", "LogCallback.OnFetchComplete").Bool("success", success).Msg("sync manifest fetched")
}

func (l LogCallback) OnUploadProgress(status models.TotalRequestStatus) {
	l.Logger.Debug().Str("func", "LogCallback.OnUploadProgress").Any("status", status).Msg("upload progress")
}

func (l LogCallback) OnUploadPhaseComplete(status models.TotalRequestStatus) {
	l.Logger.Info().Str("func", "LogCallback.OnUploadPhaseComplete").Any("status", status).Msg("upload phase complete")
}

func (l LogCallback) OnDownloadProgress(status models.TotalRequestStatus) {
	l.Logger.Debug().Str("func", "LogCallback.OnDownloadProgress").Any("status", status).Msg("download progress")
}

func (l LogCallback) OnDownloadPhaseComplete(status models.TotalRequestStatus) {
	l.Logger.Info().Str("func", "LogCallback.OnDownloadPhaseComplete").Any("status", status).Msg("download phase complete")
}

func (l LogCallback) OnCycleFinish(errors map[int]string) {
	if len(errors) == 0 {
		l.Logger.Info().Str("func", "LogCallback.OnCycleFinish").Msg("sync cycle finished without errors")
		return
	}

	for code, msg := range errors {
		l.Logger.Warn().Str("func", "LogCallback.OnCycleFinish").Int("code", code).Msg(msg)
	}
}

// errorReport collects the error codes of a cycle. It is shared by all
// request goroutines.
type errorReport struct {
	mu     sync.Mutex
	errors map[int]string
}

func newErrorReport() *errorReport {
	return &errorReport{errors: make(map[int]string)}
}

func (r *errorReport) add(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.errors[code]; !ok {
		r.errors[code] = app.MessageFor(code)
	}
}

// snapshot returns a copy that is safe to hand to callbacks.
func (r *errorReport) snapshot() map[int]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int]string, len(r.errors))
	for code, msg := range r.errors {
		out[code] = msg
	}
	return out
}
