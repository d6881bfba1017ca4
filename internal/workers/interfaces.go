// Package workers groups the client's background workers so the
// application can start and stop them in one call.
package workers

// Worker is a background worker. Run starts it; implementations spawn their
// own goroutines and return immediately.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that must be stopped before exit.
type Stopper interface {
	Stop()
}
