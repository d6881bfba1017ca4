package workers

// Workers is a fixed set of workers started in order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers so they can be started together.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in the order given to NewWorkers.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers that implement Stopper, last started first, and
// waits for each of them.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(Stopper); ok {
			s.Stop()
		}
	}
}
