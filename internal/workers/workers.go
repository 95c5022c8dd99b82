package workers

type Workers struct {
	workers []Worker
}

// New groups the given workers into a single aggregate.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
