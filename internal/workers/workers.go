package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers into a single aggregate. Workers are
// started in the order they were passed in.
func NewWorkers(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
