package worker

// Task is a queued unit of work, typically an applicant notification
// dispatched after a decision or disbursement
type Task func()

// Worker drains tasks from its queue on a single goroutine
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

// NewWorker creates a Worker with an unbuffered task queue
func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}
}

// Start launches the worker goroutine
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop signals the worker goroutine to exit
func (w *Worker) Stop() {
	close(w.stop)
}

// Submit hands a task to the worker, blocking until it is picked up
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}
