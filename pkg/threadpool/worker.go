package threadpool

import "log/slog"

// workSource is the view of the queue a worker runs against. Workers never
// touch the owning pool directly.
type workSource interface {
	popBlocking() (Task, bool)
}

type worker struct {
	id       int
	source   workSource
	logger   *slog.Logger
	onPanic  func(recovered any)
	counters *counters
}

// run pulls tasks from the source until it reports that the queue is
// stopping and drained.
func (w *worker) run() {
	w.logger.Debug("Worker started", "worker", w.id)

	for {
		task, ok := w.source.popBlocking()
		if !ok {
			w.logger.Debug("Worker exiting", "worker", w.id)
			return
		}
		w.execute(task)
	}
}

// execute runs a single task outside the queue lock. A panicking task is
// contained here: the panic is recovered, counted, and handed to the optional
// handler, and the worker returns to its loop.
func (w *worker) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.counters.failed.Add(1)
			w.logger.Error("Task panicked", "worker", w.id, "panic", r)
			if w.onPanic != nil {
				w.onPanic(r)
			}
			return
		}
		w.counters.completed.Add(1)
	}()

	task()
}
