package threadpool

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Pool owns a fixed set of workers and the queue they consume from. The
// worker count is fixed at construction; the queue is unbounded.
type Pool struct {
	id         string
	numWorkers int
	queue      *taskQueue
	wg         sync.WaitGroup
	shutdown   sync.Once
	logger     *slog.Logger
	onPanic    func(recovered any)
	counters   counters
}

// New creates a pool and launches numWorkers workers against its queue. It
// returns ErrInvalidWorkerCount for numWorkers < 1 without starting anything.
//
// New returns once the workers are launched; there is no guarantee that any
// worker has started waiting yet.
func New(numWorkers int, opts ...Option) (*Pool, error) {
	if numWorkers < 1 {
		return nil, ErrInvalidWorkerCount
	}

	p := &Pool{
		numWorkers: numWorkers,
		queue:      newTaskQueue(),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.id == "" {
		p.id = uuid.NewString()
	}
	p.logger = p.logger.With("pool_id", p.id)

	for i := range numWorkers {
		w := &worker{
			id:       i,
			source:   p.queue,
			logger:   p.logger,
			onPanic:  p.onPanic,
			counters: &p.counters,
		}
		p.wg.Go(w.run)
	}

	p.logger.Debug("Pool started", "workers", numWorkers)
	return p, nil
}

// ID returns the pool identifier.
func (p *Pool) ID() string {
	return p.id
}

// NumWorkers returns the fixed worker count.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// QueueDepth returns the number of tasks queued but not yet picked up.
func (p *Pool) QueueDepth() int {
	return p.queue.len()
}

// Submit enqueues a task and wakes one idle worker. It never blocks beyond
// queue lock contention and is safe to call from any number of goroutines.
// After Shutdown has been called it returns ErrPoolClosed and the task is
// never run.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}
	if err := p.queue.push(task); err != nil {
		p.counters.rejected.Add(1)
		return err
	}
	p.counters.submitted.Add(1)
	return nil
}

// Shutdown stops admission, wakes every blocked worker, and waits until all
// queued tasks have run and every worker has exited. Tasks already queued are
// drained, not discarded; a task in flight always finishes.
//
// Shutdown is idempotent. Concurrent callers block until the first call has
// finished joining the workers, then return.
func (p *Pool) Shutdown() {
	p.shutdown.Do(func() {
		p.logger.Debug("Pool shutting down", "queued", p.queue.len())
		p.queue.close()
		p.wg.Wait()
		p.logger.Debug("Pool drained", "completed", p.counters.completed.Load())
	})
}
