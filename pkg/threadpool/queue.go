package threadpool

import "sync"

// taskQueue is the shared FIFO queue behind a pool. A single mutex guards
// both the pending tasks and the stopping flag, and the condition variable is
// bound to that same mutex, so a worker can never observe the flag and the
// queue contents out of sync.
type taskQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	pending  []Task
	stopping bool
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// push appends a task to the back of the queue and wakes one blocked worker.
// Once close has been called, push returns ErrPoolClosed and the task is not
// queued; the check happens under the queue lock so reject-vs-enqueue is
// atomic with respect to shutdown.
func (q *taskQueue) push(task Task) error {
	q.mu.Lock()
	if q.stopping {
		q.mu.Unlock()
		return ErrPoolClosed
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	q.notEmpty.Signal()
	return nil
}

// popBlocking removes and returns the task at the front of the queue,
// blocking while the queue is empty and the queue is not stopping. The loop
// re-evaluates the predicate on every wake, which covers spurious wakeups.
//
// It returns (nil, false) only when the queue is stopping and fully drained;
// that is the worker's signal to exit.
func (q *taskQueue) popBlocking() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.pending) == 0 && !q.stopping {
		q.notEmpty.Wait()
	}

	if len(q.pending) == 0 {
		return nil, false
	}

	task := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	return task, true
}

// close marks the queue as stopping and wakes every blocked worker. It must
// broadcast rather than signal: each parked worker has to observe the flag
// and exit, or shutdown would hang forever. Queued tasks stay in place and
// are still handed out by popBlocking until the queue is drained.
func (q *taskQueue) close() {
	q.mu.Lock()
	q.stopping = true
	q.mu.Unlock()

	q.notEmpty.Broadcast()
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
