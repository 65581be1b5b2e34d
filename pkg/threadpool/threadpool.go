// Package threadpool provides a fixed-size pool of long-lived workers that
// execute tasks from a shared FIFO queue. Workers block on a condition
// variable while the queue is empty, so an idle pool consumes no CPU.
//
// Shutdown is graceful: every task accepted before Shutdown is called runs
// exactly once before Shutdown returns.
package threadpool

import "errors"

// Task is a unit of work submitted to a Pool. A task takes no arguments and
// returns nothing; any state it needs must be captured at submission time and
// remains owned by the closure until the task has run.
type Task func()

var (
	// ErrInvalidWorkerCount is returned by New when the requested worker
	// count is less than one.
	ErrInvalidWorkerCount = errors.New("threadpool: worker count must be at least 1")

	// ErrPoolClosed is returned by Submit once Shutdown has been called.
	// The rejected task is never queued.
	ErrPoolClosed = errors.New("threadpool: pool is shut down")

	// ErrNilTask is returned by Submit for a nil task.
	ErrNilTask = errors.New("threadpool: task must not be nil")
)
