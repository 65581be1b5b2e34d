package threadpool

import "sync/atomic"

// Stats is a point-in-time snapshot of a pool's activity. Counters are
// cumulative over the pool's lifetime.
type Stats struct {
	ID         string
	Workers    int
	QueueDepth int
	Submitted  uint64
	Completed  uint64
	Rejected   uint64
	Failed     uint64
}

type counters struct {
	submitted atomic.Uint64
	completed atomic.Uint64
	rejected  atomic.Uint64
	failed    atomic.Uint64
}

// Stats returns a snapshot of the pool. Counters are read individually, so a
// snapshot taken while tasks are in flight is internally approximate (for
// example, Submitted may already include a task that Completed has not).
func (p *Pool) Stats() Stats {
	return Stats{
		ID:         p.id,
		Workers:    p.numWorkers,
		QueueDepth: p.queue.len(),
		Submitted:  p.counters.submitted.Load(),
		Completed:  p.counters.completed.Load(),
		Rejected:   p.counters.rejected.Load(),
		Failed:     p.counters.failed.Load(),
	}
}
