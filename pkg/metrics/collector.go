// Package metrics exposes worker pool statistics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Jofairden/threadpool-busywaitproblem/pkg/threadpool"
)

// Collector implements prometheus.Collector over a pool. Stats are read on
// scrape; nothing is recorded from the submit or execute paths.
type Collector struct {
	pool *threadpool.Pool

	workers    *prometheus.Desc
	queueDepth *prometheus.Desc
	submitted  *prometheus.Desc
	completed  *prometheus.Desc
	rejected   *prometheus.Desc
	failed     *prometheus.Desc
}

// NewCollector creates a collector for the given pool. All metrics carry a
// pool_id label so several pools can share one registry.
func NewCollector(pool *threadpool.Pool) *Collector {
	labels := prometheus.Labels{"pool_id": pool.ID()}
	return &Collector{
		pool: pool,
		workers: prometheus.NewDesc(
			"threadpool_workers",
			"Number of workers in the pool.",
			nil, labels,
		),
		queueDepth: prometheus.NewDesc(
			"threadpool_queue_depth",
			"Number of tasks queued but not yet picked up by a worker.",
			nil, labels,
		),
		submitted: prometheus.NewDesc(
			"threadpool_tasks_submitted_total",
			"Total number of tasks accepted by the pool.",
			nil, labels,
		),
		completed: prometheus.NewDesc(
			"threadpool_tasks_completed_total",
			"Total number of tasks that ran to completion.",
			nil, labels,
		),
		rejected: prometheus.NewDesc(
			"threadpool_tasks_rejected_total",
			"Total number of submissions rejected after shutdown.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			"threadpool_tasks_failed_total",
			"Total number of tasks that panicked.",
			nil, labels,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.queueDepth
	ch <- c.submitted
	ch <- c.completed
	ch <- c.rejected
	ch <- c.failed
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.pool.Stats()
	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(stats.Workers))
	ch <- prometheus.MustNewConstMetric(c.queueDepth, prometheus.GaugeValue, float64(stats.QueueDepth))
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(stats.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(stats.Completed))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(stats.Rejected))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(stats.Failed))
}

// NewRegistry returns a registry with a collector for the pool already
// registered, ready to be served by promhttp.
func NewRegistry(pool *threadpool.Pool) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(NewCollector(pool))
	return registry
}
