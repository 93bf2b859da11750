package pool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level vectors mirror indigo's parallel.Scheduler metrics
// shape: one set of instruments registered once to the default
// registry, sliced per pool by the "pool" label.
var (
	tasksEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treecore_pool_tasks_enqueued_total",
		Help: "Tasks enqueued onto a container worker pool.",
	}, []string{"pool"})

	tasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treecore_pool_tasks_completed_total",
		Help: "Tasks completed by a container worker pool.",
	}, []string{"pool"})

	workersActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "treecore_pool_workers_active",
		Help: "Workers currently running in a container worker pool.",
	}, []string{"pool"})
)

// metrics binds the package-level vectors to a single pool's label
// value, so call sites in pool.go can Inc/Dec without repeating it.
type metrics struct {
	tasksEnqueued  prometheus.Counter
	tasksCompleted prometheus.Counter
	workersActive  prometheus.Gauge
}

func newMetrics(name string) *metrics {
	return &metrics{
		tasksEnqueued:  tasksEnqueued.WithLabelValues(name),
		tasksCompleted: tasksCompleted.WithLabelValues(name),
		workersActive:  workersActive.WithLabelValues(name),
	}
}
