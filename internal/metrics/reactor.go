package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reactorTasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reactor",
		Name:      "tasks_total",
		Help:      "Count of reactor side effects executed.",
	}, []string{"reactor", "chain", "status"})

	reactorTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reactor",
		Name:      "task_duration_seconds",
		Help:      "Duration of reactor side effects.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"reactor", "chain", "status"})
)

// Reactor tracks metrics for one reactor.
type Reactor struct {
	name string
}

// NewReactor constructs a Reactor recorder.
func NewReactor(name string) *Reactor {
	return &Reactor{name: orUnknown(name)}
}

// Observe records one side effect outcome and duration.
func (m Reactor) Observe(chain string, err error, started time.Time) {
	s := status(err)
	chain = orUnknown(chain)

	reactorTasksTotal.WithLabelValues(m.name, chain, s).Inc()
	reactorTaskDuration.WithLabelValues(m.name, chain, s).Observe(time.Since(started).Seconds())
}
