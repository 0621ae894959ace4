package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	observedBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "observer",
		Name:      "blocks_total",
		Help:      "Count of stream items handled by a chain worker.",
	}, []string{"chain", "status"})

	observedBlockErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "observer",
		Name:      "block_errors_total",
		Help:      "Count of skipped stream items, by pipeline stage.",
	}, []string{"chain", "stage"})

	observedEventsPerBlock = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "observer",
		Name:      "events_per_block",
		Help:      "Number of decoded events attached to each observed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"chain"})

	observedHead = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "observer",
		Name:      "head_block_number",
		Help:      "Number of the last block observed on each chain.",
	}, []string{"chain"})
)

// Observer tracks metrics for one chain worker.
type Observer struct {
	chain string
}

// NewObserver constructs an Observer for the given chain.
func NewObserver(chain string) *Observer {
	return &Observer{chain: orUnknown(chain)}
}

// ObserveBlock records a successfully observed block.
func (m Observer) ObserveBlock(number uint64, events int) {
	observedBlocksTotal.WithLabelValues(m.chain, "success").Inc()
	observedEventsPerBlock.WithLabelValues(m.chain).Observe(float64(events))
	observedHead.WithLabelValues(m.chain).Set(float64(number))
}

// ObserveError records a skipped item and the stage it failed at.
func (m Observer) ObserveError(stage string) {
	if stage == "" {
		stage = "unknown"
	}

	observedBlocksTotal.WithLabelValues(m.chain, "error").Inc()
	observedBlockErrorsTotal.WithLabelValues(m.chain, stage).Inc()
}
