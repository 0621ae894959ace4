// Package metrics defines the Prometheus collectors exposed by the relay and
// small per-component recorders that label them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blockrelay"

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(chain string) string {
	if chain == "" {
		return "unknown"
	}
	return chain
}

// RPCClient tracks metrics for RPC calls to one chain's node.
type RPCClient struct {
	chain string
}

// NewRPCClient constructs a metrics recorder for RPC calls.
func NewRPCClient(chain string) *RPCClient {
	return &RPCClient{chain: orUnknown(chain)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)

	rpcRequestsTotal.WithLabelValues(operation, m.chain, s).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chain, s).Observe(time.Since(started).Seconds())
}
