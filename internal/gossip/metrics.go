package gossip

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics counts deltas flowing through a relay node, mirroring the
// teacher's PlutoMetrics / DistrobutorMetrics split between a discard
// sink and real prometheus counters.
type Metrics struct {
	DeltasSent     metrics.Counter
	DeltasReceived metrics.Counter
	DeltasJoined   metrics.Counter
}

// NewMetrics returns counters labeled by replica. When enabled is
// false (no one is scraping /metrics for this demo run) every counter
// discards its observations, same as NewPlutoMetrics does when no
// distributor address is configured.
func NewMetrics(enabled bool) *Metrics {
	if !enabled {
		return &Metrics{
			DeltasSent:     discard.NewCounter(),
			DeltasReceived: discard.NewCounter(),
			DeltasJoined:   discard.NewCounter(),
		}
	}

	return &Metrics{
		DeltasSent: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: "crdt",
			Subsystem: "gossip",
			Name:      "deltas_sent_total",
			Help:      "Number of deltas broadcast to peers.",
		}, []string{"replica"}),
		DeltasReceived: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: "crdt",
			Subsystem: "gossip",
			Name:      "deltas_received_total",
			Help:      "Number of deltas accepted from peers.",
		}, []string{"replica"}),
		DeltasJoined: prometheus.NewCounterFrom(prom.CounterOpts{
			Namespace: "crdt",
			Subsystem: "gossip",
			Name:      "deltas_joined_total",
			Help:      "Number of received deltas successfully handed to the local apply function.",
		}, []string{"replica"}),
	}
}
