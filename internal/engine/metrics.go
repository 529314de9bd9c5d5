package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors the search engine feeds.
// Counters are safe to update from every worker goroutine concurrently.
//
// Wire it in with WithMetrics; the CLI exposes the registry over HTTP when
// asked to, which is mostly useful for watching long runs.
type Metrics struct {
	StatesVisited  prometheus.Counter // Distinct canonical states inserted
	Duplicates     prometheus.Counter // Insertion attempts discarded as already present
	MessagesRouted prometheus.Counter // Successor pairs routed between shards
	Rounds         prometheus.Counter // Completed search rounds
}

// NewMetrics creates the engine's collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StatesVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cammy_states_visited_total",
			Help: "Distinct canonical states discovered by the search.",
		}),
		Duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cammy_duplicates_total",
			Help: "Insertion attempts discarded because the state was already known.",
		}),
		MessagesRouted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cammy_messages_routed_total",
			Help: "Successor pairs routed to owning shards, including self-routing.",
		}),
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cammy_rounds_total",
			Help: "Search rounds completed before unanimous termination.",
		}),
	}
	reg.MustRegister(m.StatesVisited, m.Duplicates, m.MessagesRouted, m.Rounds)
	return m
}
