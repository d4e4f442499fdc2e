// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package metrics

import "github.com/prometheus/client_golang/prometheus"

// PrometheusSink exposes the three reachability-query counters as
// ordinary prometheus.Counter values a caller registers with whatever
// registry it uses.
type PrometheusSink struct {
	NoDFS      prometheus.Counter
	WithDFS    prometheus.Counter
	DFSStarted prometheus.Counter
}

// NewPrometheusSink constructs the three counters with the given
// namespace/subsystem, without registering them; the caller registers
// them with a prometheus.Registerer of its choosing.
func NewPrometheusSink(namespace, subsystem string) *PrometheusSink {
	return &PrometheusSink{
		NoDFS: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reachability_queries_no_dfs_total",
			Help:      "Reachability queries resolved by the BFL filter alone.",
		}),
		WithDFS: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reachability_queries_with_dfs_total",
			Help:      "Reachability queries that fell through to the DFS fallback.",
		}),
		DFSStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reachability_dfs_started_total",
			Help:      "DFS fallback runs actually started.",
		}),
	}
}

// Collectors returns the three counters for registration, e.g.
// registry.MustRegister(sink.Collectors()...).
func (s *PrometheusSink) Collectors() []prometheus.Collector {
	return []prometheus.Collector{s.NoDFS, s.WithDFS, s.DFSStarted}
}

func (s *PrometheusSink) IncNoDFS()      { s.NoDFS.Inc() }
func (s *PrometheusSink) IncWithDFS()    { s.WithDFS.Inc() }
func (s *PrometheusSink) IncDFSStarted() { s.DFSStarted.Inc() }
