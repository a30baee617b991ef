// Package metrics records path search statistics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gravitas-games/hexroute/pkg/hexcore/path"
)

// Recorder implements path.Observer on top of Prometheus collectors.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
	duration prometheus.Histogram
}

var _ path.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hexroute",
			Subsystem: "astar",
			Name:      "searches_total",
			Help:      "A* searches run, by outcome.",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hexroute",
			Subsystem: "astar",
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per A* search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hexroute",
			Subsystem: "astar",
			Name:      "path_cost",
			Help:      "Movement cost of paths found.",
			Buckets:   prometheus.LinearBuckets(0, 4, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hexroute",
			Subsystem: "astar",
			Name:      "search_duration_seconds",
			Help:      "Wall time per A* search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{r.searches, r.expanded, r.cost, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveSearch records one search.
func (r *Recorder) ObserveSearch(s path.SearchStats) {
	outcome := "found"
	if !s.Found {
		outcome = "no_path"
	}
	r.searches.WithLabelValues(outcome).Inc()
	r.expanded.Observe(float64(s.Expanded))
	r.duration.Observe(s.Duration.Seconds())
	if s.Found {
		r.cost.Observe(float64(s.Cost))
	}
}
