// Package metrics records Prometheus metrics for shortest-path searches.
//
// Metrics exposed (all namespaced with "lvsearch_"):
//
//  1. searches_total (counter): completed searches.
//     Labels: algorithm, outcome (found, no_path, cancelled, error).
//  2. expanded_nodes_total (counter): nodes settled by dijkstra or dequeued by bfs.
//     Labels: algorithm.
//  3. path_edges (histogram): edge count of every path found.
//     Labels: algorithm.
//  4. search_duration_seconds (histogram): wall time per search.
//     Labels: algorithm.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//	start := time.Now()
//	path, err := dijkstra.ShortestPath(g, src, goal, m.DijkstraOption())
//	m.Observe(metrics.Dijkstra, len(path), time.Since(start), err)
//
// A SearchMetrics is safe for concurrent use.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// Algorithm label values.
const (
	Dijkstra = "dijkstra"
	BFS      = "bfs"
)

// Outcome label values.
const (
	OutcomeFound     = "found"
	OutcomeNoPath    = "no_path"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

const namespace = "lvsearch"

// SearchMetrics holds the collectors registered by New.
type SearchMetrics struct {
	searches  *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	pathEdges *prometheus.HistogramVec
	duration  *prometheus.HistogramVec
}

// New creates all collectors and registers them with reg. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func New(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &SearchMetrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed shortest-path searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		expanded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_nodes_total",
			Help:      "Nodes settled (dijkstra) or dequeued (bfs)",
		}, []string{"algorithm"}),

		pathEdges: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_edges",
			Help:      "Number of edges in each path found",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
		}, []string{"algorithm"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of each search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
		}, []string{"algorithm"}),
	}
}

// DijkstraOption counts settled nodes. It installs an OnSettle hook and so
// replaces any hook set by an earlier dijkstra.WithOnSettle.
func (m *SearchMetrics) DijkstraOption() dijkstra.Option {
	settled := m.expanded.WithLabelValues(Dijkstra)
	return dijkstra.WithOnSettle(func(any, float64) { settled.Inc() })
}

// BFSOption counts dequeued nodes. It installs an OnDequeue hook and so
// replaces any hook set by an earlier bfs.WithOnDequeue.
func (m *SearchMetrics) BFSOption() bfs.Option {
	dequeued := m.expanded.WithLabelValues(BFS)
	return bfs.WithOnDequeue(func(any, int) { dequeued.Inc() })
}

// Observe records one finished search. edges is the length of the returned
// path in edges and is ignored unless err is nil.
func (m *SearchMetrics) Observe(algorithm string, edges int, elapsed time.Duration, err error) {
	outcome := Outcome(err)
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	m.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == OutcomeFound {
		m.pathEdges.WithLabelValues(algorithm).Observe(float64(edges))
	}
}

// Outcome classifies a search error into an outcome label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, core.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
