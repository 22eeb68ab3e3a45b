package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// line is the graph 0→1→…→n.
func line(n int) core.Graph[int, int] {
	return core.GraphFunc[int, int](func(v int) []core.Edge[int, int] {
		if v >= n {
			return nil
		}
		return []core.Edge[int, int]{core.NewEdge(1, v, v+1)}
	})
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, OutcomeFound},
		{fmt.Errorf("wrapped: %w", core.ErrNoPath), OutcomeNoPath},
		{context.Canceled, OutcomeCancelled},
		{fmt.Errorf("leg 2: %w", context.DeadlineExceeded), OutcomeCancelled},
		{dijkstra.ErrNegativeWeight, OutcomeError},
		{errors.New("boom"), OutcomeError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Outcome(tc.err), "Outcome(%v)", tc.err)
	}
}

func TestDijkstraOption_CountsSettled(t *testing.T) {
	m := New(prometheus.NewRegistry())

	path, err := dijkstra.ShortestPath(line(5), 0, core.Is(5), m.DijkstraOption())
	require.NoError(t, err)
	m.Observe(Dijkstra, len(path), time.Millisecond, err)

	// 0..5 are all settled, the goal included
	require.Equal(t, 6.0, testutil.ToFloat64(m.expanded.WithLabelValues(Dijkstra)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(Dijkstra, OutcomeFound)))
	require.Equal(t, 1, testutil.CollectAndCount(m.pathEdges))
}

func TestBFSOption_CountsDequeued(t *testing.T) {
	m := New(prometheus.NewRegistry())

	_, err := bfs.ShortestPath(line(3), 0, core.Is(10), m.BFSOption())
	require.ErrorIs(t, err, core.ErrNoPath)
	m.Observe(BFS, 0, time.Millisecond, err)

	require.Equal(t, 4.0, testutil.ToFloat64(m.expanded.WithLabelValues(BFS)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(BFS, OutcomeNoPath)))
	// no path, no histogram sample
	require.Equal(t, 0, testutil.CollectAndCount(m.pathEdges))
}

func TestObserve_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(BFS, 3, 0, nil)
	m.Observe(BFS, 0, 0, context.Canceled)
	m.Observe(Dijkstra, 0, 0, errors.New("boom"))

	want := `
# HELP lvsearch_searches_total Completed shortest-path searches by algorithm and outcome
# TYPE lvsearch_searches_total counter
lvsearch_searches_total{algorithm="bfs",outcome="cancelled"} 1
lvsearch_searches_total{algorithm="bfs",outcome="found"} 1
lvsearch_searches_total{algorithm="dijkstra",outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "lvsearch_searches_total"))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
