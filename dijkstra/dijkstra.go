// Package dijkstra implements a goal-directed Dijkstra search over any
// core.Graph.
//
// The search settles nodes in order of increasing cumulative cost from the
// start and stops at the first settled node satisfying the goal predicate.
// It uses a min-heap priority queue with lazy decrease-key.
//
// Complexity (V = settled nodes, E = edges relaxed):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) for distance/predecessor maps and heap entries.
//
// Notes on implementation choices:
//
//   - No upfront edge scan: the graph is lazy and possibly unbounded, so
//     negative weights are detected when an edge is first relaxed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Equal distances pop in push order (a sequence number breaks ties), so
//     results are reproducible for a deterministic Graph.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// ShortestPath returns a minimum-cost edge path from start to the first
// settled node satisfying goal.
//
// Returns:
//
//   - path: edges in travel order; path[0].From == start. If goal(start)
//     holds the path is empty (non-nil) and err is nil.
//   - err:  ErrNilGraph / ErrNilGoal for invalid input, ErrNegativeWeight or
//     ErrNaNWeight if such an edge is relaxed, ctx.Err() on cancellation, or
//     an error wrapping core.ErrNoPath when the frontier empties first.
//
// Edges whose From differs from the expanded node are ignored.
func ShortestPath[N comparable, W core.Number](
	g core.Graph[N, W],
	start N,
	goal core.Goal[N],
	opts ...Option,
) ([]core.Edge[N, W], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 3) Prepare per-call state and seed the heap with (0, start).
	r := &runner[N, W]{
		g:       g,
		goal:    goal,
		options: cfg,
		dist:    make(map[N]W),
		prev:    make(map[N]core.Edge[N, W]),
		settled: make(map[N]bool),
	}
	r.init(start)

	// 4) Run until the goal settles or the frontier empties.
	end, found, err := r.process()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: goal unreachable from %v", core.ErrNoPath, start)
	}

	return r.path(start, end), nil
}

// runner holds the mutable state for a single search.
type runner[N comparable, W core.Number] struct {
	g       core.Graph[N, W]      // read-only within the search
	goal    core.Goal[N]          // termination predicate
	options Options               // thresholds, hooks, context
	dist    map[N]W               // node → best-known cost from start
	prev    map[N]core.Edge[N, W] // node → edge used to reach it
	settled map[N]bool            // node → distance is final
	pq      nodePQ[N, W]          // lazy min-heap
	seq     uint64                // push counter for tie-breaking
}

// init records dist[start] = 0 and pushes the start node.
func (r *runner[N, W]) init(start N) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner[N, W]) push(n N, d W) {
	heap.Push(&r.pq, &nodeItem[N, W]{node: n, dist: d, seq: r.seq})
	r.seq++
}

// process is the core loop. It pops the cheapest entry, skips stale ones,
// tests the goal and relaxes outgoing edges.
//
// Loop termination conditions:
//
//   - A popped, non-stale node satisfies the goal (found == true).
//   - The heap becomes empty (found == false).
//   - The minimum distance in the heap exceeds MaxDistance (found == false).
//   - The context is cancelled or a negative weight is relaxed (err != nil).
func (r *runner[N, W]) process() (end N, found bool, err error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.options.Ctx.Done():
			return end, false, r.options.Ctx.Err()
		default:
		}

		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem[N, W])
		u, d := item.node, item.dist

		// 2) Skip stale entries: a strictly better cost is already recorded,
		//    or the node was settled through another entry.
		if r.settled[u] || d > r.dist[u] {
			continue
		}

		// 3) Beyond the distance cap nothing cheaper remains; stop.
		if float64(d) > r.options.MaxDistance {
			break
		}

		// 4) u is settled with final distance d.
		r.settled[u] = true
		r.options.OnSettle(u, float64(d))

		// 5) Goal test happens on settle, not on discovery, so the first
		//    goal node found is also the cheapest.
		if r.goal(u) {
			return u, true, nil
		}

		// 6) Relax outgoing edges.
		if err = r.relax(u, d); err != nil {
			return end, false, err
		}
	}

	return end, false, nil
}

// relax examines each edge leaving u and records any strict improvement.
// Assumes d == dist[u] is final.
func (r *runner[N, W]) relax(u N, d W) error {
	var candidate W
	for _, e := range r.g.Neighbors(u) {
		// Edges that do not originate from u break path reconstruction.
		if e.From != u {
			continue
		}
		// NaN compares false with everything and would corrupt dist.
		if math.IsNaN(float64(e.Weight)) {
			return fmt.Errorf("%w: edge %v→%v", ErrNaNWeight, e.From, e.To)
		}
		if float64(e.Weight) >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		candidate = d + e.Weight
		if float64(candidate) > r.options.MaxDistance {
			continue
		}

		// Only a strictly better cost replaces an existing record.
		if old, seen := r.dist[e.To]; seen && candidate >= old {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = e
		r.push(e.To, candidate)
	}

	return nil
}

// path walks predecessor edges from end back to start and reverses them.
func (r *runner[N, W]) path(start, end N) []core.Edge[N, W] {
	path := make([]core.Edge[N, W], 0)
	for cur := end; cur != start; {
		e := r.prev[cur]
		path = append(path, e)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a heap entry: a node, the cost it was pushed with, and its push
// sequence number.
type nodeItem[N comparable, W core.Number] struct {
	node N
	dist W
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ[N comparable, W core.Number] []*nodeItem[N, W]

// Len returns the number of items in the heap.
func (pq nodePQ[N, W]) Len() int { return len(pq) }

// Less orders by distance; equal distances keep push order.
func (pq nodePQ[N, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[N, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem, onto the heap.
func (pq *nodePQ[N, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N, W])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
