// Package dijkstra provides a goal-directed Dijkstra shortest-path search over
// any core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath settles nodes in order of increasing cumulative cost from a
//     start node and returns the edge path to the first settled node that
//     satisfies a caller-supplied goal predicate.
//   - The graph is lazy: Neighbors is called only for settled nodes, so the
//     node space may be huge or unbounded.
//   - The result is the cheapest path to any goal node, not merely to one
//     fixed target.
//
// When to use:
//
//   - Weighted graphs, or unit graphs where you want the edge list (with
//     From/To/Weight) rather than bare nodes.
//   - For purely unit-cost graphs with a large or time-indexed node space,
//     bfs.ShortestPath does the same job with less bookkeeping.
//
// Key features:
//
//   - Goal by predicate: core.Is(target), core.AnyOf(...), or any closure.
//   - MaxDistance: abandons exploration beyond a cumulative cost.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - OnSettle hook: observe every node whose distance becomes final.
//   - WithContext: cancel long searches.
//
// Tie-breaking:
//
//	Among entries of equal distance the one pushed first pops first. With a
//	Graph that returns edges in a stable order the returned path is
//	therefore reproducible, but callers should rely only on its total cost.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E), V = settled nodes, E = relaxed edges.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - core.ErrNoPath (wrapped): the frontier emptied before any goal node settled.
//   - ErrNilGraph, ErrNilGoal: invalid arguments.
//   - ErrNegativeWeight (wrapped): a relaxed edge had a negative weight.
//   - ErrNaNWeight (wrapped): a relaxed edge had a NaN weight.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from option constructors.
//
// API reference:
//
//	func ShortestPath[N comparable, W core.Number](
//	    g core.Graph[N, W],
//	    start N,
//	    goal core.Goal[N],
//	    opts ...Option,
//	) ([]core.Edge[N, W], error)
//
// Thread safety:
//
//   - All search state is local to one call. Concurrent calls are safe as long
//     as the Graph itself tolerates concurrent Neighbors calls.
package dijkstra
