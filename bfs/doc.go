// Package bfs provides breadth-first search over any core.Graph, returning
// fewest-edge paths, depths, parent links and visit order.
//
// What
//
//   - ShortestPath: explore nodes in non-decreasing edge count from a start
//     node and stop at the first dequeued node satisfying a goal predicate.
//     Returns the node path, start and goal inclusive.
//   - Walk: full traversal returning a Result with Order (visit sequence),
//     Depth (node → edges from start) and Parent (node → BFS-tree predecessor).
//   - Hooks at three stages: OnEnqueue, OnDequeue and OnVisit (which may
//     abort the search with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Unit-cost shortest paths in O(V + E) time, without a priority queue.
//   - Suited to huge or unbounded node spaces such as a position crossed with
//     elapsed time: every edge advances the time coordinate by one, the
//     frontier advances in lockstep, and == deduplication collapses routes
//     that meet at the same (position, time).
//   - Edge weights are ignored. Use it only where every transition is equally
//     expensive; otherwise use dijkstra.ShortestPath.
//
// Determinism
//
//	Neighbors are enqueued in the order the Graph returns them, so for a
//	deterministic Graph the visit sequence and returned path are fully
//	reproducible. Among several fewest-edge paths, the one whose nodes were
//	discovered first wins.
//
// Filtering
//
//	There is no per-edge filter option: wrap the graph in core.FilterView
//	instead, which composes with every search.
//
// Complexity (V = discovered nodes, E = examined edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	path, err := bfs.ShortestPath(g, start, func(n Node) bool { return n.Pos == exit })
//	if errors.Is(err, core.ErrNoPath) {
//	    // unreachable
//	}
//
//	res, err := bfs.Walk(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(n any, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrGoalNil          if ShortestPath receives a nil goal.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - core.ErrNoPath      (wrapped) if the goal is never dequeued.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
