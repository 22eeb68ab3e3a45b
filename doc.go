// Package lvsearch is a small toolkit for shortest-path search over graphs
// that are never materialized: adjacency is a function of the node, so a
// graph may be huge, infinite, or indexed by time.
//
// 🚀 What is inside?
//
//   - core: Graph[N, W], Edge, Goal predicates, non-mutating views
//   - dijkstra: weighted shortest path with a min-heap and goal predicate
//   - bfs: unit-cost shortest path and full traversal, with hooks
//   - gridgraph: a 2D integer grid seen through movement rules
//   - terrain: climbing routes over a letter-encoded elevation map
//   - valley: crossing a basin swept by wrapping blizzards
//   - metrics: Prometheus counters and histograms for searches
//
// ✨ Why lvsearch?
//
//   - Generic – any comparable node type, any integer or float weight
//   - Lazy – Neighbors is called only for nodes the search reaches
//   - Composable – FilterView, ReweightView and grid views wrap a graph
//     without copying or mutating it
//   - Deterministic – ties are broken by discovery order
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    4     1
//	    │     │
//	    C──1──D
//
//	g := core.GraphFunc[string, int](roads)
//	path, err := dijkstra.ShortestPath(g, "A", core.Is("D"))
//	// path: A→B→D, core.TotalWeight(path) == 2
//
// The lvsearch command solves both puzzles from the command line:
//
//	go run ./cmd/lvsearch terrain -input map.txt
//	go run ./cmd/lvsearch valley -input basin.txt -metrics
package lvsearch
