// Package core defines the minimal graph capability shared by every search
// in lvsearch: a generic Edge, a one-method Graph interface, goal
// predicates, non-mutating graph views and helpers over result paths.
//
// The search packages (bfs, dijkstra) never see a concrete graph type. A
// caller owns its domain data (a height map, a blizzard basin, a table) and
// exposes it through Neighbors, computing adjacency on demand:
//
//	type Graph[N comparable, W Number] interface {
//	    Neighbors(n N) []Edge[N, W]
//	}
//
// Nodes:
//
//	Any comparable type works. Two nodes are the same search state exactly
//	when they are == equal, so a node may carry extra dimensions besides a
//	position (for example an elapsed-time counter). Nodes that share a
//	position but differ in time are distinct states.
//
// Edges:
//
//	Edge{Weight, From, To}. Every edge returned by Neighbors(n) must have
//	From == n. Weight must be non-negative; it is read only by weighted
//	searches.
//
// Goals:
//
//	Searches stop at the first settled node satisfying a Goal predicate,
//	which generalizes "reach Y" to "reach any node with property P".
//	Is and AnyOf build the common cases.
//
// Views:
//
//	FilterView   – drop edges rejected by a predicate.
//	ReweightView – recompute edge weights.
//	UnweightedView – force every weight to 1.
//
//	Views hold a reference to the inner Graph and recompute on each call;
//	they never copy or mutate the underlying data.
//
// Errors:
//
//	ErrNoPath – the goal was never satisfied before the frontier emptied.
//	            Returned (wrapped) by every search; test with errors.Is.
//
// Concurrency:
//
//	Nothing in core holds mutable state. Whether a Graph may be shared across
//	goroutines is up to its implementation.
package core
