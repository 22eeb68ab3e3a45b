// File: view.go
// Role: Non-mutating graph views (same data, reinterpreted adjacency).
// Determinism:
//   - Preserve the inner graph's edge order.
// Concurrency:
//   - Views hold no state of their own; they are as safe as the inner Graph.

package core

// unitWeight is the weight UnweightedView assigns to every edge.
const unitWeight = 1

// filterView wraps a Graph and keeps only edges accepted by keep.
type filterView[N comparable, W Number] struct {
	inner Graph[N, W]
	keep  func(Edge[N, W]) bool
}

// FilterView returns a Graph with the same nodes as g whose Neighbors drops
// every edge for which keep returns false. g is not copied or mutated.
//
// Complexity: O(d) per Neighbors call, d = out-degree in g.
func FilterView[N comparable, W Number](g Graph[N, W], keep func(Edge[N, W]) bool) Graph[N, W] {
	return &filterView[N, W]{inner: g, keep: keep}
}

// Neighbors implements Graph.
func (v *filterView[N, W]) Neighbors(n N) []Edge[N, W] {
	edges := v.inner.Neighbors(n)
	out := make([]Edge[N, W], 0, len(edges))
	for _, e := range edges {
		if v.keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// reweightView wraps a Graph and recomputes each edge weight.
type reweightView[N comparable, W Number] struct {
	inner  Graph[N, W]
	weight func(Edge[N, W]) W
}

// ReweightView returns a Graph with the topology of g where each edge's
// Weight is replaced by weight(edge). The callback sees the original edge.
//
// Complexity: O(d) per Neighbors call.
func ReweightView[N comparable, W Number](g Graph[N, W], weight func(Edge[N, W]) W) Graph[N, W] {
	return &reweightView[N, W]{inner: g, weight: weight}
}

// Neighbors implements Graph.
func (v *reweightView[N, W]) Neighbors(n N) []Edge[N, W] {
	edges := v.inner.Neighbors(n)
	out := make([]Edge[N, W], len(edges))
	for i, e := range edges {
		out[i] = Edge[N, W]{Weight: v.weight(e), From: e.From, To: e.To}
	}

	return out
}

// UnweightedView returns a Graph with the topology of g and every weight set
// to 1, so that a weighted search over it minimizes hop count.
func UnweightedView[N comparable, W Number](g Graph[N, W]) Graph[N, W] {
	return ReweightView(g, func(Edge[N, W]) W { return unitWeight })
}
