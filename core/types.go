// Package core declares Edge, Graph, Goal and the ErrNoPath sentinel.
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNoPath indicates that a search exhausted its frontier (or its configured
// bound) without reaching a node that satisfies the goal.
var ErrNoPath = errors.New("core: no path found")

// Number constrains edge weights to Go's built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Edge is a weighted transition From→To.
//
// Weight is meaningful only to weighted searches; unit-cost searches count
// edges and ignore it.
type Edge[N comparable, W Number] struct {
	// Weight is the non-negative cost of traversing the edge.
	Weight W

	// From is the source node.
	From N

	// To is the destination node.
	To N
}

// NewEdge returns Edge{Weight: w, From: from, To: to}.
func NewEdge[N comparable, W Number](w W, from, to N) Edge[N, W] {
	return Edge[N, W]{Weight: w, From: from, To: to}
}

// Graph is the single capability a search needs: enumerate the outgoing
// edges of a node. Every returned edge must have From == n.
//
// Implementations may compute the slice freshly on each call and may describe
// an unbounded node space; searches only ever ask for nodes they reached.
// Neighbors must be free of observable side effects for the duration of a
// search, since a node may be expanded more than once.
type Graph[N comparable, W Number] interface {
	Neighbors(n N) []Edge[N, W]
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[N comparable, W Number] func(n N) []Edge[N, W]

// Neighbors calls f(n).
func (f GraphFunc[N, W]) Neighbors(n N) []Edge[N, W] { return f(n) }

// Goal reports whether a node terminates the search.
type Goal[N comparable] func(n N) bool

// Is returns a Goal satisfied only by target.
func Is[N comparable](target N) Goal[N] {
	return func(n N) bool { return n == target }
}

// AnyOf returns a Goal satisfied by any of targets.
// With no targets the goal is never satisfied.
func AnyOf[N comparable](targets ...N) Goal[N] {
	set := make(map[N]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	return func(n N) bool {
		_, ok := set[n]
		return ok
	}
}
