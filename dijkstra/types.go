// Package dijkstra defines sentinel errors and configuration options for the
// goal-directed Dijkstra search.
//
// Options:
//
//	– WithContext:          cancellation checked once per settled node.
//	– WithMaxDistance:      stop once the cheapest frontier entry exceeds the cap.
//	– WithInfEdgeThreshold: edges with weight >= threshold are impassable.
//	– WithOnSettle:         hook invoked for every settled node.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNilGoal         if the goal predicate is nil.
//	– ErrNegativeWeight  if an expanded edge carries a negative weight.
//	– ErrNaNWeight       if an expanded edge carries a NaN weight.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in the option constructor).
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilGoal indicates that a nil goal predicate was passed to ShortestPath.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNaNWeight indicates that a floating-point edge weight was NaN.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of ShortestPath.
//
// Thresholds are float64 so that one option set serves every weight type;
// weights are converted with float64(w) for comparison only.
type Options struct {
	// Ctx allows cancellation of searches over very large graphs.
	Ctx context.Context

	// MaxDistance caps the cumulative cost explored. Default +Inf (no cap).
	MaxDistance float64

	// InfEdgeThreshold marks edges with weight >= threshold as impassable.
	// Default +Inf (no obstacles).
	InfEdgeThreshold float64

	// OnSettle is called once per settled node with its final distance.
	OnSettle func(node any, dist float64)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum cumulative distance.
// Nodes whose shortest distance would exceed this value are not explored, so
// a goal beyond the cap is reported as core.ErrNoPath.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Must be positive; otherwise panics with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a hook called for every node whose distance becomes
// final, in settle order. The node is passed as any; callers assert it back to
// their node type. A nil fn is ignored.
func WithOnSettle(fn func(node any, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Ctx:              context.Background()
//   - MaxDistance:      +Inf (explore everything reachable)
//   - InfEdgeThreshold: +Inf (no impassable edges)
//   - OnSettle:         no-op
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnSettle:         func(any, float64) {},
	}
}
