package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker[N comparable, W core.Number] struct {
	graph   core.Graph[N, W]
	opts    BFSOptions
	ctx     context.Context
	goal    core.Goal[N] // nil for a full traversal
	ordered bool         // record visit order in res.Order
	queue   []queueItem[N]
	res     *Result[N]
}

// ShortestPath returns a path with the fewest edges from start to the first
// dequeued node satisfying goal. The path includes both endpoints; if
// goal(start) holds it is just [start].
//
// Returns ErrGraphNil / ErrGoalNil for invalid input, ErrOptionViolation for
// bad options, ctx.Err() on cancellation, any OnVisit error (wrapped), or an
// error wrapping core.ErrNoPath when the frontier empties (or MaxDepth cuts
// it off) before the goal is met.
//
// Nodes are deduplicated by ==, which is what keeps time-indexed searches
// finite: two routes reaching the same (position, time) share one entry.
func ShortestPath[N comparable, W core.Number](
	g core.Graph[N, W],
	start N,
	goal core.Goal[N],
	opts ...Option,
) ([]N, error) {
	w, err := newWalker(g, goal, false, opts)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNil
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, nil)
	end, found, err := w.loop()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: goal unreachable from %v", core.ErrNoPath, start)
	}

	return w.res.PathTo(end)
}

// Walk runs a full breadth-first traversal from start and returns the visit
// order, depths and BFS-tree parents of every reachable node (bounded by
// MaxDepth if set). Never use it on an unbounded graph without MaxDepth.
func Walk[N comparable, W core.Number](g core.Graph[N, W], start N, opts ...Option) (*Result[N], error) {
	w, err := newWalker(g, nil, true, opts)
	if err != nil {
		return nil, err
	}

	w.enqueue(start, 0, nil)
	if _, _, err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates the graph and options and allocates per-call state.
func newWalker[N comparable, W core.Number](
	g core.Graph[N, W],
	goal core.Goal[N],
	ordered bool,
	opts []Option,
) (*walker[N, W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[N, W]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		ordered: ordered,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}, nil
}

// enqueue marks n discovered at depth d, records its parent (nil for the
// start), calls OnEnqueue and adds it to the queue.
func (w *walker[N, W]) enqueue(n N, d int, parent *N) {
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = *parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until the goal is met, the queue is empty,
// a hook fails or the context is cancelled.
func (w *walker[N, W]) loop() (end N, found bool, err error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return end, false, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err = w.visit(item); err != nil {
			return end, false, err
		}
		if w.goal != nil && w.goal(item.node) {
			return item.node, true, nil
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return end, false, err
		}
	}

	return end, false, nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N, W]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order (full traversals only) and calls OnVisit.
func (w *walker[N, W]) visit(item queueItem[N]) error {
	if w.ordered {
		w.res.Order = append(w.res.Order, item.node)
	}
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each undiscovered
// destination of item's outgoing edges.
func (w *walker[N, W]) enqueueNeighbors(item queueItem[N]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.graph.Neighbors(item.node) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// first time seen?
		if _, seen := w.res.Depth[e.To]; !seen {
			w.enqueue(e.To, nextDepth, &item.node)
		}
	}
	return nil
}
