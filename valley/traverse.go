package valley

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
)

// horizon bounds the length of any shortest leg. A shortest route never
// repeats a (position, minute mod Period) state, and there are at most
// (Width*Height + 2) positions.
func (v *Valley) horizon() int {
	return v.Period() * (v.width*v.height + 2)
}

// Cross runs one breadth-first leg from the state from to the first minute
// the expedition can stand on target. It returns every state of the leg,
// from first. The search is capped at horizon so an unreachable target
// yields an error wrapping core.ErrNoPath instead of running forever.
//
// A caller-supplied bfs.WithMaxDepth overrides the cap.
func (v *Valley) Cross(from Node, target Point, opts ...bfs.Option) ([]Node, error) {
	opts = append([]bfs.Option{bfs.WithMaxDepth(v.horizon())}, opts...)
	path, err := bfs.ShortestPath[Node, int](v, from, func(n Node) bool { return n.Pos == target }, opts...)
	if err != nil {
		return nil, fmt.Errorf("valley: %v at minute %d to %v: %w", from.Pos, from.Time, target, err)
	}
	return path, nil
}

// Route returns the targets of the three legs of a round trip: the exit,
// the entrance and the exit again.
func (v *Valley) Route() [3]Point {
	return [3]Point{v.Dest, v.Source, v.Dest}
}

// Traverse crosses the basin three times: entrance to exit, back to the
// entrance, and to the exit again. Each leg starts at the state where the
// previous one ended. It returns the minutes each leg took; their sum is
// the total time.
func (v *Valley) Traverse(opts ...bfs.Option) ([3]int, error) {
	var legs [3]int
	at := Node{Pos: v.Source, Time: 0}
	for i, target := range v.Route() {
		path, err := v.Cross(at, target, opts...)
		if err != nil {
			return legs, fmt.Errorf("valley: leg %d: %w", i+1, err)
		}
		// path is never empty: it holds at least the starting state
		at, _ = core.Last(path)
		legs[i] = len(path) - 1
	}
	return legs, nil
}
