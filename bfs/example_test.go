package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
)

// lattice returns an n×n grid graph whose nodes are "i_j" labels.
// Neighbors are listed right, down, left, up.
func lattice(n int) core.Graph[string, int] {
	return core.GraphFunc[string, int](func(id string) []core.Edge[string, int] {
		var i, j int
		_, _ = fmt.Sscanf(id, "%d_%d", &i, &j)
		var out []core.Edge[string, int]
		for _, d := range [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			ni, nj := i+d[0], j+d[1]
			if ni < 0 || nj < 0 || ni >= n || nj >= n {
				continue
			}
			out = append(out, core.NewEdge(1, id, fmt.Sprintf("%d_%d", ni, nj)))
		}
		return out
	})
}

// ExampleWalk_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleWalk_gridTraversal() {
	res, err := bfs.Walk(lattice(3), "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleShortestPath finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleShortestPath() {
	g := adj{}.
		// Route1: A–B–C–D–K (4 hops)
		link("A", "B").link("B", "C").link("C", "D").link("D", "K").
		// Route2: A–E–F–K (3 hops)
		link("A", "E").link("E", "F").link("F", "K").
		// Some extra branches to other nodes
		link("C", "G").link("G", "H").link("D", "I").link("I", "J")

	path, err := bfs.ShortestPath(g, "A", core.Is("K"))
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleShortestPath_timeIndexed searches a corridor of cells 0..4 whose
// middle cell is only passable at times divisible by 3. Nodes pair a cell
// with a time, every move (or wait) takes one tick, and the graph is
// generated on the fly.
func ExampleShortestPath_timeIndexed() {
	type state struct{ Pos, T int }
	open := func(pos, t int) bool { return pos != 2 || t%3 == 0 }

	g := core.GraphFunc[state, int](func(s state) []core.Edge[state, int] {
		var out []core.Edge[state, int]
		for _, step := range []int{1, 0, -1} {
			next := state{Pos: s.Pos + step, T: s.T + 1}
			if next.Pos < 0 || next.Pos > 4 || !open(next.Pos, next.T) {
				continue
			}
			out = append(out, core.NewEdge(1, s, next))
		}
		return out
	})

	path, err := bfs.ShortestPath(g, state{}, func(s state) bool { return s.Pos == 4 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last, _ := core.Last(path)
	fmt.Printf("arrived at t=%d after %d moves\n", last.T, len(path)-1)
	// Output:
	// arrived at t=5 after 5 moves
}

// ExampleWithMaxDepth shows applying WithMaxDepth to a linear chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleWithMaxDepth() {
	g := adj{}
	for i := 0; i < 9; i++ {
		g[fmt.Sprintf("v%d", i)] = []string{fmt.Sprintf("v%d", i+1)}
	}

	// Limit depth to 2: should see v0, v1, v2 only
	res, err := bfs.Walk(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleWalk_hooksAndCancellation demonstrates OnEnqueue, OnDequeue, OnVisit hooks
// alongside context cancellation on a 7-node chain.
func ExampleWalk_hooksAndCancellation() {
	// Build chain of 7 vertices: n0→...→n6
	g := adj{}
	for i := 0; i < 6; i++ {
		g[fmt.Sprintf("n%d", i)] = []string{fmt.Sprintf("n%d", i+1)}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, deqSeq, visSeq []string

	// after depth 4, we call cancel()
	hookVisit := func(id any, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", id, d))
		if d == 4 {
			cancel() // force mid-traversal cancellation
		}
		return nil
	}

	_, err := bfs.Walk(
		g, "n0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id any, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", id, d)) }),
		bfs.WithOnDequeue(func(id any, d int) { deqSeq = append(deqSeq, fmt.Sprintf("D[%s@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Dequeued:", deqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Dequeued: [D[n0@0] D[n1@1] D[n2@2] D[n3@3] D[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3] V[n4@4]]
}
