// Package dijkstra_test provides examples demonstrating how to use ShortestPath.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// ExampleShortestPath demonstrates a shortest path on a small road network
// described by a plain function.
func ExampleShortestPath() {
	// 1) Describe the roads as a GraphFunc: adjacency is computed on demand.
	roads := map[string]map[string]int{
		"Depot":  {"Mill": 4, "Ford": 1},
		"Ford":   {"Mill": 2, "Market": 7},
		"Mill":   {"Market": 3},
		"Market": {},
	}
	order := []string{"Depot", "Ford", "Mill", "Market"}
	g := core.GraphFunc[string, int](func(from string) []core.Edge[string, int] {
		var out []core.Edge[string, int]
		for _, to := range order {
			if w, ok := roads[from][to]; ok {
				out = append(out, core.NewEdge(w, from, to))
			}
		}
		return out
	})

	// 2) Search from Depot to Market.
	path, err := dijkstra.ShortestPath(g, "Depot", core.Is("Market"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the route and its total cost.
	fmt.Println(core.PathNodes("Depot", path), core.TotalWeight(path))
	// Output: [Depot Ford Mill Market] 6
}

// ExampleShortestPath_noPath shows how an unreachable goal is reported.
func ExampleShortestPath_noPath() {
	// A single node with no edges.
	g := core.GraphFunc[int, int](func(int) []core.Edge[int, int] { return nil })

	_, err := dijkstra.ShortestPath(g, 0, core.Is(1))
	fmt.Println(errors.Is(err, core.ErrNoPath))
	// Output: true
}
