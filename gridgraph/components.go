package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
)

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; each
// component lists its cells in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	land := gg.View(LandRule(gg.LandThreshold))
	seen := make(map[Cell]bool)
	var comps [][]Cell

	for _, c := range gg.Cells() {
		if gg.Value(c) < gg.LandThreshold || seen[c] {
			continue // water or already assigned
		}
		// A Walk over the finite land view with default options cannot fail.
		res, err := bfs.Walk(land, c)
		if err != nil {
			panic(fmt.Sprintf("gridgraph: walk component from %v: %v", c, err))
		}
		for _, m := range res.Order {
			seen[m] = true
		}
		comps = append(comps, res.Order)
	}
	return comps
}
