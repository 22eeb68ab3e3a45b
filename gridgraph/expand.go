package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells
// to connect component srcComp to component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the cells of the path (starting at the first cell of srcComp and
// ending at the first cell of dstComp reached) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Reweight the unrestricted grid view: entering land costs 0, entering
//     water costs 1. Within srcComp every cell is reachable at cost 0, so a
//     single source is as good as all of them.
//  3. Run dijkstra.ShortestPath until any dstComp cell is settled.
//
// Returns ErrComponentIndex for invalid indices and an error wrapping
// core.ErrNoPath if the components cannot be joined.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]Cell, int, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	start := comps[srcComp][0]

	conversions := core.ReweightView[Cell, int](gg.View(AnyStep), func(e core.Edge[Cell, int]) int {
		if gg.Value(e.To) >= gg.LandThreshold {
			return 0
		}
		return 1
	})

	edges, err := dijkstra.ShortestPath(conversions, start, core.AnyOf(comps[dstComp]...))
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: join component %d to %d: %w", srcComp, dstComp, err)
	}

	return core.PathNodes(start, edges), core.TotalWeight(edges), nil
}
