// File: view.go
// Role: read-only graph views over a GridGraph.
// Determinism:
//   - Neighbors are listed in NeighborOffsets order.
//
// Concurrency:
//   - A View holds only the grid pointer and a rule; it is safe for
//     concurrent use because the grid is never mutated.

package gridgraph

import "github.com/katalvlaran/lvsearch/core"

// unitWeight is the cost of every step through a View.
const unitWeight = 1

// View exposes a GridGraph as a core.Graph[Cell, int] in which a cell links
// to each in-bounds neighbor the rule admits, with weight 1.
type View struct {
	grid *GridGraph
	rule StepRule
}

// View returns the grid seen under rule. Several views over one grid may
// coexist; none of them copies the cell values.
func (gg *GridGraph) View(rule StepRule) *View {
	if rule == nil {
		rule = AnyStep
	}
	return &View{grid: gg, rule: rule}
}

// Neighbors implements core.Graph. Out-of-bounds cells have no neighbors.
func (v *View) Neighbors(c Cell) []core.Edge[Cell, int] {
	gg := v.grid
	if !gg.InBounds(c.X, c.Y) {
		return nil
	}
	from := gg.CellValues[c.Y][c.X]
	out := make([]core.Edge[Cell, int], 0, len(gg.offsets))
	for _, d := range gg.offsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !gg.InBounds(nx, ny) || !v.rule(from, gg.CellValues[ny][nx]) {
			continue
		}
		out = append(out, core.NewEdge(unitWeight, c, Cell{X: nx, Y: ny}))
	}
	return out
}
