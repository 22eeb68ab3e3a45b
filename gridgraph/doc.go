// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as an implicit graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Views of the grid under a movement rule, usable by bfs and dijkstra
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - View(rule) presents the grid as a core.Graph[Cell, int]; StepRule
//     decides which neighbor moves exist (ClimbRule, DescendRule, LandRule,
//     AnyStep). Views share the grid; none copies it.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (Dijkstra over a reweighted view) to
//     connect two island sets.
//
// Why:
//
//   - Elevation maps: climb-limited routes and their reversals over one grid.
//   - Game maps: contiguous land detection, optimal bridging.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - View.Neighbors:        O(d) per call (d = 4 or 8).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:          O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - core.ErrNoPath (wrapped): no conversion path exists between specified components.
package gridgraph
