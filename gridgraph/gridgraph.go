package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets in
// clockwise order starting north. Callers must not modify the slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Value returns the value stored at c. c must be in bounds.
func (gg *GridGraph) Value(c Cell) int {
	return gg.CellValues[c.Y][c.X]
}

// Cells lists every cell in row-major order.
func (gg *GridGraph) Cells() []Cell {
	out := make([]Cell, 0, gg.Width*gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

// Find returns the first cell, in row-major order, whose value satisfies
// match.
func (gg *GridGraph) Find(match func(v int) bool) (Cell, bool) {
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if match(gg.CellValues[y][x]) {
				return Cell{X: x, Y: y}, true
			}
		}
	}
	return Cell{}, false
}
