package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a grid position. It is the node type of every View.
type Cell struct {
	X, Y int // Coordinates within the grid
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph is an immutable rectangular grid of integer cell values.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Conn and LandThreshold are set from GridOptions during construction.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
}

// StepRule decides whether a move from a cell holding value from into a
// neighboring cell holding value to is admissible.
type StepRule func(from, to int) bool

// AnyStep admits every move between neighboring cells.
func AnyStep(int, int) bool { return true }

// ClimbRule admits moves that rise by at most maxRise. Any descent is allowed.
func ClimbRule(maxRise int) StepRule {
	return func(from, to int) bool { return to-from <= maxRise }
}

// DescendRule admits moves that drop by at most maxDrop. Any ascent is allowed.
// DescendRule(k) is ClimbRule(k) with every edge reversed.
func DescendRule(maxDrop int) StepRule {
	return func(from, to int) bool { return from-to <= maxDrop }
}

// LandRule admits moves between two cells that both hold at least threshold.
func LandRule(threshold int) StepRule {
	return func(from, to int) bool { return from >= threshold && to >= threshold }
}
