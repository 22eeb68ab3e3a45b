package terrain

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Sentinel errors returned by Parse.
var (
	// ErrMissingStart indicates the map has no 'S' cell.
	ErrMissingStart = errors.New("terrain: start marker S missing")
	// ErrMissingDest indicates the map has no 'E' cell.
	ErrMissingDest = errors.New("terrain: destination marker E missing")
	// ErrDuplicateMarker indicates more than one 'S' or 'E' cell.
	ErrDuplicateMarker = errors.New("terrain: marker appears more than once")
	// ErrBadHeight indicates a character that is not a height letter or marker.
	ErrBadHeight = errors.New("terrain: unknown height character")
)

const (
	// MinHeight is the height of 'a' and of the start marker.
	MinHeight = 1
	// MaxHeight is the height of 'z' and of the destination marker.
	MaxHeight = 26
	// MaxClimb is the largest rise a single step may make.
	MaxClimb = 1
)

// Cell is a map position; X is the column and Y the row.
type Cell = gridgraph.Cell

// Landscape is a parsed elevation map. It is immutable and safe for
// concurrent searches.
type Landscape struct {
	grid  *gridgraph.GridGraph
	Start Cell
	Dest  Cell
}

// heightOf maps a map character to its height.
func heightOf(c byte) (int, bool) {
	switch {
	case c == 'S':
		return MinHeight, true
	case c == 'E':
		return MaxHeight, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + MinHeight, true
	}
	return 0, false
}

// Parse reads a landscape. Blank lines are ignored. Every row must have the
// same width and exactly one 'S' and one 'E' must be present.
func Parse(r io.Reader) (*Landscape, error) {
	var (
		rows        [][]int
		start, dest *Cell
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if text == "" {
			continue
		}
		y := len(rows)
		row := make([]int, len(text))
		for x := 0; x < len(text); x++ {
			h, ok := heightOf(text[x])
			if !ok {
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrBadHeight, text[x], line, x+1)
			}
			row[x] = h
			switch text[x] {
			case 'S':
				if start != nil {
					return nil, fmt.Errorf("%w: second S at line %d, column %d", ErrDuplicateMarker, line, x+1)
				}
				start = &Cell{X: x, Y: y}
			case 'E':
				if dest != nil {
					return nil, fmt.Errorf("%w: second E at line %d, column %d", ErrDuplicateMarker, line, x+1)
				}
				dest = &Cell{X: x, Y: y}
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: read: %w", err)
	}

	grid, err := gridgraph.NewGridGraph(rows, gridgraph.GridOptions{LandThreshold: MinHeight, Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if dest == nil {
		return nil, ErrMissingDest
	}

	return &Landscape{grid: grid, Start: *start, Dest: *dest}, nil
}

// Width returns the number of columns.
func (l *Landscape) Width() int { return l.grid.Width }

// Height returns the number of rows.
func (l *Landscape) Height() int { return l.grid.Height }

// Elevation returns the height at c, which must be on the map.
func (l *Landscape) Elevation(c Cell) int { return l.grid.Value(c) }

// Forward is the climbing graph: each step rises by at most MaxClimb.
func (l *Landscape) Forward() core.Graph[Cell, int] {
	return l.grid.View(gridgraph.ClimbRule(MaxClimb))
}

// Backward is Forward with every edge reversed: each step drops by at most
// MaxClimb. A path from Dest in Backward read in reverse is a legal climb.
func (l *Landscape) Backward() core.Graph[Cell, int] {
	return l.grid.View(gridgraph.DescendRule(MaxClimb))
}

// Traverse returns the cheapest climb from Start to Dest as a list of edges.
// An unreachable destination yields an error wrapping core.ErrNoPath.
func (l *Landscape) Traverse(opts ...dijkstra.Option) ([]core.Edge[Cell, int], error) {
	path, err := dijkstra.ShortestPath(l.Forward(), l.Start, core.Is(l.Dest), opts...)
	if err != nil {
		return nil, fmt.Errorf("terrain: climb %v to %v: %w", l.Start, l.Dest, err)
	}
	return path, nil
}

// TraverseBackwards searches Backward from Dest to the nearest cell whose
// height equals the start's. The returned edges run from Dest downhill.
func (l *Landscape) TraverseBackwards(opts ...dijkstra.Option) ([]core.Edge[Cell, int], error) {
	base := l.Elevation(l.Start)
	atBase := func(c Cell) bool { return l.Elevation(c) == base }

	path, err := dijkstra.ShortestPath(l.Backward(), l.Dest, atBase, opts...)
	if err != nil {
		return nil, fmt.Errorf("terrain: descend from %v to height %d: %w", l.Dest, base, err)
	}
	return path, nil
}
