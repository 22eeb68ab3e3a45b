package valley

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrMalformed indicates input that is not a walled basin map.
var ErrMalformed = errors.New("valley: malformed map")

// stepCost is the weight of every move and every wait.
const stepCost = 1

// Point is a basin position. (0,0) is the top-left open cell inside the walls;
// the entrance sits at (0,-1) and the exit below the bottom-right cell.
type Point struct {
	X, Y int
}

// Node is a search state: where the expedition stands and at which minute.
type Node struct {
	Pos  Point
	Time int
}

// blizzard describes one wind direction: its glyph and how far a blizzard
// that started at a cell has travelled after one minute.
type blizzard struct {
	glyph  byte
	dx, dy int
}

// winds lists every direction in the order Render tests them.
var winds = [...]blizzard{
	{glyph: '^', dx: 0, dy: -1},
	{glyph: 'v', dx: 0, dy: 1},
	{glyph: '>', dx: 1, dy: 0},
	{glyph: '<', dx: -1, dy: 0},
}

// moves lists candidate steps: the four orthogonal moves, then waiting.
var moves = [...]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {0, 0}}

// Valley is a parsed basin. It is immutable; Neighbors may be called from
// several goroutines at once.
type Valley struct {
	grid   [][]byte // inner cells only, walls stripped
	width  int
	height int
	Source Point // entrance gap in the top wall
	Dest   Point // exit gap in the bottom wall
}

// Parse reads a basin map. Blank lines are ignored.
func Parse(r io.Reader) (*Valley, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if text := strings.TrimRight(sc.Text(), "\r"); text != "" {
			lines = append(lines, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valley: read: %w", err)
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: need a top wall, at least one row and a bottom wall, got %d lines", ErrMalformed, len(lines))
	}

	outer := len(lines[0])
	if outer < 3 {
		return nil, fmt.Errorf("%w: line 1 is too narrow", ErrMalformed)
	}
	width, height := outer-2, len(lines)-2

	if want := "#." + strings.Repeat("#", width); lines[0] != want {
		return nil, fmt.Errorf("%w: line 1 must be %q", ErrMalformed, want)
	}
	if want := strings.Repeat("#", width) + ".#"; lines[len(lines)-1] != want {
		return nil, fmt.Errorf("%w: line %d must be %q", ErrMalformed, len(lines), want)
	}

	grid := make([][]byte, height)
	for y := 0; y < height; y++ {
		line := lines[y+1]
		if len(line) != outer {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrMalformed, y+2, len(line), outer)
		}
		if line[0] != '#' || line[outer-1] != '#' {
			return nil, fmt.Errorf("%w: line %d is not walled", ErrMalformed, y+2)
		}
		row := []byte(line[1 : outer-1])
		for x, c := range row {
			if c != '.' && !isBlizzard(c) {
				return nil, fmt.Errorf("%w: unexpected %q at line %d, column %d", ErrMalformed, c, y+2, x+2)
			}
		}
		grid[y] = row
	}

	return &Valley{
		grid:   grid,
		width:  width,
		height: height,
		Source: Point{X: 0, Y: -1},
		Dest:   Point{X: width - 1, Y: height},
	}, nil
}

// isBlizzard reports whether c is one of the four blizzard glyphs.
func isBlizzard(c byte) bool {
	for _, w := range winds {
		if w.glyph == c {
			return true
		}
	}
	return false
}

// Width is the number of open columns between the side walls.
func (v *Valley) Width() int { return v.width }

// Height is the number of open rows between the top and bottom walls.
func (v *Valley) Height() int { return v.height }

// Period is the number of minutes after which every blizzard is back at its
// starting cell: the least common multiple of Width and Height.
func (v *Valley) Period() int {
	return v.width / gcd(v.width, v.height) * v.height
}

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	return ((a % n) + n) % n
}

// inside reports whether p is an open cell between the walls.
func (v *Valley) inside(p Point) bool {
	return p.X >= 0 && p.X < v.width && p.Y >= 0 && p.Y < v.height
}

// hit reports whether a blizzard blowing in direction w occupies p at minute t.
// It looks up the cell that blizzard would have started from.
func (v *Valley) hit(w blizzard, t int, p Point) bool {
	x := mod(p.X-w.dx*t, v.width)
	y := mod(p.Y-w.dy*t, v.height)
	return v.grid[y][x] == w.glyph
}

// blizzards counts the blizzards at p at minute t and returns the glyph of
// the last one found.
func (v *Valley) blizzards(t int, p Point) (count int, glyph byte) {
	for _, w := range winds {
		if v.hit(w, t, p) {
			count++
			glyph = w.glyph
		}
	}
	return count, glyph
}

// Open reports whether the expedition may stand at p at minute t. The
// entrance and exit gaps are always open; walls never are.
func (v *Valley) Open(t int, p Point) bool {
	if p == v.Source || p == v.Dest {
		return true
	}
	if !v.inside(p) {
		return false
	}
	n, _ := v.blizzards(t, p)
	return n == 0
}

// Neighbors implements core.Graph. From n the expedition may step to any
// orthogonal neighbor or stay put, provided the target is open one minute
// later. Every edge costs one minute.
func (v *Valley) Neighbors(n Node) []core.Edge[Node, int] {
	next := n.Time + 1
	out := make([]core.Edge[Node, int], 0, len(moves))
	for _, m := range moves {
		p := Point{X: n.Pos.X + m.X, Y: n.Pos.Y + m.Y}
		if !v.Open(next, p) {
			continue
		}
		out = append(out, core.NewEdge(stepCost, n, Node{Pos: p, Time: next}))
	}
	return out
}

// Render draws the basin at minute t in the input format. A cell holding
// several blizzards shows their count.
func (v *Valley) Render(t int) string {
	var b strings.Builder
	b.WriteString("#.")
	b.WriteString(strings.Repeat("#", v.width))
	b.WriteByte('\n')
	for y := 0; y < v.height; y++ {
		b.WriteByte('#')
		for x := 0; x < v.width; x++ {
			switch n, glyph := v.blizzards(t, Point{X: x, Y: y}); {
			case n == 0:
				b.WriteByte('.')
			case n == 1:
				b.WriteByte(glyph)
			default:
				b.WriteByte(byte('0' + n))
			}
		}
		b.WriteString("#\n")
	}
	b.WriteString(strings.Repeat("#", v.width))
	b.WriteString(".#\n")
	return b.String()
}
