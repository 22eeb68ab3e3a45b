package terrain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/terrain"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// LandscapeSuite runs every search against the sample map.
type LandscapeSuite struct {
	suite.Suite
	land *terrain.Landscape
}

func (s *LandscapeSuite) SetupTest() {
	land, err := terrain.Parse(strings.NewReader(sample))
	s.Require().NoError(err)
	s.land = land
}

func (s *LandscapeSuite) TestParse() {
	s.Equal(8, s.land.Width())
	s.Equal(5, s.land.Height())
	s.Equal(terrain.Cell{X: 0, Y: 0}, s.land.Start)
	s.Equal(terrain.Cell{X: 5, Y: 2}, s.land.Dest)
	s.Equal(terrain.MinHeight, s.land.Elevation(s.land.Start))
	s.Equal(terrain.MaxHeight, s.land.Elevation(s.land.Dest))
	s.Equal(17, s.land.Elevation(terrain.Cell{X: 3, Y: 0})) // 'q'
}

func (s *LandscapeSuite) TestTraverse() {
	path, err := s.land.Traverse()
	s.Require().NoError(err)
	s.Len(path, 31)
	s.Equal(31, core.TotalWeight(path))
	s.Equal(s.land.Start, path[0].From)
	last, _ := core.Last(path)
	s.Equal(s.land.Dest, last.To)

	// every step obeys the climbing rule
	for _, e := range path {
		s.LessOrEqual(s.land.Elevation(e.To)-s.land.Elevation(e.From), terrain.MaxClimb)
	}
}

func (s *LandscapeSuite) TestTraverseBackwards() {
	path, err := s.land.TraverseBackwards()
	s.Require().NoError(err)
	s.Len(path, 29)
	s.Equal(s.land.Dest, path[0].From)
	last, _ := core.Last(path)
	s.Equal(terrain.MinHeight, s.land.Elevation(last.To))

	// read in reverse, every step is a legal climb
	for _, e := range path {
		s.LessOrEqual(s.land.Elevation(e.From)-s.land.Elevation(e.To), terrain.MaxClimb)
	}
}

func (s *LandscapeSuite) TestBreadthFirstAgrees() {
	nodes, err := bfs.ShortestPath(s.land.Forward(), s.land.Start, core.Is(s.land.Dest))
	s.Require().NoError(err)
	s.Len(nodes, 32)

	back, err := bfs.ShortestPath(s.land.Backward(), s.land.Dest, func(c terrain.Cell) bool {
		return s.land.Elevation(c) == terrain.MinHeight
	})
	s.Require().NoError(err)
	s.Len(back, 30)
}

func (s *LandscapeSuite) TestRepeatable() {
	first, err := s.land.Traverse()
	s.Require().NoError(err)
	again, err := s.land.Traverse()
	s.Require().NoError(err)
	s.Equal(first, again)

	// the backwards search left the shared grid untouched
	_, err = s.land.TraverseBackwards()
	s.Require().NoError(err)
	third, err := s.land.Traverse()
	s.Require().NoError(err)
	s.Equal(first, third)
}

func (s *LandscapeSuite) TestMaxDistanceCutsOff() {
	_, err := s.land.Traverse(dijkstra.WithMaxDistance(30))
	s.ErrorIs(err, core.ErrNoPath)
}

func TestLandscapeSuite(t *testing.T) {
	suite.Run(t, new(LandscapeSuite))
}

// TestParse_Errors covers every rejected input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid},
		{"Ragged", "Sab\nzE\n", gridgraph.ErrNonRectangular},
		{"NoStart", "abE\n", terrain.ErrMissingStart},
		{"NoDest", "Sab\n", terrain.ErrMissingDest},
		{"TwoStarts", "SSE\n", terrain.ErrDuplicateMarker},
		{"TwoDests", "SEE\n", terrain.ErrDuplicateMarker},
		{"BadChar", "Sa#E\n", terrain.ErrBadHeight},
		{"Uppercase", "SAE\n", terrain.ErrBadHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_ErrorPosition reports where the bad character is.
func TestParse_ErrorPosition(t *testing.T) {
	_, err := terrain.Parse(strings.NewReader("Sab\nab?\nabE\n"))
	require.ErrorIs(t, err, terrain.ErrBadHeight)
	require.Contains(t, err.Error(), "line 2, column 3")
}

// TestTraverse_Unreachable walls the destination off with a cliff.
func TestTraverse_Unreachable(t *testing.T) {
	land, err := terrain.Parse(strings.NewReader("SbE\n"))
	require.NoError(t, err)

	_, err = land.Traverse()
	require.ErrorIs(t, err, core.ErrNoPath)

	// Descending from E, the cliff is one-way too.
	_, err = land.TraverseBackwards()
	require.ErrorIs(t, err, core.ErrNoPath)
}

// TestTraverse_Corridor climbs a one-row ramp through every letter.
func TestTraverse_Corridor(t *testing.T) {
	land, err := terrain.Parse(strings.NewReader("Sbcdefghijklmnopqrstuvwxyz" + "E\n"))
	require.NoError(t, err)
	require.Equal(t, 27, land.Width())

	up, err := land.Traverse()
	require.NoError(t, err)
	require.Len(t, up, 26)

	down, err := land.TraverseBackwards()
	require.NoError(t, err)
	require.Len(t, down, 26)
	last, _ := core.Last(down)
	require.Equal(t, land.Start, last.To)
}
