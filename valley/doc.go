// Package valley finds routes through a walled basin swept by blizzards.
//
// The basin is read from a text map: '#' walls, '.' open ground and the
// blizzard glyphs '>', '<', 'v', '^'. The top wall has a single gap (the
// entrance) in its second column and the bottom wall a single gap (the exit)
// in its second-to-last column.
//
// Every minute each blizzard moves one cell in its direction and wraps to the
// opposite side of the basin when it reaches a wall. Blizzards never interact,
// so the basin repeats every Period minutes. Occupancy at any minute is
// computed on demand from the initial map; nothing is simulated.
//
// An expedition moves one cell orthogonally or waits each minute and may never
// share a cell with a blizzard. Search nodes pair a position with the minute,
// so the same cell at two different minutes is two nodes. The graph is
// unbounded in time; Traverse caps each leg at the length no shortest route can
// exceed.
package valley
