// Package terrain solves climbing routes over a letter-encoded elevation map.
//
// Input is a rectangle of letters: 'a' (height 1) through 'z' (height 26),
// with 'S' marking the start (height 1) and 'E' the destination (height 26).
// A step moves to an orthogonal neighbor and may climb at most one unit;
// descending any amount is allowed.
//
// Traverse finds the cheapest climb from S to E. TraverseBackwards searches
// the reversed rule from E to the nearest cell at the start's height, which
// answers "from which lowest cell is E closest" with a single search.
//
// Both directions are views over one gridgraph.GridGraph; neither copies
// nor mutates the heights.
package terrain
