// Package core models the radial footprint of a reactor core.
//
// A Core is a square grid of Size x Size lattice positions in which only a
// centred run of ElementsByRow[i] positions is occupied in row i. The six
// invariants checked by New guarantee that the footprint is mirror symmetric
// top/bottom and left/right and widens monotonically towards the middle row.
//
// # Addressing
//
// Positions are addressed (i, j) with i the row and j the column, both
// zero-based. Row i covers the half-open column range
//
//	[(Size-ElementsByRow[i])/2, (Size+ElementsByRow[i])/2)
//
// which is exact because every row count shares the parity of Size.
//
// Cores are immutable after construction and are passed explicitly to every
// map accessor in package coremap; no map keeps a reference to a Core.
package core
