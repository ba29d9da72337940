// SPDX-License-Identifier: MIT

// Package marker: domain types. Cell is the unit bit; Marker is the square grid.
package marker

// Cell is one bit of a marker.
// The zero value is White so that make([]Cell, n) yields an all-White grid.
type Cell uint8

const (
	// White is an unset (background) cell.
	White Cell = iota
	// Black is a set (ink) cell.
	Black
)

// Invert returns the opposite colour.
// Complexity: O(1).
func (c Cell) Invert() Cell {
	if c == White {
		return Black
	}

	return White
}

// String renders Black as "*" and White as "_", the console notation used by
// Marker.String.
func (c Cell) String() string {
	if c == Black {
		return "*"
	}

	return "_"
}

// Marker is an n×n grid of Cells stored in row-major order.
// dim is the side length; cells holds exactly dim*dim entries.
// Marker has value semantics: transforms return new Markers and SetBlack
// swaps in a fresh cell slice, so a copy made by plain assignment is never
// changed through another copy.
type Marker struct {
	dim   int    // side length n
	cells []Cell // flat backing storage, len == dim*dim
}
