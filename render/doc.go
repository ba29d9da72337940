// Package render lays markers out as 8-bit grayscale pixel buffers and
// encodes them as binary PGM (P5) images.
//
// Layout of a single marker of side n on a size×size canvas:
//
//	cell = floor((size - (n+1)·gap) / (n+2)),  gap = 1
//
// Cell (i, j) occupies the cell×cell square whose top-left corner is
// ((i+1)·(cell+gap), (j+1)·(cell+gap)), leaving a one-cell quiet zone
// around the pattern. Black cells are 0, White cells 200, the rest 255.
//
// A page places Rows×Cols marker canvases of MarkerSize pixels separated by
// a 5-pixel gutter, filled row by row starting at entry Begin.
//
// Complexity: O(W·H) per image.
package render
