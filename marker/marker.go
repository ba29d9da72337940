// SPDX-License-Identifier: MIT

package marker

import (
	"fmt"
	"strings"
)

// NewEmpty creates a dim×dim marker with every cell White.
// Stage 1 (Validate): dim > 0.
// Stage 2 (Prepare): allocate dim*dim zero (White) cells.
// Complexity: O(dim²) time and memory.
func NewEmpty(dim int) (Marker, error) {
	if dim <= 0 {
		return Marker{}, fmt.Errorf("NewEmpty(%d): %w", dim, ErrInvalidDimension)
	}

	return Marker{dim: dim, cells: make([]Cell, dim*dim)}, nil
}

// FromCells builds a dim×dim marker from a row-major cell sequence.
// The input is copied; later changes to cells do not affect the marker.
// Returns ErrInvalidDimension if dim <= 0 and ErrDimensionMismatch if
// len(cells) != dim*dim.
// Complexity: O(dim²).
func FromCells(dim int, cells []Cell) (Marker, error) {
	if dim <= 0 {
		return Marker{}, fmt.Errorf("FromCells(%d): %w", dim, ErrInvalidDimension)
	}
	if len(cells) != dim*dim {
		return Marker{}, fmt.Errorf("FromCells(%d): %d cells: %w", dim, len(cells), ErrDimensionMismatch)
	}
	data := make([]Cell, len(cells))
	copy(data, cells)

	return Marker{dim: dim, cells: data}, nil
}

// MustFromCells is FromCells for literals known to be well-formed.
// It panics on error and is meant for tests, examples and package-level tables.
func MustFromCells(dim int, cells []Cell) Marker {
	m, err := FromCells(dim, cells)
	if err != nil {
		panic(err)
	}

	return m
}

// Parse reads the console notation produced by String: rows separated by
// newlines, cells "*" (Black) or "_" (White), whitespace ignored inside a row.
// Blank lines are skipped. The number of rows fixes the dimension.
func Parse(s string) (Marker, error) {
	var cells []Cell
	rows := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		rows++
		for _, r := range line {
			switch r {
			case '*':
				cells = append(cells, Black)
			case '_':
				cells = append(cells, White)
			default:
				return Marker{}, fmt.Errorf("Parse: unexpected %q in row %d", r, rows)
			}
		}
	}

	return FromCells(rows, cells)
}

// Dim returns the side length n.
// Complexity: O(1).
func (m Marker) Dim() int {
	return m.dim
}

// CellAt returns the cell at (row, col), 0-indexed.
// Returns ErrOutOfRange when either index is outside [0, dim).
// Complexity: O(1).
func (m Marker) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return White, fmt.Errorf("CellAt(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.cells[row*m.dim+col], nil
}

// Cells returns a copy of the row-major cell sequence.
// Complexity: O(dim²).
func (m Marker) Cells() []Cell {
	out := make([]Cell, len(m.cells))
	copy(out, m.cells)

	return out
}

// Clone returns a deep copy that shares no storage with m.
// Complexity: O(dim²).
func (m Marker) Clone() Marker {
	return Marker{dim: m.dim, cells: m.Cells()}
}

// SetBlack paints the cell at (row, col) Black. Coordinates are 1-indexed.
//
// Coordinates outside [1, dim] are silently ignored rather than reported.
// Existing call sites build markers by hand and rely on that leniency, so it
// is kept; treat it as a sharp edge when adding new callers.
//
// The cell slice is replaced, never written in place, so copies of m taken
// before the call keep their own cells.
// Complexity: O(dim²).
func (m *Marker) SetBlack(row, col int) {
	if row < 1 || col < 1 || row > m.dim || col > m.dim {
		return
	}
	idx := (row-1)*m.dim + (col - 1)
	if m.cells[idx] == Black {
		return
	}
	cells := m.Cells()
	cells[idx] = Black
	m.cells = cells
}

// Equal reports whether m and other have the same dimension and identical
// cells in row-major order. It is orientation-sensitive.
// Complexity: O(dim²).
func (m Marker) Equal(other Marker) bool {
	if m.dim != other.dim || len(m.cells) != len(other.cells) {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// BlackCount returns the number of Black cells.
// Complexity: O(dim²).
func (m Marker) BlackCount() int {
	n := 0
	for _, c := range m.cells {
		if c == Black {
			n++
		}
	}

	return n
}

// Key returns a compact string that identifies m exactly (dimension and
// cells). Two markers have the same Key iff they are Equal, so Key is safe
// to use as a map key. Keys of equal-dimension markers order the same way
// as their row-major cell sequences with White < Black.
// Complexity: O(dim²).
func (m Marker) Key() string {
	var b strings.Builder
	b.Grow(len(m.cells) + 4)
	fmt.Fprintf(&b, "%d:", m.dim)
	for _, c := range m.cells {
		b.WriteByte('0' + byte(c))
	}

	return b.String()
}

// String renders the marker one row per line, cells separated by a space:
//
//	_ * _
//	_ _ *
//	_ _ _
func (m Marker) String() string {
	var b strings.Builder
	for i := 0; i < m.dim; i++ {
		for j := 0; j < m.dim; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.cells[i*m.dim+j].String())
		}
		if i < m.dim-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
