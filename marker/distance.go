// SPDX-License-Identifier: MIT

package marker

import "fmt"

// Distance returns the Hamming distance between a and b: the number of
// positions whose cells differ. Returns ErrDimensionMismatch if a and b
// have different dimensions.
// Complexity: O(n²).
func Distance(a, b Marker) (int, error) {
	if a.dim != b.dim {
		return 0, fmt.Errorf("Distance(%d,%d): %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	d := 0
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			d++
		}
	}

	return d, nil
}

// RotationDistance returns the smallest Hamming distance between a and any
// of the four orientations of b. A detector that does not know a tag's
// orientation confuses a and b once RotationDistance errors accumulate.
// Complexity: O(n²).
func RotationDistance(a, b Marker) (int, error) {
	if a.dim != b.dim {
		return 0, fmt.Errorf("RotationDistance(%d,%d): %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	best := len(a.cells)
	for _, r := range b.Rotations() {
		d, _ := Distance(a, r)
		if d < best {
			best = d
		}
	}

	return best, nil
}
