// SPDX-License-Identifier: MIT

package marker

// Rotate90 returns m turned a quarter clockwise.
// The cell at (i, j) moves to (j, n-1-i). Source rows are walked in order and
// each one is written down a destination column, starting from the last:
//
//	 0      1    ...  n-1           n(n-1)  ...   n     0
//	 n     n+1   ... 2n-1    90°→  n(n-1)+1 ...  n+1    1
//	...    ...   ...  ...            ...    ...  ...   ...
//
// Complexity: O(n²) time and memory.
func (m Marker) Rotate90() Marker {
	n := m.dim
	out := make([]Cell, len(m.cells))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j*n+(n-1-i)] = m.cells[i*n+j]
		}
	}

	return Marker{dim: n, cells: out}
}

// Rotate180 returns m turned a half turn, computed as two quarter turns.
// Complexity: O(n²).
func (m Marker) Rotate180() Marker {
	return m.Rotate90().Rotate90()
}

// Rotate270 returns m turned three quarters clockwise, computed as
// Rotate180 followed by Rotate90.
// Complexity: O(n²).
func (m Marker) Rotate270() Marker {
	return m.Rotate180().Rotate90()
}

// Rotations returns the four orientations of m in the order
// 0°, 90°, 180°, 270°. Index 0 is a clone of m.
// Complexity: O(n²).
func (m Marker) Rotations() [4]Marker {
	r90 := m.Rotate90()
	r180 := r90.Rotate90()
	r270 := r180.Rotate90()

	return [4]Marker{m.Clone(), r90, r180, r270}
}

// IsRotationSymmetric reports whether any two of m's four orientations are
// equal, i.e. m cannot be told apart from one of its own rotations.
// Complexity: O(n²).
func (m Marker) IsRotationSymmetric() bool {
	return !distinct(m.Rotations())
}

// distinct reports whether all four orientations differ pairwise.
func distinct(rs [4]Marker) bool {
	for i := 0; i < len(rs); i++ {
		for j := i + 1; j < len(rs); j++ {
			if rs[i].Equal(rs[j]) {
				return false
			}
		}
	}

	return true
}

// Canonical returns the orientation of m with the smallest Key. All members
// of a rotation-equivalence class share the same Canonical value.
// Complexity: O(n²).
func (m Marker) Canonical() Marker {
	rs := m.Rotations()
	best, bestKey := rs[0], rs[0].Key()
	for _, r := range rs[1:] {
		if k := r.Key(); k < bestKey {
			best, bestKey = r, k
		}
	}

	return best
}

// EquivalentTo reports whether other equals m or one of its rotations.
// Complexity: O(n²).
func (m Marker) EquivalentTo(other Marker) bool {
	for _, r := range m.Rotations() {
		if r.Equal(other) {
			return true
		}
	}

	return false
}
