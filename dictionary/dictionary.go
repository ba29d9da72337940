// SPDX-License-Identifier: MIT

package dictionary

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/markerdict/marker"
)

// Dictionary is an ordered, append-only collection of markers.
// Insertion order is the canonical order of the alphabet: entry i is tag id i.
// The zero value is an empty, ready-to-use Dictionary.
type Dictionary struct {
	markers []marker.Marker
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{}
}

// Append adds m at the end. The dictionary stores its own copy.
// Returns ErrDimensionMismatch if m's dimension differs from the entries
// already present. Append does not check rotation rules; Build does.
// Complexity: O(dim²).
func (d *Dictionary) Append(m marker.Marker) error {
	if len(d.markers) > 0 && d.markers[0].Dim() != m.Dim() {
		return fmt.Errorf("Append(dim=%d) into dim=%d: %w", m.Dim(), d.markers[0].Dim(), ErrDimensionMismatch)
	}
	d.markers = append(d.markers, m.Clone())

	return nil
}

// Count returns the number of entries.
// Complexity: O(1).
func (d *Dictionary) Count() int {
	return len(d.markers)
}

// Dim returns the side length shared by all entries, or 0 when empty.
// Complexity: O(1).
func (d *Dictionary) Dim() int {
	if len(d.markers) == 0 {
		return 0
	}

	return d.markers[0].Dim()
}

// At returns a copy of entry index.
// Returns ErrIndexOutOfRange when index is outside [0, Count()).
// Complexity: O(dim²).
func (d *Dictionary) At(index int) (marker.Marker, error) {
	if index < 0 || index >= len(d.markers) {
		return marker.Marker{}, fmt.Errorf("At(%d) of %d: %w", index, len(d.markers), ErrIndexOutOfRange)
	}

	return d.markers[index].Clone(), nil
}

// Markers returns copies of all entries in insertion order.
// Complexity: O(|D| · dim²).
func (d *Dictionary) Markers() []marker.Marker {
	out := make([]marker.Marker, len(d.markers))
	for i, m := range d.markers {
		out[i] = m.Clone()
	}

	return out
}

// IndexOf returns the index of the entry equal to m or to one of its
// rotations, and the rotation (0..3 quarter turns clockwise) that maps the
// entry onto m. ok is false when m is not in the dictionary.
// Complexity: O(|D| · dim²).
func (d *Dictionary) IndexOf(m marker.Marker) (index, quarterTurns int, ok bool) {
	for i, e := range d.markers {
		for q, r := range e.Rotations() {
			if r.Equal(m) {
				return i, q, true
			}
		}
	}

	return -1, 0, false
}

// Contains reports whether m, in any orientation, is an entry.
// Complexity: O(|D| · dim²).
func (d *Dictionary) Contains(m marker.Marker) bool {
	_, _, ok := d.IndexOf(m)

	return ok
}

// MinDistance returns the smallest rotation-aware Hamming distance between
// any two distinct entries (see marker.RotationDistance). ok is false when
// the dictionary has fewer than two entries.
// Complexity: O(|D|² · dim²).
func (d *Dictionary) MinDistance() (dist int, ok bool) {
	if len(d.markers) < 2 {
		return 0, false
	}
	dist = d.markers[0].Dim() * d.markers[0].Dim()
	for i := 0; i < len(d.markers); i++ {
		for j := i + 1; j < len(d.markers); j++ {
			v, err := marker.RotationDistance(d.markers[i], d.markers[j])
			if err != nil {
				continue // unreachable: Append enforces one dimension
			}
			if v < dist {
				dist = v
			}
		}
	}

	return dist, true
}

// String lists the dictionary in console notation: a header line with the
// entry count followed by each marker and a blank line.
func (d *Dictionary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The number of markers in dictionary = %d\n", len(d.markers))
	for _, m := range d.markers {
		b.WriteString(m.String())
		b.WriteString("\n\n")
	}

	return b.String()
}
