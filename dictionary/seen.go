package dictionary

import "github.com/katalvlaran/markerdict/marker"

// seenSet answers "is any orientation of this candidate already accepted?"
// Linear mode walks the dictionary; canonical mode consults a key set.
type seenSet struct {
	canonical bool
	keys      map[string]struct{}
}

func newSeenSet(s Strategy) *seenSet {
	if s == StrategyCanonical {
		return &seenSet{canonical: true, keys: make(map[string]struct{})}
	}

	return &seenSet{}
}

// contains reports whether an entry of d equals any of rotations.
func (s *seenSet) contains(d *Dictionary, rotations [4]marker.Marker) bool {
	if s.canonical {
		_, ok := s.keys[canonicalKey(rotations)]

		return ok
	}
	for _, entry := range d.markers {
		for _, r := range rotations {
			if entry.Equal(r) {
				return true
			}
		}
	}

	return false
}

// add records an accepted marker by its orientations.
func (s *seenSet) add(rotations [4]marker.Marker) {
	if s.canonical {
		s.keys[canonicalKey(rotations)] = struct{}{}
	}
}

// canonicalKey is the smallest Key among the orientations; it equals
// Canonical().Key() without recomputing the rotations.
func canonicalKey(rotations [4]marker.Marker) string {
	best := rotations[0].Key()
	for _, r := range rotations[1:] {
		if k := r.Key(); k < best {
			best = k
		}
	}

	return best
}
