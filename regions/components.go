package regions

import "github.com/katalvlaran/markerdict/marker"

// Components finds all contiguous regions of cells equal to colour in m.
// Each component is a slice of row-major cell indices in BFS order; the
// components themselves appear in row-major order of their first cell.
// Use Coordinate to turn an index back into (row, col).
//
// Time:   O(n²·d), where d = 4 or 8.
// Memory: O(n²) for visited flags and output.
func Components(m marker.Marker, colour marker.Cell, conn Connectivity) [][]int {
	n := m.Dim()
	cells := m.Cells()
	seen := make([]bool, len(cells))
	steps := offsets(conn)
	var comps [][]int

	for i0, c := range cells {
		if c != colour || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ur, uc := Coordinate(n, u)
			for _, d := range steps {
				vr, vc := ur+d[0], uc+d[1]
				if vr < 0 || vr >= n || vc < 0 || vc >= n {
					continue
				}
				vi := vr*n + vc
				if cells[vi] != colour || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Count returns len(Components(m, colour, conn)).
func Count(m marker.Marker, colour marker.Cell, conn Connectivity) int {
	return len(Components(m, colour, conn))
}

// MinRegions returns a predicate accepting markers with at least min regions
// of colour. It has the dictionary.Filter signature.
func MinRegions(colour marker.Cell, conn Connectivity, min int) func(marker.Marker) bool {
	return func(m marker.Marker) bool {
		return Count(m, colour, conn) >= min
	}
}
