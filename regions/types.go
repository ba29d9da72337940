package regions

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// offsets returns the (drow, dcol) neighbour steps for c.
func offsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Coordinate converts a row-major index back to (row, col) for a dim×dim grid.
// Complexity: O(1).
func Coordinate(dim, idx int) (row, col int) {
	return idx / dim, idx % dim
}
