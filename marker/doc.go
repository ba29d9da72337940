// Package marker implements fixed-size square binary patterns ("markers")
// of the kind printed as fiducial tags, together with their rotation group.
//
// What:
//
//   - Cell is a single Black/White bit; the zero value is White.
//   - Marker is an n×n grid of Cells stored row-major in a flat slice.
//   - Rotate90/Rotate180/Rotate270 are pure quarter-turn transforms.
//   - Canonical picks one representative per rotation-equivalence class.
//   - Distance/RotationDistance measure Hamming separation between markers.
//
// Rotation semantics:
//
//	Rotate90 maps the cell at (i, j) to (j, n-1-i): a clockwise quarter turn.
//	Rotate180 is Rotate90 applied twice, Rotate270 is Rotate180 then Rotate90,
//	so the group laws (90∘270 = id, 180∘180 = id, 90⁴ = id) hold by construction.
//
//	    * * _        _ _ *
//	    _ _ _  90°→  _ _ *
//	    _ _ _        _ _ _
//
// Complexity:
//
//   - NewEmpty, FromCells, rotations, Equal: O(n²) time and memory.
//   - CellAt, Dim: O(1).
//
// Errors:
//
//   - ErrInvalidDimension: dimension must be > 0.
//   - ErrDimensionMismatch: cell count does not equal dim*dim, or operands differ in size.
//   - ErrOutOfRange: CellAt coordinates outside [0, dim).
//
// Markers are plain values. They own their cell slice exclusively; every
// constructor and transform copies, so no two Markers alias the same storage.
package marker
