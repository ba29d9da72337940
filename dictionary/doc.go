// Package dictionary builds and holds ordered sets of markers that are
// pairwise distinct under 90° rotation and individually free of rotation
// symmetry: the tag alphabets printed for fiducial detection.
//
// What:
//
//   - Dictionary is an append-only, insertion-ordered list of markers.
//   - Build enumerates every nBits pattern (package pattern), wraps each as a
//     √nBits × √nBits marker and accepts it in enumeration order when:
//     1. it is not equal to any of its own rotations (self-symmetry), and
//     2. no entry already accepted equals it or one of its rotations.
//
// Why:
//
//   - A detector sees a tag in an unknown orientation. Symmetric tags give
//     no orientation; two rotation-equivalent tags cannot be told apart.
//
// Strategies:
//
//   - StrategyLinear (default) scans every accepted entry against all four
//     orientations of the candidate: O(2^n · |D|).
//   - StrategyCanonical keys accepted entries by their canonical rotation in
//     a set: O(2^n). Both accept exactly the same markers in the same order.
//
// Complexity:
//
//   - Build(9) evaluates 512 candidates and accepts 120.
//   - Build(16) evaluates 65536 candidates; prefer StrategyCanonical there.
//
// Errors:
//
//   - ErrNonSquareBits: nBits is not a perfect square.
//   - ErrIndexOutOfRange: At called with index outside [0, Count()).
//   - ErrDimensionMismatch: Append of a marker whose size differs from the entries.
package dictionary
