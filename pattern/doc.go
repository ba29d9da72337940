// Package pattern enumerates every Black/White sequence of a given length in
// the textbook truth-table order.
//
// For nBits = 3 the table is:
//
//	   0  1  2
//	0  *  *  *
//	1  *  *  _
//	2  *  _  *
//	3  *  _  _
//	4  _  *  *
//	5  _  *  _
//	6  _  _  *
//	7  _  _  _
//
// Column c of row k is Black when floor(k / 2^(nBits-1-c)) is even, so column
// 0 toggles every 2^(nBits-1) rows and the last column toggles every row.
// Row k is therefore the binary expansion of k, most significant bit first,
// with Black standing for 0.
//
// Complexity:
//
//   - EnumerateAll: O(2^n · n) time and memory.
//   - At: O(n).
//
// Errors:
//
//   - ErrNegativeBits: nBits < 0.
//   - ErrTooManyBits: nBits > MaxBits.
//   - ErrRowOutOfRange: At called with k outside [0, 2^nBits).
package pattern
