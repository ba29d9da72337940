// SPDX-License-Identifier: MIT

// Package dictionary: sentinel error set. Callers match with errors.Is.
package dictionary

import "errors"

var (
	// ErrIndexOutOfRange indicates an entry index outside [0, Count()).
	ErrIndexOutOfRange = errors.New("dictionary: index out of range")

	// ErrNonSquareBits indicates that nBits is not a perfect square, so no
	// n×n marker can hold one pattern.
	ErrNonSquareBits = errors.New("dictionary: bit count is not a perfect square")

	// ErrDimensionMismatch indicates an Append whose marker dimension differs
	// from the dimension of the entries already present.
	ErrDimensionMismatch = errors.New("dictionary: marker dimension mismatch")
)
