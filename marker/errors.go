// SPDX-License-Identifier: MIT

// Package marker: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with fmt.Errorf("ctx: %w", ErrX)); callers match them with errors.Is.
package marker

import "errors"

var (
	// ErrInvalidDimension is returned when a marker is requested with dim <= 0.
	ErrInvalidDimension = errors.New("marker: dimension must be > 0")

	// ErrDimensionMismatch indicates that a cell sequence length is not dim*dim,
	// or that two markers of different dimension were compared by distance.
	ErrDimensionMismatch = errors.New("marker: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, dim).
	ErrOutOfRange = errors.New("marker: index out of range")
)
