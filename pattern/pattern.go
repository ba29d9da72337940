package pattern

import (
	"fmt"

	"github.com/katalvlaran/markerdict/marker"
)

// MaxBits bounds the table size: 2^16 rows of 16 cells is 1 MiB of cells,
// enough for every 4×4 marker.
const MaxBits = 16

// validate checks nBits against [0, MaxBits].
func validate(nBits int) error {
	if nBits < 0 {
		return fmt.Errorf("nBits=%d: %w", nBits, ErrNegativeBits)
	}
	if nBits > MaxBits {
		return fmt.Errorf("nBits=%d (max %d): %w", nBits, MaxBits, ErrTooManyBits)
	}

	return nil
}

// Count returns the number of patterns of length nBits, 2^nBits, or 0 for
// nBits == 0 (the empty table).
// Complexity: O(1).
func Count(nBits int) (int, error) {
	if err := validate(nBits); err != nil {
		return 0, err
	}
	if nBits == 0 {
		return 0, nil
	}

	return 1 << nBits, nil
}

// EnumerateAll returns all 2^nBits sequences of nBits cells in truth-table
// order. Row k is the same sequence At(nBits, k) returns.
// nBits == 0 yields an empty, non-nil table.
//
// Stage 1 (Validate): 0 ≤ nBits ≤ MaxBits.
// Stage 2 (Prepare): one flat backing slice, rows are sub-slices of it.
// Stage 3 (Execute): fill column by column; each column starts on White and
// inverts at every run boundary, runs halving in length left to right.
//
// Complexity: O(2^n · n) time and memory.
func EnumerateAll(nBits int) ([][]marker.Cell, error) {
	total, err := Count(nBits)
	if err != nil {
		return nil, fmt.Errorf("EnumerateAll: %w", err)
	}
	rows := make([][]marker.Cell, total)
	if total == 0 {
		return rows, nil
	}

	flat := make([]marker.Cell, total*nBits)
	for r := range rows {
		rows[r] = flat[r*nBits : (r+1)*nBits : (r+1)*nBits]
	}

	run := total / 2
	for col := 0; col < nBits; col++ {
		val := marker.White
		for row := 0; row < total; row++ {
			if row%run == 0 {
				val = val.Invert()
			}
			rows[row][col] = val
		}
		run /= 2
	}

	return rows, nil
}

// At returns row k of the nBits table without building the whole table.
// Returns ErrRowOutOfRange when k is outside [0, 2^nBits).
// Complexity: O(n).
func At(nBits, k int) ([]marker.Cell, error) {
	total, err := Count(nBits)
	if err != nil {
		return nil, fmt.Errorf("At: %w", err)
	}
	if k < 0 || k >= total {
		return nil, fmt.Errorf("At(%d,%d): %w", nBits, k, ErrRowOutOfRange)
	}
	row := make([]marker.Cell, nBits)
	for c := 0; c < nBits; c++ {
		if (k>>(nBits-1-c))&1 == 1 {
			row[c] = marker.White
		} else {
			row[c] = marker.Black
		}
	}

	return row, nil
}
