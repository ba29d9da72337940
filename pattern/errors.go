package pattern

import "errors"

var (
	// ErrNegativeBits indicates a negative bit count.
	ErrNegativeBits = errors.New("pattern: bit count must be >= 0")
	// ErrTooManyBits indicates a bit count whose table would exceed MaxBits.
	ErrTooManyBits = errors.New("pattern: bit count exceeds MaxBits")
	// ErrRowOutOfRange indicates a row index outside [0, 2^nBits).
	ErrRowOutOfRange = errors.New("pattern: row index out of range")
)
