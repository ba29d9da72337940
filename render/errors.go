package render

import "errors"

var (
	// ErrNilGrid indicates a nil Grid was passed.
	ErrNilGrid = errors.New("render: nil grid")
	// ErrInvalidLayout indicates a non-positive layout value or negative Begin.
	ErrInvalidLayout = errors.New("render: invalid layout")
	// ErrEmptyPage indicates that no grid falls on the requested page.
	ErrEmptyPage = errors.New("render: nothing to draw")
	// ErrMarkerTooSmall indicates a marker canvas too small for one pixel per cell.
	ErrMarkerTooSmall = errors.New("render: marker size too small for its dimension")
	// ErrBadImage indicates an Image whose buffer does not match Width×Height.
	ErrBadImage = errors.New("render: pixel buffer does not match dimensions")
)
