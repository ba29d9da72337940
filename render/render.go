package render

import (
	"fmt"

	"github.com/katalvlaran/markerdict/marker"
)

// MinMarkerSize returns the smallest canvas Marker will draw a dim×dim grid
// on: 3·dim + dim + CellGap pixels.
func MinMarkerSize(dim int) int {
	return 3*dim + (dim + CellGap)
}

// cellSize returns the side of one cell on a size-pixel canvas.
func cellSize(size, dim int) int {
	return (size - (dim+1)*CellGap) / (dim + 2)
}

// Marker draws g alone on a size×size canvas. size is raised to
// MinMarkerSize(dim) when smaller.
// Returns ErrNilGrid for a nil grid and marker.ErrInvalidDimension when the
// grid has no cells.
// Complexity: O(size²).
func Marker(g Grid, size int) (*Image, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	dim := g.Dim()
	if dim <= 0 {
		return nil, fmt.Errorf("Marker: dim=%d: %w", dim, marker.ErrInvalidDimension)
	}
	if minSize := MinMarkerSize(dim); size < minSize {
		size = minSize
	}
	img := newImage(size, size)
	if err := drawMarker(img, g, 0, 0, size); err != nil {
		return nil, err
	}

	return img, nil
}

// Grids adapts a marker slice to the Grid slice Page and Pages take.
func Grids(ms []marker.Marker) []Grid {
	out := make([]Grid, len(ms))
	for i := range ms {
		out[i] = ms[i]
	}

	return out
}

// Page draws up to Rows×Cols grids, starting at grids[Begin], left to right
// and top to bottom. Slots past the end of grids stay blank.
//
// Stage 1 (Validate): layout values positive, Begin inside grids.
// Stage 2 (Prepare): allocate Cols·MarkerSize + (Cols+1)·PageGap wide,
// Rows·MarkerSize + (Rows+1)·PageGap high, filled with Background.
// Stage 3 (Execute): draw each grid into its slot.
//
// Complexity: O(W·H).
func Page(grids []Grid, opts ...Option) (*Image, error) {
	l := NewLayout(opts...)
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("Page: %+v: %w", l, err)
	}

	return page(grids, l)
}

// page draws one page for an already validated layout.
func page(grids []Grid, l Layout) (*Image, error) {
	if l.Begin >= len(grids) {
		return nil, fmt.Errorf("Page: begin=%d of %d: %w", l.Begin, len(grids), ErrEmptyPage)
	}

	width := l.MarkerSize*l.Cols + PageGap*(l.Cols+1)
	height := l.MarkerSize*l.Rows + PageGap*(l.Rows+1)
	img := newImage(width, height)

	end := l.Begin + l.PerPage()
	if end > len(grids) {
		end = len(grids)
	}
	for slot, g := range grids[l.Begin:end] {
		if g == nil {
			return nil, fmt.Errorf("Page: slot %d: %w", slot, ErrNilGrid)
		}
		row, col := slot/l.Cols, slot%l.Cols
		y0 := PageGap + row*(l.MarkerSize+PageGap)
		x0 := PageGap + col*(l.MarkerSize+PageGap)
		if err := drawMarker(img, g, x0, y0, l.MarkerSize); err != nil {
			return nil, fmt.Errorf("Page: slot %d: %w", slot, err)
		}
	}

	return img, nil
}

// Pages renders every grid from Begin onwards, one image per Rows×Cols.
// Returns ErrEmptyPage if there is nothing to draw.
// Complexity: O(pages · W·H).
func Pages(grids []Grid, opts ...Option) ([]*Image, error) {
	l := NewLayout(opts...)
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("Pages: %+v: %w", l, err)
	}
	if l.Begin >= len(grids) {
		return nil, fmt.Errorf("Pages: begin=%d of %d: %w", l.Begin, len(grids), ErrEmptyPage)
	}

	var pages []*Image
	for ; l.Begin < len(grids); l.Begin += l.PerPage() {
		img, err := page(grids, l)
		if err != nil {
			return nil, err
		}
		pages = append(pages, img)
	}

	return pages, nil
}

// drawMarker paints g into the size×size square at (x0, y0) of img.
func drawMarker(img *Image, g Grid, x0, y0, size int) error {
	dim := g.Dim()
	if dim <= 0 {
		return fmt.Errorf("dim=%d: %w", dim, marker.ErrInvalidDimension)
	}
	cell := cellSize(size, dim)
	if cell < 1 {
		return fmt.Errorf("size=%d dim=%d: %w", size, dim, ErrMarkerTooSmall)
	}

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			c, err := g.CellAt(i, j)
			if err != nil {
				return err
			}
			shade := Paper
			if c == marker.Black {
				shade = Ink
			}
			top := y0 + (i+1)*(cell+CellGap)
			left := x0 + (j+1)*(cell+CellGap)
			for k := 0; k < cell; k++ {
				row := img.Pix[(top+k)*img.Width+left : (top+k)*img.Width+left+cell]
				for p := range row {
					row[p] = shade
				}
			}
		}
	}

	return nil
}
