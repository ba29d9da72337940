package render

import "github.com/katalvlaran/markerdict/marker"

// Grid is the read-only view of a marker needed for drawing.
// marker.Marker satisfies it.
type Grid interface {
	Dim() int
	CellAt(row, col int) (marker.Cell, error)
}

// Pixel values.
const (
	Ink        byte = 0   // Black cell
	Paper      byte = 200 // White cell
	Background byte = 255 // quiet zone, gutters
)

// Image is an 8-bit grayscale raster, row-major, one byte per pixel.
type Image struct {
	Width, Height int
	Pix           []byte
}

// newImage allocates a w×h image filled with Background.
func newImage(w, h int) *Image {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = Background
	}

	return &Image{Width: w, Height: h, Pix: pix}
}

// At returns the pixel at (x, y); out-of-bounds reads return Background.
func (img *Image) At(x, y int) byte {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Background
	}

	return img.Pix[y*img.Width+x]
}
