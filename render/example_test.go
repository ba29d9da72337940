package render_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/markerdict/dictionary"
	"github.com/katalvlaran/markerdict/render"
)

// ExamplePage renders the 3×3 alphabet onto a single page and encodes it.
func ExamplePage() {
	d, _ := dictionary.Build(9)
	img, _ := render.Page(render.Grids(d.Markers()), render.WithMarkerSize(50), render.WithGrid(15, 8))

	var buf bytes.Buffer
	_ = render.EncodePGM(&buf, img)
	fmt.Printf("%dx%d, %d bytes\n", img.Width, img.Height, buf.Len())

	// Output:
	// 445x830, 369365 bytes
}
