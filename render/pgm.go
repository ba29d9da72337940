package render

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// EncodePGM writes img as a binary PGM:
//
//	P5
//	<width> <height>
//	255
//	<width·height raw bytes>
func EncodePGM(w io.Writer, img *Image) error {
	if img == nil || len(img.Pix) != img.Width*img.Height {
		return ErrBadImage
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("EncodePGM: header: %w", err)
	}
	if _, err := bw.Write(img.Pix); err != nil {
		return fmt.Errorf("EncodePGM: pixels: %w", err)
	}

	return bw.Flush()
}

// DecodePGM reads a binary PGM with maxval 255 as written by EncodePGM.
// Comments in the header are not supported.
func DecodePGM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	var magic string
	var w, h, maxval int
	if _, err := fmt.Fscan(br, &magic, &w, &h, &maxval); err != nil {
		return nil, fmt.Errorf("DecodePGM: header: %w", err)
	}
	if magic != "P5" || maxval != 255 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("DecodePGM: %s %dx%d max %d: %w", magic, w, h, maxval, ErrBadImage)
	}
	// exactly one whitespace byte separates the header from the raster
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("DecodePGM: %w", err)
	}
	pix := make([]byte, w*h)
	if _, err := io.ReadFull(br, pix); err != nil {
		return nil, fmt.Errorf("DecodePGM: pixels: %w", err)
	}

	return &Image{Width: w, Height: h, Pix: pix}, nil
}

// Gray converts img to an *image.Gray sharing no memory with it, for use
// with the standard image encoders.
func (img *Image) Gray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	copy(g.Pix, img.Pix)

	return g
}
