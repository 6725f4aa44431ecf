package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/df07/rtchallenge/pkg/canvas"
)

// WriteBMP serializes c as a Windows bitmap, clamping and quantizing
// channels the same way WritePPM does so the two sinks agree on what
// a pixel looks like.
func WriteBMP(w io.Writer, c *canvas.Canvas) error {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(quantize(col.R)),
				G: uint8(quantize(col.G)),
				B: uint8(quantize(col.B)),
				A: 255,
			})
		}
	}

	if err := bmp.Encode(w, img); err != nil {
		return errors.Wrap(err, "raster: encode BMP")
	}
	return nil
}
