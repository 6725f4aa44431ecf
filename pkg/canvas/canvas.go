package canvas

import "fmt"

// Canvas is a rectangular grid of Colors, row-major, initialized to
// black. The render owns the canvas and hands it to a raster sink
// (pkg/raster) once the image is complete.
type Canvas struct {
	Width, Height int
	pixels        []Color
}

// NewCanvas creates a width x height canvas, all pixels black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
	}
}

// WritePixel sets the color at (x, y). x indexes columns, y indexes
// rows. Writing outside the canvas bounds is a programmer error.
func (c *Canvas) WritePixel(x, y int, col Color) {
	c.checkBounds(x, y)
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) Color {
	c.checkBounds(x, y)
	return c.pixels[y*c.Width+x]
}

func (c *Canvas) checkBounds(x, y int) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("canvas: pixel (%d,%d) out of bounds for %dx%d canvas", x, y, c.Width, c.Height))
	}
}
