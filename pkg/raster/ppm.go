// Package raster serializes a rendered canvas into output file
// formats: the plain-text PPM (P3) format the rendering pipeline is
// specified against, and BMP as a secondary binary sink.
package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/rtchallenge/pkg/canvas"
)

// maxColorValue is the PPM header's per-channel maximum sample value.
const maxColorValue = 255

// WritePPM serializes c as a PPM P3 (plain ASCII) image: a three-line
// header followed by one integer per color channel, clamped to
// [0,255] and rounded half away from zero, wrapped so no output line
// exceeds 70 characters.
func WritePPM(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", c.Width, c.Height, maxColorValue); err != nil {
		return errors.Wrap(err, "raster: write PPM header")
	}

	var line strings.Builder
	flush := func() error {
		if line.Len() == 0 {
			return nil
		}
		if _, err := bw.WriteString(line.String()); err != nil {
			return errors.Wrap(err, "raster: write PPM row")
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return errors.Wrap(err, "raster: write PPM row")
		}
		line.Reset()
		return nil
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.PixelAt(x, y)
			pixel := strings.Join([]string{
				strconv.Itoa(quantize(col.R)),
				strconv.Itoa(quantize(col.G)),
				strconv.Itoa(quantize(col.B)),
			}, " ")

			extra := len(pixel)
			if line.Len() > 0 {
				extra++ // separating space
			}
			if line.Len()+extra > 70 {
				if err := flush(); err != nil {
					return err
				}
			}
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(pixel)
		}
		if err := flush(); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "raster: flush PPM output")
	}
	return nil
}

// quantize clamps a linear color component to [0,1], scales to
// [0,255], and rounds half away from zero.
func quantize(component float64) int {
	clamped := math.Max(0, math.Min(1, component))
	scaled := clamped * maxColorValue
	return int(math.Round(scaled))
}
