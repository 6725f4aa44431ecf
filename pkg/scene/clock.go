package scene

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/transform"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// clockArmLength and clockFaceSize mirror the original experiment's
// 100x100 canvas with hour marks plotted on a 37.5-unit radius.
const (
	clockArmLength = 37.5
	clockFaceSize  = 100
	clockMidpoint  = clockFaceSize / 2
)

// NewClockScene plots the twelve hour marks of a clock face directly
// onto a canvas by rotating a single point around the y axis, without
// going through the ray tracing pipeline at all. It exists to give
// pkg/transform a second consumer beyond ray/shape transforms.
func NewClockScene() *canvas.Canvas {
	c := canvas.NewCanvas(clockFaceSize, clockFaceSize)
	twelve := tuple.Point(0, 0, clockArmLength)

	plot := func(p tuple.Tuple4) {
		x := int(math.Round(clockMidpoint + p.Z))
		y := int(math.Round(clockMidpoint - p.X))
		if x < 0 || x >= clockFaceSize || y < 0 || y >= clockFaceSize {
			return
		}
		c.WritePixel(x, y, canvas.White)
	}

	plot(twelve)
	for hour := 1; hour < 12; hour++ {
		rotated := transform.RotationY(float64(hour) * (math.Pi / 6)).MulTuple(twelve)
		plot(rotated)
	}

	return c
}
