package pattern

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Gradient linearly interpolates between two colors along x, by the
// fractional part of x.
type Gradient struct {
	base
	A, B canvas.Color
}

// NewGradient creates a Gradient pattern between colors a and b.
func NewGradient(a, b canvas.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

func (g *Gradient) At(p tuple.Tuple4) canvas.Color {
	local := g.local(p)
	distance := g.B.Sub(g.A)
	fraction := local.X - math.Floor(local.X)
	return g.A.Add(distance.Mul(fraction))
}

func (g *Gradient) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(g, shape, worldPoint)
}

// RadialGradient interpolates between two colors along the distance
// from the y axis, sqrt(x^2+z^2), by its fractional part.
type RadialGradient struct {
	base
	A, B canvas.Color
}

// NewRadialGradient creates a RadialGradient pattern between a and b.
func NewRadialGradient(a, b canvas.Color) *RadialGradient {
	return &RadialGradient{base: newBase(), A: a, B: b}
}

func (r *RadialGradient) At(p tuple.Tuple4) canvas.Color {
	local := r.local(p)
	radius := math.Sqrt(local.X*local.X + local.Z*local.Z)
	distance := r.B.Sub(r.A)
	fraction := radius - math.Floor(radius)
	return r.A.Add(distance.Mul(fraction))
}

func (r *RadialGradient) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(r, shape, worldPoint)
}
