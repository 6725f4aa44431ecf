package pattern

import (
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Solid is a pattern that returns the same color everywhere. Most
// Materials default to Solid(white).
type Solid struct {
	base
	Color canvas.Color
}

// NewSolid creates a Solid pattern with color c.
func NewSolid(c canvas.Color) *Solid {
	return &Solid{base: newBase(), Color: c}
}

// At ignores the point entirely: a solid color has no spatial variation.
func (s *Solid) At(tuple.Tuple4) canvas.Color {
	return s.Color
}

// AtObject returns the solid color regardless of shape or point.
func (s *Solid) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(s, shape, worldPoint)
}
