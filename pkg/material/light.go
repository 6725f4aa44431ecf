package material

import (
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// PointLight is a light source with no size, at a fixed position,
// with a given intensity. A world has exactly one.
type PointLight struct {
	Position  tuple.Tuple4
	Intensity canvas.Color
}

// NewPointLight creates a PointLight at position with intensity.
func NewPointLight(position tuple.Tuple4, intensity canvas.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
