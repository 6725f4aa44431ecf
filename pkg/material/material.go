// Package material implements the Phong surface model: per-object
// coefficients plus a pattern, and the lighting() function that turns
// those coefficients, a light, and a shading point into a color.
package material

import (
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/pattern"
)

// Material holds the Phong coefficients and the pattern used to color
// a shape's surface. Reflective/transparency/refractive fields are
// part of the data model; shade_hit (pkg/world) consumes Reflective,
// Transparency and RefractiveIndex are reserved for a future
// refraction algorithm this package does not implement.
type Material struct {
	Pattern                    pattern.Pattern
	Ambient, Diffuse, Specular float64
	Shininess                  float64
	Reflective                 float64
	Transparency               float64
	RefractiveIndex            float64
}

// New returns the default material: ambient 0.1, diffuse 0.9,
// specular 0.9, shininess 200, reflective 0, pattern Solid(white).
func New() Material {
	return Material{
		Pattern:         pattern.NewSolid(canvas.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}
