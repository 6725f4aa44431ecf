// Package ray implements the primary and secondary rays cast through a
// scene: origin point plus direction vector, with the affine transform
// that moves a ray between world and object space.
package ray

import (
	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Ray is an origin point and a direction vector. Building a Ray whose
// origin is not a point or whose direction is not a vector is a
// programmer error.
type Ray struct {
	Origin    tuple.Tuple4
	Direction tuple.Tuple4
}

// New constructs a Ray, panicking if origin/direction are mistagged.
func New(origin, direction tuple.Tuple4) Ray {
	if !origin.IsPoint() {
		panic("ray: origin must be a point")
	}
	if !direction.IsVector() {
		panic("ray: direction must be a vector")
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) tuple.Tuple4 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns a new ray with both origin and direction carried
// through m. This is how rays move between world and object space.
func (r Ray) Transform(m matrix.Matrix4) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
