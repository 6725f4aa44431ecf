package shape

import (
	"math"

	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Plane is the xz plane (y=0) in local space, extending infinitely.
type Plane struct {
	base
}

// NewPlane creates an xz plane with the default material and an
// identity transform.
func NewPlane() *Plane {
	return &Plane{base: newBase()}
}

// Intersect transforms r into object space. A ray parallel to the
// plane (including one lying in the plane) produces no intersection.
func (p *Plane) Intersect(r ray.Ray) []Intersection {
	local := p.localRay(r)

	if math.Abs(local.Direction.Y) < tuple.Epsilon {
		return nil
	}

	t := -local.Origin.Y / local.Direction.Y
	return []Intersection{{T: t, Object: p}}
}

// NormalAt returns the world-space normal, which is constant
// everywhere on the plane in local space: (0, 1, 0).
func (p *Plane) NormalAt(worldPoint tuple.Tuple4) tuple.Tuple4 {
	return p.worldNormal(tuple.Vector(0, 1, 0))
}
