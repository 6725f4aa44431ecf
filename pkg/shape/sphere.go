package shape

import (
	"math"

	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Sphere is a unit sphere centered at the origin in local space.
type Sphere struct {
	base
}

// NewSphere creates a unit sphere with the default material and an
// identity transform.
func NewSphere() *Sphere {
	return &Sphere{base: newBase()}
}

// Intersect transforms r into object space and solves the quadratic
// for a unit sphere at the origin. A tangent ray still produces two
// equal intersections, never one, so Hit's tie-break rule applies
// uniformly.
func (s *Sphere) Intersect(r ray.Ray) []Intersection {
	local := s.localRay(r)

	sphereToRay := local.Origin.Sub(tuple.Point(0, 0, 0))
	a := local.Direction.Dot(local.Direction)
	b := 2 * local.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

// NormalAt returns the world-space normal at a world-space point
// assumed to lie on the sphere's surface.
func (s *Sphere) NormalAt(worldPoint tuple.Tuple4) tuple.Tuple4 {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := tuple.Vector(localPoint.X, localPoint.Y, localPoint.Z)
	return s.worldNormal(localNormal)
}
