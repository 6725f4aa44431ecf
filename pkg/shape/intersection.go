package shape

import (
	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Intersection records the ray parameter t at which a ray crosses a
// shape, and which shape it crossed. Lists of intersections are
// transient, built fresh per ray.
type Intersection struct {
	T      float64
	Object Shape
}

// Hit returns the intersection with the smallest non-negative t, or
// false if every intersection is behind the ray origin. Ties (equal
// t) resolve to whichever intersection appears first in xs, since the
// caller concatenates shapes in stable scene order.
func Hit(xs []Intersection) (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// Computations is the precomputed shading context for a single hit:
// everything the Phong lighting function and the world's shading loop
// need, derived once per hit rather than recomputed per term.
type Computations struct {
	T         float64
	Object    Shape
	Point     tuple.Tuple4
	Eye       tuple.Tuple4
	Normal    tuple.Tuple4
	Inside    bool
	OverPoint tuple.Tuple4
	Reflectv  tuple.Tuple4
}

// PrepareComputations bundles the shading context for intersection i
// along ray r. The normal is flipped (and Inside set) whenever the
// ray originates inside the object, and OverPoint is nudged off the
// surface along the (possibly flipped) normal by tuple.Epsilon to
// defeat self-shadowing and self-reflection from floating point error.
func PrepareComputations(i Intersection, r ray.Ray) Computations {
	point := r.Position(i.T)
	eye := r.Direction.Neg()
	normal := i.Object.NormalAt(point)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Neg()
	}

	overPoint := point.Add(normal.Mul(tuple.Epsilon))
	reflectv := r.Direction.Reflect(normal)

	return Computations{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
		OverPoint: overPoint,
		Reflectv:  reflectv,
	}
}
