// Package shape implements the polymorphic surface layer: Sphere and
// Plane, each carrying a transform and a Material, exposing a
// local-space intersection contract and world-space normal transport.
package shape

import (
	"github.com/df07/rtchallenge/pkg/material"
	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Shape is the contract every primitive satisfies. Shape identity is
// by reference: two shapes with identical transform and material are
// still distinct shapes, because Intersection attributes a hit to a
// specific instance, not to a value.
type Shape interface {
	// WorldToObject carries a world-space point into this shape's
	// local space using the cached inverse transform. It also
	// satisfies pattern.Shaped, letting a Material's pattern sample
	// in object space without pkg/pattern depending on pkg/shape.
	WorldToObject(worldPoint tuple.Tuple4) tuple.Tuple4

	// Intersect transforms ray into object space and returns the
	// shape-specific intersections, each attributed to this instance.
	Intersect(r ray.Ray) []Intersection

	// NormalAt returns the world-space unit normal at a world-space
	// point assumed to lie on the surface.
	NormalAt(worldPoint tuple.Tuple4) tuple.Tuple4

	Material() material.Material
	SetMaterial(m material.Material)
	Transform() matrix.Matrix4
	SetTransform(m matrix.Matrix4)
}

// base holds the bookkeeping shared by every shape variant: the
// transform, its cached inverse, and the material. Embed base in a
// concrete shape and it satisfies everything but Intersect/NormalAt.
type base struct {
	transform        matrix.Matrix4
	transformInverse matrix.Matrix4
	mat              material.Material
}

func newBase() base {
	return base{
		transform:        matrix.Identity(),
		transformInverse: matrix.Identity(),
		mat:              material.New(),
	}
}

// SetTransform replaces the shape's transform, recomputing the cached
// inverse used by every ray intersection and normal computation. The
// core does not mutate a shape's transform once rendering begins.
func (b *base) SetTransform(m matrix.Matrix4) {
	b.transform = m
	b.transformInverse = m.Inverse()
}

func (b *base) Transform() matrix.Matrix4 { return b.transform }

func (b *base) Material() material.Material     { return b.mat }
func (b *base) SetMaterial(m material.Material) { b.mat = m }

// WorldToObject carries a world-space point into local space.
func (b *base) WorldToObject(p tuple.Tuple4) tuple.Tuple4 {
	return b.transformInverse.MulTuple(p)
}

// worldNormal carries a local-space normal into world space: multiply
// by the inverse-transpose, force w=0 (a normal is a direction even
// though the inverse-transpose can introduce a nonzero w), and
// normalize away any non-uniform scaling distortion.
func (b *base) worldNormal(localNormal tuple.Tuple4) tuple.Tuple4 {
	worldNormal := b.transformInverse.Transpose().MulTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// localRay transforms a world ray into this shape's object space.
func (b *base) localRay(r ray.Ray) ray.Ray {
	return r.Transform(b.transformInverse)
}
