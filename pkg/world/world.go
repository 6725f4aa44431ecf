// Package world owns the scene graph a camera renders: the shapes and
// the single point light, the ray-shape intersection sweep across all
// of them, shadow testing, and the recursive Phong-plus-reflection
// shading that turns a ray into a color.
package world

import (
	"sort"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/material"
	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/shape"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// MaxReflectionDepth bounds recursive reflection so that two facing
// mirrors terminate instead of recursing forever.
const MaxReflectionDepth = 5

// World is every shape visible to the camera plus the single light
// illuminating them.
type World struct {
	Shapes []shape.Shape
	Light  material.PointLight
}

// New returns an empty world with no light; callers populate Shapes
// and Light directly, or through a scene factory.
func New() *World {
	return &World{}
}

// Intersect concatenates the intersections of r against every shape
// in the world and returns them sorted by ascending t.
func (w *World) Intersect(r ray.Ray) []shape.Intersection {
	var xs []shape.Intersection
	for _, s := range w.Shapes {
		xs = append(xs, s.Intersect(r)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// IsShadowed reports whether point is blocked from the world's light
// by any shape. The shadow ray runs from point to the light; a hit
// strictly closer than the light means point is in shadow.
func (w *World) IsShadowed(point tuple.Tuple4) bool {
	toLight := w.Light.Position.Sub(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	r := ray.New(point, direction)
	xs := w.Intersect(r)

	hit, found := shape.Hit(xs)
	return found && hit.T < distance
}

// ShadeHit combines direct Phong lighting at comps with a reflection
// contribution recursed up to remaining bounces.
func (w *World) ShadeHit(comps shape.Computations, remaining int) canvas.Color {
	shadowed := w.IsShadowed(comps.OverPoint)

	surface := material.Lighting(
		comps.Object.Material(),
		w.Light,
		comps.Point,
		comps.Eye,
		comps.Normal,
		shadowed,
		comps.Object,
	)

	reflected := w.ReflectedColor(comps, remaining)

	return surface.Add(reflected)
}

// ColorAt traces r through the world and returns the resulting color:
// black if it hits nothing, otherwise the shaded color of the nearest
// hit. remaining bounds how many further reflections ColorAt may
// recurse into.
func (w *World) ColorAt(r ray.Ray, remaining int) canvas.Color {
	xs := w.Intersect(r)
	hit, found := shape.Hit(xs)
	if !found {
		return canvas.Black
	}

	comps := shape.PrepareComputations(hit, r)
	return w.ShadeHit(comps, remaining)
}

// ReflectedColor returns black for a non-reflective material or once
// remaining bounces are exhausted; otherwise it casts a ray from the
// over point along the reflection vector and scales the result by the
// material's reflective coefficient.
func (w *World) ReflectedColor(comps shape.Computations, remaining int) canvas.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return canvas.Black
	}

	reflectRay := ray.New(comps.OverPoint, comps.Reflectv)
	color := w.ColorAt(reflectRay, remaining-1)

	return color.Mul(reflective)
}
