package world

import (
	"math"
	"testing"
	"time"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/material"
	"github.com/df07/rtchallenge/pkg/pattern"
	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/shape"
	"github.com/df07/rtchallenge/pkg/transform"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// defaultWorld matches the book's standard fixture: a light at
// (-10,10,-10) white, an outer unit sphere with a colorful material,
// and an inner sphere scaled by half.
func defaultWorld() *World {
	light := material.NewPointLight(tuple.Point(-10, 10, -10), canvas.White)

	s1 := shape.NewSphere()
	m1 := material.New()
	m1.Pattern = pattern.NewSolid(canvas.New(0.8, 1.0, 0.6))
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := shape.NewSphere()
	s2.SetTransform(transform.Scaling(0.5, 0.5, 0.5))

	return &World{Shapes: []shape.Shape{s1, s2}, Light: light}
}

func TestWorldIntersectSortsByT(t *testing.T) {
	w := defaultWorld()
	r := ray.New(tuple.Point(0, 0, -5), tuple.Vector(0, 0, 1))
	xs := w.Intersect(r)
	if len(xs) != 4 {
		t.Fatalf("len(xs) = %d, want 4", len(xs))
	}
	want := []float64{4, 4.5, 5.5, 6}
	for i, x := range xs {
		if math.Abs(x.T-want[i]) > tuple.Epsilon {
			t.Errorf("xs[%d].T = %v, want %v", i, x.T, want[i])
		}
	}
}

func TestShadeHitFromOutside(t *testing.T) {
	w := defaultWorld()
	r := ray.New(tuple.Point(0, 0, -5), tuple.Vector(0, 0, 1))
	i := shape.Intersection{T: 4, Object: w.Shapes[0]}
	comps := shape.PrepareComputations(i, r)
	got := w.ShadeHit(comps, MaxReflectionDepth)
	want := canvas.New(0.38066, 0.47583, 0.2855)
	if !got.Equals(want) {
		t.Errorf("ShadeHit() = %+v, want %+v", got, want)
	}
}

func TestShadeHitFromInside(t *testing.T) {
	w := defaultWorld()
	w.Light = material.NewPointLight(tuple.Point(0, 0.25, 0), canvas.White)
	r := ray.New(tuple.Point(0, 0, 0), tuple.Vector(0, 0, 1))
	i := shape.Intersection{T: 0.5, Object: w.Shapes[1]}
	comps := shape.PrepareComputations(i, r)
	got := w.ShadeHit(comps, MaxReflectionDepth)
	want := canvas.New(0.90498, 0.90498, 0.90498)
	if !got.Equals(want) {
		t.Errorf("ShadeHit() = %+v, want %+v", got, want)
	}
}

func TestShadeHitWhenPointIsInShadow(t *testing.T) {
	w := New()
	w.Light = material.NewPointLight(tuple.Point(0, 0, -10), canvas.White)

	s1 := shape.NewSphere()
	s2 := shape.NewSphere()
	s2.SetTransform(transform.Translation(0, 0, 10))
	w.Shapes = []shape.Shape{s1, s2}

	r := ray.New(tuple.Point(0, 0, 5), tuple.Vector(0, 0, 1))
	i := shape.Intersection{T: 4, Object: s2}
	comps := shape.PrepareComputations(i, r)
	got := w.ShadeHit(comps, MaxReflectionDepth)
	want := canvas.New(0.1, 0.1, 0.1)
	if !got.Equals(want) {
		t.Errorf("ShadeHit() = %+v, want %+v", got, want)
	}
}

func TestColorAtRayMisses(t *testing.T) {
	w := defaultWorld()
	r := ray.New(tuple.Point(0, 0, -5), tuple.Vector(0, 1, 0))
	if got := w.ColorAt(r, MaxReflectionDepth); !got.Equals(canvas.Black) {
		t.Errorf("ColorAt() = %+v, want black", got)
	}
}

func TestColorAtRayHits(t *testing.T) {
	w := defaultWorld()
	r := ray.New(tuple.Point(0, 0, -5), tuple.Vector(0, 0, 1))
	got := w.ColorAt(r, MaxReflectionDepth)
	want := canvas.New(0.38066, 0.47583, 0.2855)
	if !got.Equals(want) {
		t.Errorf("ColorAt() = %+v, want %+v", got, want)
	}
}

func TestColorAtWithIntersectionBehindRay(t *testing.T) {
	w := defaultWorld()
	outer := w.Shapes[0]
	om := outer.Material()
	om.Ambient = 1
	outer.SetMaterial(om)

	inner := w.Shapes[1]
	im := inner.Material()
	im.Ambient = 1
	inner.SetMaterial(im)

	r := ray.New(tuple.Point(0, 0, 0.75), tuple.Vector(0, 0, -1))
	got := w.ColorAt(r, MaxReflectionDepth)
	want := im.Pattern.AtObject(inner, tuple.Point(0, 0, 0))
	if !got.Equals(want) {
		t.Errorf("ColorAt() = %+v, want inner sphere's color %+v", got, want)
	}
}

func TestIsShadowedNoShadowWhenNothingCollinear(t *testing.T) {
	w := defaultWorld()
	if w.IsShadowed(tuple.Point(0, 10, 0)) {
		t.Errorf("IsShadowed() = true, want false")
	}
}

func TestIsShadowedWhenObjectBetweenPointAndLight(t *testing.T) {
	w := defaultWorld()
	if !w.IsShadowed(tuple.Point(10, -10, 10)) {
		t.Errorf("IsShadowed() = false, want true")
	}
}

func TestIsShadowedWhenObjectBehindLight(t *testing.T) {
	w := defaultWorld()
	if w.IsShadowed(tuple.Point(-20, 20, -20)) {
		t.Errorf("IsShadowed() = true, want false")
	}
}

func TestIsShadowedWhenObjectBehindPoint(t *testing.T) {
	w := defaultWorld()
	if w.IsShadowed(tuple.Point(-2, 2, -2)) {
		t.Errorf("IsShadowed() = true, want false")
	}
}

func TestReflectedColorForNonReflectiveMaterial(t *testing.T) {
	w := defaultWorld()
	r := ray.New(tuple.Point(0, 0, 0), tuple.Vector(0, 0, 1))
	inner := w.Shapes[1]
	im := inner.Material()
	im.Ambient = 1
	inner.SetMaterial(im)

	i := shape.Intersection{T: 1, Object: inner}
	comps := shape.PrepareComputations(i, r)
	got := w.ReflectedColor(comps, MaxReflectionDepth)
	if !got.Equals(canvas.Black) {
		t.Errorf("ReflectedColor() = %+v, want black", got)
	}
}

func TestReflectedColorForReflectiveMaterial(t *testing.T) {
	w := defaultWorld()
	p := shape.NewPlane()
	pm := p.Material()
	pm.Reflective = 0.5
	p.SetMaterial(pm)
	p.SetTransform(transform.Translation(0, -1, 0))
	w.Shapes = append(w.Shapes, p)

	r := ray.New(tuple.Point(0, 0, -3), tuple.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := shape.Intersection{T: math.Sqrt2, Object: p}
	comps := shape.PrepareComputations(i, r)
	got := w.ReflectedColor(comps, MaxReflectionDepth)
	want := canvas.New(0.19032, 0.2379, 0.14274)
	if !got.Equals(want) {
		t.Errorf("ReflectedColor() = %+v, want %+v", got, want)
	}
}

func TestShadeHitWithReflectiveMaterial(t *testing.T) {
	w := defaultWorld()
	p := shape.NewPlane()
	pm := p.Material()
	pm.Reflective = 0.5
	p.SetMaterial(pm)
	p.SetTransform(transform.Translation(0, -1, 0))
	w.Shapes = append(w.Shapes, p)

	r := ray.New(tuple.Point(0, 0, -3), tuple.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := shape.Intersection{T: math.Sqrt2, Object: p}
	comps := shape.PrepareComputations(i, r)
	got := w.ShadeHit(comps, MaxReflectionDepth)
	want := canvas.New(0.87676, 0.92434, 0.82917)
	if !got.Equals(want) {
		t.Errorf("ShadeHit() = %+v, want %+v", got, want)
	}
}

func TestColorAtTerminatesWithMutuallyReflectiveSurfaces(t *testing.T) {
	w := New()
	w.Light = material.NewPointLight(tuple.Point(0, 0, 0), canvas.White)

	lower := shape.NewPlane()
	lm := lower.Material()
	lm.Reflective = 1
	lower.SetMaterial(lm)
	lower.SetTransform(transform.Translation(0, -1, 0))

	upper := shape.NewPlane()
	um := upper.Material()
	um.Reflective = 1
	upper.SetMaterial(um)
	upper.SetTransform(transform.Translation(0, 1, 0))

	w.Shapes = []shape.Shape{lower, upper}

	r := ray.New(tuple.Point(0, 0, 0), tuple.Vector(0, 1, 0))

	done := make(chan canvas.Color, 1)
	go func() { done <- w.ColorAt(r, MaxReflectionDepth) }()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("ColorAt() did not terminate for mutually reflective planes")
	}
}

func TestReflectedColorAtMaxRecursionDepthIsBlack(t *testing.T) {
	w := defaultWorld()
	p := shape.NewPlane()
	pm := p.Material()
	pm.Reflective = 0.5
	p.SetMaterial(pm)
	p.SetTransform(transform.Translation(0, -1, 0))
	w.Shapes = append(w.Shapes, p)

	r := ray.New(tuple.Point(0, 0, -3), tuple.Vector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := shape.Intersection{T: math.Sqrt2, Object: p}
	comps := shape.PrepareComputations(i, r)
	got := w.ReflectedColor(comps, 0)
	if !got.Equals(canvas.Black) {
		t.Errorf("ReflectedColor() at depth 0 = %+v, want black", got)
	}
}
