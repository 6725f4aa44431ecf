package material

import (
	"math"
	"testing"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// fakeSphere is a unit sphere at the origin with no transform, enough
// for the lighting tests to sample a Solid pattern through.
type fakeSphere struct{}

func (fakeSphere) WorldToObject(p tuple.Tuple4) tuple.Tuple4 { return p }

func TestLightingEyeBetweenLightAndSurface(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, 0, -1)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 0, -10), canvas.White)

	got := Lighting(m, light, position, eye, normal, false, fakeSphere{})
	want := canvas.New(1.9, 1.9, 1.9)
	if !got.Equals(want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingEyeOffset45Degrees(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, math.Sqrt2/2, -math.Sqrt2/2)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 0, -10), canvas.White)

	got := Lighting(m, light, position, eye, normal, false, fakeSphere{})
	want := canvas.New(1.0, 1.0, 1.0)
	if !got.Equals(want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingEyeOppositeSurfaceLightOffset45Degrees(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, 0, -1)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 10, -10), canvas.White)

	got := Lighting(m, light, position, eye, normal, false, fakeSphere{})
	want := canvas.New(0.7364, 0.7364, 0.7364)
	if !got.Equals(want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingEyeInPathOfReflectionVector(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, -math.Sqrt2/2, -math.Sqrt2/2)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 10, -10), canvas.White)

	got := Lighting(m, light, position, eye, normal, false, fakeSphere{})
	want := canvas.New(1.6364, 1.6364, 1.6364)
	if !got.Equals(want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingLightBehindSurface(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, 0, -1)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 0, 10), canvas.White)

	got := Lighting(m, light, position, eye, normal, false, fakeSphere{})
	want := canvas.New(0.1, 0.1, 0.1)
	if !got.Equals(want) {
		t.Errorf("Lighting() = %+v, want %+v", got, want)
	}
}

func TestLightingSurfaceInShadow(t *testing.T) {
	m := New()
	position := tuple.Point(0, 0, 0)

	eye := tuple.Vector(0, 0, -1)
	normal := tuple.Vector(0, 0, -1)
	light := NewPointLight(tuple.Point(0, 0, -10), canvas.White)

	got := Lighting(m, light, position, eye, normal, true, fakeSphere{})
	want := canvas.New(0.1, 0.1, 0.1)
	if !got.Equals(want) {
		t.Errorf("Lighting() in shadow = %+v, want %+v", got, want)
	}
}

func TestDefaultMaterial(t *testing.T) {
	m := New()
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("New() = %+v, unexpected defaults", m)
	}
	if m.Reflective != 0 {
		t.Errorf("New().Reflective = %v, want 0", m.Reflective)
	}
	if got := m.Pattern.At(tuple.Point(0, 0, 0)); !got.Equals(canvas.White) {
		t.Errorf("New().Pattern.At() = %+v, want white", got)
	}
}
