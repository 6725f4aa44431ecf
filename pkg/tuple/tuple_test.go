package tuple

import "testing"

func TestPointAndVectorTags(t *testing.T) {
	p := Point(4, -4, 3)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Point() did not produce a point-tagged tuple: %+v", p)
	}

	v := Vector(4, -4, 3)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Vector() did not produce a vector-tagged tuple: %+v", v)
	}
}

func TestAddPointAndVector(t *testing.T) {
	a := Point(3, -2, 5)
	b := Vector(-2, 3, 1)
	got := a.Add(b)
	want := Point(1, 1, 6)
	if !got.Equals(want) {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestSubtractTwoPointsYieldsVector(t *testing.T) {
	a := Point(3, 2, 1)
	b := Point(5, 6, 7)
	got := a.Sub(b)
	want := Vector(-2, -4, -6)
	if !got.Equals(want) || !got.IsVector() {
		t.Errorf("Sub() = %+v, want vector %+v", got, want)
	}
}

func TestSubtractVectorFromPoint(t *testing.T) {
	p := Point(3, 2, 1)
	v := Vector(5, 6, 7)
	got := p.Sub(v)
	want := Point(-2, -4, -6)
	if !got.Equals(want) {
		t.Errorf("Sub() = %+v, want %+v", got, want)
	}
}

func TestNegate(t *testing.T) {
	v := Vector(1, -2, 3)
	got := v.Neg()
	want := Vector(-1, 2, -3)
	if !got.Equals(want) {
		t.Errorf("Neg() = %+v, want %+v", got, want)
	}
}

func TestMagnitude(t *testing.T) {
	cases := []struct {
		v    Tuple4
		want float64
	}{
		{Vector(1, 0, 0), 1},
		{Vector(0, 1, 0), 1},
		{Vector(0, 0, 1), 1},
		{Vector(1, 2, 3), 3.7416573867739413},
		{Vector(-1, -2, -3), 3.7416573867739413},
	}
	for _, c := range cases {
		if got := c.v.Magnitude(); floatDiff(got, c.want) > Epsilon {
			t.Errorf("Magnitude(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	v := Vector(4, 0, 0)
	got := v.Normalize()
	want := Vector(1, 0, 0)
	if !got.Equals(want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if diff := floatDiff(got.Magnitude(), 1); diff > Epsilon {
		t.Errorf("normalized vector has magnitude %v, want 1", got.Magnitude())
	}
}

func TestDotProduct(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)
	if got, want := a.Dot(b), 20.0; got != want {
		t.Errorf("Dot() = %v, want %v", got, want)
	}
}

func TestCrossProduct(t *testing.T) {
	a := Vector(1, 2, 3)
	b := Vector(2, 3, 4)

	if got, want := a.Cross(b), Vector(-1, 2, -1); !got.Equals(want) {
		t.Errorf("a.Cross(b) = %+v, want %+v", got, want)
	}
	if got, want := b.Cross(a), Vector(1, -2, 1); !got.Equals(want) {
		t.Errorf("b.Cross(a) = %+v, want %+v", got, want)
	}
}

func TestReflectOffSlantedSurface(t *testing.T) {
	v := Vector(0, -1, 0)
	n := Vector(1, 1, 0).Normalize()
	r := v.Reflect(n)
	if diff := floatDiff(r.Magnitude(), v.Magnitude()); diff > 1e-9 {
		t.Errorf("reflection changed magnitude: got %v, want %v", r.Magnitude(), v.Magnitude())
	}
}

func TestReflectApproaching45DegreeSurface(t *testing.T) {
	v := Vector(1, -1, 0)
	n := Vector(0, 1, 0)
	got := v.Reflect(n)
	want := Vector(1, 1, 0)
	if !got.Equals(want) {
		t.Errorf("Reflect() = %+v, want %+v", got, want)
	}
}

func TestAddTwoPointsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic adding two points")
		}
	}()
	Point(1, 2, 3).Add(Point(1, 2, 3))
}

func floatDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
