// Package tuple implements the 4-wide point/vector algebra that the
// rest of the tracer is built on. A Tuple4 is tagged by its w
// component so the same affine machinery in pkg/matrix can act
// correctly on both positions (w=1) and directions (w=0).
package tuple

import "math"

// Epsilon is the tolerance used for floating point equality throughout
// the tracer. It also sets the magnitude of the over-point offset used
// to defeat self-shadowing (see shape.PrepareComputations).
const Epsilon = 1e-5

// Tuple4 is an (x, y, z, w) tuple. Use Point and Vector to build one
// with the correct w tag; do not set w directly outside this package.
type Tuple4 struct {
	X, Y, Z, W float64
}

// Point builds a position tuple (w=1).
func Point(x, y, z float64) Tuple4 {
	return Tuple4{x, y, z, 1}
}

// Vector builds a direction tuple (w=0).
func Vector(x, y, z float64) Tuple4 {
	return Tuple4{x, y, z, 0}
}

// IsPoint reports whether t is tagged as a point.
func (t Tuple4) IsPoint() bool { return t.W == 1 }

// IsVector reports whether t is tagged as a vector.
func (t Tuple4) IsVector() bool { return t.W == 0 }

// Add returns t+other. point+vector=point, vector+vector=vector.
// Adding two points is a programmer error: the result would carry w=2,
// which cannot be interpreted as either a point or a vector.
func (t Tuple4) Add(other Tuple4) Tuple4 {
	if t.W+other.W > 1 {
		panic("tuple: cannot add two points")
	}
	return Tuple4{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Sub returns t-other. point-point=vector, point-vector=point,
// vector-vector=vector. Subtracting a point from a vector is a
// programmer error (negative w).
func (t Tuple4) Sub(other Tuple4) Tuple4 {
	if t.W-other.W < 0 {
		panic("tuple: cannot subtract a point from a vector")
	}
	return Tuple4{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Neg returns the negation of all four components of t. A vector stays
// a vector (w=0); a negated point carries w=-1.
func (t Tuple4) Neg() Tuple4 {
	return Tuple4{-t.X, -t.Y, -t.Z, -t.W}
}

// Mul returns t scaled by a scalar, preserving w's sign discipline only
// for vectors (w=0 stays 0); scaling a point is a programmer error.
func (t Tuple4) Mul(scalar float64) Tuple4 {
	if t.IsPoint() {
		panic("tuple: cannot scale a point")
	}
	return Tuple4{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Div returns t divided by a scalar; see Mul.
func (t Tuple4) Div(scalar float64) Tuple4 {
	return t.Mul(1 / scalar)
}

// Magnitude returns the Euclidean length of t.
func (t Tuple4) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t scaled to unit length. Only meaningful for
// vectors; the w tag is not checked. Normalizing a zero-length tuple
// panics.
func (t Tuple4) Normalize() Tuple4 {
	m := t.Magnitude()
	if m == 0 {
		panic("tuple: cannot normalize a zero-length tuple")
	}
	return Tuple4{t.X / m, t.Y / m, t.Z / m, t.W / m}
}

// Dot returns the four-component dot product of t and other.
func (t Tuple4) Dot(other Tuple4) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3D cross product of t and other as a vector
// (w=0), ignoring w on the inputs. Meaningful only when both operands
// are vectors.
func (t Tuple4) Cross(other Tuple4) Tuple4 {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns t reflected about the normal n: t - n*(2*t.n).
func (t Tuple4) Reflect(n Tuple4) Tuple4 {
	return t.Sub(n.Mul(2 * t.Dot(n)))
}

// Equals compares two tuples componentwise within Epsilon.
func (t Tuple4) Equals(other Tuple4) bool {
	return floatEq(t.X, other.X) && floatEq(t.Y, other.Y) &&
		floatEq(t.Z, other.Z) && floatEq(t.W, other.W)
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
