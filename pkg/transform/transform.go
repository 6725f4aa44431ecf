// Package transform provides the named constructors for the affine
// matrices used to place shapes and cameras in a scene.
package transform

import (
	"math"

	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Translation returns a matrix that translates by (x, y, z).
func Translation(x, y, z float64) matrix.Matrix4 {
	return matrix.New([4][4]float64{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	})
}

// Scaling returns a matrix that scales by (x, y, z).
func Scaling(x, y, z float64) matrix.Matrix4 {
	return matrix.New([4][4]float64{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

// RotationX returns a matrix that rotates r radians around the x axis.
func RotationX(r float64) matrix.Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return matrix.New([4][4]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationY returns a matrix that rotates r radians around the y axis.
func RotationY(r float64) matrix.Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return matrix.New([4][4]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ returns a matrix that rotates r radians around the z axis.
func RotationZ(r float64) matrix.Matrix4 {
	cos, sin := math.Cos(r), math.Sin(r)
	return matrix.New([4][4]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Shearing returns a matrix that shears each component in proportion
// to the other two, per the six named coefficients.
func Shearing(xy, xz, yx, yz, zx, zy float64) matrix.Matrix4 {
	return matrix.New([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// View returns the world-to-camera transform for a camera positioned
// at from, looking toward to, with the given up direction.
func View(from, to, up tuple.Tuple4) matrix.Matrix4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := matrix.New([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})

	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
