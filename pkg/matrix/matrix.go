// Package matrix implements the dense 4x4 real matrix used to carry
// shapes, patterns, and rays between object and world space.
package matrix

import (
	"math"

	"github.com/df07/rtchallenge/pkg/tuple"
)

// Matrix4 is a 4x4 matrix of real numbers, stored row-major. Treat
// values built by this package as immutable; nothing in the tracer
// mutates a Matrix4 in place once constructed.
type Matrix4 struct {
	m [4][4]float64
}

// New builds a Matrix4 from row-major data. The [4][4] array type
// fixes the shape at compile time, so there is nothing to check here.
func New(rows [4][4]float64) Matrix4 {
	return Matrix4{m: rows}
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return New([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// At returns the element at (row, col).
func (a Matrix4) At(row, col int) float64 {
	return a.m[row][col]
}

// Equals compares two matrices componentwise within tuple.Epsilon.
func (a Matrix4) Equals(b Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(a.m[r][c]-b.m[r][c]) >= tuple.Epsilon {
				return false
			}
		}
	}
	return true
}

// Mul returns the matrix product a*b.
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var result [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.m[r][k] * b.m[k][c]
			}
			result[r][c] = sum
		}
	}
	return New(result)
}

// MulTuple returns the tuple a*t, treating t as a column vector.
func (a Matrix4) MulTuple(t tuple.Tuple4) tuple.Tuple4 {
	v := [4]float64{t.X, t.Y, t.Z, t.W}
	var out [4]float64
	for r := 0; r < 4; r++ {
		var sum float64
		for c := 0; c < 4; c++ {
			sum += a.m[r][c] * v[c]
		}
		out[r] = sum
	}
	return tuple.Tuple4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// Transpose returns the transpose of a.
func (a Matrix4) Transpose() Matrix4 {
	var result [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[c][r] = a.m[r][c]
		}
	}
	return New(result)
}

// Submatrix returns a with the given row and column removed, yielding
// a 3x3 matrix.
func (a Matrix4) Submatrix(row, col int) Matrix3 {
	var result [3][3]float64
	rr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		cc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = a.m[r][c]
			cc++
		}
		rr++
	}
	return Matrix3{m: result}
}

// Minor returns the determinant of the submatrix obtained by removing
// row and col.
func (a Matrix4) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (a Matrix4) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along
// row 0.
func (a Matrix4) Determinant() float64 {
	var det float64
	for c := 0; c < 4; c++ {
		det += a.m[0][c] * a.Cofactor(0, c)
	}
	return det
}

// Invertible reports whether a has a non-zero determinant.
func (a Matrix4) Invertible() bool {
	return a.Determinant() != 0
}

// Inverse returns the inverse of a: the transpose of the cofactor
// matrix divided by the determinant. Callers must not invert a
// singular matrix; doing so is a programmer error and panics, per the
// data model invariant that inversion is only attempted when the
// determinant is non-zero.
func (a Matrix4) Inverse() Matrix4 {
	det := a.Determinant()
	if det == 0 {
		panic("matrix: cannot invert a singular matrix")
	}
	var result [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Transpose happens here: cofactor(r,c) lands at [c][r].
			result[c][r] = a.Cofactor(r, c) / det
		}
	}
	return New(result)
}

// Matrix3 is a 3x3 matrix, used only as an intermediate step of
// Matrix4's cofactor expansion.
type Matrix3 struct {
	m [3][3]float64
}

// Submatrix returns the 2x2 matrix obtained by removing row and col.
func (a Matrix3) Submatrix(row, col int) Matrix2 {
	var result [2][2]float64
	rr := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		cc := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[rr][cc] = a.m[r][c]
			cc++
		}
		rr++
	}
	return Matrix2{m: result}
}

// Minor returns the determinant of the submatrix at (row, col).
func (a Matrix3) Minor(row, col int) float64 {
	return a.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col).
func (a Matrix3) Cofactor(row, col int) float64 {
	minor := a.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along
// row 0.
func (a Matrix3) Determinant() float64 {
	var det float64
	for c := 0; c < 3; c++ {
		det += a.m[0][c] * a.Cofactor(0, c)
	}
	return det
}

// Matrix2 is a 2x2 matrix, the base case of the cofactor recursion.
type Matrix2 struct {
	m [2][2]float64
}

// Determinant returns ad-bc for the 2x2 matrix.
func (a Matrix2) Determinant() float64 {
	return a.m[0][0]*a.m[1][1] - a.m[0][1]*a.m[1][0]
}
