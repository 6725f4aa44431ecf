package pattern

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Ring alternates between two colors based on floor(sqrt(x^2+z^2)).
type Ring struct {
	base
	A, B canvas.Color
}

// NewRing creates a Ring pattern between colors a and b.
func NewRing(a, b canvas.Color) *Ring {
	return &Ring{base: newBase(), A: a, B: b}
}

func (r *Ring) At(p tuple.Tuple4) canvas.Color {
	local := r.local(p)
	radius := math.Sqrt(local.X*local.X + local.Z*local.Z)
	if evenFloor(radius) {
		return r.A
	}
	return r.B
}

func (r *Ring) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(r, shape, worldPoint)
}

// NestedRing alternates between two child patterns instead of two flat
// colors.
type NestedRing struct {
	base
	A, B Pattern
}

// NewNestedRing creates a ring pattern whose rings are themselves
// patterns.
func NewNestedRing(a, b Pattern) *NestedRing {
	return &NestedRing{base: newBase(), A: a, B: b}
}

func (r *NestedRing) At(p tuple.Tuple4) canvas.Color {
	local := r.local(p)
	radius := math.Sqrt(local.X*local.X + local.Z*local.Z)
	if evenFloor(radius) {
		return r.A.At(local)
	}
	return r.B.At(local)
}

func (r *NestedRing) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(r, shape, worldPoint)
}
