package pattern

import (
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Stripe alternates between two colors along x: a when floor(x) is
// even, b otherwise. A line at an integer x flips the color.
type Stripe struct {
	base
	A, B canvas.Color
}

// NewStripe creates a Stripe pattern between colors a and b.
func NewStripe(a, b canvas.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// At returns A or B depending on floor(x) parity, after carrying p
// into this pattern's local space.
func (s *Stripe) At(p tuple.Tuple4) canvas.Color {
	local := s.local(p)
	if evenFloor(local.X) {
		return s.A
	}
	return s.B
}

// AtObject carries a world point into object space and evaluates At.
func (s *Stripe) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(s, shape, worldPoint)
}

// NestedStripe alternates between two child patterns instead of two
// flat colors, each sampled at the parent's own local point carried
// through the child's own transform.
type NestedStripe struct {
	base
	A, B Pattern
}

// NewNestedStripe creates a stripe pattern whose stripes are
// themselves patterns.
func NewNestedStripe(a, b Pattern) *NestedStripe {
	return &NestedStripe{base: newBase(), A: a, B: b}
}

func (s *NestedStripe) At(p tuple.Tuple4) canvas.Color {
	local := s.local(p)
	if evenFloor(local.X) {
		return s.A.At(local)
	}
	return s.B.At(local)
}

func (s *NestedStripe) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(s, shape, worldPoint)
}
