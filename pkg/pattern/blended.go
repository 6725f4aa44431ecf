package pattern

import (
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Blended combines two child patterns by componentwise (Hadamard)
// product of their colors at the same point.
type Blended struct {
	base
	A, B Pattern
}

// NewBlended creates a Blended pattern from two child patterns.
func NewBlended(a, b Pattern) *Blended {
	return &Blended{base: newBase(), A: a, B: b}
}

func (bl *Blended) At(p tuple.Tuple4) canvas.Color {
	local := bl.local(p)
	return bl.A.At(local).Hadamard(bl.B.At(local))
}

func (bl *Blended) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(bl, shape, worldPoint)
}
