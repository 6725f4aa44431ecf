package pattern

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Checker alternates between two colors based on the parity of
// floor(x)+floor(y)+floor(z), producing a 3D checkerboard.
type Checker struct {
	base
	A, B canvas.Color
}

// NewChecker creates a Checker pattern between colors a and b.
func NewChecker(a, b canvas.Color) *Checker {
	return &Checker{base: newBase(), A: a, B: b}
}

func (c *Checker) At(p tuple.Tuple4) canvas.Color {
	local := c.local(p)
	if checkerEven(local) {
		return c.A
	}
	return c.B
}

func (c *Checker) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(c, shape, worldPoint)
}

// NestedChecker alternates between two child patterns instead of two
// flat colors.
type NestedChecker struct {
	base
	A, B Pattern
}

// NewNestedChecker creates a checker pattern whose checks are
// themselves patterns.
func NewNestedChecker(a, b Pattern) *NestedChecker {
	return &NestedChecker{base: newBase(), A: a, B: b}
}

func (c *NestedChecker) At(p tuple.Tuple4) canvas.Color {
	local := c.local(p)
	if checkerEven(local) {
		return c.A.At(local)
	}
	return c.B.At(local)
}

func (c *NestedChecker) AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return atObject(c, shape, worldPoint)
}

func checkerEven(p tuple.Tuple4) bool {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	return int64(sum)%2 == 0
}
