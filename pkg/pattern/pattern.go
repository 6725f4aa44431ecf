// Package pattern implements the procedural surface colorers sampled
// by Phong lighting: solid colors plus the stripe/gradient/ring/
// checker/radial-gradient/blended families, each nestable and each
// carrying its own transform.
package pattern

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Shaped is the minimal view of a shape a pattern needs to sample in
// object space: the ability to carry a world-space point into the
// shape's local space. pkg/shape's Shape type satisfies this without
// pattern needing to import it (which would be a cycle, since
// pkg/material holds a Pattern and pkg/shape holds a Material).
type Shaped interface {
	WorldToObject(worldPoint tuple.Tuple4) tuple.Tuple4
}

// Pattern computes a color from a point expressed in its parent's
// local space. At applies the pattern's own inverse transform before
// evaluating, so a top-level pattern's parent space is the owning
// shape's object space, and a nested pattern's parent space is the
// local space of the pattern that contains it. AtObject is the
// shape-aware entry point used by lighting: it carries a world point
// into the shape's object space and then calls At.
//
// Patterns are pure: they never observe shape material.
type Pattern interface {
	At(parentPoint tuple.Tuple4) canvas.Color
	AtObject(shape Shaped, worldPoint tuple.Tuple4) canvas.Color
}

// base holds the transform bookkeeping shared by every pattern
// variant: the cached inverse of the pattern's transform, recomputed
// once per SetTransform call rather than once per sample. The
// transform itself is not kept.
type base struct {
	transformInverse matrix.Matrix4
}

func newBase() base {
	return base{transformInverse: matrix.Identity()}
}

// SetTransform replaces the pattern's transform, recomputing the
// cached inverse. The core never mutates a pattern's transform once
// rendering begins.
func (b *base) SetTransform(m matrix.Matrix4) {
	b.transformInverse = m.Inverse()
}

// local carries a parent-space point into this pattern's own local
// space by applying the cached inverse transform.
func (b *base) local(p tuple.Tuple4) tuple.Tuple4 {
	return b.transformInverse.MulTuple(p)
}

// atObject implements the shared AtObject contract for every variant.
func atObject(self Pattern, shape Shaped, worldPoint tuple.Tuple4) canvas.Color {
	return self.At(shape.WorldToObject(worldPoint))
}

func evenFloor(v float64) bool {
	return int64(math.Floor(v))%2 == 0
}
