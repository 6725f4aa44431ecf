package scene

import (
	"math"

	"github.com/df07/rtchallenge/pkg/camera"
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/material"
	"github.com/df07/rtchallenge/pkg/pattern"
	"github.com/df07/rtchallenge/pkg/shape"
	"github.com/df07/rtchallenge/pkg/transform"
	"github.com/df07/rtchallenge/pkg/tuple"
	"github.com/df07/rtchallenge/pkg/world"
)

// NewMirrorHallScene places two highly reflective (0.9) planes facing each
// other with a single sphere between them, exercising the
// world.MaxReflectionDepth termination property: without a bound, a
// ray bouncing between the two planes would recurse forever.
func NewMirrorHallScene(width, height int) *Scene {
	left := shape.NewPlane()
	left.SetTransform(transform.Translation(-5, 0, 0).Mul(transform.RotationZ(math.Pi / 2)))
	leftMat := material.New()
	leftMat.Pattern = pattern.NewSolid(canvas.New(0.05, 0.05, 0.05))
	leftMat.Reflective = 0.9
	leftMat.Specular = 0
	left.SetMaterial(leftMat)

	right := shape.NewPlane()
	right.SetTransform(transform.Translation(5, 0, 0).Mul(transform.RotationZ(math.Pi / 2)))
	rightMat := material.New()
	rightMat.Pattern = pattern.NewSolid(canvas.New(0.05, 0.05, 0.05))
	rightMat.Reflective = 0.9
	rightMat.Specular = 0
	right.SetMaterial(rightMat)

	floor := shape.NewPlane()
	floorMat := material.New()
	floorMat.Pattern = pattern.NewChecker(canvas.New(0.1, 0.1, 0.1), canvas.New(0.9, 0.9, 0.9))
	floor.SetMaterial(floorMat)

	ball := shape.NewSphere()
	ball.SetTransform(transform.Translation(0, 1, 0))
	ballMat := material.New()
	ballMat.Pattern = pattern.NewSolid(canvas.New(0.8, 0.1, 0.1))
	ballMat.Reflective = 0.3
	ball.SetMaterial(ballMat)

	w := world.New()
	w.Shapes = []shape.Shape{left, right, floor, ball}
	w.Light = material.NewPointLight(tuple.Point(0, 5, -5), canvas.White)

	cam := camera.New(width, height, math.Pi/3)
	cam.SetTransform(camera.ViewTransform(
		tuple.Point(0, 2, -8),
		tuple.Point(0, 1, 0),
		tuple.Vector(0, 1, 0),
	))

	return &Scene{World: w, Camera: cam}
}
