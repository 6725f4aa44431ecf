// Package scene provides ready-made world/camera pairs the CLI driver
// can select by name, each exercising a different corner of the
// rendering pipeline: the classic floor-and-spheres scene, a pattern
// showcase, and a pair of facing mirrors.
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

// Scene bundles a world with the camera framing it, ready to render.
type Scene struct {
	World  *world.World
	Camera *camera.Camera
}

func standardCamera(width, height int) *camera.Camera {
	c := camera.New(width, height, math.Pi/3)
	c.SetTransform(camera.ViewTransform(
		tuple.Point(0, 1.5, -5),
		tuple.Point(0, 1, 0),
		tuple.Vector(0, 1, 0),
	))
	return c
}

// NewThreeSphereScene builds the book's classic fixture: a flattened
// floor sphere, two walls made from rotated and scaled spheres, and
// three colored spheres of descending size, lit by one point light
// above and to the left.
func NewThreeSphereScene(width, height int) *Scene {
	wallMaterial := material.New()
	wallMaterial.Pattern = pattern.NewSolid(canvas.New(1, 0.9, 0.9))
	wallMaterial.Specular = 0

	floor := shape.NewSphere()
	floor.SetTransform(transform.Scaling(10, 0.01, 10))
	floor.SetMaterial(wallMaterial)

	leftWall := shape.NewSphere()
	leftWall.SetTransform(transform.Translation(0, 0, 5).
		Mul(transform.RotationY(-math.Pi / 4)).
		Mul(transform.RotationX(math.Pi / 2)).
		Mul(transform.Scaling(10, 0.01, 10)))
	leftWall.SetMaterial(wallMaterial)

	rightWall := shape.NewSphere()
	rightWall.SetTransform(transform.Translation(0, 0, 5).
		Mul(transform.RotationY(math.Pi / 4)).
		Mul(transform.RotationX(math.Pi / 2)).
		Mul(transform.Scaling(10, 0.01, 10)))
	rightWall.SetMaterial(wallMaterial)

	middle := shape.NewSphere()
	middle.SetTransform(transform.Translation(-0.5, 1, 0.5))
	middleMat := material.New()
	middleMat.Pattern = pattern.NewSolid(canvas.New(0.1, 1, 0.5))
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := shape.NewSphere()
	right.SetTransform(transform.Translation(1.5, 0.5, -0.5).Mul(transform.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.New()
	rightMat.Pattern = pattern.NewSolid(canvas.New(0.5, 1, 0.1))
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := shape.NewSphere()
	left.SetTransform(transform.Translation(-1.5, 0.33, -0.75).Mul(transform.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.New()
	leftMat.Pattern = pattern.NewSolid(canvas.New(1, 0.8, 0.1))
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	w := world.New()
	w.Shapes = []shape.Shape{floor, leftWall, rightWall, middle, right, left}
	w.Light = material.NewPointLight(tuple.Point(-10, 10, -10), canvas.White)

	return &Scene{World: w, Camera: standardCamera(width, height)}
}
