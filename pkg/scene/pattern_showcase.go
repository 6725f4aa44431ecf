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

// NewPatternShowcaseScene puts one pattern family on each of four
// spheres arranged in a row above a checkered floor, exercising the
// checker, stripe, gradient, ring and blended patterns in a single
// render. Solid, radial gradient and the nested variants are not used.
func NewPatternShowcaseScene(width, height int) *Scene {
	floor := shape.NewSphere()
	floor.SetTransform(transform.Scaling(20, 0.01, 20))
	floorMat := material.New()
	floorMat.Pattern = pattern.NewChecker(canvas.New(0.2, 0.2, 0.2), canvas.White)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	stripeSphere := shape.NewSphere()
	stripeSphere.SetTransform(transform.Translation(-3, 1, 0))
	stripeMat := material.New()
	stripeMat.Pattern = pattern.NewStripe(canvas.Red, canvas.White)
	stripeSphere.SetMaterial(stripeMat)

	gradientSphere := shape.NewSphere()
	gradientSphere.SetTransform(transform.Translation(-1, 1, 0))
	gradientMat := material.New()
	gradientMat.Pattern = pattern.NewGradient(canvas.New(1, 0.6, 0), canvas.New(0, 0.3, 1))
	gradientSphere.SetMaterial(gradientMat)

	ringSphere := shape.NewSphere()
	ringSphere.SetTransform(transform.Translation(1, 1, 0))
	ringMat := material.New()
	ringPattern := pattern.NewRing(canvas.New(0.3, 0, 0.3), canvas.White)
	ringPattern.SetTransform(transform.Scaling(0.25, 0.25, 0.25))
	ringMat.Pattern = ringPattern
	ringSphere.SetMaterial(ringMat)

	blendedSphere := shape.NewSphere()
	blendedSphere.SetTransform(transform.Translation(3, 1, 0))
	blendedMat := material.New()
	tiltedStripe := pattern.NewStripe(canvas.New(0.1, 0.1, 0.9), canvas.White)
	tiltedStripe.SetTransform(transform.RotationY(math.Pi / 2))
	blendedMat.Pattern = pattern.NewBlended(
		pattern.NewStripe(canvas.New(0.9, 0.1, 0.1), canvas.White),
		tiltedStripe,
	)
	blendedSphere.SetMaterial(blendedMat)

	w := world.New()
	w.Shapes = []shape.Shape{floor, stripeSphere, gradientSphere, ringSphere, blendedSphere}
	w.Light = material.NewPointLight(tuple.Point(-10, 10, -10), canvas.White)

	cam := camera.New(width, height, math.Pi/3)
	cam.SetTransform(camera.ViewTransform(
		tuple.Point(0, 2.5, -8),
		tuple.Point(0, 1, 0),
		tuple.Vector(0, 1, 0),
	))

	return &Scene{World: w, Camera: cam}
}
