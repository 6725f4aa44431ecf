package material

import (
	"math"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/pattern"
	"github.com/df07/rtchallenge/pkg/tuple"
)

// Lighting computes the Phong shade at a point: ambient plus, unless
// the point is in shadow, Lambertian diffuse and specular highlight
// terms. object is the shape being shaded, passed through so the
// material's pattern can sample in object space.
func Lighting(
	mat Material,
	light PointLight,
	point tuple.Tuple4,
	eye tuple.Tuple4,
	normal tuple.Tuple4,
	inShadow bool,
	object pattern.Shaped,
) canvas.Color {
	color := mat.Pattern.AtObject(object, point)
	effective := color.Hadamard(light.Intensity)
	ambient := effective.Mul(mat.Ambient)

	if inShadow {
		return ambient
	}

	diffuse := canvas.Black
	specular := canvas.Black

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normal)

	if lightDotNormal >= 0 {
		diffuse = effective.Mul(mat.Diffuse * lightDotNormal)

		reflectv := lightv.Neg().Reflect(normal)
		reflectDotEye := reflectv.Dot(eye)

		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, mat.Shininess)
			specular = light.Intensity.Mul(mat.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
