// Package scenefile loads a world/camera pair from a YAML document
// instead of a compiled pkg/scene factory, so the CLI driver can be
// pointed at an arbitrary scene without a recompile.
package scenefile

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/rtchallenge/pkg/camera"
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/material"
	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/pattern"
	"github.com/df07/rtchallenge/pkg/shape"
	"github.com/df07/rtchallenge/pkg/transform"
	"github.com/df07/rtchallenge/pkg/tuple"
	"github.com/df07/rtchallenge/pkg/world"
)

// document is the on-disk shape of a scene file. Every field maps
// directly onto a YAML key; there is no nested nor scripted form.
type document struct {
	Camera cameraDoc  `yaml:"camera"`
	Light  lightDoc   `yaml:"light"`
	Shapes []shapeDoc `yaml:"shapes"`
}

type vec3Doc struct {
	X, Y, Z float64
}

type cameraDoc struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FieldOfView float64 `yaml:"field_of_view"`
	From        vec3Doc `yaml:"from"`
	To          vec3Doc `yaml:"to"`
	Up          vec3Doc `yaml:"up"`
}

type lightDoc struct {
	Position  vec3Doc  `yaml:"position"`
	Intensity colorDoc `yaml:"intensity"`
}

type colorDoc struct {
	R, G, B float64
}

type transformDoc struct {
	Translate *vec3Doc  `yaml:"translate"`
	Scale     *vec3Doc  `yaml:"scale"`
	RotateX   *float64  `yaml:"rotate_x"`
	RotateY   *float64  `yaml:"rotate_y"`
	RotateZ   *float64  `yaml:"rotate_z"`
}

type materialDoc struct {
	Color      colorDoc `yaml:"color"`
	Ambient    *float64 `yaml:"ambient"`
	Diffuse    *float64 `yaml:"diffuse"`
	Specular   *float64 `yaml:"specular"`
	Shininess  *float64 `yaml:"shininess"`
	Reflective *float64 `yaml:"reflective"`
}

type shapeDoc struct {
	Type       string         `yaml:"type"`
	Transforms []transformDoc `yaml:"transforms"`
	Material   materialDoc    `yaml:"material"`
}

// Load parses a YAML scene description from r into a ready-to-render
// world and camera. Unknown shape types are reported as an error
// rather than silently skipped.
func Load(r io.Reader) (*world.World, *camera.Camera, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "scenefile: read")
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.Wrap(err, "scenefile: parse YAML")
	}

	w := world.New()
	w.Light = material.NewPointLight(toPoint(doc.Light.Position), toColor(doc.Light.Intensity))

	for _, sd := range doc.Shapes {
		s, err := buildShape(sd)
		if err != nil {
			return nil, nil, err
		}
		w.Shapes = append(w.Shapes, s)
	}

	cam := camera.New(doc.Camera.Width, doc.Camera.Height, doc.Camera.FieldOfView)
	cam.SetTransform(camera.ViewTransform(
		toPoint(doc.Camera.From),
		toPoint(doc.Camera.To),
		toVector(doc.Camera.Up),
	))

	return w, cam, nil
}

func buildShape(sd shapeDoc) (shape.Shape, error) {
	var s shape.Shape
	switch sd.Type {
	case "sphere":
		s = shape.NewSphere()
	case "plane":
		s = shape.NewPlane()
	default:
		return nil, errors.Errorf("scenefile: unknown shape type %q", sd.Type)
	}

	combined := matrix.Identity()
	for _, td := range sd.Transforms {
		combined = combined.Mul(transformFor(td))
	}
	s.SetTransform(combined)
	s.SetMaterial(materialFor(sd.Material))

	return s, nil
}

func materialFor(md materialDoc) material.Material {
	m := material.New()
	m.Pattern = pattern.NewSolid(toColor(md.Color))
	if md.Ambient != nil {
		m.Ambient = *md.Ambient
	}
	if md.Diffuse != nil {
		m.Diffuse = *md.Diffuse
	}
	if md.Specular != nil {
		m.Specular = *md.Specular
	}
	if md.Shininess != nil {
		m.Shininess = *md.Shininess
	}
	if md.Reflective != nil {
		m.Reflective = *md.Reflective
	}
	return m
}

// transformFor converts one transform entry to a Matrix4. A transform
// entry sets at most one of its fields; an empty entry yields the
// identity, which is harmless but pointless in a scene file.
func transformFor(td transformDoc) matrix.Matrix4 {
	switch {
	case td.Translate != nil:
		return transform.Translation(td.Translate.X, td.Translate.Y, td.Translate.Z)
	case td.Scale != nil:
		return transform.Scaling(td.Scale.X, td.Scale.Y, td.Scale.Z)
	case td.RotateX != nil:
		return transform.RotationX(*td.RotateX)
	case td.RotateY != nil:
		return transform.RotationY(*td.RotateY)
	case td.RotateZ != nil:
		return transform.RotationZ(*td.RotateZ)
	default:
		return matrix.Identity()
	}
}

func toPoint(v vec3Doc) tuple.Tuple4  { return tuple.Point(v.X, v.Y, v.Z) }
func toVector(v vec3Doc) tuple.Tuple4 { return tuple.Vector(v.X, v.Y, v.Z) }
func toColor(c colorDoc) canvas.Color { return canvas.New(c.R, c.G, c.B) }
