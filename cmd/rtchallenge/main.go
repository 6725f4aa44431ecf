// Command rtchallenge renders a scene to a PPM or BMP image.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"

	"github.com/df07/rtchallenge/pkg/camera"
	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/raster"
	"github.com/df07/rtchallenge/pkg/rtlog"
	"github.com/df07/rtchallenge/pkg/scene"
	"github.com/df07/rtchallenge/pkg/scenefile"
	"github.com/df07/rtchallenge/pkg/world"
)

var (
	sceneName = flag.String("scene", "three-sphere", "Built-in scene (three-sphere, pattern-showcase, mirror-hall, clock)")
	sceneFile = flag.String("scenefile", "", "Path to a YAML scene description; overrides -scene")
	out       = flag.String("out", "render.ppm", "Output file path")
	width     = flag.Int("width", 400, "Image width in pixels")
	height    = flag.Int("height", 200, "Image height in pixels")
	workers   = flag.Int("workers", runtime.NumCPU(), "Number of rendering goroutines")
	format    = flag.String("format", "ppm", "Output format: ppm or bmp")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rtchallenge: render a ray traced scene\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := rtlog.New(os.Stderr)

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "rtchallenge: %+v\n", err)
		os.Exit(1)
	}
}

func run(logger rtlog.Logger) error {
	var image *canvas.Canvas

	if *sceneFile == "" && *sceneName == "clock" {
		logger.Printf("rendering clock face")
		image = scene.NewClockScene()
	} else {
		w, cam, err := loadScene()
		if err != nil {
			return err
		}
		cam.SetLogger(logger)
		logger.Printf("rendering %dx%d across %d workers", cam.HSize, cam.VSize, *workers)
		image = cam.RenderParallel(w, *workers)
	}

	var buf bytes.Buffer
	var err error
	switch *format {
	case "ppm":
		err = raster.WritePPM(&buf, image)
	case "bmp":
		err = raster.WriteBMP(&buf, image)
	default:
		return errors.Errorf("rtchallenge: unknown format %q (want ppm or bmp)", *format)
	}
	if err != nil {
		return errors.Wrap(err, "rtchallenge: encode image")
	}

	if err := writeAtomically(*out, buf.Bytes()); err != nil {
		return err
	}

	logger.Printf("wrote %s", *out)
	return nil
}

func loadScene() (*world.World, *camera.Camera, error) {
	if *sceneFile != "" {
		f, err := os.Open(*sceneFile)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "rtchallenge: open scene file %s", *sceneFile)
		}
		defer f.Close()

		w, cam, err := scenefile.Load(f)
		if err != nil {
			return nil, nil, err
		}
		return w, cam, nil
	}

	switch *sceneName {
	case "three-sphere":
		s := scene.NewThreeSphereScene(*width, *height)
		return s.World, s.Camera, nil
	case "pattern-showcase":
		s := scene.NewPatternShowcaseScene(*width, *height)
		return s.World, s.Camera, nil
	case "mirror-hall":
		s := scene.NewMirrorHallScene(*width, *height)
		return s.World, s.Camera, nil
	default:
		return nil, nil, errors.Errorf("rtchallenge: unknown scene %q", *sceneName)
	}
}

// writeAtomically writes data to a temp file in the destination's
// directory and renames it into place, so a failed write never leaves
// a partial file at path.
func writeAtomically(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rtchallenge-*")
	if err != nil {
		return errors.Wrapf(err, "rtchallenge: create temp file in %s", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "rtchallenge: write %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "rtchallenge: close %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "rtchallenge: rename %s to %s", tmpPath, path)
	}
	return nil
}
