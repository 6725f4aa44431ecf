package scene

import (
	"testing"

	"github.com/df07/rtchallenge/pkg/canvas"
)

func TestNewThreeSphereSceneHasSixShapesAndALight(t *testing.T) {
	s := NewThreeSphereScene(40, 20)
	if len(s.World.Shapes) != 6 {
		t.Errorf("len(Shapes) = %d, want 6", len(s.World.Shapes))
	}
	if s.Camera.HSize != 40 || s.Camera.VSize != 20 {
		t.Errorf("camera size = %dx%d, want 40x20", s.Camera.HSize, s.Camera.VSize)
	}
	if s.World.Light.Intensity.Equals(canvas.Black) {
		t.Errorf("Light.Intensity = %+v, want a lit light", s.World.Light.Intensity)
	}
}

func TestNewThreeSphereSceneRendersWithoutPanicking(t *testing.T) {
	s := NewThreeSphereScene(5, 5)
	img := s.Camera.Render(s.World)
	if img.Width != 5 || img.Height != 5 {
		t.Errorf("image size = %dx%d, want 5x5", img.Width, img.Height)
	}
}

func TestNewPatternShowcaseSceneRenders(t *testing.T) {
	s := NewPatternShowcaseScene(5, 5)
	img := s.Camera.Render(s.World)
	if img.Width != 5 || img.Height != 5 {
		t.Errorf("image size = %dx%d, want 5x5", img.Width, img.Height)
	}
}

func TestNewMirrorHallSceneTerminatesReflectionRecursion(t *testing.T) {
	s := NewMirrorHallScene(5, 5)
	img := s.Camera.Render(s.World)
	if img.Width != 5 || img.Height != 5 {
		t.Errorf("image size = %dx%d, want 5x5", img.Width, img.Height)
	}
}

func TestNewClockSceneLightsTwelveDistinctPixels(t *testing.T) {
	c := NewClockScene()
	lit := make(map[[2]int]bool)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col := c.PixelAt(x, y)
			if col.R > 0 || col.G > 0 || col.B > 0 {
				lit[[2]int{x, y}] = true
			}
		}
	}
	if len(lit) == 0 {
		t.Fatal("no pixels lit")
	}
	if len(lit) != 12 {
		t.Errorf("lit %d distinct pixels, want 12", len(lit))
	}
}
