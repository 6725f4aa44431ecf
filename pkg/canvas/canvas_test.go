package canvas

import "testing"

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("NewCanvas() size = %dx%d, want 10x20", c.Width, c.Height)
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if got := c.PixelAt(x, y); !got.Equals(Black) {
				t.Fatalf("PixelAt(%d,%d) = %+v, want black", x, y, got)
			}
		}
	}
}

func TestWriteAndReadPixel(t *testing.T) {
	c := NewCanvas(10, 20)
	red := New(1, 0, 0)
	c.WritePixel(2, 3, red)
	if got := c.PixelAt(2, 3); !got.Equals(red) {
		t.Errorf("PixelAt(2,3) = %+v, want %+v", got, red)
	}
}

func TestWritePixelOutOfBoundsPanics(t *testing.T) {
	c := NewCanvas(5, 5)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic writing out of bounds")
		}
	}()
	c.WritePixel(10, 10, Red)
}
