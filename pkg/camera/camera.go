// Package camera turns a viewport (horizontal size, vertical size,
// field of view, and a world-to-view transform) into per-pixel rays,
// and renders a world through those rays into a canvas, sequentially
// or across a worker pool of goroutines.
package camera

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/df07/rtchallenge/pkg/canvas"
	"github.com/df07/rtchallenge/pkg/matrix"
	"github.com/df07/rtchallenge/pkg/ray"
	"github.com/df07/rtchallenge/pkg/rtlog"
	"github.com/df07/rtchallenge/pkg/transform"
	"github.com/df07/rtchallenge/pkg/tuple"
	"github.com/df07/rtchallenge/pkg/world"
)

// Camera projects rays into a scene. HSize and VSize are in pixels;
// FieldOfView is the full angle in radians spanned by the canvas's
// longer side (horizontal when HSize >= VSize, vertical otherwise). Transform
// places the camera in world space; its inverse is cached at
// construction since every RayForPixel call needs it.
type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	Transform    matrix.Matrix4

	transformInverse matrix.Matrix4
	halfWidth        float64
	halfHeight       float64
	pixelSize        float64
	logger           rtlog.Logger
}

// New computes the viewport geometry once: half the canvas's width
// and height in world units one unit in front of the camera, and the
// size of a single pixel along either axis. A canvas wider than it is
// tall yields a half-width equal to the tangent of half the field of
// view and a half-height scaled down by the aspect ratio, and vice
// versa.
func New(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   matrix.Identity(),
		logger:      rtlog.Discard,
	}
	c.transformInverse = matrix.Identity()
	c.computeViewport()
	return c
}

// SetLogger directs the camera's per-row progress output through l
// instead of discarding it. Safe to call from any goroutine relative
// to a concurrent Render/RenderParallel call on another Camera, but
// not on the same one being actively rendered.
func (c *Camera) SetLogger(l rtlog.Logger) {
	c.logger = l
}

func (c *Camera) computeViewport() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}

	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

// SetTransform replaces the camera's world transform and its cached
// inverse.
func (c *Camera) SetTransform(m matrix.Matrix4) {
	c.Transform = m
	c.transformInverse = m.Inverse()
}

// ViewTransform is a convenience constructor that aims the camera
// from -> to with the given up direction.
func ViewTransform(from, to, up tuple.Tuple4) matrix.Matrix4 {
	return transform.View(from, to, up)
}

// RayForPixel computes the world-space ray passing through the center
// of pixel (px, py), px counted from the left and py from the top.
func (c *Camera) RayForPixel(px, py int) ray.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInverse.MulTuple(tuple.Point(worldX, worldY, -1))
	origin := c.transformInverse.MulTuple(tuple.Point(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return ray.New(origin, direction)
}

// Render traces one ray per pixel sequentially and returns the
// finished canvas.
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	image := canvas.NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(w, image, y)
	}
	return image
}

// RenderParallel divides the canvas into rows and renders them across
// a pool of goroutines, one row per task, fanning out to numWorkers
// (runtime.NumCPU() when numWorkers <= 0). Each row is written by
// exactly one goroutine, so no pixel is ever contended.
func (c *Camera) RenderParallel(w *world.World, numWorkers int) *canvas.Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	image := canvas.NewCanvas(c.HSize, c.VSize)
	rows := make(chan int, c.VSize)
	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				c.renderRow(w, image, y)
			}
		}()
	}
	wg.Wait()

	return image
}

func (c *Camera) renderRow(w *world.World, image *canvas.Canvas, y int) {
	start := time.Now()
	for x := 0; x < c.HSize; x++ {
		r := c.RayForPixel(x, y)
		color := w.ColorAt(r, world.MaxReflectionDepth)
		image.WritePixel(x, y, color)
	}
	c.logger.Printf("row %d/%d rendered in %s", y+1, c.VSize, time.Since(start))
}
