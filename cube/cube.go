package cube

import (
	"math"
	"sync/atomic"
)

const CAMERA_DISTANCE = 5.0

// Per-frame rotation increments in radians.
const (
	DELTA_X = 0.05
	DELTA_Y = 0.07
	DELTA_Z = 0.03
)

const (
	GLYPH_BLANK        = ' '
	GLYPH_BACK_EDGE    = '·'
	GLYPH_FRONT_EDGE   = '█'
	GLYPH_LINK_EDGE    = '▓'
	GLYPH_BACK_VERTEX  = '○'
	GLYPH_FRONT_VERTEX = '●'
)

type Vec3 struct {
	X, Y, Z float64
}

// Vertices 0-3 form the back face (z=-1), 4-7 the front face (z=+1).
var vertices = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

func rotateX(p Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{
		X: p.X,
		Y: p.Y*c - p.Z*s,
		Z: p.Y*s + p.Z*c,
	}
}

func rotateY(p Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

func rotateZ(p Vec3, angle float64) Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Vec3{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
		Z: p.Z,
	}
}

// Cube holds the orientation and size of the wireframe cube. Angles are
// owned by the render loop; the scale may be written from another goroutine,
// so it goes through sync/atomic. A momentarily stale scale only affects the
// visual size for one frame.
type Cube struct {
	angleX, angleY, angleZ float64
	scale                  int64
}

func NewCube(scale int) *Cube {
	c := &Cube{}
	c.SetScale(scale)
	return c
}

// SetScale updates the projected footprint of the cube. Non-positive values
// are ignored; the change takes effect on the next RenderFrame.
func (c *Cube) SetScale(scale int) {
	if scale <= 0 {
		return
	}
	atomic.StoreInt64(&c.scale, int64(scale))
}

func (c *Cube) Scale() int {
	return int(atomic.LoadInt64(&c.scale))
}

func (c *Cube) Angles() (x, y, z float64) {
	return c.angleX, c.angleY, c.angleZ
}

// Advance applies the fixed per-axis increments and wraps each angle
// into [0, 2π).
func (c *Cube) Advance() {
	c.angleX = math.Mod(c.angleX+DELTA_X, 2*math.Pi)
	c.angleY = math.Mod(c.angleY+DELTA_Y, 2*math.Pi)
	c.angleZ = math.Mod(c.angleZ+DELTA_Z, 2*math.Pi)
}

// project maps a rotated point to integer screen coordinates. The int
// conversion truncates toward zero, matching the reference rasterizer.
func (c *Cube) project(p Vec3, scale float64) (int, int) {
	factor := CAMERA_DISTANCE / (CAMERA_DISTANCE + p.Z)
	return int(p.X * factor * scale), int(p.Y * factor * scale)
}

// RenderFrame rasterizes the cube at its current orientation and scale into
// a fresh width x height grid. Width and height must be positive. Edges are
// drawn first, then the vertices are overplotted so they are never obscured.
func (c *Cube) RenderFrame(width, height int) *Frame {
	frame := NewFrame(width, height)
	scale := float64(c.Scale())
	centerX, centerY := width/2, height/2

	var px, py [8]int
	for i, v := range vertices {
		rotated := rotateZ(rotateY(rotateX(v, c.angleX), c.angleY), c.angleZ)
		x, y := c.project(rotated, scale)
		px[i] = x + centerX
		py[i] = y + centerY
	}

	for _, e := range edges {
		var ch rune
		switch {
		case e[0] < 4 && e[1] < 4:
			ch = GLYPH_BACK_EDGE
		case e[0] >= 4 && e[1] >= 4:
			ch = GLYPH_FRONT_EDGE
		default:
			ch = GLYPH_LINK_EDGE
		}
		frame.DrawLine(px[e[0]], py[e[0]], px[e[1]], py[e[1]], ch)
	}

	for i := 0; i < 8; i++ {
		ch := rune(GLYPH_BACK_VERTEX)
		if i >= 4 {
			ch = GLYPH_FRONT_VERTEX
		}
		frame.Set(px[i], py[i], ch)
	}

	return frame
}
