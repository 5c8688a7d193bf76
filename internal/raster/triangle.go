// Package raster is the software rasterizer behind tsgl.Canvas.Render.
//
// It fills triangles with barycentric color interpolation and draws lines,
// both depth tested against a float32 z-buffer. Smaller depth is nearer.
package raster

import (
	"math"

	"github.com/chewxy/math32"
)

// Vertex is a screen-space vertex: pixel coordinates, depth and RGBA color.
type Vertex struct {
	X, Y, Depth float32
	Color       [4]float32
}

// Plotter receives every pixel that passes the depth test.
type Plotter func(x, y int, c [4]float32)

// Rasterizer holds the depth buffer for one target size.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width, height int
	depth         []float32
}

// New creates a rasterizer for a width x height target.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{
		width:  width,
		height: height,
		depth:  make([]float32, width*height),
	}
	r.ClearDepth()
	return r
}

// Width returns the target width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the target height.
func (r *Rasterizer) Height() int { return r.height }

// ClearDepth resets the depth buffer to +Inf.
func (r *Rasterizer) ClearDepth() {
	n := len(r.depth)
	if n == 0 {
		return
	}
	r.depth[0] = math32.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(r.depth[i:], r.depth[:i])
	}
}

// test reports whether depth d is nearer than the stored value at (x, y)
// and stores it if so.
func (r *Rasterizer) test(x, y int, d float32) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	i := y*r.width + x
	if d >= r.depth[i] {
		return false
	}
	r.depth[i] = d
	return true
}

// Triangle fills a triangle. Winding does not matter.
func (r *Rasterizer) Triangle(v0, v1, v2 Vertex, plot Plotter) {
	area := edge(v0, v1, v2.X, v2.Y)
	if area == 0 {
		return
	}

	minX := clampi(int(math.Floor(float64(min3(v0.X, v1.X, v2.X)))), 0, r.width-1)
	maxX := clampi(int(math.Ceil(float64(max3(v0.X, v1.X, v2.X)))), 0, r.width-1)
	minY := clampi(int(math.Floor(float64(min3(v0.Y, v1.Y, v2.Y)))), 0, r.height-1)
	maxY := clampi(int(math.Ceil(float64(max3(v0.Y, v1.Y, v2.Y)))), 0, r.height-1)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(v1, v2, px, py) / area
			w1 := edge(v2, v0, px, py) / area
			w2 := edge(v0, v1, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			d := w0*v0.Depth + w1*v1.Depth + w2*v2.Depth
			if !r.test(x, y, d) {
				continue
			}
			var c [4]float32
			for k := range c {
				c[k] = w0*v0.Color[k] + w1*v1.Color[k] + w2*v2.Color[k]
			}
			plot(x, y, c)
		}
	}
}

// TriangleStrip fills every triangle of a strip.
func (r *Rasterizer) TriangleStrip(vs []Vertex, plot Plotter) {
	for i := 2; i < len(vs); i++ {
		r.Triangle(vs[i-2], vs[i-1], vs[i], plot)
	}
}

// Line draws a one pixel wide line with interpolated color and depth.
func (r *Rasterizer) Line(v0, v1 Vertex, plot Plotter) {
	dx := v1.X - v0.X
	dy := v1.Y - v0.Y
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	n := float32(steps)
	for s := 0; s <= steps; s++ {
		t := float32(s) / n
		x := int(math32.Floor(v0.X + dx*float32(s)/n))
		y := int(math32.Floor(v0.Y + dy*float32(s)/n))
		d := v0.Depth + (v1.Depth-v0.Depth)*t
		if !r.test(x, y, d) {
			continue
		}
		var c [4]float32
		for k := range c {
			c[k] = v0.Color[k] + (v1.Color[k]-v0.Color[k])*t
		}
		plot(x, y, c)
	}
}

// LineList draws vs[0]-vs[1], vs[2]-vs[3], ... A trailing odd vertex is
// ignored.
func (r *Rasterizer) LineList(vs []Vertex, plot Plotter) {
	for i := 1; i < len(vs); i += 2 {
		r.Line(vs[i-1], vs[i], plot)
	}
}

// LineStrip draws a connected polyline through vs.
func (r *Rasterizer) LineStrip(vs []Vertex, plot Plotter) {
	for i := 1; i < len(vs); i++ {
		r.Line(vs[i-1], vs[i], plot)
	}
}

// Points plots every vertex.
func (r *Rasterizer) Points(vs []Vertex, plot Plotter) {
	for _, v := range vs {
		x, y := int(math32.Floor(v.X)), int(math32.Floor(v.Y))
		if r.test(x, y, v.Depth) {
			plot(x, y, v.Color)
		}
	}
}

func edge(a, b Vertex, px, py float32) float32 {
	return (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
}

func min3(a, b, c float32) float32 { return math32.Min(a, math32.Min(b, c)) }
func max3(a, b, c float32) float32 { return math32.Max(a, math32.Max(b, c)) }

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
