package tsgl

import (
	"math"
	"sync"
)

// Bounds is a rectangle in cartesian coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CartesianCanvas maps a cartesian coordinate system with y up onto a
// Canvas. Pixel (0, 0) is (MinX, MaxY) and pixel (w-1, h-1) is
// (MaxX, MinY).
//
// The bounds may be changed by zoom handlers while workers draw; use
// Bounds to take a consistent snapshot for a whole pass.
type CartesianCanvas struct {
	*Canvas

	mu      sync.RWMutex
	bounds  Bounds
	initial Bounds
}

// NewCartesianCanvas creates a width x height canvas showing bounds.
func NewCartesianCanvas(width, height int, bounds Bounds, opts ...CanvasOption) *CartesianCanvas {
	return &CartesianCanvas{
		Canvas:  NewCanvas(width, height, opts...),
		bounds:  bounds,
		initial: bounds,
	}
}

// Bounds returns the current cartesian bounds.
func (c *CartesianCanvas) Bounds() Bounds {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bounds
}

// MinX returns the left edge.
func (c *CartesianCanvas) MinX() float64 { return c.Bounds().MinX }

// MaxX returns the right edge.
func (c *CartesianCanvas) MaxX() float64 { return c.Bounds().MaxX }

// MinY returns the bottom edge.
func (c *CartesianCanvas) MinY() float64 { return c.Bounds().MinY }

// MaxY returns the top edge.
func (c *CartesianCanvas) MaxY() float64 { return c.Bounds().MaxY }

// CartWidth returns the cartesian width.
func (c *CartesianCanvas) CartWidth() float64 { return c.Bounds().Width() }

// CartHeight returns the cartesian height.
func (c *CartesianCanvas) CartHeight() float64 { return c.Bounds().Height() }

// PixelWidth returns the cartesian width of one pixel column.
func (c *CartesianCanvas) PixelWidth() float64 {
	return pixelSize(c.Bounds().Width(), c.Width())
}

// PixelHeight returns the cartesian height of one pixel row.
func (c *CartesianCanvas) PixelHeight() float64 {
	return pixelSize(c.Bounds().Height(), c.Height())
}

func pixelSize(span float64, pixels int) float64 {
	if pixels <= 1 {
		return span
	}
	return span / float64(pixels-1)
}

// ToPixel maps a cartesian point to pixel coordinates within b.
func (c *CartesianCanvas) ToPixel(b Bounds, x, y float64) (px, py int) {
	px = int(math.Round((x - b.MinX) / pixelSize(b.Width(), c.Width())))
	py = int(math.Round((b.MaxY - y) / pixelSize(b.Height(), c.Height())))
	return px, py
}

// FromPixel maps pixel coordinates to the cartesian point within b.
func (c *CartesianCanvas) FromPixel(b Bounds, px, py int) (x, y float64) {
	x = b.MinX + float64(px)*pixelSize(b.Width(), c.Width())
	y = b.MaxY - float64(py)*pixelSize(b.Height(), c.Height())
	return x, y
}

// DrawPoint draws a cartesian point with the current bounds.
func (c *CartesianCanvas) DrawPoint(x, y float64, col ColorFloat) {
	px, py := c.ToPixel(c.Bounds(), x, y)
	c.Canvas.DrawPoint(px, py, col)
}

// ZoomTo shows the rectangle spanned by two corners, widened on one axis
// so the aspect ratio of the current view is kept.
func (c *CartesianCanvas) ZoomTo(x1, y1, x2, y2 float64) {
	cx, cy := (x1+x2)/2, (y1+y2)/2
	w, h := math.Abs(x2-x1), math.Abs(y2-y1)
	if w == 0 || h == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	aspect := c.bounds.Width() / c.bounds.Height()
	if w/h < aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	c.bounds = Bounds{MinX: cx - w/2, MinY: cy - h/2, MaxX: cx + w/2, MaxY: cy + h/2}
}

// ZoomAt scales the view about (x, y). scale < 1 zooms in.
func (c *CartesianCanvas) ZoomAt(x, y, scale float64) {
	if scale <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.bounds
	c.bounds = Bounds{
		MinX: x - (x-b.MinX)*scale,
		MinY: y - (y-b.MinY)*scale,
		MaxX: x + (b.MaxX-x)*scale,
		MaxY: y + (b.MaxY-y)*scale,
	}
}

// ResetZoom restores the bounds the canvas was created with.
func (c *CartesianCanvas) ResetZoom() {
	c.mu.Lock()
	c.bounds = c.initial
	c.mu.Unlock()
}
