package tsgl

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Rectangle corner order shared by the fill strip: top-left, bottom-left,
// top-right, bottom-right.
var rectCorners = [4][2]float32{{-0.5, 0.5}, {-0.5, -0.5}, {0.5, 0.5}, {0.5, -0.5}}

// rectOutline visits the corners as a closed line strip.
var rectOutline = [5]int{0, 1, 3, 2, 0}

// RectangleCorners is the number of fill vertices of a Rectangle, and the
// number of colors SetColors expects.
const RectangleCorners = 4

// Rectangle is a flat rectangle in the local XY plane: a four vertex
// triangle strip fill and a closed five vertex line strip outline.
type Rectangle struct {
	shape
	width, height float32
}

// NewRectangle creates a rectangle centered at (x, y, z).
// A non-positive width or height returns ErrInvalidRadius.
func NewRectangle(x, y, z, width, height, yaw, pitch, roll float32, c ColorFloat) (*Rectangle, error) {
	return NewRectangleColors(x, y, z, width, height, yaw, pitch, roll, []ColorFloat{c, c, c, c})
}

// NewRectangleColors creates a rectangle with one color per corner, in
// top-left, bottom-left, top-right, bottom-right order.
func NewRectangleColors(x, y, z, width, height, yaw, pitch, roll float32, colors []ColorFloat) (*Rectangle, error) {
	if !positive(width) {
		return nil, invalidSize("rectangle", "width", width)
	}
	if !positive(height) {
		return nil, invalidSize("rectangle", "height", height)
	}
	if len(colors) < RectangleCorners {
		return nil, tooFewColors("rectangle", len(colors), RectangleCorners)
	}
	r := &Rectangle{
		shape:  newShape(x, y, z, yaw, pitch, roll),
		width:  width,
		height: height,
	}
	r.allocate(gputypes.PrimitiveTopologyTriangleStrip, RectangleCorners,
		gputypes.PrimitiveTopologyLineStrip, len(rectOutline))
	for i, c := range rectCorners {
		r.addVertex(c[0]*width, c[1]*height, 0, colors[i])
	}
	for _, i := range rectOutline {
		c := rectCorners[i]
		r.addOutlineVertex(c[0]*width, c[1]*height, 0, Black)
	}
	return r, nil
}

// Width returns the rectangle's width.
func (r *Rectangle) Width() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width
}

// Height returns the rectangle's height.
func (r *Rectangle) Height() float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.height
}

// SetWidth rescales the x components to the new width.
func (r *Rectangle) SetWidth(w float32) error {
	if !positive(w) {
		return invalidSize("rectangle", "width", w)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ratio := w / r.width
	r.width = w
	scaleAxis(&r.buf.Fill, AxisX, ratio)
	scaleAxis(&r.buf.Outline, AxisX, ratio)
	return nil
}

// SetHeight rescales the y components to the new height.
func (r *Rectangle) SetHeight(h float32) error {
	if !positive(h) {
		return invalidSize("rectangle", "height", h)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ratio := h / r.height
	r.height = h
	scaleAxis(&r.buf.Fill, AxisY, ratio)
	scaleAxis(&r.buf.Outline, AxisY, ratio)
	return nil
}

// ChangeWidthBy adds delta to the width and recomputes the x components.
func (r *Rectangle) ChangeWidthBy(delta float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.width + delta
	if !positive(w) {
		return invalidSize("rectangle", "width", w)
	}
	r.width = w
	r.recompute(AxisX, w)
	return nil
}

// ChangeHeightBy adds delta to the height and recomputes the y components.
func (r *Rectangle) ChangeHeightBy(delta float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.height + delta
	if !positive(h) {
		return invalidSize("rectangle", "height", h)
	}
	r.height = h
	r.recompute(AxisY, h)
	return nil
}

func (r *Rectangle) recompute(axis Axis, size float32) {
	for i, c := range rectCorners {
		r.buf.Fill.Positions[i*PositionStride+int(axis)] = c[axis] * size
	}
	for i, ci := range rectOutline {
		r.buf.Outline.Positions[i*PositionStride+int(axis)] = rectCorners[ci][axis] * size
	}
}

// Mutate sets the width for AxisX and the height for AxisY.
// A rectangle is flat, so AxisZ returns ErrInvalidAxis.
func (r *Rectangle) Mutate(axis Axis, value float32) error {
	switch axis {
	case AxisX:
		return r.SetWidth(value)
	case AxisY:
		return r.SetHeight(value)
	default:
		return fmt.Errorf("%w: rectangle has no %v extent", ErrInvalidAxis, axis)
	}
}

// SetColor fills every corner with c.
func (r *Rectangle) SetColor(c ColorFloat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range RectangleCorners {
		r.buf.Fill.setColor(i, c)
	}
}

// SetColors sets one color per corner.
func (r *Rectangle) SetColors(colors []ColorFloat) error {
	if len(colors) < RectangleCorners {
		return tooFewColors("rectangle", len(colors), RectangleCorners)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range RectangleCorners {
		r.buf.Fill.setColor(i, colors[i])
	}
	return nil
}

// SetOutlineColor recolors the outline.
func (r *Rectangle) SetOutlineColor(c ColorFloat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.buf.Outline.VertexCount() {
		r.buf.Outline.setColor(i, c)
	}
}

// FillColors appends the four corner colors to dst.
func (r *Rectangle) FillColors(dst []ColorFloat) []ColorFloat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range RectangleCorners {
		dst = append(dst, r.buf.Fill.Color(i))
	}
	return dst
}
