package tsgl

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Ellipsoid is a latitude/longitude mesh with three independent radii.
// It has no outline mesh.
//
// The fill mesh is a triangle strip of VerticalSections*HorizontalSections*2
// vertices. All methods are safe for concurrent use.
type Ellipsoid struct {
	shape
	geom latLong
}

// NewEllipsoid creates an ellipsoid centered at (x, y, z) with the given
// radii and orientation, filled uniformly with c.
//
// Any non-positive radius returns ErrInvalidRadius.
func NewEllipsoid(x, y, z, xRadius, yRadius, zRadius, yaw, pitch, roll float32, c ColorFloat) (*Ellipsoid, error) {
	e, err := newEllipsoid(x, y, z, xRadius, yRadius, zRadius, yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	e.geom.generate(&e.shape, uniformColor(c))
	return e, nil
}

// NewEllipsoidColors creates an ellipsoid with one color per latitude band.
// colors must hold at least HorizontalSections entries.
func NewEllipsoidColors(x, y, z, xRadius, yRadius, zRadius, yaw, pitch, roll float32, colors []ColorFloat) (*Ellipsoid, error) {
	if len(colors) < HorizontalSections {
		return nil, tooFewColors("ellipsoid", len(colors), HorizontalSections)
	}
	e, err := newEllipsoid(x, y, z, xRadius, yRadius, zRadius, yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	e.geom.generate(&e.shape, bandColor(colors))
	return e, nil
}

func newEllipsoid(x, y, z, xRadius, yRadius, zRadius, yaw, pitch, roll float32) (*Ellipsoid, error) {
	for _, r := range [...]struct {
		name string
		v    float32
	}{{"x radius", xRadius}, {"y radius", yRadius}, {"z radius", zRadius}} {
		if !positive(r.v) {
			return nil, invalidSize("ellipsoid", r.name, r.v)
		}
	}
	e := &Ellipsoid{
		shape: newShape(x, y, z, yaw, pitch, roll),
		geom: latLong{
			radius: [3]float32{xRadius, yRadius, zRadius},
			vs:     VerticalSections,
			hs:     HorizontalSections,
		},
	}
	e.allocate(gputypes.PrimitiveTopologyTriangleStrip, e.geom.fillVertices(),
		gputypes.PrimitiveTopologyLineList, 0)
	return e, nil
}

func uniformColor(c ColorFloat) func(a, band int) ColorFloat {
	return func(int, int) ColorFloat { return c }
}

// XRadius returns the radius along the x axis.
func (e *Ellipsoid) XRadius() float32 { return e.radius(AxisX) }

// YRadius returns the radius along the y axis.
func (e *Ellipsoid) YRadius() float32 { return e.radius(AxisY) }

// ZRadius returns the radius along the z axis.
func (e *Ellipsoid) ZRadius() float32 { return e.radius(AxisZ) }

// SetXRadius rescales every x component by r / XRadius().
func (e *Ellipsoid) SetXRadius(r float32) error { return e.setRadius(AxisX, r) }

// SetYRadius rescales every y component by r / YRadius().
func (e *Ellipsoid) SetYRadius(r float32) error { return e.setRadius(AxisY, r) }

// SetZRadius rescales every z component by r / ZRadius().
func (e *Ellipsoid) SetZRadius(r float32) error { return e.setRadius(AxisZ, r) }

// ChangeXRadiusBy adds delta to the x radius and recomputes x components.
func (e *Ellipsoid) ChangeXRadiusBy(delta float32) error { return e.changeRadiusBy(AxisX, delta) }

// ChangeYRadiusBy adds delta to the y radius and recomputes y components.
func (e *Ellipsoid) ChangeYRadiusBy(delta float32) error { return e.changeRadiusBy(AxisY, delta) }

// ChangeZRadiusBy adds delta to the z radius and recomputes z components.
func (e *Ellipsoid) ChangeZRadiusBy(delta float32) error { return e.changeRadiusBy(AxisZ, delta) }

// Mutate sets the radius along axis.
func (e *Ellipsoid) Mutate(axis Axis, value float32) error {
	if !axis.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidAxis, axis)
	}
	return e.setRadius(axis, value)
}

func (e *Ellipsoid) radius(axis Axis) float32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.geom.radius[axis]
}

func (e *Ellipsoid) setRadius(axis Axis, r float32) error {
	if !positive(r) {
		return invalidSize("ellipsoid", axis.String()+" radius", r)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.geom.rescale(&e.buf, axis, r)
	return nil
}

func (e *Ellipsoid) changeRadiusBy(axis Axis, delta float32) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.geom.radius[axis] + delta
	if !positive(r) {
		return invalidSize("ellipsoid", axis.String()+" radius", r)
	}
	e.geom.recompute(&e.buf, axis, r)
	return nil
}

// Scale returns the three radii.
func (e *Ellipsoid) Scale() (sx, sy, sz float32) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.geom.radius[0], e.geom.radius[1], e.geom.radius[2]
}

// SetColor recolors every fill vertex with c.
func (e *Ellipsoid) SetColor(c ColorFloat) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.geom.paint(&e.buf, uniformColor(c))
}

// SetColors recolors the fill with one color per band. A slice shorter
// than HorizontalSections returns ErrTooFewColors.
func (e *Ellipsoid) SetColors(colors []ColorFloat) error {
	if len(colors) < HorizontalSections {
		return tooFewColors("ellipsoid", len(colors), HorizontalSections)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.geom.paint(&e.buf, bandColor(colors))
	return nil
}

// Colors appends the color of each latitude band to dst.
func (e *Ellipsoid) Colors(dst []ColorFloat) []ColorFloat {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.geom.bandColors(&e.buf, dst)
}
