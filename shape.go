package tsgl

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// Axis selects one of the three local axes of a shape.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Drawable is the capability set shared by every shape variant.
//
// Implementations guard their geometry with one lock per instance:
// Mutate is exclusive with LockedRead and with the variant's own setters.
type Drawable interface {
	// VertexCount returns the number of fill vertices.
	VertexCount() int

	// Mutate sets the size of the shape along axis to value.
	// Uniform shapes apply the value to every axis.
	Mutate(axis Axis, value float32) error

	// LockedRead calls fn with the shape's transform and geometry while
	// holding the shape's read lock. fn must not retain the buffer.
	LockedRead(fn func(t Transform, buf *GeometryBuffer))
}

// shape is the base embedded by every mesh generator. It owns the
// transform, the buffer lock and the fill/outline meshes.
type shape struct {
	mu        sync.RWMutex
	transform Transform
	buf       GeometryBuffer
	outlined  bool
	layer     int
}

func newShape(x, y, z, yaw, pitch, roll float32) shape {
	return shape{
		transform: Transform{X: x, Y: y, Z: z, Yaw: yaw, Pitch: pitch, Roll: roll},
	}
}

// allocate sizes the fill mesh and, when outlineVertices > 0, the outline
// mesh. Called once by a generator before any addVertex.
func (s *shape) allocate(fill gputypes.PrimitiveTopology, fillVertices int, outline gputypes.PrimitiveTopology, outlineVertices int) {
	s.buf.Fill = newMesh(fill, fillVertices)
	if outlineVertices > 0 {
		s.buf.Outline = newMesh(outline, outlineVertices)
	}
}

// addVertex appends a fill vertex. Construction only.
func (s *shape) addVertex(x, y, z float32, c ColorFloat) {
	s.buf.Fill.add(x, y, z, c)
}

// addOutlineVertex appends an outline vertex. Construction only.
func (s *shape) addOutlineVertex(x, y, z float32, c ColorFloat) {
	s.buf.Outline.add(x, y, z, c)
}

// VertexCount returns the number of fill vertices.
func (s *shape) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Fill.VertexCount()
}

// OutlineVertexCount returns the number of outline vertices, zero when the
// shape has no outline mesh.
func (s *shape) OutlineVertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Outline.VertexCount()
}

// LockedRead calls fn with the transform and buffer under the read lock.
func (s *shape) LockedRead(fn func(t Transform, buf *GeometryBuffer)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.transform, &s.buf)
}

// Buffer returns a deep copy of the shape's geometry.
func (s *shape) Buffer() *GeometryBuffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Clone()
}

// Transform returns the current transform.
func (s *shape) Transform() Transform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}

// SetCenter moves the shape.
func (s *shape) SetCenter(x, y, z float32) {
	s.mu.Lock()
	s.transform.X, s.transform.Y, s.transform.Z = x, y, z
	s.mu.Unlock()
}

// ChangeCenterBy moves the shape by the given deltas.
func (s *shape) ChangeCenterBy(dx, dy, dz float32) {
	s.mu.Lock()
	s.transform.X += dx
	s.transform.Y += dy
	s.transform.Z += dz
	s.mu.Unlock()
}

// SetRotation sets yaw, pitch and roll in degrees.
func (s *shape) SetRotation(yaw, pitch, roll float32) {
	s.mu.Lock()
	s.transform.Yaw, s.transform.Pitch, s.transform.Roll = yaw, pitch, roll
	s.mu.Unlock()
}

// ChangeRotationBy adds the given angles, in degrees.
func (s *shape) ChangeRotationBy(dyaw, dpitch, droll float32) {
	s.mu.Lock()
	s.transform.Yaw += dyaw
	s.transform.Pitch += dpitch
	s.transform.Roll += droll
	s.mu.Unlock()
}

// SetOutlined toggles drawing of the outline mesh. It has no effect on
// shapes without one.
func (s *shape) SetOutlined(on bool) {
	s.mu.Lock()
	s.outlined = on
	s.mu.Unlock()
}

// IsOutlined reports whether the outline mesh is drawn.
func (s *shape) IsOutlined() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outlined && s.buf.HasOutline()
}

// SetLayer sets the draw order on a canvas. Higher layers draw later.
func (s *shape) SetLayer(layer int) {
	s.mu.Lock()
	s.layer = layer
	s.mu.Unlock()
}

// Layer returns the draw order on a canvas.
func (s *shape) Layer() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layer
}

// positive reports whether v is a usable size: finite, above zero and
// not NaN.
func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}

// invalidSize logs and returns a rejected size parameter.
func invalidSize(kind, param string, v float32) error {
	Logger().Debug("tsgl: rejected non-positive size", "shape", kind, "param", param, "value", v)
	return fmt.Errorf("%w: %s %s %g", ErrInvalidRadius, kind, param, v)
}

// tooFewColors logs and returns a rejected color slice.
func tooFewColors(kind string, got, want int) error {
	Logger().Debug("tsgl: rejected short color slice", "shape", kind, "got", got, "want", want)
	return fmt.Errorf("%w: %s needs %d colors, got %d", ErrTooFewColors, kind, want, got)
}
