package tsgl

import "github.com/go-gl/mathgl/mgl32"

// Transform places a shape in the world: a center point and an orientation
// given as yaw, pitch and roll in degrees. Yaw turns about the Y axis,
// pitch about the X axis and roll about the Z axis.
//
// Radii are not part of the model matrix: mesh generators bake them into
// the position buffer, so the render consumer only translates and rotates.
type Transform struct {
	X, Y, Z          float32
	Yaw, Pitch, Roll float32
}

// Matrix returns the model matrix translate * yaw * pitch * roll.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.X, t.Y, t.Z)
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Yaw)))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Pitch)))
	return m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Roll)))
}

// Apply maps a local-space point to world space.
func (t Transform) Apply(x, y, z float32) (wx, wy, wz float32) {
	v := t.Matrix().Mul4x1(mgl32.Vec4{x, y, z, 1})
	return v[0], v[1], v[2]
}
