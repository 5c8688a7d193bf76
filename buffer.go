package tsgl

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Buffer strides, in float32 components per vertex.
const (
	PositionStride = 3 // x, y, z
	ColorStride    = 4 // r, g, b, a
)

// Mesh is one vertex stream of a shape: positions and colors stored as two
// flat float32 arrays (struct of arrays) plus the primitive topology used
// to assemble them.
//
// Vertex i occupies Positions[i*3 : i*3+3] and Colors[i*4 : i*4+4].
// A Mesh is allocated once with its exact vertex count and never grows.
type Mesh struct {
	Topology  gputypes.PrimitiveTopology
	Positions []float32
	Colors    []float32

	// cursor is the next vertex written by add. Construction only.
	cursor int
}

// newMesh allocates a mesh holding exactly n vertices.
func newMesh(topology gputypes.PrimitiveTopology, n int) Mesh {
	return Mesh{
		Topology:  topology,
		Positions: make([]float32, n*PositionStride),
		Colors:    make([]float32, n*ColorStride),
	}
}

// VertexCount returns the number of vertices the mesh holds.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / PositionStride
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) (x, y, z float32) {
	p := m.Positions[i*PositionStride:]
	return p[0], p[1], p[2]
}

// Color returns the color of vertex i.
func (m *Mesh) Color(i int) ColorFloat {
	c := m.Colors[i*ColorStride:]
	return ColorFloat{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// add writes the next vertex at the cursor. Writing past the analytically
// computed vertex count is a programming error in a mesh generator.
func (m *Mesh) add(x, y, z float32, c ColorFloat) {
	if m.cursor >= m.VertexCount() {
		panic(fmt.Sprintf("tsgl: mesh overflow: %d vertices allocated", m.VertexCount()))
	}
	m.setPosition(m.cursor, x, y, z)
	m.setColor(m.cursor, c)
	m.cursor++
}

func (m *Mesh) setPosition(i int, x, y, z float32) {
	p := m.Positions[i*PositionStride:]
	p[0], p[1], p[2] = x, y, z
}

func (m *Mesh) setColor(i int, c ColorFloat) {
	d := m.Colors[i*ColorStride:]
	d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
}

// complete reports whether every allocated vertex has been written.
func (m *Mesh) complete() bool {
	return m.cursor == m.VertexCount()
}

func (m *Mesh) clone() Mesh {
	return Mesh{
		Topology:  m.Topology,
		Positions: append([]float32(nil), m.Positions...),
		Colors:    append([]float32(nil), m.Colors...),
		cursor:    m.cursor,
	}
}

// GeometryBuffer holds the fill mesh of a shape and, for shapes that
// support it, a separate outline mesh with its own topology.
type GeometryBuffer struct {
	Fill    Mesh
	Outline Mesh
}

// HasOutline reports whether the buffer carries outline vertices.
func (b *GeometryBuffer) HasOutline() bool {
	return b.Outline.VertexCount() > 0
}

// Clone returns a deep copy of the buffer.
func (b *GeometryBuffer) Clone() *GeometryBuffer {
	return &GeometryBuffer{
		Fill:    b.Fill.clone(),
		Outline: b.Outline.clone(),
	}
}

// VertexLayouts describes a Mesh as two GPU vertex buffers: positions at
// shader location 0 and colors at shader location 1.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: PositionStride * 4,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		},
		{
			ArrayStride: ColorStride * 4,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1}, // color
			},
		},
	}
}
