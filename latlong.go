package tsgl

import "github.com/chewxy/math32"

// Tessellation of sphere-like meshes.
const (
	VerticalSections   = 36 // longitude steps, a in [0, VerticalSections)
	HorizontalSections = 20 // latitude bands, b in [0, HorizontalSections)
)

// latLong is the parametric surface shared by Sphere and Ellipsoid.
//
// For longitude index a and latitude index b the unit point is
//
//	theta = a*pi / (vs/2), phi = b*pi / hs
//	x = sin(theta)*sin(phi), y = cos(theta), z = cos(phi)*sin(theta)
//
// scaled per axis by radius. The fill mesh is a triangle strip emitting
// (a, b) then (a, b+1) for every pair, b-major, so fill vertex i belongs to
// pair k = i/2 with a = k%vs, b = k/vs + i%2.
type latLong struct {
	radius [3]float32
	vs, hs int
	pole   bool // a final (0, r, 0) vertex closes the fill and outline
}

// unit returns the unit-surface point for indices a and b.
func (l *latLong) unit(a, b int) [3]float32 {
	theta := float32(a) * math32.Pi / (float32(l.vs) / 2)
	phi := float32(b) * math32.Pi / float32(l.hs)
	st := math32.Sin(theta)
	return [3]float32{st * math32.Sin(phi), math32.Cos(theta), math32.Cos(phi) * st}
}

// point returns the scaled surface point for indices a and b.
func (l *latLong) point(a, b int) (x, y, z float32) {
	u := l.unit(a, b)
	return l.radius[0] * u[0], l.radius[1] * u[1], l.radius[2] * u[2]
}

// stripVertices is the number of fill vertices before the optional pole.
func (l *latLong) stripVertices() int {
	return l.vs * l.hs * 2
}

// fillVertices is the exact fill vertex count.
func (l *latLong) fillVertices() int {
	if l.pole {
		return l.stripVertices() + 1
	}
	return l.stripVertices()
}

// outlineVertices is the exact outline vertex count: one line per
// horizontal ring segment, one per meridian segment, plus the pole.
func (l *latLong) outlineVertices() int {
	return l.vs*l.hs*4 + 1
}

// fillIndex returns the surface indices of fill vertex i. ok is false for
// the pole vertex.
func (l *latLong) fillIndex(i int) (a, b int, ok bool) {
	if i >= l.stripVertices() {
		return 0, 0, false
	}
	k := i / 2
	return k % l.vs, k/l.vs + i%2, true
}

// outlineIndex returns the surface indices of outline vertex i. The first
// half holds ring segments (a,b)-(a,b+1), the second half meridian
// segments (a,b)-(a+1,b). ok is false for the pole vertex.
func (l *latLong) outlineIndex(i int) (a, b int, ok bool) {
	half := l.vs * l.hs * 2
	switch {
	case i < half:
		k := i / 2
		return k % l.vs, k/l.vs + i%2, true
	case i < 2*half:
		j := i - half
		k := j / 2
		return k%l.vs + j%2, k / l.vs, true
	default:
		return 0, 0, false
	}
}

// fillBand returns the latitude band whose color vertex i carries.
// The pole vertex reports band hs.
func (l *latLong) fillBand(i int) int {
	if i >= l.stripVertices() {
		return l.hs
	}
	return (i / 2) / l.vs
}

// generate writes the fill mesh and, with pole set, the outline mesh.
// color returns the fill color for surface index a in band; band == hs
// with a == 0 is queried for the pole.
func (l *latLong) generate(s *shape, color func(a, band int) ColorFloat) {
	for b := 0; b < l.hs; b++ {
		for a := 0; a < l.vs; a++ {
			c := color(a, b)
			x, y, z := l.point(a, b)
			s.addVertex(x, y, z, c)
			x, y, z = l.point(a, b+1)
			s.addVertex(x, y, z, c)
		}
	}
	if !l.pole {
		return
	}
	s.addVertex(0, l.radius[1], 0, color(0, l.hs))

	for b := 0; b < l.hs; b++ {
		for a := 0; a < l.vs; a++ {
			x, y, z := l.point(a, b)
			s.addOutlineVertex(x, y, z, Gray)
			x, y, z = l.point(a, b+1)
			s.addOutlineVertex(x, y, z, Gray)
		}
	}
	for b := 0; b < l.hs; b++ {
		for a := 0; a < l.vs; a++ {
			x, y, z := l.point(a, b)
			s.addOutlineVertex(x, y, z, Gray)
			x, y, z = l.point(a+1, b)
			s.addOutlineVertex(x, y, z, Gray)
		}
	}
	s.addOutlineVertex(0, l.radius[1], 0, Gray)
}

// rescale sets the radius along axis to r by multiplying every stored
// component on that axis by r / previous radius.
func (l *latLong) rescale(buf *GeometryBuffer, axis Axis, r float32) {
	ratio := r / l.radius[axis]
	l.radius[axis] = r
	scaleAxis(&buf.Fill, axis, ratio)
	scaleAxis(&buf.Outline, axis, ratio)
}

func scaleAxis(m *Mesh, axis Axis, ratio float32) {
	for i := int(axis); i < len(m.Positions); i += PositionStride {
		m.Positions[i] *= ratio
	}
}

// recompute sets the radius along axis to r and rewrites every component
// on that axis from the parametric formula.
func (l *latLong) recompute(buf *GeometryBuffer, axis Axis, r float32) {
	l.radius[axis] = r
	poleValue := float32(0)
	if axis == AxisY {
		poleValue = r
	}

	fill := &buf.Fill
	for i := 0; i < fill.VertexCount(); i++ {
		v := poleValue
		if a, b, ok := l.fillIndex(i); ok {
			v = r * l.unit(a, b)[axis]
		}
		fill.Positions[i*PositionStride+int(axis)] = v
	}

	outline := &buf.Outline
	for i := 0; i < outline.VertexCount(); i++ {
		v := poleValue
		if a, b, ok := l.outlineIndex(i); ok {
			v = r * l.unit(a, b)[axis]
		}
		outline.Positions[i*PositionStride+int(axis)] = v
	}
}

// paint rewrites the fill colors only. Position data is untouched.
func (l *latLong) paint(buf *GeometryBuffer, color func(a, band int) ColorFloat) {
	fill := &buf.Fill
	for i := 0; i < fill.VertexCount(); i++ {
		a, _, ok := l.fillIndex(i)
		if !ok {
			a = 0
		}
		fill.setColor(i, color(a, l.fillBand(i)))
	}
}

// bandColors appends the color of the first vertex of every band to dst.
func (l *latLong) bandColors(buf *GeometryBuffer, dst []ColorFloat) []ColorFloat {
	for b := 0; b < l.hs; b++ {
		dst = append(dst, buf.Fill.Color(b*l.vs*2))
	}
	return dst
}
