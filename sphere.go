package tsgl

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// Sphere is a latitude/longitude sphere mesh with a gray wireframe outline.
//
// The fill mesh is a triangle strip of VerticalSections*HorizontalSections*2
// vertices plus one pole vertex. The outline is a line list of
// VerticalSections*HorizontalSections*4 vertices plus the pole.
//
// All methods are safe for concurrent use.
type Sphere struct {
	shape
	geom  latLong
	alpha float32
}

// NewSphere creates a sphere centered at (x, y, z) with the given radius
// and orientation, filled with c. Every vertex is darkened by its
// longitude so the mesh reads as shaded: channel * (1 - sin(a/vs*pi)/2).
//
// A non-positive radius returns ErrInvalidRadius.
func NewSphere(x, y, z, radius, yaw, pitch, roll float32, c ColorFloat) (*Sphere, error) {
	s, err := newSphere(x, y, z, radius, yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	s.alpha = c.A
	s.geom.generate(&s.shape, shadedColor(c, s.geom.vs, s.geom.hs))
	return s, nil
}

// NewSphereColors creates a sphere with one color per latitude band.
// colors must hold at least HorizontalSections+1 entries; the last one
// colors the pole vertex.
func NewSphereColors(x, y, z, radius, yaw, pitch, roll float32, colors []ColorFloat) (*Sphere, error) {
	if len(colors) < HorizontalSections+1 {
		return nil, tooFewColors("sphere", len(colors), HorizontalSections+1)
	}
	s, err := newSphere(x, y, z, radius, yaw, pitch, roll)
	if err != nil {
		return nil, err
	}
	s.geom.generate(&s.shape, bandColor(colors))
	s.alpha = s.meanAlpha()
	return s, nil
}

func newSphere(x, y, z, radius, yaw, pitch, roll float32) (*Sphere, error) {
	if !positive(radius) {
		return nil, invalidSize("sphere", "radius", radius)
	}
	s := &Sphere{
		shape: newShape(x, y, z, yaw, pitch, roll),
		geom: latLong{
			radius: [3]float32{radius, radius, radius},
			vs:     VerticalSections,
			hs:     HorizontalSections,
			pole:   true,
		},
	}
	s.allocate(gputypes.PrimitiveTopologyTriangleStrip, s.geom.fillVertices(),
		gputypes.PrimitiveTopologyLineList, s.geom.outlineVertices())
	return s, nil
}

// shadedColor darkens c by longitude index a. The pole keeps c.
func shadedColor(c ColorFloat, vs, hs int) func(a, band int) ColorFloat {
	return func(a, band int) ColorFloat {
		if band == hs {
			return c
		}
		return c.Shade(1 - math32.Sin(float32(a)/float32(vs)*math32.Pi)/2)
	}
}

// bandColor colors every vertex with the entry for its band.
func bandColor(colors []ColorFloat) func(a, band int) ColorFloat {
	return func(_, band int) ColorFloat {
		return colors[band]
	}
}

// Radius returns the sphere's radius.
func (s *Sphere) Radius() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geom.radius[0]
}

// Scale returns the per-axis radii, all equal for a sphere.
func (s *Sphere) Scale() (sx, sy, sz float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geom.radius[0], s.geom.radius[1], s.geom.radius[2]
}

// SetRadius rescales the mesh to radius r. A non-positive r returns
// ErrInvalidRadius and leaves the sphere unchanged.
func (s *Sphere) SetRadius(r float32) error {
	if !positive(r) {
		return invalidSize("sphere", "radius", r)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, axis := range [...]Axis{AxisX, AxisY, AxisZ} {
		s.geom.rescale(&s.buf, axis, r)
	}
	return nil
}

// ChangeRadiusBy adds delta to the radius and recomputes every vertex.
// It returns ErrInvalidRadius, leaving the sphere unchanged, when the
// result would not be positive.
func (s *Sphere) ChangeRadiusBy(delta float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.geom.radius[0] + delta
	if !positive(r) {
		return invalidSize("sphere", "radius", r)
	}
	for _, axis := range [...]Axis{AxisX, AxisY, AxisZ} {
		s.geom.recompute(&s.buf, axis, r)
	}
	return nil
}

// Mutate sets the radius; the axis is ignored because a sphere is uniform.
func (s *Sphere) Mutate(_ Axis, value float32) error {
	return s.SetRadius(value)
}

// SetColor recolors the fill with c, shaded by longitude as in NewSphere.
func (s *Sphere) SetColor(c ColorFloat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alpha = c.A
	s.geom.paint(&s.buf, shadedColor(c, s.geom.vs, s.geom.hs))
}

// SetColors recolors the fill with one color per band plus the pole.
// A slice shorter than HorizontalSections+1 returns ErrTooFewColors and
// leaves the colors unchanged.
func (s *Sphere) SetColors(colors []ColorFloat) error {
	if len(colors) < HorizontalSections+1 {
		return tooFewColors("sphere", len(colors), HorizontalSections+1)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geom.paint(&s.buf, bandColor(colors))
	s.alpha = s.meanAlpha()
	return nil
}

// Colors appends the color of each latitude band to dst and returns the
// extended slice.
func (s *Sphere) Colors(dst []ColorFloat) []ColorFloat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geom.bandColors(&s.buf, dst)
}

// Alpha returns the mean alpha of the fill vertices.
func (s *Sphere) Alpha() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alpha
}

// meanAlpha averages alpha over the fill. Caller holds the lock or owns s.
func (s *Sphere) meanAlpha() float32 {
	fill := &s.buf.Fill
	var sum float32
	for i := 3; i < len(fill.Colors); i += ColorStride {
		sum += fill.Colors[i]
	}
	return sum / float32(fill.VertexCount())
}
