package tsgl

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

func mustRectangle(t *testing.T, w, h float32, c ColorFloat) *Rectangle {
	t.Helper()
	r, err := NewRectangle(0, 0, 0, w, h, 0, 0, 0, c)
	if err != nil {
		t.Fatalf("NewRectangle(%v, %v) = %v", w, h, err)
	}
	return r
}

func TestRectangle_Geometry(t *testing.T) {
	r := mustRectangle(t, 4, 2, Blue)
	buf := r.Buffer()
	if buf.Fill.Topology != gputypes.PrimitiveTopologyTriangleStrip || buf.Fill.VertexCount() != RectangleCorners {
		t.Errorf("fill = %v with %d vertices", buf.Fill.Topology, buf.Fill.VertexCount())
	}
	if buf.Outline.Topology != gputypes.PrimitiveTopologyLineStrip || buf.Outline.VertexCount() != 5 {
		t.Errorf("outline = %v with %d vertices", buf.Outline.Topology, buf.Outline.VertexCount())
	}
	want := [][3]float32{{-2, 1, 0}, {-2, -1, 0}, {2, 1, 0}, {2, -1, 0}}
	for i, w := range want {
		if x, y, z := buf.Fill.Position(i); x != w[0] || y != w[1] || z != w[2] {
			t.Errorf("corner %d = (%v, %v, %v), want %v", i, x, y, z, w)
		}
	}
	x0, y0, _ := buf.Outline.Position(0)
	x4, y4, _ := buf.Outline.Position(4)
	if x0 != x4 || y0 != y4 {
		t.Error("outline is not closed")
	}
	if c := buf.Outline.Color(2); c != Black {
		t.Errorf("outline color = %v, want black", c)
	}
}

func TestRectangle_Resize(t *testing.T) {
	r := mustRectangle(t, 4, 2, Blue)
	if err := r.SetWidth(8); err != nil {
		t.Fatal(err)
	}
	if x, _, _ := r.Buffer().Fill.Position(3); x != 4 {
		t.Errorf("corner 3 x = %v after SetWidth(8), want 4", x)
	}
	if err := r.ChangeHeightBy(4); err != nil {
		t.Fatal(err)
	}
	if _, y, _ := r.Buffer().Outline.Position(1); y != -3 {
		t.Errorf("outline 1 y = %v after ChangeHeightBy(4), want -3", y)
	}
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("size = %v x %v, want 8 x 6", r.Width(), r.Height())
	}

	captureLog(t)
	for _, err := range []error{r.SetWidth(0), r.SetHeight(-1), r.ChangeWidthBy(-8), r.ChangeHeightBy(-10),
		r.SetWidth(math32.NaN()), r.ChangeHeightBy(math32.NaN()), r.SetHeight(math32.Inf(1))} {
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("invalid resize = %v, want ErrInvalidRadius", err)
		}
	}
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("size = %v x %v after rejected resizes, want 8 x 6", r.Width(), r.Height())
	}
	if err := r.ChangeWidthBy(-2); err != nil || r.Width() != 6 {
		t.Errorf("ChangeWidthBy(-2) = %v, Width() = %v", err, r.Width())
	}
}

func TestRectangle_Mutate(t *testing.T) {
	r := mustRectangle(t, 1, 1, Blue)
	if err := r.Mutate(AxisX, 3); err != nil || r.Width() != 3 {
		t.Errorf("Mutate(AxisX, 3) = %v, Width() = %v", err, r.Width())
	}
	if err := r.Mutate(AxisY, 2); err != nil || r.Height() != 2 {
		t.Errorf("Mutate(AxisY, 2) = %v, Height() = %v", err, r.Height())
	}
	if err := r.Mutate(AxisZ, 2); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Mutate(AxisZ) = %v, want ErrInvalidAxis", err)
	}
}

func TestRectangle_Colors(t *testing.T) {
	r := mustRectangle(t, 1, 1, Blue)
	r.SetColor(Red)
	for i, c := range r.FillColors(nil) {
		if c != Red {
			t.Errorf("corner %d = %v, want red", i, c)
		}
	}
	corners := []ColorFloat{Red, Green, Blue, Yellow}
	if err := r.SetColors(corners[:2]); !errors.Is(err, ErrTooFewColors) {
		t.Errorf("SetColors(2) = %v, want ErrTooFewColors", err)
	}
	if err := r.SetColors(corners); err != nil {
		t.Fatal(err)
	}
	got := r.FillColors(nil)
	for i := range corners {
		if got[i] != corners[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], corners[i])
		}
	}
	r.SetOutlineColor(White)
	if c := r.Buffer().Outline.Color(0); c != White {
		t.Errorf("outline color = %v, want white", c)
	}
	if _, err := NewRectangle(0, 0, 0, 0, 1, 0, 0, 0, Red); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("NewRectangle(width=0) = %v", err)
	}
}
