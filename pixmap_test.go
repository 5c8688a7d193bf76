package tsgl

import (
	"image/color"
	"testing"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	p := NewPixmap(4, 3)
	if p.Width() != 4 || p.Height() != 3 || len(p.Data()) != 48 {
		t.Fatalf("NewPixmap(4, 3) = %dx%d, %d bytes", p.Width(), p.Height(), len(p.Data()))
	}
	p.SetPixel(1, 2, RGBA(1, 0.5, 0, 0.5))
	if got := p.GetPixel(1, 2).Color(); got != (color.NRGBA{255, 128, 0, 128}) {
		t.Errorf("GetPixel(1, 2) = %v", got)
	}
	// Stored straight, not premultiplied.
	if d := p.Data()[(2*4+1)*4:]; d[0] != 255 || d[3] != 128 {
		t.Errorf("raw pixel = %v", d[:4])
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	p := NewPixmap(2, 2)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		p.SetPixel(xy[0], xy[1], Red)
		if got := p.GetPixel(xy[0], xy[1]); got != Transparent {
			t.Errorf("GetPixel(%v) = %v, want transparent", xy, got)
		}
		if got := p.At(xy[0], xy[1]); got != (color.NRGBA{}) {
			t.Errorf("At(%v) = %v", xy, got)
		}
	}
	for _, b := range p.Data() {
		if b != 0 {
			t.Fatal("out of range SetPixel wrote data")
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	p := NewPixmap(3, 3)
	p.Clear(Blue)
	for y := range 3 {
		for x := range 3 {
			if got := p.GetPixel(x, y); got != Blue {
				t.Fatalf("GetPixel(%d, %d) = %v, want blue", x, y, got)
			}
		}
	}
}

func TestPixmap_DrawImage(t *testing.T) {
	p := NewPixmap(2, 2)
	p.Set(1, 1, color.RGBA{0, 255, 0, 255})
	if got := p.At(1, 1); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("At(1, 1) = %v", got)
	}
	if p.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	if img := p.ToImage(); img.NRGBAAt(1, 1) != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("ToImage() pixel = %v", img.NRGBAAt(1, 1))
	}
}
