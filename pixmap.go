package tsgl

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is the rectangular RGBA8 surface behind a Canvas.
//
// Writes to distinct pixels touch distinct bytes, so SetPixel may be called
// from several goroutines at once as long as they write different
// coordinates.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, not premultiplied
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 { return p.data }

// SetPixel sets the color of a single pixel. Out of range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c ColorFloat) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) ColorFloat {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return ColorFloat{
		R: float32(p.data[i+0]) / 255,
		G: float32(p.data[i+1]) / 255,
		B: float32(p.data[i+2]) / 255,
		A: float32(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c ColorFloat) {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = nc.R, nc.G, nc.B, nc.A
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
