package tsgl

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/tsgl/internal/cache"
)

// defaultFont parses the embedded Go Regular font once.
var defaultFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// faces holds one face per point size. opentype faces keep scratch
// buffers, so every use goes through faceMu.
var (
	faceMu sync.Mutex
	faces  = cache.New(16, func(_ float64, f font.Face) { _ = f.Close() })
)

// withFace runs fn with the cached face for size.
func withFace(size float64, fn func(font.Face)) error {
	faceMu.Lock()
	defer faceMu.Unlock()
	face, err := faces.GetOrCreate(size, func() (font.Face, error) {
		f, err := defaultFont()
		if err != nil {
			return nil, fmt.Errorf("tsgl: parse font: %w", err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("tsgl: create face: %w", err)
		}
		return face, nil
	})
	if err != nil {
		return err
	}
	fn(face)
	return nil
}

// DrawText draws s with its baseline origin at pixel (x, y) using the
// embedded Go Regular face at the given size in points.
//
// DrawText writes many pixels and must not overlap concurrent DrawPoint
// calls on the same area.
func (c *Canvas) DrawText(x, y int, s string, size float64, col ColorFloat) error {
	if s == "" {
		return nil
	}
	return withFace(size, func(face font.Face) {
		d := &font.Drawer{
			Dst:  c.pix,
			Src:  image.NewUniform(col.Color()),
			Face: face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(s)
	})
}

// MeasureText returns the advance width in pixels of s at size points.
func MeasureText(s string, size float64) (int, error) {
	var w int
	err := withFace(size, func(face font.Face) {
		w = font.MeasureString(face, s).Ceil()
	})
	return w, err
}
