package tsgl

import (
	"image/color"

	"github.com/chewxy/math32"
)

// ColorFloat represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are float32 so they can
// be stored in vertex color buffers without conversion.
type ColorFloat struct {
	R, G, B, A float32
}

// Color converts the color to the standard color.Color interface.
func (c ColorFloat) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to a ColorFloat.
func FromColor(c color.Color) ColorFloat {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorFloat{
		R: float32(nc.R) / 255,
		G: float32(nc.G) / 255,
		B: float32(nc.B) / 255,
		A: float32(nc.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) ColorFloat {
	return ColorFloat{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) ColorFloat {
	return ColorFloat{R: r, G: g, B: b, A: a}
}

// ColorInt creates a color from integer channels in [0, 255].
// Out of range channels are clamped.
func ColorInt(r, g, b, a int) ColorFloat {
	return ColorFloat{
		R: float32(clampInt255(r)) / 255,
		G: float32(clampInt255(g)) / 255,
		B: float32(clampInt255(b)) / 255,
		A: float32(clampInt255(a)) / 255,
	}
}

// ColorHSV creates a color from hue, saturation, value and alpha.
// h is hue in [0, 6), one unit per color sector; s, v and a are in [0, 1].
func ColorHSV(h, s, v, a float32) ColorFloat {
	h = math32.Mod(h, 6)
	if h < 0 {
		h += 6
	}
	s = clamp01(s)
	v = clamp01(v)

	i := math32.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return RGBA(v, t, p, a)
	case 1:
		return RGBA(q, v, p, a)
	case 2:
		return RGBA(p, v, t, a)
	case 3:
		return RGBA(p, q, v, a)
	case 4:
		return RGBA(t, p, v, a)
	default:
		return RGBA(v, p, q, a)
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) ColorFloat {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return ColorInt(int(r), int(g), int(b), int(a))
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Shade multiplies the RGB channels by f, keeping alpha, and clamps the
// result to [0, 1].
func (c ColorFloat) Shade(f float32) ColorFloat {
	return ColorFloat{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c ColorFloat) Lerp(other ColorFloat, t float32) ColorFloat {
	return ColorFloat{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Contrast returns black or white, whichever reads better on top of c.
func (c ColorFloat) Contrast() ColorFloat {
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.5 {
		return Black
	}
	return White
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampInt255(x int) int {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB(0.75, 0.75, 0.75)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
