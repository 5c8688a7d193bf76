package tsgl

import (
	"image/color"
	"testing"
)

func TestColorFloat_Color(t *testing.T) {
	tests := []struct {
		name string
		in   ColorFloat
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"half red", RGBA(0.5, 0, 0, 0.5), color.NRGBA{128, 0, 0, 128}},
		{"clamped", RGBA(2, -1, 0, 1), color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor_Roundtrip(t *testing.T) {
	in := color.NRGBA{R: 10, G: 200, B: 33, A: 255}
	if got := FromColor(in).Color(); got != in {
		t.Errorf("FromColor(%v).Color() = %v", in, got)
	}
}

func TestColorInt(t *testing.T) {
	c := ColorInt(255, 0, 300, -2)
	if c != (ColorFloat{R: 1, G: 0, B: 1, A: 0}) {
		t.Errorf("ColorInt(255, 0, 300, -2) = %v", c)
	}
	if got := ColorInt(51, 102, 153, 255); got.R != 0.2 || got.A != 1 {
		t.Errorf("ColorInt(51, ...) = %v", got)
	}
}

func TestColorHSV(t *testing.T) {
	tests := []struct {
		h    float32
		want ColorFloat
	}{
		{0, Red},
		{2, Green},
		{4, Blue},
		{6, Red},
		{-2, Blue},
		{1, Yellow},
		{3, Cyan},
		{5, Magenta},
	}
	for _, tt := range tests {
		if got := ColorHSV(tt.h, 1, 1, 1); got != tt.want {
			t.Errorf("ColorHSV(%v, 1, 1, 1) = %v, want %v", tt.h, got, tt.want)
		}
	}
	if got := ColorHSV(3, 0, 0.5, 0.25); got != RGBA(0.5, 0.5, 0.5, 0.25) {
		t.Errorf("ColorHSV with zero saturation = %v, want gray", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"0f0", color.NRGBA{0, 255, 0, 255}},
		{"0000ff80", color.NRGBA{0, 0, 255, 128}},
		{"#fff8", color.NRGBA{255, 255, 255, 136}},
	}
	for _, tt := range tests {
		if got := Hex(tt.in).Color(); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	c := RGBA(0.8, 0.4, 1, 0.5)
	if got := c.Shade(0.5); got != RGBA(0.4, 0.2, 0.5, 0.5) {
		t.Errorf("Shade(0.5) = %v", got)
	}
	if got := c.Shade(1); got != c {
		t.Errorf("Shade(1) = %v, want %v", got, c)
	}
	if got := c.Shade(3); got.R != 1 || got.B != 1 {
		t.Errorf("Shade(3) = %v, want clamped", got)
	}
}

func TestContrast(t *testing.T) {
	if White.Contrast() != Black {
		t.Error("White.Contrast() != Black")
	}
	if Blue.Contrast() != White {
		t.Error("Blue.Contrast() != White")
	}
}

func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0.5); got != RGB(0.5, 0.5, 0.5) {
		t.Errorf("Black.Lerp(White, 0.5) = %v", got)
	}
}
