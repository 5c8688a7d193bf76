package mandelbrot

import (
	"math"

	"github.com/gogpu/tsgl"
)

// DefaultDepth is the iteration limit used when none is given.
const DefaultDepth = 255

// Escape iterates z = z*z + c starting from z = c until |z| >= 2 or depth
// iterations have run. It returns the iteration count and the final z.
func Escape(c complex128, depth int) (int, complex128) {
	z := c
	n := 0
	for n < depth {
		re, im := real(z), imag(z)
		if re*re+im*im >= 4 {
			break
		}
		n++
		z = z*z + c
	}
	return n, z
}

// Colorer maps an escape result to a color.
type Colorer func(iterations, depth int, z complex128) tsgl.ColorFloat

// Banded colors points inside the set black and escaped points by hue in
// proportion to their iteration count.
func Banded(iterations, depth int, _ complex128) tsgl.ColorFloat {
	if iterations >= depth {
		return tsgl.Black
	}
	f := float32(iterations) / float32(depth)
	return tsgl.ColorHSV(f*6, 1, 1, 1)
}

// Gradient colors escaped points with the smooth iteration count
// mu = n + 1 - log(log|z|)/log 2, which removes the visible bands of
// Banded.
func Gradient(iterations, depth int, z complex128) tsgl.ColorFloat {
	if iterations >= depth-1 {
		return tsgl.Black
	}
	abs := math.Hypot(real(z), imag(z))
	mu := float64(iterations) + 1 - math.Log(math.Log(abs))/math.Ln2
	if mu < 0 || math.IsNaN(mu) {
		return tsgl.ColorHSV(0, 1, 0.6, 1)
	}
	return tsgl.ColorHSV(float32(mu/float64(depth))*6, 1, 0.6, 1)
}
