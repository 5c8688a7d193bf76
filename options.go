package tsgl

import "time"

// DefaultFrame is the default frame interval of a Canvas (60 frames per
// second).
const DefaultFrame = time.Second / 60

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	can := tsgl.NewCanvas(800, 600,
//	    tsgl.WithTitle("Mandelbrot"),
//	    tsgl.WithFrame(tsgl.DefaultFrame/2),
//	    tsgl.WithBackground(tsgl.Gray))
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	title      string
	frame      time.Duration
	background ColorFloat
	queue      int
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		frame:      DefaultFrame,
		background: White,
		queue:      64,
	}
}

// WithTitle sets the canvas title, used in log records.
func WithTitle(title string) CanvasOption {
	return func(o *canvasOptions) {
		o.title = title
	}
}

// WithFrame sets the interval between frame ticks. Non-positive values
// keep the default.
func WithFrame(d time.Duration) CanvasOption {
	return func(o *canvasOptions) {
		if d > 0 {
			o.frame = d
		}
	}
}

// WithBackground sets the color Reset and Render clear to.
func WithBackground(c ColorFloat) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithEventQueue sets how many posted input events may wait for HandleIO
// before Post blocks.
func WithEventQueue(n int) CanvasOption {
	return func(o *canvasOptions) {
		if n > 0 {
			o.queue = n
		}
	}
}
