package tsgl

import (
	"cmp"
	"image"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/tsgl/internal/raster"
)

// Canvas is a headless drawing surface with a frame clock and an input
// queue.
//
// DrawPoint may be called from many goroutines at once provided each call
// targets a different pixel. HandleIO must be called from the goroutine
// that owns the canvas, the one that called Start, because posted input
// handlers run on it.
type Canvas struct {
	opts canvasOptions
	pix  *Pixmap

	open  atomic.Bool
	reps  atomic.Int64
	start atomic.Int64 // unix nanos of the last Start or Reset

	tickMu sync.Mutex
	tick   chan struct{} // closed and replaced on every frame

	events    chan func()
	done      chan struct{}
	closeOnce sync.Once
	startOnce sync.Once

	mu        sync.Mutex
	drawables []Drawable

	renderMu sync.Mutex
	raster   *raster.Rasterizer
}

// NewCanvas creates a width x height canvas cleared to the background
// color. The canvas is not open until Start is called.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		opts:   o,
		pix:    NewPixmap(width, height),
		tick:   make(chan struct{}),
		events: make(chan func(), o.queue),
		done:   make(chan struct{}),
	}
	c.pix.Clear(o.background)
	c.start.Store(time.Now().UnixNano())
	return c
}

// Start opens the canvas and starts the frame clock. Calling Start more
// than once has no further effect.
func (c *Canvas) Start() {
	c.startOnce.Do(func() {
		c.open.Store(true)
		c.start.Store(time.Now().UnixNano())
		go c.clock()
		Logger().Info("tsgl: canvas started", "title", c.opts.title,
			"width", c.pix.Width(), "height", c.pix.Height(), "frame", c.opts.frame)
	})
}

// clock advances the frame counter and wakes sleepers once per frame.
func (c *Canvas) clock() {
	t := time.NewTicker(c.opts.frame)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.reps.Add(1)
			c.tickMu.Lock()
			close(c.tick)
			c.tick = make(chan struct{})
			c.tickMu.Unlock()
		}
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.pix.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.pix.Height() }

// Title returns the canvas title.
func (c *Canvas) Title() string { return c.opts.title }

// Background returns the clear color.
func (c *Canvas) Background() ColorFloat { return c.opts.background }

// IsOpen reports whether the canvas has been started and not closed.
func (c *Canvas) IsOpen() bool { return c.open.Load() }

// Close closes the canvas, stops the clock and releases every sleeper.
// Close is safe to call multiple times.
func (c *Canvas) Close() {
	c.closeOnce.Do(func() {
		c.open.Store(false)
		close(c.done)
	})
}

// Done returns a channel closed by Close.
func (c *Canvas) Done() <-chan struct{} { return c.done }

// Wait blocks until the canvas is closed.
func (c *Canvas) Wait() { <-c.done }

// Sleep blocks until the next frame tick or until the canvas closes.
func (c *Canvas) Sleep() {
	c.tickMu.Lock()
	ch := c.tick
	c.tickMu.Unlock()
	select {
	case <-ch:
	case <-c.done:
	}
}

// SleepFor blocks for d or until the canvas closes.
func (c *Canvas) SleepFor(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-c.done:
	}
}

// Reps returns the number of frames elapsed since Start.
func (c *Canvas) Reps() int64 { return c.reps.Load() }

// Time returns the time elapsed since Start or the last Reset.
func (c *Canvas) Time() time.Duration {
	return time.Duration(time.Now().UnixNano() - c.start.Load())
}

// Reset clears the surface to the background color and restarts the
// timer returned by Time.
func (c *Canvas) Reset() {
	c.pix.Clear(c.opts.background)
	c.start.Store(time.Now().UnixNano())
}

// Post queues an input handler to run on the next HandleIO. It blocks
// while the queue is full and returns ErrCanvasClosed once the canvas is
// closed.
func (c *Canvas) Post(fn func()) error {
	select {
	case <-c.done:
		return ErrCanvasClosed
	default:
	}
	select {
	case c.events <- fn:
		return nil
	case <-c.done:
		return ErrCanvasClosed
	}
}

// HandleIO runs every queued input handler and returns how many ran.
// It never blocks.
func (c *Canvas) HandleIO() int {
	n := 0
	for {
		select {
		case fn := <-c.events:
			if fn != nil {
				fn()
			}
			n++
		default:
			return n
		}
	}
}

// DrawPoint sets one pixel. Safe for concurrent calls at different
// coordinates.
func (c *Canvas) DrawPoint(x, y int, col ColorFloat) {
	c.pix.SetPixel(x, y, col)
}

// Pixel returns the color of one pixel.
func (c *Canvas) Pixel(x, y int) ColorFloat {
	return c.pix.GetPixel(x, y)
}

// Pixmap returns the surface. Callers must observe the same per-pixel
// rule as DrawPoint.
func (c *Canvas) Pixmap() *Pixmap { return c.pix }

// SavePNG writes the surface to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pix.SavePNG(path)
}

// Image returns a copy of the surface.
func (c *Canvas) Image() *image.NRGBA {
	return c.pix.ToImage()
}

// Thumbnail returns the surface scaled to width x height.
func (c *Canvas) Thumbnail(width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), c.pix, c.pix.Bounds(), xdraw.Src, nil)
	return dst
}

// Add queues a drawable for Render. Adding the same drawable twice has no
// effect.
func (c *Canvas) Add(d Drawable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.drawables {
		if e == d {
			return
		}
	}
	c.drawables = append(c.drawables, d)
}

// Remove drops a drawable from the render queue.
func (c *Canvas) Remove(d Drawable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.drawables {
		if e == d {
			c.drawables = append(c.drawables[:i], c.drawables[i+1:]...)
			return
		}
	}
}

// Drawables returns the number of queued drawables.
func (c *Canvas) Drawables() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.drawables)
}

type layered interface{ Layer() int }

type outlined interface{ IsOutlined() bool }

// Render clears the surface and draws every queued drawable in layer
// order, reading each one's buffer under its own lock. Depth is tested
// within a layer; a higher layer always covers a lower one.
//
// The view is orthographic with the origin at the canvas center, y up and
// one world unit per pixel; nearer means larger world z.
func (c *Canvas) Render() {
	c.mu.Lock()
	queue := append([]Drawable(nil), c.drawables...)
	c.mu.Unlock()

	layers := make([]int, len(queue))
	for i, d := range queue {
		if l, ok := d.(layered); ok {
			layers[i] = l.Layer()
		}
	}
	idx := make([]int, len(queue))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(layers[a], layers[b]) })

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if c.raster == nil {
		c.raster = raster.New(c.pix.Width(), c.pix.Height())
	}
	c.raster.ClearDepth()
	c.pix.Clear(c.opts.background)

	plot := func(x, y int, col [4]float32) {
		c.blend(x, y, ColorFloat{R: col[0], G: col[1], B: col[2], A: col[3]})
	}
	var scratch []raster.Vertex
	for n, i := range idx {
		if n > 0 && layers[i] != layers[idx[n-1]] {
			c.raster.ClearDepth()
		}
		d := queue[i]
		drawOutline := false
		if o, ok := d.(outlined); ok {
			drawOutline = o.IsOutlined()
		}
		d.LockedRead(func(t Transform, buf *GeometryBuffer) {
			m := t.Matrix()
			scratch = c.project(scratch[:0], &buf.Fill, m, 0)
			c.draw(buf.Fill.Topology, scratch, plot)
			if drawOutline {
				scratch = c.project(scratch[:0], &buf.Outline, m, outlineBias)
				c.draw(buf.Outline.Topology, scratch, plot)
			}
		})
	}
}

// outlineBias pulls outline vertices toward the viewer so they win the
// depth test against their own fill.
const outlineBias = 0.5

func (c *Canvas) draw(topology gputypes.PrimitiveTopology, vs []raster.Vertex, plot raster.Plotter) {
	switch topology {
	case gputypes.PrimitiveTopologyTriangleStrip:
		c.raster.TriangleStrip(vs, plot)
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 2; i < len(vs); i += 3 {
			c.raster.Triangle(vs[i-2], vs[i-1], vs[i], plot)
		}
	case gputypes.PrimitiveTopologyLineList:
		c.raster.LineList(vs, plot)
	case gputypes.PrimitiveTopologyLineStrip:
		c.raster.LineStrip(vs, plot)
	default:
		c.raster.Points(vs, plot)
	}
}

// blend draws col over the existing pixel using its alpha.
func (c *Canvas) blend(x, y int, col ColorFloat) {
	if col.A >= 1 {
		c.pix.SetPixel(x, y, col)
		return
	}
	dst := c.pix.GetPixel(x, y)
	out := dst.Lerp(col, col.A)
	out.A = col.A + dst.A*(1-col.A)
	c.pix.SetPixel(x, y, out)
}

// project maps a mesh to screen space through the model matrix m.
func (c *Canvas) project(dst []raster.Vertex, mesh *Mesh, m mgl32.Mat4, bias float32) []raster.Vertex {
	hw := float32(c.pix.Width()) / 2
	hh := float32(c.pix.Height()) / 2
	for i := range mesh.VertexCount() {
		x, y, z := mesh.Position(i)
		wx := m[0]*x + m[4]*y + m[8]*z + m[12]
		wy := m[1]*x + m[5]*y + m[9]*z + m[13]
		wz := m[2]*x + m[6]*y + m[10]*z + m[14]
		col := mesh.Color(i)
		dst = append(dst, raster.Vertex{
			X:     hw + wx,
			Y:     hh - wy,
			Depth: -(wz + bias),
			Color: [4]float32{col.R, col.G, col.B, col.A},
		})
	}
	return dst
}
