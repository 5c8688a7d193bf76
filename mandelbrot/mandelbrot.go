// Package mandelbrot renders the Mandelbrot set onto a CartesianCanvas with
// a team of workers that claim rows dynamically.
//
// A Mandelbrot value runs a loop of passes. Each pass clears the canvas,
// snapshots the view and lets every worker claim the lowest unclaimed row,
// compute its escape times and draw its points. Zoom handlers posted to
// the canvas set the redraw flag; workers poll it per pixel, abandon the
// pass and a fresh pass starts with the new view. Partial rows already on
// the canvas are left in place and overwritten by the next pass.
package mandelbrot

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gogpu/tsgl"
	"github.com/gogpu/tsgl/internal/parallel"
)

// State is the driver's position in its pass loop.
type State int32

const (
	// Idle waits for a redraw request or for the canvas to close.
	Idle State = iota
	// Computing has a pass in progress.
	Computing
	// Completed finished every row of the last pass.
	Completed
	// Aborted abandoned the last pass because a redraw was requested.
	Aborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Computing:
		return "computing"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Pass describes one finished or abandoned pass.
type Pass struct {
	Number    int
	State     State // Completed or Aborted
	Bounds    tsgl.Bounds
	Elapsed   time.Duration
	Rows      int
	Completed int
	Claimed   int
	PerWorker []int
}

// Option configures a Mandelbrot.
type Option func(*options)

type options struct {
	colorer Colorer
	onPass  func(Pass)
}

// WithColorer replaces the default Banded coloring.
func WithColorer(c Colorer) Option {
	return func(o *options) {
		if c != nil {
			o.colorer = c
		}
	}
}

// WithPassHook registers fn to run on the drawing goroutine after every
// pass.
func WithPassHook(fn func(Pass)) Option {
	return func(o *options) {
		o.onPass = fn
	}
}

// Mandelbrot draws the set with a fixed worker team.
type Mandelbrot struct {
	team   *parallel.Team
	depth  int
	opts   options
	redraw atomic.Bool
	state  atomic.Int32
	passes int
}

// New creates a renderer with the given worker count and iteration depth.
// threads <= 0 uses every processor; depth <= 0 uses DefaultDepth.
func New(threads, depth int, opts ...Option) *Mandelbrot {
	if depth <= 0 {
		depth = DefaultDepth
	}
	o := options{colorer: Banded}
	for _, opt := range opts {
		opt(&o)
	}
	return &Mandelbrot{
		team:  parallel.NewTeam(threads),
		depth: depth,
		opts:  o,
	}
}

// Threads returns the worker count.
func (m *Mandelbrot) Threads() int { return m.team.Workers() }

// Depth returns the iteration limit.
func (m *Mandelbrot) Depth() int { return m.depth }

// State returns the current state.
func (m *Mandelbrot) State() State { return State(m.state.Load()) }

// Redraw asks for a new pass. A pass in progress is abandoned.
func (m *Mandelbrot) Redraw() { m.redraw.Store(true) }

// Redrawing reports whether a redraw is pending.
func (m *Mandelbrot) Redrawing() bool { return m.redraw.Load() }

// Draw runs passes until the canvas closes or ctx ends. It must be called
// on the goroutine that owns the canvas, since it pumps HandleIO.
//
// Draw returns nil when the canvas closes and the context error when ctx
// ends. Abandoned passes are not errors.
func (m *Mandelbrot) Draw(ctx context.Context, can *tsgl.CartesianCanvas) error {
	log := tsgl.Logger().With("canvas", can.Title(), "threads", m.team.Workers(), "depth", m.depth)
	defer m.state.Store(int32(Idle))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-can.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	m.redraw.Store(true)
	for m.redraw.Load() {
		m.redraw.Store(false)
		can.Reset()
		b := can.Bounds()
		rows := can.Height()

		m.state.Store(int32(Computing))
		res := m.team.Run(ctx, rows, &m.redraw, m.row(can, b), func() { can.HandleIO() })
		m.passes++

		p := Pass{
			Number:    m.passes,
			Bounds:    b,
			Elapsed:   can.Time(),
			Rows:      rows,
			Completed: res.Completed,
			Claimed:   res.Claimed,
			PerWorker: res.PerWorker,
		}
		if res.Err != nil {
			if closed(can.Canvas) {
				return nil
			}
			return res.Err
		}
		if m.redraw.Load() {
			p.State = Aborted
			m.state.Store(int32(Aborted))
			log.Debug("mandelbrot: pass abandoned", "pass", p.Number, "rows", p.Completed, "of", rows)
		} else {
			p.State = Completed
			m.state.Store(int32(Completed))
			log.Info("mandelbrot: pass complete", "pass", p.Number,
				"elapsed", p.Elapsed, "scale", 2/b.Height(), "per_worker", p.PerWorker)
		}
		if m.opts.onPass != nil {
			m.opts.onPass(p)
		}
		if p.State == Aborted {
			continue
		}

		m.state.Store(int32(Idle))
		for can.IsOpen() && !m.redraw.Load() {
			if err := ctx.Err(); err != nil {
				if closed(can.Canvas) {
					return nil
				}
				return err
			}
			can.Sleep()
			can.HandleIO()
		}
	}
	return nil
}

// row returns the per-row function for a pass over bounds b.
func (m *Mandelbrot) row(can *tsgl.CartesianCanvas, b tsgl.Bounds) parallel.RowFunc {
	w := can.Width()
	colorer := m.opts.colorer
	return func(_, row int) bool {
		for col := range w {
			x, y := can.FromPixel(b, col, row)
			n, z := Escape(complex(x, y), m.depth)
			can.Canvas.DrawPoint(col, row, colorer(n, m.depth, z))
			if m.redraw.Load() {
				return false
			}
		}
		return true
	}
}

func closed(can *tsgl.Canvas) bool {
	select {
	case <-can.Done():
		return true
	default:
		return false
	}
}
