// Package spectrum sweeps the RGB cube across a canvas once per frame.
//
// Each frame the x coordinate becomes red, y becomes green and the frame
// count modulo 256 becomes blue. Columns are split statically between
// workers: worker i draws columns i, i+n, i+2n, ...
package spectrum

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/tsgl"
	"github.com/gogpu/tsgl/internal/parallel"
)

// Colors is the number of values per channel and the side of the sweep.
const Colors = 256

// Spectrum draws the sweep with a fixed worker count.
type Spectrum struct {
	workers int
}

// New creates a sweep with parallel.Workers(threads) workers.
func New(threads int) *Spectrum {
	return &Spectrum{workers: parallel.Workers(threads)}
}

// Workers returns the worker count.
func (s *Spectrum) Workers() int { return s.workers }

// Frame draws one sweep with the given blue channel. Points outside the
// canvas are skipped.
func (s *Spectrum) Frame(ctx context.Context, can *tsgl.Canvas, blue int) error {
	w := min(Colors, can.Width())
	h := min(Colors, can.Height())
	g, ctx := errgroup.WithContext(ctx)
	for id := range s.workers {
		g.Go(func() error {
			for i := range parallel.Stripe(id, s.workers, w) {
				if err := ctx.Err(); err != nil {
					return err
				}
				for j := range h {
					can.DrawPoint(i, j, tsgl.ColorInt(i, j, blue, 255))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Draw waits for each frame tick and draws a sweep, until the canvas
// closes, ctx ends, or frames sweeps have been drawn. frames <= 0 draws
// until the canvas closes. It returns the number of sweeps drawn.
//
// Input posted to the canvas is handled between frames on the calling
// goroutine.
func (s *Spectrum) Draw(ctx context.Context, can *tsgl.Canvas, frames int) (int, error) {
	log := tsgl.Logger().With("canvas", can.Title(), "threads", s.workers)
	drawn := 0
	for can.IsOpen() && (frames <= 0 || drawn < frames) {
		can.Sleep()
		if !can.IsOpen() {
			break
		}
		if err := s.Frame(ctx, can, int(can.Reps()%Colors)); err != nil {
			return drawn, err
		}
		drawn++
		can.HandleIO()
	}
	log.Info("spectrum: done", "frames", drawn, "elapsed", can.Time())
	return drawn, nil
}
