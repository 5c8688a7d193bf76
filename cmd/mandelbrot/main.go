// Command mandelbrot renders the Mandelbrot set with a team of workers,
// optionally zooming in a few times, and saves the final view as a PNG.
//
// Usage:
//
//	mandelbrot [flags] [width height threads depth]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/gogpu/tsgl"
	"github.com/gogpu/tsgl/internal/cli"
	"github.com/gogpu/tsgl/internal/statsview"
	"github.com/gogpu/tsgl/mandelbrot"
)

type config struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Threads   int     `toml:"threads"`
	Depth     int     `toml:"depth"`
	Output    string  `toml:"output"`
	Gradient  bool    `toml:"gradient"`
	Zooms     int     `toml:"zooms"`
	FocusX    float64 `toml:"focus_x"`
	FocusY    float64 `toml:"focus_y"`
	Scale     float64 `toml:"scale"`
	DelayMS   int     `toml:"delay_ms"`
	Verbose   bool    `toml:"verbose"`
	Statsview bool    `toml:"statsview"`
}

func defaults() config {
	return config{
		Width:   900,
		Height:  900,
		Depth:   mandelbrot.DefaultDepth,
		Output:  "mandelbrot.png",
		FocusX:  -0.7453,
		FocusY:  0.1127,
		Scale:   0.5,
		DelayMS: 200,
	}
}

// sanitize replaces non-positive sizes from flags or the config file
// with the defaults.
func (c *config) sanitize() {
	d := defaults()
	cli.Positive(&c.Width, d.Width)
	cli.Positive(&c.Height, d.Height)
	cli.Positive(&c.Depth, d.Depth)
}

func main() {
	cfg := defaults()
	fs := flag.NewFlagSet("mandelbrot", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "worker count (0 = every processor)")
	fs.IntVar(&cfg.Depth, "depth", cfg.Depth, "iteration limit")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output PNG file")
	fs.BoolVar(&cfg.Gradient, "gradient", cfg.Gradient, "smooth coloring")
	fs.IntVar(&cfg.Zooms, "zooms", cfg.Zooms, "number of scripted zooms")
	fs.Float64Var(&cfg.FocusX, "x", cfg.FocusX, "zoom focus x")
	fs.Float64Var(&cfg.FocusY, "y", cfg.FocusY, "zoom focus y")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "view scale per zoom")
	fs.IntVar(&cfg.DelayMS, "delay", cfg.DelayMS, "milliseconds between zooms")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.BoolVar(&cfg.Statsview, "statsview", cfg.Statsview, "serve runtime charts")
	_ = fs.Parse(os.Args[1:])

	if err := cli.LoadConfig(fs, *configPath, &cfg); err != nil {
		log.Fatal(err)
	}
	cli.Positional(fs.Args(), &cfg.Width, &cfg.Height, &cfg.Threads, &cfg.Depth)
	tsgl.SetLogger(cli.NewLogger(os.Stderr, cfg.Verbose))
	if cfg.Statsview {
		if !statsview.Available() {
			log.Print("statsview not compiled in; rebuild with -tags statsview")
		}
		statsview.Launch(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg.sanitize()
	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s (%dx%d)", cfg.Output, cfg.Width, cfg.Height)
}

func run(ctx context.Context, cfg config) error {
	cfg.sanitize()
	can := tsgl.NewCartesianCanvas(cfg.Width, cfg.Height,
		tsgl.Bounds{MinX: -2, MinY: -1.5, MaxX: 1, MaxY: 1.5},
		tsgl.WithTitle("Mandelbrot"))
	can.Start()
	defer can.Close()

	// final is set on the canvas goroutine when the last zoom is handled.
	var final atomic.Bool
	final.Store(cfg.Zooms <= 0)

	opts := []mandelbrot.Option{
		mandelbrot.WithPassHook(func(p mandelbrot.Pass) {
			if p.State == mandelbrot.Completed && final.Load() {
				if err := can.SavePNG(cfg.Output); err != nil {
					tsgl.Logger().Warn("mandelbrot: save failed", "err", err)
				}
				can.Close()
			}
		}),
	}
	if cfg.Gradient {
		opts = append(opts, mandelbrot.WithColorer(mandelbrot.Gradient))
	}
	m := mandelbrot.New(cfg.Threads, cfg.Depth, opts...)

	go func() {
		for i := range cfg.Zooms {
			can.SleepFor(time.Duration(cfg.DelayMS) * time.Millisecond)
			last := i == cfg.Zooms-1
			err := can.Post(func() {
				can.ZoomAt(cfg.FocusX, cfg.FocusY, cfg.Scale)
				m.Redraw()
				if last {
					final.Store(true)
				}
			})
			if err != nil {
				return
			}
		}
	}()

	return m.Draw(ctx, can)
}
