// Command readerwriter animates reader and writer goroutines sharing a
// database of colored rectangles, then saves the last frame as a PNG.
//
// Usage:
//
//	readerwriter [flags] [readers writers]
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/tsgl"
	"github.com/gogpu/tsgl/internal/cli"
	"github.com/gogpu/tsgl/internal/statsview"
	"github.com/gogpu/tsgl/readerwriter"
)

type config struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Readers   int    `toml:"readers"`
	Writers   int    `toml:"writers"`
	Items     int    `toml:"items"`
	DwellMS   int    `toml:"dwell_ms"`
	RestMS    int    `toml:"rest_ms"`
	Fair      bool   `toml:"fair"`
	Seconds   int    `toml:"seconds"`
	Seed      uint64 `toml:"seed"`
	Output    string `toml:"output"`
	Verbose   bool   `toml:"verbose"`
	Statsview bool   `toml:"statsview"`
}

func defaults() config {
	d := readerwriter.DefaultConfig()
	return config{
		Width:   800,
		Height:  600,
		Readers: d.Readers,
		Writers: d.Writers,
		Items:   d.Items,
		DwellMS: int(d.Dwell / time.Millisecond),
		RestMS:  int(d.Rest / time.Millisecond),
		Seconds: 5,
		Seed:    d.Seed,
		Output:  "readerwriter.png",
	}
}

// sanitize replaces non-positive sizes from flags or the config file
// with the defaults.
func (c *config) sanitize() {
	d := defaults()
	cli.Positive(&c.Width, d.Width)
	cli.Positive(&c.Height, d.Height)
	cli.Positive(&c.Items, d.Items)
}

func main() {
	cfg := defaults()
	fs := flag.NewFlagSet("readerwriter", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height")
	fs.IntVar(&cfg.Readers, "readers", cfg.Readers, "reader goroutines")
	fs.IntVar(&cfg.Writers, "writers", cfg.Writers, "writer goroutines")
	fs.IntVar(&cfg.Items, "items", cfg.Items, "database size")
	fs.IntVar(&cfg.DwellMS, "dwell", cfg.DwellMS, "milliseconds each agent holds the lock")
	fs.IntVar(&cfg.RestMS, "rest", cfg.RestMS, "milliseconds between cycles")
	fs.BoolVar(&cfg.Fair, "fair", cfg.Fair, "admit readers and writers in arrival order")
	fs.IntVar(&cfg.Seconds, "seconds", cfg.Seconds, "run time (0 = until interrupted)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output PNG file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.BoolVar(&cfg.Statsview, "statsview", cfg.Statsview, "serve runtime charts")
	_ = fs.Parse(os.Args[1:])

	if err := cli.LoadConfig(fs, *configPath, &cfg); err != nil {
		log.Fatal(err)
	}
	cli.Positional(fs.Args(), &cfg.Readers, &cfg.Writers)
	tsgl.SetLogger(cli.NewLogger(os.Stderr, cfg.Verbose))
	if cfg.Statsview {
		statsview.Launch(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Seconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Seconds)*time.Second)
		defer cancel()
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config) error {
	cfg.sanitize()
	can := tsgl.NewCanvas(cfg.Width, cfg.Height, tsgl.WithTitle("Reader/Writer"))
	can.Start()
	defer can.Close()
	context.AfterFunc(ctx, can.Close)

	sim, err := readerwriter.New(can, readerwriter.Config{
		Readers: cfg.Readers,
		Writers: cfg.Writers,
		Items:   cfg.Items,
		Dwell:   time.Duration(cfg.DwellMS) * time.Millisecond,
		Rest:    time.Duration(cfg.RestMS) * time.Millisecond,
		Fair:    cfg.Fair,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- sim.Run(ctx) }()

	for can.IsOpen() {
		can.Sleep()
		can.HandleIO()
		if err := sim.Render(); err != nil {
			return err
		}
	}
	if err := <-done; err != nil {
		return err
	}
	if err := sim.Render(); err != nil {
		return err
	}
	reads, writes := sim.Totals()
	log.Printf("%d reads, %d writes; saved %s", reads, writes, cfg.Output)
	return can.SavePNG(cfg.Output)
}
