// Command spectrum sweeps the RGB cube across a 256x256 canvas for a number
// of frames and saves the last frame as a PNG.
//
// Usage:
//
//	spectrum [flags] [threads]
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
	"github.com/gogpu/tsgl/spectrum"
)

type config struct {
	Threads   int    `toml:"threads"`
	Frames    int    `toml:"frames"`
	FPS       int    `toml:"fps"`
	Output    string `toml:"output"`
	Verbose   bool   `toml:"verbose"`
	Statsview bool   `toml:"statsview"`
}

func main() {
	cfg := config{Frames: 256, FPS: 60, Output: "spectrum.png"}
	fs := flag.NewFlagSet("spectrum", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML configuration file")
	fs.IntVar(&cfg.Threads, "threads", cfg.Threads, "worker count (0 = every processor)")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to draw (0 = until interrupted)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output PNG file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.BoolVar(&cfg.Statsview, "statsview", cfg.Statsview, "serve runtime charts")
	_ = fs.Parse(os.Args[1:])

	if err := cli.LoadConfig(fs, *configPath, &cfg); err != nil {
		log.Fatal(err)
	}
	cli.Positional(fs.Args(), &cfg.Threads)
	tsgl.SetLogger(cli.NewLogger(os.Stderr, cfg.Verbose))
	if cfg.Statsview {
		statsview.Launch(os.Stdout)
	}

	frame := tsgl.DefaultFrame
	if cfg.FPS > 0 {
		frame = time.Second / time.Duration(cfg.FPS)
	}
	can := tsgl.NewCanvas(spectrum.Colors, spectrum.Colors,
		tsgl.WithTitle("Spectrum"), tsgl.WithFrame(frame), tsgl.WithBackground(tsgl.Gray))
	can.Start()
	defer can.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, can.Close)

	s := spectrum.New(cfg.Threads)
	n, err := s.Draw(ctx, can, cfg.Frames)
	if err != nil {
		log.Fatal(err)
	}
	if err := can.SavePNG(cfg.Output); err != nil {
		log.Fatal(err)
	}
	log.Printf("drew %d frames with %d threads, saved %s", n, s.Workers(), cfg.Output)
}
