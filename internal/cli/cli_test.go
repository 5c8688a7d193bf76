package cli

import (
	"bytes"
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Output  string `toml:"output"`
	Verbose bool   `toml:"verbose"`
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "width = 640\nheight = 480\noutput = \"file.png\"\n")

	cfg := testConfig{Width: 100, Height: 100, Output: "default.png"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "")
	if err := fs.Parse([]string{"-width", "800"}); err != nil {
		t.Fatal(err)
	}

	if err := LoadConfig(fs, path, &cfg); err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	want := testConfig{Width: 800, Height: 480, Output: "file.png"}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_NoPath(t *testing.T) {
	cfg := testConfig{Width: 1}
	if err := LoadConfig(flag.NewFlagSet("test", flag.ContinueOnError), "", &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1 {
		t.Errorf("Width = %d, want 1", cfg.Width)
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	var cfg testConfig
	if err := DecodeFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Error("DecodeFile(missing) succeeded")
	}
	if err := DecodeFile(writeFile(t, "colour = 3\n"), &cfg); err == nil {
		t.Error("DecodeFile accepted an unknown key")
	}
	err := DecodeFile(writeFile(t, "width = \n"), &cfg)
	if err == nil || !strings.Contains(err.Error(), "config.toml:1:") {
		t.Errorf("DecodeFile(syntax error) = %v, want a positioned error", err)
	}
}

func TestPositional(t *testing.T) {
	w, h, threads, depth := 10, 20, 30, 40
	Positional([]string{"800", "x", "-4"}, &w, &h, &threads, &depth)
	if w != 800 || h != 20 || threads != 30 || depth != 40 {
		t.Errorf("got %d %d %d %d, want 800 20 30 40", w, h, threads, depth)
	}
	Positional(nil, &w)
	if w != 800 {
		t.Errorf("w = %d after empty args, want 800", w)
	}
}

func TestPositive(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"positive", 640, 640},
		{"zero", 0, 900},
		{"negative", -5, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.in
			Positive(&v, 900)
			if v != tt.want {
				t.Errorf("Positive(%d, 900) = %d, want %d", tt.in, v, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	if quiet.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("non-verbose logger has Debug enabled")
	}
	loud := NewLogger(&buf, true)
	loud.Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("output = %q, want the debug record", buf.String())
	}
}
