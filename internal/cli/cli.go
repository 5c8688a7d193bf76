// Package cli holds the flag, configuration and logging plumbing shared by
// the demo commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig decodes the TOML file at path into cfg and then reapplies
// every flag set on the command line, so flags win over the file. Flags
// must be bound to cfg's fields. An empty path does nothing.
func LoadConfig(fs *flag.FlagSet, path string, cfg any) error {
	if path == "" {
		return nil
	}
	set := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = f.Value.String()
	})
	if err := DecodeFile(path, cfg); err != nil {
		return err
	}
	for name, v := range set {
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("cli: reapply -%s: %w", name, err)
		}
	}
	return nil
}

// DecodeFile decodes the TOML file at path into v. Unknown keys are an
// error.
func DecodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cli: open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("cli: %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("cli: decode %s: %w", path, err)
	}
	return nil
}

// Positional fills dst in order from args. Arguments that are missing,
// not integers, or not positive leave their target unchanged.
func Positional(args []string, dst ...*int) {
	for i, p := range dst {
		if i >= len(args) {
			return
		}
		n, err := strconv.Atoi(args[i])
		if err != nil || n <= 0 {
			continue
		}
		*p = n
	}
}

// Positive resets *v to def when it is not positive.
func Positive(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

// NewLogger returns a text logger writing to w at Info, or at Debug when
// verbose is set.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
