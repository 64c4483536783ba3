package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"conway/internal/runner"
	"conway/pkg/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern string
	Density float64
	Width   int
	Height  int
	Seed    int64

	Scale          int
	TPS            int
	MaxGenerations int
	History        int

	Load    string
	Save    string
	LogFile string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := runner.DefaultConfig()
	return &Config{
		Density:        d.Density,
		Width:          d.Width,
		Height:         d.Height,
		Seed:           d.Seed,
		Scale:          12,
		TPS:            d.TPS,
		MaxGenerations: d.MaxGenerations,
		History:        d.History,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "library pattern to seed with (empty for random noise)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive when randomizing")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid seeding and restarts")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = run forever)")
	fs.IntVar(&c.History, "history", c.History, "number of past generations checked for repeats")
	fs.StringVar(&c.Load, "load", c.Load, "read the initial grid from this file")
	fs.StringVar(&c.Save, "save", c.Save, "write the final grid to this file")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")
}

// RunnerConfig converts the flags into a runner configuration, reading the
// initial grid when Load is set.
func (c *Config) RunnerConfig() (runner.Config, error) {
	rc := runner.DefaultConfig()
	rc.Pattern = c.Pattern
	rc.Density = c.Density
	rc.Width = c.Width
	rc.Height = c.Height
	rc.Seed = c.Seed
	rc.TPS = c.TPS
	rc.MaxGenerations = c.MaxGenerations
	rc.History = c.History
	if c.Load != "" {
		g, err := LoadGrid(c.Load)
		if err != nil {
			return rc, err
		}
		rc.Initial = g
	}
	return rc, nil
}

// Logger opens the configured log destination. With no LogFile, output goes
// to fallback. The returned close function is always non-nil.
func (c *Config) Logger(fallback io.Writer) (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if c.LogFile == "" {
		return log.New(fallback, "life: ", log.LstdFlags), noop, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "life: ", log.LstdFlags), f.Close, nil
}

// LoadGrid reads a grid saved by SaveGrid.
func LoadGrid(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load grid: %w", err)
	}
	defer f.Close()
	g, err := core.ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("load grid %s: %w", path, err)
	}
	return g, nil
}

// SaveGrid writes g to path, replacing any existing file.
func SaveGrid(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save grid: %w", err)
	}
	if err := core.WriteGrid(f, g); err != nil {
		f.Close()
		return fmt.Errorf("save grid %s: %w", path, err)
	}
	return f.Close()
}
