package life

import (
	"strconv"
	"strings"
)

// Config holds parameters for the Game of Life simulation. NewWithConfig
// validates and copies it; a Life never sees later edits to the caller's
// value or to the copy returned by (*Life).Config, so seeding from the
// stored config cannot fail.
type Config struct {
	Width  int
	Height int

	// Density is the probability that a cell starts alive when the grid is
	// randomized.
	Density float64
	Seed    int64

	// Pattern names a library pattern to seed with instead of random noise.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 20, Density: 0.2, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = strings.TrimSpace(v)
	}
	return c
}
