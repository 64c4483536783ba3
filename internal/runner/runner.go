// Package runner drives a Life simulation generation by generation and
// restarts it when the grid settles into a cycle.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"conway/pkg/core"
	"conway/pkg/cycle"
	"conway/pkg/sims/life"
)

// ErrGenerationCap is returned by Tick once MaxGenerations ticks have run.
var ErrGenerationCap = errors.New("generation cap reached")

// Config controls a run.
type Config struct {
	life.Config

	// MaxGenerations caps the number of ticks; zero means unbounded.
	MaxGenerations int
	// History is the cycle detection window; zero selects cycle.DefaultCapacity.
	History int
	// TPS paces Run; zero or less runs as fast as possible.
	TPS int

	// Initial, when set, replaces the seeded grid. Its size overrides
	// Width and Height.
	Initial *core.Grid
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{Config: life.DefaultConfig(), MaxGenerations: 1000, History: cycle.DefaultCapacity, TPS: 10}
}

// Event describes one tick.
type Event struct {
	// Generation is the engine generation observed by this tick, before stepping.
	Generation int
	Live       int
	// Restarted is set when the observed grid repeated and the grid was reseeded.
	Restarted bool
	// Period is the distance to the repeated snapshot when Restarted is set.
	Period int
}

// Stats summarizes a run so far.
type Stats struct {
	Ticks      int
	Generation int
	Live       int
	Restarts   int
}

// Runner owns the engine, the detector and the randomness for one run.
type Runner struct {
	cfg      Config
	life     *life.Life
	detector *cycle.Detector
	rng      *core.RNG
	logger   *log.Logger

	ticks    int
	restarts int
}

// New validates cfg, builds the simulation and seeds the initial grid. A nil
// logger discards output.
func New(cfg Config, logger *log.Logger) (*Runner, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.MaxGenerations < 0 {
		return nil, &core.InvalidParameterError{Param: "max generations", Value: cfg.MaxGenerations, Reason: "must not be negative"}
	}
	if cfg.Initial != nil {
		cfg.Width, cfg.Height = cfg.Initial.Width(), cfg.Initial.Height()
	}
	l, err := life.NewWithConfig(cfg.Config)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:      cfg,
		life:     l,
		detector: cycle.New(cfg.History),
		rng:      core.NewRNG(cfg.Seed),
		logger:   logger,
	}
	if cfg.Initial != nil {
		if err := l.Load(cfg.Initial); err != nil {
			return nil, err
		}
		logger.Printf("loaded %dx%d grid with %d live cells", cfg.Width, cfg.Height, l.LiveCells())
		return r, nil
	}
	if err := l.Seed(r.rng); err != nil {
		return nil, fmt.Errorf("seed grid: %w", err)
	}
	logger.Printf("seeded %dx%d grid from %s with %d live cells", cfg.Width, cfg.Height, r.seedSource(), l.LiveCells())
	return r, nil
}

// Life exposes the simulation for rendering and manual edits.
func (r *Runner) Life() *life.Life { return r.life }

// Config returns the effective configuration.
func (r *Runner) Config() Config { return r.cfg }

// Stats reports progress so far.
func (r *Runner) Stats() Stats {
	return Stats{
		Ticks:      r.ticks,
		Generation: r.life.Generation(),
		Live:       r.life.LiveCells(),
		Restarts:   r.restarts,
	}
}

// Tick observes the current grid, restarts on a repeat or records it
// otherwise, and then steps one generation.
func (r *Runner) Tick() (Event, error) {
	if r.cfg.MaxGenerations > 0 && r.ticks >= r.cfg.MaxGenerations {
		return Event{}, ErrGenerationCap
	}
	ev := Event{Generation: r.life.Generation(), Live: r.life.LiveCells()}

	if period, ok := r.detector.Match(r.life.Grid()); ok {
		r.logger.Printf("generation %d: grid repeated with period %d, restarting", ev.Generation, period)
		if err := r.restart(); err != nil {
			return ev, err
		}
		ev.Restarted = true
		ev.Period = period
	} else {
		r.detector.Record(r.life.Grid())
	}

	r.life.Step()
	r.ticks++
	return ev, nil
}

// Restart reseeds the grid with random noise and clears the cycle history.
func (r *Runner) Restart() error {
	r.logger.Printf("generation %d: manual restart", r.life.Generation())
	return r.restart()
}

// History returns copies of the grids held for cycle detection, oldest first.
func (r *Runner) History() []*core.Grid {
	return r.detector.Snapshots()
}

// Edited clears the cycle history after the grid was changed by hand so the
// edited grid is not compared with states it never passed through.
func (r *Runner) Edited() {
	r.detector.Reset()
}

func (r *Runner) restart() error {
	if err := r.life.Randomize(r.cfg.Density, r.rng); err != nil {
		return err
	}
	r.detector.Reset()
	r.restarts++
	return nil
}

// Run ticks until the generation cap, an error, or ctx is done. onTick, if
// set, is called after every tick. Reaching the cap is not an error.
func (r *Runner) Run(ctx context.Context, onTick func(Event)) error {
	var tick <-chan time.Time
	if r.cfg.TPS > 0 {
		t := time.NewTicker(time.Second / time.Duration(r.cfg.TPS))
		defer t.Stop()
		tick = t.C
	}
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := r.Tick()
		if errors.Is(err, ErrGenerationCap) {
			r.logger.Printf("stopping after %d generations (%d restarts)", r.ticks, r.restarts)
			return nil
		}
		if err != nil {
			return err
		}
		if onTick != nil {
			onTick(ev)
		}
	}
}

func (r *Runner) seedSource() string {
	if r.cfg.Pattern != "" {
		return "pattern " + r.cfg.Pattern
	}
	return fmt.Sprintf("density %.2f", r.cfg.Density)
}
