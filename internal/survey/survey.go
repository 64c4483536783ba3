// Package survey runs many seeded simulations per seed pattern and reports
// how long each takes to settle into a cycle.
package survey

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"conway/internal/runner"
	"conway/pkg/pattern"

	"golang.org/x/sync/errgroup"
)

// Random names the scenario that seeds with random noise instead of a pattern.
const Random = "random"

// Options controls a survey.
type Options struct {
	Width, Height  int
	Density        float64
	MaxGenerations int
	History        int

	// Runs is the number of seeds tried per pattern, starting at Seed.
	Runs int
	Seed int64

	// Patterns lists the scenarios to run; empty means Random plus every
	// library pattern.
	Patterns []string
	Workers  int
}

// DefaultOptions mirrors the interactive defaults.
func DefaultOptions() Options {
	d := runner.DefaultConfig()
	return Options{
		Width:          d.Width,
		Height:         d.Height,
		Density:        d.Density,
		MaxGenerations: d.MaxGenerations,
		History:        d.History,
		Runs:           16,
		Seed:           1,
		Workers:        runtime.NumCPU(),
	}
}

// Result is the outcome of one seeded run.
type Result struct {
	Pattern string
	Seed    int64

	// Cycled is set when a repeat was found before the generation cap.
	Cycled     bool
	Generation int
	Period     int
	Live       int
}

// Summary aggregates the runs for one pattern.
type Summary struct {
	Pattern string
	Runs    int
	Cycled  int
	// Skipped is set when the pattern cannot be placed on the grid.
	Skipped bool

	MeanGeneration float64
	MaxGeneration  int
	// Periods counts detected cycle periods.
	Periods map[int]int
}

// Run executes every (pattern, seed) scenario with at most Workers running
// at once and returns one summary per pattern in the order requested.
func Run(ctx context.Context, opts Options) ([]Summary, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("survey: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxGenerations <= 0 {
		return nil, fmt.Errorf("survey: max generations must be positive, got %d", opts.MaxGenerations)
	}
	names := opts.Patterns
	if len(names) == 0 {
		names = append([]string{Random}, pattern.Names()...)
	}

	summaries := make([]Summary, len(names))
	results := make([][]Result, len(names))
	for i, name := range names {
		summaries[i] = Summary{Pattern: name, Periods: map[int]int{}}
		if _, err := newRunner(opts, name, opts.Seed); err != nil {
			if errors.Is(err, pattern.ErrPatternTooLarge) {
				summaries[i].Skipped = true
				continue
			}
			return nil, err
		}
		results[i] = make([]Result, opts.Runs)
	}

	g, ctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)
	for i, name := range names {
		if summaries[i].Skipped {
			continue
		}
		for run := 0; run < opts.Runs; run++ {
			i, name, run := i, name, run
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Scenario(opts, name, opts.Seed+int64(run))
				if err != nil {
					return err
				}
				// Each goroutine owns a distinct slot.
				results[i][run] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range summaries {
		if summaries[i].Skipped {
			continue
		}
		summarize(&summaries[i], results[i])
	}
	return summaries, nil
}

// Scenario runs one seeded simulation until its first repeat or the
// generation cap.
func Scenario(opts Options, name string, seed int64) (Result, error) {
	run, err := newRunner(opts, name, seed)
	if err != nil {
		return Result{}, err
	}
	res := Result{Pattern: name, Seed: seed}
	for {
		ev, err := run.Tick()
		if errors.Is(err, runner.ErrGenerationCap) {
			res.Generation = run.Life().Generation()
			res.Live = run.Life().LiveCells()
			return res, nil
		}
		if err != nil {
			return res, err
		}
		if ev.Restarted {
			res.Cycled = true
			res.Generation = ev.Generation
			res.Period = ev.Period
			res.Live = ev.Live
			return res, nil
		}
	}
}

func newRunner(opts Options, name string, seed int64) (*runner.Runner, error) {
	cfg := runner.DefaultConfig()
	cfg.Width = opts.Width
	cfg.Height = opts.Height
	cfg.Density = opts.Density
	cfg.MaxGenerations = opts.MaxGenerations
	cfg.History = opts.History
	cfg.Seed = seed
	cfg.TPS = 0
	if name != Random {
		cfg.Pattern = name
	}
	return runner.New(cfg, nil)
}

func summarize(s *Summary, results []Result) {
	s.Runs = len(results)
	total := 0
	for _, r := range results {
		if !r.Cycled {
			continue
		}
		s.Cycled++
		total += r.Generation
		if r.Generation > s.MaxGeneration {
			s.MaxGeneration = r.Generation
		}
		s.Periods[r.Period]++
	}
	if s.Cycled > 0 {
		s.MeanGeneration = float64(total) / float64(s.Cycled)
	}
}

// SortedPeriods returns the detected periods in ascending order.
func (s Summary) SortedPeriods() []int {
	periods := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	return periods
}
