package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"conway/internal/survey"
)

func main() {
	opts := survey.DefaultOptions()
	flag.IntVar(&opts.Runs, "runs", opts.Runs, "seeds to try per pattern")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "number of concurrent simulations")
	flag.IntVar(&opts.MaxGenerations, "max-generations", opts.MaxGenerations, "generation cap per run")
	flag.IntVar(&opts.History, "history", opts.History, "number of past grids compared for repeats")
	flag.IntVar(&opts.Width, "w", opts.Width, "grid width")
	flag.IntVar(&opts.Height, "h", opts.Height, "grid height")
	flag.Float64Var(&opts.Density, "density", opts.Density, "initial live cell fraction for random runs and restarts")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "first seed; run i uses seed+i")
	patterns := flag.String("patterns", "", "comma separated patterns to survey (\"random\" for noise); empty surveys all")
	flag.Parse()

	if *patterns != "" {
		for _, name := range strings.Split(*patterns, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Patterns = append(opts.Patterns, name)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %dx%d grids, %d runs per pattern (%d workers, cap %d)\n",
		opts.Width, opts.Height, opts.Runs, opts.Workers, opts.MaxGenerations)
	start := time.Now()
	sums, err := survey.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	// Fastest to settle first; patterns that never cycled sink to the bottom.
	sort.SliceStable(sums, func(i, j int) bool {
		a, b := sums[i], sums[j]
		if (a.Cycled > 0) != (b.Cycled > 0) {
			return a.Cycled > 0
		}
		return a.MeanGeneration < b.MeanGeneration
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, s := range sums {
		if s.Skipped {
			fmt.Printf("%-11s skipped: does not fit a %dx%d grid\n", s.Pattern, opts.Width, opts.Height)
			continue
		}
		fmt.Printf("%-11s cycled=%d/%d meanGen=%.1f maxGen=%d periods=%s\n",
			s.Pattern, s.Cycled, s.Runs, s.MeanGeneration, s.MaxGeneration, formatPeriods(s))
	}
}

func formatPeriods(s survey.Summary) string {
	periods := s.SortedPeriods()
	if len(periods) == 0 {
		return "-"
	}
	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = fmt.Sprintf("%d:%d", p, s.Periods[p])
	}
	return strings.Join(parts, " ")
}
