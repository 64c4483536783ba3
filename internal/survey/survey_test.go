package survey

import (
	"context"
	"slices"
	"testing"
)

func TestScenarioStillLifeCycles(t *testing.T) {
	opts := DefaultOptions()
	res, err := Scenario(opts, "beacon", 3)
	if err != nil {
		t.Fatal(err)
	}
	// A lone beacon oscillates with period 2 and is caught on generation 2.
	if !res.Cycled || res.Period != 2 || res.Generation != 2 {
		t.Fatalf("beacon result %+v", res)
	}
}

func TestScenarioDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a, err := Scenario(opts, Random, 8)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Scenario(opts, Random, 8)
	if a != b {
		t.Fatalf("same seed differs: %+v vs %+v", a, b)
	}
}

func TestRunSummaries(t *testing.T) {
	opts := DefaultOptions()
	opts.Runs = 4
	opts.Workers = 3
	opts.Patterns = []string{"toad", "clock", Random}
	sums, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 3 {
		t.Fatalf("got %d summaries", len(sums))
	}
	for _, s := range sums[:2] {
		if s.Runs != 4 || s.Cycled != 4 {
			t.Fatalf("%s: runs=%d cycled=%d", s.Pattern, s.Runs, s.Cycled)
		}
		if !slices.Equal(s.SortedPeriods(), []int{2}) {
			t.Fatalf("%s: periods %v, want [2]", s.Pattern, s.SortedPeriods())
		}
		if s.MeanGeneration != 2 {
			t.Fatalf("%s: mean generation %v", s.Pattern, s.MeanGeneration)
		}
	}
}

func TestRunSkipsPatternsThatDoNotFit(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 12, 12
	opts.Runs = 1
	opts.Patterns = []string{"gun", "glider"}
	sums, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !sums[0].Skipped || sums[1].Skipped {
		t.Fatalf("skip flags %v %v", sums[0].Skipped, sums[1].Skipped)
	}
}

func TestRunValidatesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Runs = 0
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected error for zero runs")
	}
	opts = DefaultOptions()
	opts.Patterns = []string{"nope"}
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}
