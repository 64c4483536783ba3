package runner

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"conway/pkg/core"
	"conway/pkg/pattern"
)

func blockGrid(t *testing.T) *core.Grid {
	t.Helper()
	g, err := core.DecodeRows([]string{
		"000000",
		"011000",
		"011000",
		"000000",
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestStillLifeTriggersRestart(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Initial = blockGrid(t)
	cfg.Density = 1
	r, err := New(cfg, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	ev, err := r.Tick()
	if err != nil || ev.Restarted {
		t.Fatalf("first tick: %+v %v", ev, err)
	}
	ev, err = r.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if !ev.Restarted || ev.Period != 1 {
		t.Fatalf("second tick should restart with period 1, got %+v", ev)
	}
	if r.Stats().Restarts != 1 {
		t.Fatalf("restarts=%d, want 1", r.Stats().Restarts)
	}
	if !strings.Contains(buf.String(), "period 1") {
		t.Fatalf("restart not logged: %q", buf.String())
	}

	// A full grid dies off into a new state; the history from the block must
	// be gone, so the next tick cannot match it.
	ev, err = r.Tick()
	if err != nil || ev.Restarted {
		t.Fatalf("tick after restart matched stale history: %+v %v", ev, err)
	}
}

func TestGenerationCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGenerations = 3
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := r.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if _, err := r.Tick(); !errors.Is(err, ErrGenerationCap) {
		t.Fatalf("err=%v, want ErrGenerationCap", err)
	}
	if r.Stats().Generation != 3 {
		t.Fatalf("generation=%d, want 3", r.Stats().Generation)
	}
}

func TestRunStopsAtCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGenerations = 25
	cfg.TPS = 0
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ticks := 0
	if err := r.Run(context.Background(), func(Event) { ticks++ }); err != nil {
		t.Fatal(err)
	}
	if ticks != 25 {
		t.Fatalf("ran %d ticks, want 25", ticks)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGenerations = 0
	cfg.TPS = 0
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	err = r.Run(ctx, func(ev Event) {
		if ev.Generation == 10 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() []Event {
		cfg := DefaultConfig()
		cfg.Seed = 123
		cfg.MaxGenerations = 200
		cfg.TPS = 0
		r, err := New(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		var events []Event
		r.Run(context.Background(), func(ev Event) { events = append(events, ev) })
		return events
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPatternSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "glider"
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	glider, _ := pattern.Get("glider")
	if r.Life().LiveCells() != glider.Population() {
		t.Fatalf("live=%d, want %d", r.Life().LiveCells(), glider.Population())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "nope"
	if _, err := New(cfg, nil); !errors.Is(err, pattern.ErrUnknownPattern) {
		t.Fatalf("err=%v, want ErrUnknownPattern", err)
	}
	cfg = DefaultConfig()
	cfg.Density = 3
	if _, err := New(cfg, nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
	cfg = DefaultConfig()
	cfg.MaxGenerations = -1
	if _, err := New(cfg, nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err=%v, want ErrInvalidParameter", err)
	}
}

func TestEditedClearsHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Initial = blockGrid(t)
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Tick()
	r.Edited()
	ev, err := r.Tick()
	if err != nil || ev.Restarted {
		t.Fatalf("tick after edit matched cleared history: %+v %v", ev, err)
	}
}

func TestHistoryHoldsObservedGrids(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Initial = blockGrid(t)
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(r.History()); got != 0 {
		t.Fatalf("fresh runner holds %d grids", got)
	}
	r.Tick()
	hist := r.History()
	if len(hist) != 1 || !hist[0].Equal(blockGrid(t)) {
		t.Fatalf("history after one tick: %v", hist)
	}
	hist[0].Clear()
	if r.History()[0].Count() == 0 {
		t.Fatal("History aliases detector storage")
	}
}
