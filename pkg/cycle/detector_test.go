package cycle

import (
	"testing"

	"conway/pkg/core"
	"conway/pkg/pattern"
	"conway/pkg/sims/life"
)

// gridWithCell returns a 5x5 grid with a single live cell encoding i.
func gridWithCell(t *testing.T, i int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(i%5, i/5, true)
	return g
}

func TestObserveEmptyHistory(t *testing.T) {
	d := New(0)
	if d.Cap() != DefaultCapacity {
		t.Fatalf("Cap()=%d, want %d", d.Cap(), DefaultCapacity)
	}
	if d.Observe(gridWithCell(t, 0)) {
		t.Fatal("first observation must not report a cycle")
	}
	if d.Observe(nil) {
		t.Fatal("nil grid must not match")
	}
}

func TestRecordThenObserveSameGrid(t *testing.T) {
	d := New(DefaultCapacity)
	g := gridWithCell(t, 3)
	if d.Observe(g) {
		t.Fatal("unexpected match on empty history")
	}
	d.Record(g)
	if !d.Observe(g) {
		t.Fatal("recorded grid should match itself")
	}
	if d.Observe(gridWithCell(t, 4)) {
		t.Fatal("different grid should not match")
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	d := New(DefaultCapacity)
	g := gridWithCell(t, 0)
	d.Record(g)
	g.Set(4, 4, true)
	if d.Observe(g) {
		t.Fatal("history changed along with the live grid")
	}
	if !d.Observe(gridWithCell(t, 0)) {
		t.Fatal("snapshot lost its original contents")
	}
}

func TestWindowEvictsOldest(t *testing.T) {
	d := New(DefaultCapacity)
	for i := 0; i < 15; i++ {
		d.Record(gridWithCell(t, i))
		if d.Len() > DefaultCapacity {
			t.Fatalf("window grew to %d", d.Len())
		}
	}
	if d.Len() != DefaultCapacity {
		t.Fatalf("Len()=%d, want %d", d.Len(), DefaultCapacity)
	}
	for i := 0; i < 5; i++ {
		if d.Observe(gridWithCell(t, i)) {
			t.Fatalf("grid %d should have been evicted", i)
		}
	}
	snaps := d.Snapshots()
	for i := 5; i < 15; i++ {
		if !d.Observe(gridWithCell(t, i)) {
			t.Fatalf("grid %d should still be held", i)
		}
		if !snaps[i-5].Equal(gridWithCell(t, i)) {
			t.Fatalf("snapshot %d out of insertion order", i-5)
		}
	}
}

func TestDifferentDimensionsNeverMatch(t *testing.T) {
	d := New(DefaultCapacity)
	small, _ := core.NewGrid(3, 3)
	d.Record(small)
	large, _ := core.NewGrid(4, 4)
	if d.Observe(large) {
		t.Fatal("grids of different size must not match")
	}
	// Recording a different size must not disturb reuse of ring slots.
	d.Record(large)
	if !d.Observe(large) || !d.Observe(small) {
		t.Fatal("mixed-size history lost a snapshot")
	}
}

func TestResetClearsHistory(t *testing.T) {
	d := New(DefaultCapacity)
	g := gridWithCell(t, 1)
	d.Record(g)
	d.Reset()
	if d.Len() != 0 || d.Observe(g) {
		t.Fatal("Reset left stale history")
	}
	d.Record(g)
	if !d.Observe(g) {
		t.Fatal("detector unusable after Reset")
	}
}

func TestMatchReportsPeriod(t *testing.T) {
	l, err := life.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	blinker := pattern.MustParse("OOO")
	l.PlacePattern(blinker, 3, 4)

	d := New(DefaultCapacity)
	for gen := 0; gen < 5; gen++ {
		age, ok := d.Check(l.Grid())
		if gen < 2 && ok {
			t.Fatalf("generation %d: premature match", gen)
		}
		if gen == 2 {
			if !ok || age != 2 {
				t.Fatalf("blinker: age=%d ok=%v, want period 2", age, ok)
			}
			return
		}
		l.Step()
	}
}

func TestStillLifeDetectedNextGeneration(t *testing.T) {
	l, _ := life.New(8, 8)
	l.PlacePattern(pattern.MustParse("OO", "OO"), 2, 2)
	d := New(DefaultCapacity)
	if _, ok := d.Check(l.Grid()); ok {
		t.Fatal("match before any step")
	}
	l.Step()
	if age, ok := d.Check(l.Grid()); !ok || age != 1 {
		t.Fatalf("block: age=%d ok=%v, want period 1", age, ok)
	}
}
