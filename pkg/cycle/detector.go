// Package cycle detects when a simulation revisits a recent grid state.
package cycle

import "conway/pkg/core"

// DefaultCapacity is the number of snapshots kept when none is specified.
// Oscillators with a period up to this size are caught.
const DefaultCapacity = 10

// Detector keeps a bounded FIFO window of grid snapshots in a ring buffer.
// Callers must Observe a grid before Recording it; a grid always matches its
// own snapshot.
type Detector struct {
	ring []*core.Grid
	head int // slot of the oldest snapshot
	n    int
}

// New returns a Detector holding at most capacity snapshots. A non-positive
// capacity selects DefaultCapacity.
func New(capacity int) *Detector {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Detector{ring: make([]*core.Grid, capacity)}
}

// Cap returns the window capacity.
func (d *Detector) Cap() int { return len(d.ring) }

// Len returns the number of snapshots currently held.
func (d *Detector) Len() int { return d.n }

// Observe reports whether g exactly matches any held snapshot. Grids with
// different dimensions never match.
func (d *Detector) Observe(g *core.Grid) bool {
	_, ok := d.Match(g)
	return ok
}

// Match is like Observe but also returns how many records ago the matching
// snapshot was taken, which is the period of the cycle when snapshots are
// recorded once per generation.
func (d *Detector) Match(g *core.Grid) (age int, ok bool) {
	if g == nil {
		return 0, false
	}
	// Newest first so the shortest period wins.
	for i := d.n - 1; i >= 0; i-- {
		if d.at(i).Equal(g) {
			return d.n - i, true
		}
	}
	return 0, false
}

// Record appends a deep copy of g, evicting the oldest snapshot once the
// window is full.
func (d *Detector) Record(g *core.Grid) {
	if g == nil {
		return
	}
	capacity := len(d.ring)
	if d.n < capacity {
		slot := (d.head + d.n) % capacity
		d.ring[slot] = reuse(d.ring[slot], g)
		d.n++
		return
	}
	// Full: overwrite the oldest slot and advance.
	d.ring[d.head] = reuse(d.ring[d.head], g)
	d.head = (d.head + 1) % capacity
}

// Check observes g and records it when no match was found. It returns the
// match result of the observation.
func (d *Detector) Check(g *core.Grid) (age int, ok bool) {
	age, ok = d.Match(g)
	if !ok {
		d.Record(g)
	}
	return age, ok
}

// Reset discards all snapshots. Evicted buffers are kept for reuse.
func (d *Detector) Reset() {
	d.head = 0
	d.n = 0
}

// Snapshots returns copies of the held snapshots, oldest first.
func (d *Detector) Snapshots() []*core.Grid {
	out := make([]*core.Grid, d.n)
	for i := range out {
		out[i] = d.at(i).Clone()
	}
	return out
}

func (d *Detector) at(i int) *core.Grid {
	return d.ring[(d.head+i)%len(d.ring)]
}

// reuse copies src into dst when the shapes match, otherwise clones src.
func reuse(dst, src *core.Grid) *core.Grid {
	if dst != nil && dst.CopyFrom(src) {
		return dst
	}
	return src.Clone()
}
