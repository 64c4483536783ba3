package life

import (
	"errors"
	"fmt"

	"conway/pkg/core"
	"conway/pkg/pattern"
)

// seedAttempts bounds how many random rotations Seed draws before falling
// back to the first orientation that fits.
const seedAttempts = 8

// Life implements Conway's Game of Life on a bounded, non-wrapping grid.
// Cells outside the grid are permanently dead.
type Life struct {
	cfg     Config
	pattern *pattern.Pattern

	// cur is the live generation; nxt is the write buffer for Step. The two
	// are swapped after every generation.
	cur *core.Grid
	nxt *core.Grid

	generation int
	live       int
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life configured from cfg. The configured
// pattern, if any, must exist and fit the grid in at least one orientation.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := core.ValidateDensity(cfg.Density); err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	l := &Life{cfg: cfg, cur: cur, nxt: cur.Clone()}
	if cfg.Pattern != "" {
		p, err := pattern.Get(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if _, ok := l.fittingRotation(p); !ok {
			return nil, &pattern.PatternTooLargeError{
				PatternW: p.Width(), PatternH: p.Height(),
				GridW: cfg.Width, GridH: cfg.Height,
			}
		}
		l.pattern = &p
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation. The returned grid is replaced by Step,
// so callers should fetch it again after stepping and must not keep it as a
// snapshot.
func (l *Life) Grid() *core.Grid { return l.cur }

// Alive reports whether (x, y) is alive; out-of-range cells are dead.
func (l *Life) Alive(x, y int) bool { return l.cur.At(x, y) }

// Generation returns the number of steps taken so far.
func (l *Life) Generation() int { return l.generation }

// LiveCells returns the live-cell count cached after the last mutation.
func (l *Life) LiveCells() int { return l.live }

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.live = 0
}

// Randomize sets every cell alive with probability density, one draw per
// cell. Densities outside [0,1] are rejected before the grid is touched.
func (l *Life) Randomize(density float64, rng core.Source) error {
	if err := core.ValidateDensity(density); err != nil {
		return err
	}
	core.FillDensity(rng, l.cur, density)
	l.live = l.cur.Count()
	return nil
}

// PlacePattern copies p onto the grid with its top-left corner at
// (originX, originY). Pattern cells that land outside the grid are skipped.
// Dead pattern cells overwrite the grid too, so the pattern's bounding box
// is stamped as-is.
func (l *Life) PlacePattern(p pattern.Pattern, originX, originY int) {
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			l.cur.Set(originX+x, originY+y, p.At(x, y))
		}
	}
	l.live = l.cur.Count()
}

// InitializeWithPattern clears the grid and places p at a random rotation and
// position. If the drawn rotation does not fit, it returns a
// PatternTooLargeError and leaves the grid unchanged.
func (l *Life) InitializeWithPattern(p pattern.Pattern, rng core.Source) error {
	rotated := pattern.RandomRotation(p, rng)
	x, y, err := pattern.RandomPlacement(rotated.Width(), rotated.Height(), l.cur.Width(), l.cur.Height(), rng)
	if err != nil {
		return err
	}
	l.cur.Clear()
	l.PlacePattern(rotated, x, y)
	return nil
}

// Seed reinitializes the grid from rng using the configured pattern, or random
// noise at the configured density when no pattern is set.
func (l *Life) Seed(rng core.Source) error {
	if l.pattern == nil {
		return l.Randomize(l.cfg.Density, rng)
	}
	p := *l.pattern
	for i := 0; i < seedAttempts; i++ {
		err := l.InitializeWithPattern(p, rng)
		if !errors.Is(err, pattern.ErrPatternTooLarge) {
			return err
		}
	}
	rotated, ok := l.fittingRotation(p)
	if !ok {
		return fmt.Errorf("seed %s: no orientation fits %dx%d", l.cfg.Pattern, l.cur.Width(), l.cur.Height())
	}
	x, y, err := pattern.RandomPlacement(rotated.Width(), rotated.Height(), l.cur.Width(), l.cur.Height(), rng)
	if err != nil {
		return err
	}
	l.cur.Clear()
	l.PlacePattern(rotated, x, y)
	return nil
}

// Reset reseeds the board using the provided seed. The stored config was
// validated by NewWithConfig and cannot change afterwards, so Seed only fails
// on a broken invariant, which panics rather than leaving a stale board.
func (l *Life) Reset(seed int64) {
	if err := l.Seed(core.NewRNG(seed)); err != nil {
		panic(fmt.Sprintf("life: reset with validated config %+v: %v", l.cfg, err))
	}
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored.
func (l *Life) Toggle(x, y int) {
	if !l.cur.In(x, y) {
		return
	}
	l.cur.Toggle(x, y)
	l.live = l.cur.Count()
}

// Load replaces the current generation with g, which must match the
// simulation's dimensions.
func (l *Life) Load(g *core.Grid) error {
	if g == nil {
		return &core.InvalidParameterError{Param: "grid", Value: nil, Reason: "must not be nil"}
	}
	if !l.cur.CopyFrom(g) {
		return &core.InvalidParameterError{
			Param:  "grid size",
			Value:  g.Size(),
			Reason: fmt.Sprintf("must match %dx%d", l.cur.Width(), l.cur.Height()),
		}
	}
	l.live = l.cur.Count()
	return nil
}

// CountNeighbors returns the number of live cells in the Moore neighborhood
// of (x, y). Neighbors outside the grid count as dead.
func (l *Life) CountNeighbors(x, y int) int {
	return countNeighbors(l.cur.Cells(), l.cur.Width(), l.cur.Height(), x, y)
}

// CountLiveCells scans the grid and returns the number of live cells.
func (l *Life) CountLiveCells() int { return l.cur.Count() }

// Step advances the simulation by one generation. Every cell is computed from
// the current generation into the write buffer before the buffers swap.
func (l *Life) Step() {
	w, h := l.cur.Width(), l.cur.Height()
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = 0
			if nextState(cur[idx] != 0, countNeighbors(cur, w, h, x, y)) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	l.live = l.cur.Count()
}

// Parameters reports the configuration and live state for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	pat := l.cfg.Pattern
	if pat == "" {
		pat = "random"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cur.Width()),
				core.IntParam("h", "Height", l.cur.Height()),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("pattern", "Pattern", pat),
				core.FloatParam("density", "Density", l.cfg.Density),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("live", "Live cells", l.live),
			},
		},
	}}
}

func (l *Life) fittingRotation(p pattern.Pattern) (pattern.Pattern, bool) {
	w, h := l.cur.Width(), l.cur.Height()
	for turns := 0; turns < 2; turns++ {
		r := pattern.Rotate(p, turns)
		if r.Width() <= w && r.Height() <= h {
			return r, true
		}
	}
	return pattern.Pattern{}, false
}

func countNeighbors(cells []uint8, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// nextState applies B3/S23: a live cell survives with 2 or 3 neighbors and a
// dead cell is born with exactly 3.
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
