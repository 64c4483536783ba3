package core

import "strings"

// Grid stores a fixed-size 2D field of live/dead cells in row-major order.
// Reads outside the grid report dead and writes outside the grid are dropped.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, invalidSize(w, h)
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice (1 = alive, 0 = dead).
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At reports whether the cell at (x, y) is alive.
func (g *Grid) At(x, y int) bool {
	if !g.In(x, y) {
		return false
	}
	return g.data[g.Index(x, y)] != 0
}

// Set updates the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.In(x, y) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.In(x, y) {
		return
	}
	g.data[g.Index(x, y)] ^= 1
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, data: append([]uint8(nil), g.data...)}
}

// CopyFrom overwrites g with the contents of src. It reports false and leaves
// g untouched when the dimensions differ.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.w != g.w || src.h != g.h {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.data {
		if (c != 0) != (o.data[i] != 0) {
			return false
		}
	}
	return true
}

// String renders live cells as '*' and dead cells as ' ', one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[g.Index(x, y)] != 0 {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
