// Package pattern holds the named Game of Life seed patterns and the
// transforms used to site them on a grid.
package pattern

import (
	"fmt"
	"strings"
)

// Pattern is an immutable rectangular boolean matrix. Row i, column j is
// addressed as At(j, i) so that x runs along a row like on a grid.
type Pattern struct {
	rows, cols int
	cells      []bool
}

// New copies rows into a Pattern. Every row must have the same length.
func New(rows [][]bool) (Pattern, error) {
	if len(rows) == 0 {
		return Pattern{}, nil
	}
	cols := len(rows[0])
	cells := make([]bool, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Pattern{}, fmt.Errorf("pattern row %d has %d cells, want %d", i, len(row), cols)
		}
		cells = append(cells, row...)
	}
	return Pattern{rows: len(rows), cols: cols, cells: cells}, nil
}

// Parse builds a Pattern from plaintext rows where 'O', '*' or '1' mark live
// cells and '.', ' ' or '0' mark dead ones.
func Parse(rows ...string) (Pattern, error) {
	matrix := make([][]bool, len(rows))
	for i, row := range rows {
		matrix[i] = make([]bool, len(row))
		for j, r := range row {
			switch r {
			case 'O', '*', '1':
				matrix[i][j] = true
			case '.', ' ', '0':
			default:
				return Pattern{}, fmt.Errorf("pattern row %d col %d: unexpected %q", i, j, r)
			}
		}
	}
	return New(matrix)
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level pattern tables.
func MustParse(rows ...string) Pattern {
	p, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// Width returns the number of columns.
func (p Pattern) Width() int { return p.cols }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.rows }

// At reports whether the cell at column x, row y is alive. Out-of-range
// coordinates report dead.
func (p Pattern) At(x, y int) bool {
	if x < 0 || x >= p.cols || y < 0 || y >= p.rows {
		return false
	}
	return p.cells[y*p.cols+x]
}

// Population returns the number of live cells.
func (p Pattern) Population() int {
	n := 0
	for _, c := range p.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether two patterns have the same shape and cells.
func (p Pattern) Equal(o Pattern) bool {
	if p.rows != o.rows || p.cols != o.cols {
		return false
	}
	for i, c := range p.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the pattern in plaintext form using 'O' and '.'.
func (p Pattern) String() string {
	var b strings.Builder
	for y := 0; y < p.rows; y++ {
		for x := 0; x < p.cols; x++ {
			if p.cells[y*p.cols+x] {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
