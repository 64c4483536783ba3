package pattern

import "conway/pkg/core"

// RotateClockwise returns p turned 90 degrees clockwise. An R x C input
// becomes C x R, with input cell (row i, col j) landing on output
// (row j, col R-1-i). A pattern without rows is returned unchanged.
func RotateClockwise(p Pattern) Pattern {
	if p.rows == 0 {
		return p
	}
	r, c := p.rows, p.cols
	out := Pattern{rows: c, cols: r, cells: make([]bool, len(p.cells))}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.cells[j*r+(r-1-i)] = p.cells[i*c+j]
		}
	}
	return out
}

// RotateClockwise returns p turned 90 degrees clockwise.
func (p Pattern) RotateClockwise() Pattern { return RotateClockwise(p) }

// Rotate applies turns clockwise quarter turns. Negative values turn
// counter-clockwise. Zero turns returns p itself.
func Rotate(p Pattern, turns int) Pattern {
	turns = ((turns % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		p = RotateClockwise(p)
	}
	return p
}

// RandomRotation draws k uniformly from {0,1,2,3} and rotates p clockwise k
// times. The result is fully determined by the source's draw sequence.
func RandomRotation(p Pattern, rng core.Source) Pattern {
	return Rotate(p, rng.IntN(4))
}

// RandomPlacement draws an origin that keeps a patternW x patternH box fully
// inside a gridW x gridH grid: x from [0, gridW-patternW] and y from
// [0, gridH-patternH], inclusive. Nothing is drawn from rng on error.
func RandomPlacement(patternW, patternH, gridW, gridH int, rng core.Source) (x, y int, err error) {
	if gridW <= 0 || gridH <= 0 {
		return 0, 0, &core.InvalidParameterError{Param: "grid size", Value: core.Size{W: gridW, H: gridH}, Reason: "must be positive"}
	}
	if patternW < 0 || patternH < 0 {
		return 0, 0, &core.InvalidParameterError{Param: "pattern size", Value: core.Size{W: patternW, H: patternH}, Reason: "must not be negative"}
	}
	if patternW > gridW || patternH > gridH {
		return 0, 0, &PatternTooLargeError{PatternW: patternW, PatternH: patternH, GridW: gridW, GridH: gridH}
	}
	x = rng.IntN(gridW - patternW + 1)
	y = rng.IntN(gridH - patternH + 1)
	return x, y, nil
}
