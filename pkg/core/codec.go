package core

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// EncodeRows renders the grid as Height strings of Width '0'/'1' characters.
func (g *Grid) EncodeRows() []string {
	rows := make([]string, g.h)
	buf := make([]byte, g.w)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			buf[x] = '0'
			if g.data[g.Index(x, y)] != 0 {
				buf[x] = '1'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// DecodeRows builds a grid from rows of '0'/'1' characters. Every row must
// have the same non-zero length.
func DecodeRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGrid, err)
	}
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), g.w)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '1':
				g.data[g.Index(x, y)] = 1
			case '0':
			default:
				return nil, fmt.Errorf("%w: row %d col %d: unexpected %q", ErrMalformedGrid, y, x, row[x])
			}
		}
	}
	return g, nil
}

// WriteGrid writes "<width> <height>" followed by the encoded rows, one per line.
func WriteGrid(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.w, g.h)
	for _, row := range g.EncodeRows() {
		bw.WriteString(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadGrid parses the format produced by WriteGrid. The declared dimensions
// must match the rows that follow.
func ReadGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing header", ErrMalformedGrid)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedGrid, sc.Text())
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 || w > math.MaxInt/h {
		return nil, fmt.Errorf("%w: header %q", ErrMalformedGrid, sc.Text())
	}

	// The header is untrusted; rows grow only as they are read.
	var rows []string
	for len(rows) < h && sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != h {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrMalformedGrid, len(rows), h)
	}
	g, err := DecodeRows(rows)
	if err != nil {
		return nil, err
	}
	if g.w != w {
		return nil, fmt.Errorf("%w: rows have %d cells, header says %d", ErrMalformedGrid, g.w, w)
	}
	return g, nil
}
