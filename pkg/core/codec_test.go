package core

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDecodeEncodeRows(t *testing.T) {
	rows := []string{
		"0100",
		"0010",
		"1110",
	}
	g, err := DecodeRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size %dx%d, want 4x3", g.Width(), g.Height())
	}
	if !g.At(1, 0) || !g.At(0, 2) || g.At(3, 2) {
		t.Fatal("decoded cells do not match input")
	}
	if got := g.EncodeRows(); !slices.Equal(got, rows) {
		t.Fatalf("EncodeRows()=%v, want %v", got, rows)
	}
}

func TestDecodeRowsRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"empty":      nil,
		"empty row":  {""},
		"ragged":     {"010", "01"},
		"bad symbol": {"01x"},
	}
	for name, rows := range cases {
		if _, err := DecodeRows(rows); !errors.Is(err, ErrMalformedGrid) {
			t.Fatalf("%s: err=%v, want ErrMalformedGrid", name, err)
		}
	}
}

func TestWriteReadGrid(t *testing.T) {
	g, _ := NewGrid(5, 2)
	g.Set(0, 0, true)
	g.Set(4, 1, true)

	var buf bytes.Buffer
	if err := WriteGrid(&buf, g); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "5 2\n10000\n00001\n"; got != want {
		t.Fatalf("WriteGrid wrote %q, want %q", got, want)
	}

	back, err := ReadGrid(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(g) {
		t.Fatal("round trip lost cells")
	}
}

func TestReadGridValidatesHeader(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"bad header":     "five two\n",
		"short":          "3 2\n010\n",
		"width mismatch": "4 1\n010\n",
		"zero size":      "0 0\n",
		"huge height":    "1 1152921504606846976\n0\n",
		"area overflow":  "4611686018427387904 4\n0\n",
	}
	for name, in := range cases {
		if _, err := ReadGrid(strings.NewReader(in)); !errors.Is(err, ErrMalformedGrid) {
			t.Fatalf("%s: err=%v, want ErrMalformedGrid", name, err)
		}
	}
}
