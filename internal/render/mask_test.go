package render

import (
	"image/color"
	"slices"
	"testing"

	"conway/pkg/core"
)

func TestHistoryMask(t *testing.T) {
	a, _ := core.DecodeRows([]string{"10", "01"})
	b, _ := core.DecodeRows([]string{"11", "00"})
	other, _ := core.DecodeRows([]string{"111"})

	got := HistoryMask([]*core.Grid{a, b, other, nil}, 2, 2)
	want := []float32{1, 0.5, 0, 0.5}
	if !slices.Equal(got, want) {
		t.Fatalf("mask %v, want %v", got, want)
	}
	if empty := HistoryMask(nil, 2, 1); !slices.Equal(empty, []float32{0, 0}) {
		t.Fatalf("empty history mask %v", empty)
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillMaskRGBA(buf, []float32{0, 1}, color.RGBA{R: 200, G: 100, B: 40})
	want := []byte{0, 0, 0, 0, 200, 100, 40, 140}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels %v, want %v", buf, want)
	}
}
