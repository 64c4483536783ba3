package render

import (
	"image/color"
	"math"

	"conway/pkg/core"
)

// HistoryMask returns, per cell of a w*h grid, the fraction of snaps in
// which the cell was alive. Snapshots of another size are ignored.
func HistoryMask(snaps []*core.Grid, w, h int) []float32 {
	mask := make([]float32, w*h)
	n := 0
	for _, g := range snaps {
		if g == nil || g.Width() != w || g.Height() != h {
			continue
		}
		n++
		for i, c := range g.Cells() {
			if c != 0 {
				mask[i]++
			}
		}
	}
	if n == 0 {
		return mask
	}
	for i := range mask {
		mask[i] /= float32(n)
	}
	return mask
}

// fillMaskRGBA tints buf by mask intensity; zero cells stay transparent.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha  = 140.0
		glowBase  = 0.35
		glowRange = 0.65
	)
	for i, v := range mask {
		base := i * 4
		intensity := math.Min(math.Max(float64(v), 0), 1)
		if intensity == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(maxAlpha * intensity))
	}
}

func scaleComponent(c uint8, f float64) uint8 {
	v := math.Round(float64(c) * f)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
