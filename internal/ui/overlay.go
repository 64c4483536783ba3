//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/render"
	"conway/internal/runner"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints cells by how often they were alive in the grids held for
// cycle detection. H toggles it.
type Overlay struct {
	run   *runner.Runner
	scale int
	show  bool
	ghost *render.MaskPainter
}

// NewOverlay constructs a hidden overlay for run.
func NewOverlay(run *runner.Runner, scale int) *Overlay {
	size := run.Life().Size()
	return &Overlay{run: run, scale: scale, ghost: render.NewMaskPainter(size.W, size.H)}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	size := o.run.Life().Size()
	mask := render.HistoryMask(o.run.History(), size.W, size.H)
	o.ghost.Blit(screen, mask, color.RGBA{R: 64, G: 164, B: 223, A: 0}, o.scale)
}
