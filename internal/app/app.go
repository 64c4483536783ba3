//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"conway/internal/render"
	"conway/internal/runner"
	"conway/internal/ui"
	"conway/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a runner to the ebiten.Game interface.
type Game struct {
	run     *runner.Runner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided runner. Generations advance at the
// runner's TPS independent of the frame rate.
func New(run *runner.Runner, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := run.Life().Size()
	return &Game{
		run:      run,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(run, hudWidth),
		overlay:  ui.NewOverlay(run, scale),
		pacer:    core.NewFixedStep(run.Config().TPS),
		onColor:  color.RGBA{R: 120, G: 220, B: 120, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.run.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.run.Life().Clear()
		g.run.Edited()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := mx/g.scale, my/g.scale
		if g.run.Life().Grid().In(x, y) {
			g.run.Life().Toggle(x, y)
			g.run.Edited()
		}
	}

	g.overlay.Update()
	g.hud.Update(g.paused, g.overlay.Visible())

	step := g.pacer.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.tickOnce = false
		if _, err := g.run.Tick(); err != nil {
			if errors.Is(err, runner.ErrGenerationCap) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

// Draw renders the current generation and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.run.Life().Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.run.Life().Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.run.Life().Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize returns the window size matching Layout.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
