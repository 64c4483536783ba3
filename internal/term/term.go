// Package term renders a Life grid in a terminal and turns key and mouse
// events into driver commands.
package term

import (
	"context"
	"sync"

	"conway/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// Command is a driver action requested from the keyboard or mouse.
type Command int

// Commands produced by Translate.
const (
	// CmdQuit stops the driver.
	CmdQuit Command = iota + 1
	// CmdPause toggles automatic stepping.
	CmdPause
	// CmdStep advances one generation.
	CmdStep
	// CmdRestart reseeds the grid with random noise.
	CmdRestart
	// CmdClear kills every cell.
	CmdClear
	// CmdToggle flips the cell at Input.X, Input.Y.
	CmdToggle
)

// Input is a translated terminal event. X and Y are grid coordinates and are
// only meaningful for CmdToggle.
type Input struct {
	Cmd  Command
	X, Y int
}

// cellWidth is the number of terminal columns per grid cell; terminal cells
// are roughly twice as tall as they are wide.
const cellWidth = 2

// Screen draws grids onto a tcell screen.
type Screen struct {
	screen tcell.Screen

	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style

	lastButtons tcell.ButtonMask
	closeOnce   sync.Once
}

// New opens the controlling terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes s and prepares it for drawing. Tests pass a
// tcell.SimulationScreen here.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
		status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}, nil
}

// Close restores the terminal and may be called more than once. Poll
// returns once the screen is closed.
func (s *Screen) Close() {
	s.closeOnce.Do(s.screen.Fini)
}

// Draw paints g with a status line underneath and shows the frame.
func (s *Screen) Draw(g *core.Grid, status string) {
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, style := ' ', s.dead
			if g.At(x, y) {
				r, style = '█', s.alive
			}
			s.screen.SetContent(x*cellWidth, y, r, nil, style)
			s.screen.SetContent(x*cellWidth+1, y, r, nil, style)
		}
	}
	sw, _ := s.screen.Size()
	col := 0
	for _, r := range status {
		s.screen.SetContent(col, h, r, nil, s.status)
		col++
	}
	for ; col < sw; col++ {
		s.screen.SetContent(col, h, ' ', nil, s.status)
	}
	s.screen.Show()
}

// Poll forwards translated events to out until the screen is closed or ctx
// is done.
func (s *Screen) Poll(ctx context.Context, out chan<- Input) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.screen.Sync()
			continue
		}
		in, ok := s.Translate(ev)
		if !ok {
			continue
		}
		select {
		case out <- in:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Translate maps a tcell event to a driver command. Mouse toggles fire on
// the press only, not while the button is held.
func (s *Screen) Translate(ev tcell.Event) (Input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Input{Cmd: CmdQuit}, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return Input{Cmd: CmdQuit}, true
			case ' ', 'p', 'P':
				return Input{Cmd: CmdPause}, true
			case 'n', 'N':
				return Input{Cmd: CmdStep}, true
			case 'r', 'R':
				return Input{Cmd: CmdRestart}, true
			case 'c', 'C':
				return Input{Cmd: CmdClear}, true
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && s.lastButtons&tcell.Button1 == 0
		s.lastButtons = buttons
		if pressed {
			x, y := ev.Position()
			return Input{Cmd: CmdToggle, X: x / cellWidth, Y: y}, true
		}
	}
	return Input{}, false
}
