package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"conway/internal/app"
	"conway/internal/runner"
	"conway/internal/term"
	"conway/internal/ui"

	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	plain := flag.Bool("plain", false, "print generations to stdout instead of drawing a terminal UI")
	flag.Parse()

	// The terminal UI owns stderr while running, so only plain mode logs there.
	fallback := io.Discard
	if *plain {
		fallback = os.Stderr
	}
	logger, closeLog, err := cfg.Logger(fallback)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	rc, err := cfg.RunnerConfig()
	if err != nil {
		log.Fatal(err)
	}
	run, err := runner.New(rc, logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *plain {
		err = runPlain(ctx, run, os.Stdout)
	} else {
		err = runTerminal(ctx, run)
	}
	if err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}

	if cfg.Save != "" {
		if err := app.SaveGrid(cfg.Save, run.Life().Grid()); err != nil {
			log.Fatal(err)
		}
		logger.Printf("saved grid to %s", cfg.Save)
	}
}

func runPlain(ctx context.Context, run *runner.Runner, w io.Writer) error {
	return run.Run(ctx, func(ev runner.Event) {
		if ev.Restarted {
			fmt.Fprintf(w, "Pattern repeated (period %d) - restarting simulation.\n", ev.Period)
		}
		fmt.Fprintf(w, "\nGeneration %d:\n%s", run.Life().Generation(), run.Life().Grid())
	})
}

func runTerminal(ctx context.Context, run *runner.Runner) error {
	screen, err := term.New()
	if err != nil {
		return err
	}
	defer screen.Close()

	g, ctx := errgroup.WithContext(ctx)
	inputs := make(chan term.Input)

	g.Go(func() error {
		return screen.Poll(ctx, inputs)
	})
	g.Go(func() error {
		<-ctx.Done()
		screen.Close()
		return nil
	})
	g.Go(func() error {
		return drive(ctx, run, screen, inputs)
	})
	return g.Wait()
}

func drive(ctx context.Context, run *runner.Runner, screen *term.Screen, inputs <-chan term.Input) error {
	interval := time.Second / 10
	if tps := run.Config().TPS; tps > 0 {
		interval = time.Second / time.Duration(tps)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	paused := false
	redraw := func() {
		screen.Draw(run.Life().Grid(), ui.StatusLine(run.Stats(), paused))
	}
	tick := func() error {
		_, err := run.Tick()
		if errors.Is(err, runner.ErrGenerationCap) {
			return errQuit
		}
		return err
	}
	redraw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-inputs:
			switch in.Cmd {
			case term.CmdQuit:
				return errQuit
			case term.CmdPause:
				paused = !paused
			case term.CmdStep:
				if err := tick(); err != nil {
					return err
				}
			case term.CmdRestart:
				if err := run.Restart(); err != nil {
					return err
				}
			case term.CmdClear:
				run.Life().Clear()
				run.Edited()
			case term.CmdToggle:
				if run.Life().Grid().In(in.X, in.Y) {
					run.Life().Toggle(in.X, in.Y)
					run.Edited()
				}
			}
			redraw()
		case <-ticker.C:
			if paused {
				continue
			}
			if err := tick(); err != nil {
				return err
			}
			redraw()
		}
	}
}
