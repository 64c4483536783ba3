//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conway/internal/app"
	"conway/internal/runner"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := cfg.Logger(os.Stderr)
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

	game := app.New(run, cfg.Scale)
	title := "life - random"
	if rc.Pattern != "" {
		title = "life - " + rc.Pattern
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}

	if cfg.Save != "" {
		if err := app.SaveGrid(cfg.Save, run.Life().Grid()); err != nil {
			log.Fatal(err)
		}
		logger.Printf("saved grid to %s", cfg.Save)
	}
}
