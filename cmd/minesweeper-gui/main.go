//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"termsweep/internal/config"
	"termsweep/internal/logging"
	"termsweep/internal/ui"
	"termsweep/pkg/board"
	"termsweep/pkg/core"
)

func main() {
	prog := filepath.Base(os.Args[0])
	cfg, err := config.Load(prog, os.Args[1:], func(c *config.Config, fs *pflag.FlagSet) {
		fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	})
	if errors.Is(err, pflag.ErrHelp) {
		config.Usage(os.Stdout, prog)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b, err := board.New(cfg.Rows, cfg.Cols, cfg.Mines, core.NewRNG(seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"mines": cfg.Mines,
		"scale": cfg.Scale,
		"seed":  seed,
	}).Info("starting minesweeper window")

	game := ui.New(b, cfg.Scale, log)
	ebiten.SetWindowTitle(fmt.Sprintf("minesweeper %dx%d, %d mines", cfg.Rows, cfg.Cols, cfg.Mines))
	ebiten.SetWindowSize(ui.WindowSize(cfg.Rows, cfg.Cols, cfg.Scale))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Error("run game")
		closeLog()
		os.Exit(1)
	}
}
