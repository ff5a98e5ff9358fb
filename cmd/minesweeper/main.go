package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"termsweep/internal/app"
	"termsweep/internal/config"
	"termsweep/internal/logging"
	"termsweep/internal/term"
	"termsweep/pkg/board"
	"termsweep/pkg/core"
)

// usageError marks flag parsing failures, which are followed by the usage
// text.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	prog := filepath.Base(os.Args[0])
	cmd := newCommand(prog, play)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var uerr usageError
		if errors.As(err, &uerr) {
			config.Usage(os.Stderr, prog)
		}
		return 1
	}
	return 0
}

func newCommand(prog string, play func(*config.Config) error) *cobra.Command {
	cfg := config.NewConfig()
	cmd := &cobra.Command{
		Use:           prog,
		Short:         "Play Minesweeper in the terminal",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Resolve(cmd.Flags()); err != nil {
				return err
			}
			return play(cfg)
		},
	}
	cmd.Flags().SortFlags = false
	cfg.Bind(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) { config.Usage(c.OutOrStdout(), prog) })
	return cmd
}

func play(cfg *config.Config) error {
	log, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	b, err := board.New(cfg.Rows, cfg.Cols, cfg.Mines, core.NewRNG(seed))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rows":  cfg.Rows,
		"cols":  cfg.Cols,
		"mines": cfg.Mines,
		"mode":  cfg.Mode,
		"seed":  seed,
	}).Info("starting minesweeper")

	fmt.Println("Start Minesweeper")
	switch cfg.Mode {
	case config.ModePrompt:
		err = app.NewSession(b, os.Stdin, os.Stdout, log).RunPrompt()
	default:
		err = runCursor(b, log)
	}
	if err != nil {
		log.WithError(err).Error("session failed")
	}
	return err
}

func runCursor(b *board.Board, log *logrus.Logger) error {
	restore, err := term.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		if err := restore(); err != nil {
			log.WithError(err).Warn("restore terminal")
		}
		fmt.Println()
	}()
	return app.NewSession(b, os.Stdin, term.NewRawWriter(os.Stdout), log).RunCursor()
}
