package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/platform/tui"
)

var flagMenuPlain bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a setup menu",
	Long: `Start the game in interactive menu mode.

Pick the mode, board width and difficulty, then start a match.
After a match ends, press B to return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/-/+  - Change the selected value
  Enter/Space     - Select
  Tab             - Match history
  Q               - Quit

With --plain the numbered text menu is shown instead.

Examples:
  triangle menu
  triangle menu --plain
  triangle menu --db ./matches.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMenuPlain, "plain", false, "Use the numbered text menu")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(!flagMenuPlain)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagMenuPlain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return newConsole(cfg, store, logger).Menu(ctx, cfg, seed())
	}

	width, height := terminalSize()
	return tui.RunSession(tui.Env{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
		Store:   store,
		Logger:  logger,
	})
}
