package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/game"
	"github.com/JPatryk13/triangle-game/internal/platform/console"
	"github.com/JPatryk13/triangle-game/internal/platform/tui"
	"github.com/JPatryk13/triangle-game/internal/storage"
)

var (
	flagWidth      int
	flagMode       string
	flagDifficulty string
	flagDepth      int
	flagEval       string
	flagPlain      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match directly, skipping the menu.

Modes:
  hvh     - Human Player vs Human Player
  random  - Human Player vs Random Computer Player
  ai      - Human Player vs AI (default)
  aivai   - AI vs AI

Controls:
  Arrows/WASD   - Move the cursor
  Enter/Space   - Claim the field under the cursor
  ?             - Show a hint
  R             - Play again (after game over)
  B/Esc         - Leave the match
  Q/Ctrl+C      - Quit

With --plain the match runs as a text game: enter fields as "row column".

Difficulty options:
  easy    - Depth 1, legacy evaluation
  normal  - Depth 3, legacy evaluation
  hard    - Depth 4, differential evaluation, corner opening

Examples:
  triangle play
  triangle play --mode hvh --width 5
  triangle play --difficulty hard
  triangle play --depth 5 --eval differential
  triangle play --mode aivai --plain --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width, a positive odd number (0 = from config)")
	playCmd.Flags().StringVar(&flagMode, "mode", string(game.ModeVsAI), "Game mode: hvh, random, ai, aivai")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagDepth, "depth", 0, "AI search depth (0 = from config or preset)")
	playCmd.Flags().StringVar(&flagEval, "eval", "", "AI evaluation: legacy, differential")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Play in plain text instead of the full-screen UI")
}

// applyPlayFlags layers the play flags over cfg: preset first, then the
// explicit overrides.
func applyPlayFlags(cfg config.Config) (config.Config, error) {
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagWidth != 0 {
		cfg.Board.Width = flagWidth
	}
	if flagDepth != 0 {
		cfg.AI.Depth = flagDepth
	}
	if flagEval != "" {
		cfg.AI.Evaluation = flagEval
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) error {
	mode, err := game.ParseMode(flagMode)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(!flagPlain)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if cfg, err = applyPlayFlags(cfg); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if flagPlain {
		return playPlain(cfg, mode, store, logger)
	}

	width, height := terminalSize()
	return tui.Run(tui.Env{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed},
		Store:   store,
		Logger:  logger,
	}, mode)
}

// newConsole builds the text front end, recording to store when it is open.
func newConsole(cfg config.Config, store *storage.Store, logger *log.Logger) *console.Console {
	opts := []console.Option{
		console.WithDelay(cfg.AI.Delay()),
		console.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, console.WithRecorder(store))
	}
	return console.New(os.Stdin, os.Stdout, opts...)
}

func playPlain(cfg config.Config, mode game.Mode, store *storage.Store, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := newConsole(cfg, store, logger)
	s := seed()

	p1, p2, err := game.NewPlayers(game.Setup{
		Mode:   mode,
		Config: cfg,
		Seed:   s,
		Input:  c.Input(),
		Output: c.Output(),
	})
	if err != nil {
		return err
	}

	m, err := game.New(game.MatchConfig(cfg, s), p1, p2, logger)
	if err != nil {
		return err
	}

	res, err := c.Play(ctx, m)
	if err != nil {
		return fmt.Errorf("match aborted: %w", err)
	}
	c.Save(mode, cfg.Board.Width, res)
	return nil
}
