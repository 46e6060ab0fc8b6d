// triangle is a two-player line-clear game on a triangular board, playable
// in the terminal, over SSH or as a plain text console game.
//
// Usage:
//
//	triangle play            - Play a match (TUI, or --plain for text)
//	triangle menu            - Start the menu to set up matches interactively
//	triangle serve           - Start SSH server for remote play
//	triangle scores          - Show recent matches and best scores
//	triangle players         - List player kinds and game modes
//	triangle rules           - Print the rules
//	triangle config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.triangle/matches.db)
//	--config <path>     - Use a custom configuration YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/storage"

	// Import players to register them
	_ "github.com/JPatryk13/triangle-game/internal/players/human"
	_ "github.com/JPatryk13/triangle-game/internal/players/minimax"
	_ "github.com/JPatryk13/triangle-game/internal/players/random"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Triangle - claim fields, complete lines, collect points",
	Long: `Triangle is a two-player game on a triangular board. Players take turns
claiming fields; completing a row, a column or a diagonal scores its length.

Available commands:
  play     - Play a match directly
  menu     - Interactive match setup menu
  serve    - Start SSH server for remote play
  scores   - View match history
  players  - List player kinds and modes
  rules    - Print the rules
  config   - Print the effective configuration

Examples:
  triangle play
  triangle play --mode hvh --width 7
  triangle play --plain --difficulty hard
  triangle menu
  triangle serve --ssh :2222
  triangle scores --width 11`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file, full-screen
// commands discard logs so they never corrupt the display; other commands
// log to stderr.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case fullScreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "triangle",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads the configuration following the search order.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// openStore opens the match history. Failures are reported and the caller
// continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		return nil
	}
	return store
}

// seed returns --seed or a time based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
