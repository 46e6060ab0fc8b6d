// Package config provides YAML-based configuration loading and difficulty
// presets for the triangle game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/JPatryk13/triangle-game/internal/ai"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all game configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Game  GameConfig  `yaml:"game"`
	AI    AIConfig    `yaml:"ai"`
}

// BoardConfig defines the board layout.
type BoardConfig struct {
	Width int `yaml:"width"` // Odd number of cells in the bottom row
}

// GameConfig defines match setup.
type GameConfig struct {
	RandomStart bool   `yaml:"random_start"` // Pick the first mover at random
	Player1     string `yaml:"player1"`      // Display names, empty for the player kind's default
	Player2     string `yaml:"player2"`
}

// AIConfig defines the computer opponent.
type AIConfig struct {
	Depth      int    `yaml:"depth"`      // Plies searched per move
	MaxDepth   int    `yaml:"max_depth"`  // Upper bound for depth, guards against runaway searches
	Evaluation string `yaml:"evaluation"` // "legacy" or "differential"
	Opening    bool   `yaml:"opening"`    // Take a bottom corner before searching
	Workers    int    `yaml:"workers"`    // Parallel top-level search workers, 0 or 1 is sequential
	DelayMS    int    `yaml:"delay_ms"`   // Pause before showing an AI move in the TUI
}

// Delay returns DelayMS as a duration.
func (a AIConfig) Delay() time.Duration {
	return time.Duration(a.DelayMS) * time.Millisecond
}

// Validate reports the first out-of-range setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Width%2 == 0 {
		return fmt.Errorf("%w: board.width must be a positive odd number, got %d", ErrInvalidConfig, c.Board.Width)
	}
	if c.AI.MaxDepth < 1 {
		return fmt.Errorf("%w: ai.max_depth must be at least 1, got %d", ErrInvalidConfig, c.AI.MaxDepth)
	}
	if c.AI.Depth < 1 || c.AI.Depth > c.AI.MaxDepth {
		return fmt.Errorf("%w: ai.depth must be in [1, %d], got %d", ErrInvalidConfig, c.AI.MaxDepth, c.AI.Depth)
	}
	if _, err := ai.ParseEvaluation(c.AI.Evaluation); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.AI.Workers < 0 {
		return fmt.Errorf("%w: ai.workers must not be negative, got %d", ErrInvalidConfig, c.AI.Workers)
	}
	if c.AI.DelayMS < 0 {
		return fmt.Errorf("%w: ai.delay_ms must not be negative, got %d", ErrInvalidConfig, c.AI.DelayMS)
	}
	return nil
}

// Eval returns the parsed evaluation. Call Validate first; an unknown value
// falls back to legacy.
func (c Config) Eval() ai.Evaluation {
	e, err := ai.ParseEvaluation(c.AI.Evaluation)
	if err != nil {
		return ai.EvalLegacy
	}
	return e
}
