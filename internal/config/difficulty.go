package config

import (
	"fmt"
	"strings"

	"github.com/JPatryk13/triangle-game/internal/ai"
)

// DifficultyPreset represents a named AI strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from weakest to strongest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value to a preset. The empty string is
// accepted and means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the AI section based on a difficulty preset.
// Depth is capped at MaxDepth.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Depth = 1
		cfg.AI.Evaluation = string(ai.EvalLegacy)
	case DifficultyNormal:
		cfg.AI.Depth = 3
		cfg.AI.Evaluation = string(ai.EvalLegacy)
	case DifficultyHard:
		cfg.AI.Depth = 4
		cfg.AI.Evaluation = string(ai.EvalDifferential)
		cfg.AI.Opening = true
	default:
		return
	}
	cfg.AI.Depth = min(cfg.AI.Depth, max(cfg.AI.MaxDepth, 1))
}

// PresetFor returns the preset whose settings match cfg, or "" when the
// AI section was customised.
func PresetFor(cfg Config) DifficultyPreset {
	for _, p := range Presets {
		probe := cfg
		ApplyPreset(&probe, p)
		if probe.AI == cfg.AI {
			return p
		}
	}
	return ""
}
