package config

import (
	_ "embed"
)

//go:embed defaults/triangle.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the
// embedded defaults/triangle.yaml.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width: 11,
		},
		Game: GameConfig{
			RandomStart: false,
		},
		AI: AIConfig{
			Depth:      3,
			MaxDepth:   6,
			Evaluation: "legacy",
			Opening:    true,
			Workers:    0,
			DelayMS:    600,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
