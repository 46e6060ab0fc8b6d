package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("embedded = %+v\nDefaultConfig = %+v", cfg, DefaultConfig())
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"width one", func(c *Config) { c.Board.Width = 1 }, true},
		{"even width", func(c *Config) { c.Board.Width = 10 }, false},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, false},
		{"negative width", func(c *Config) { c.Board.Width = -3 }, false},
		{"depth zero", func(c *Config) { c.AI.Depth = 0 }, false},
		{"depth above max", func(c *Config) { c.AI.Depth = c.AI.MaxDepth + 1 }, false},
		{"depth at max", func(c *Config) { c.AI.Depth = c.AI.MaxDepth }, true},
		{"max depth zero", func(c *Config) { c.AI.MaxDepth = 0 }, false},
		{"differential", func(c *Config) { c.AI.Evaluation = "differential" }, true},
		{"unknown evaluation", func(c *Config) { c.AI.Evaluation = "oracle" }, false},
		{"negative workers", func(c *Config) { c.AI.Workers = -1 }, false},
		{"negative delay", func(c *Config) { c.AI.DelayMS = -5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	writeFile(t, path, "board:\n  width: 7\nai:\n  evaluation: differential\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Width != 7 || cfg.AI.Evaluation != "differential" {
		t.Fatalf("Load = %+v, want width 7 and differential", cfg)
	}
	// Keys missing from the file keep their defaults.
	if cfg.AI.Depth != DefaultConfig().AI.Depth || cfg.AI.DelayMS != DefaultConfig().AI.DelayMS {
		t.Fatalf("missing keys not defaulted: %+v", cfg.AI)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: err = %v, want ErrNotExist", err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [not a map")
	if _, err := Load(broken); err == nil {
		t.Fatal("malformed YAML accepted")
	}

	even := filepath.Join(dir, "even.yaml")
	writeFile(t, even, "board:\n  width: 8\n")
	if _, err := Load(even); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("even width: err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	cfg, source, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != "embedded" || !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("no files: source %q cfg %+v", source, cfg)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "board:\n  width: 5\n")
	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Width != 5 || source != filepath.Join("configs", FileName) {
		t.Fatalf("local file: width %d source %q", cfg.Board.Width, source)
	}

	userPath := filepath.Join(home, ".triangle", "configs", FileName)
	writeFile(t, userPath, "board:\n  width: 9\n")
	cfg, source, err = LoadWithSource("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Width != 9 || source != userPath {
		t.Fatalf("user file: width %d source %q", cfg.Board.Width, source)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		depth  int
		eval   string
	}{
		{DifficultyEasy, 1, "legacy"},
		{DifficultyNormal, 3, "legacy"},
		{DifficultyHard, 4, "differential"},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.AI.Depth != tt.depth || cfg.AI.Evaluation != tt.eval {
				t.Fatalf("AI = %+v, want depth %d eval %s", cfg.AI, tt.depth, tt.eval)
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("preset config invalid: %v", err)
			}
			if got := PresetFor(cfg); got != tt.preset {
				t.Fatalf("PresetFor = %q, want %q", got, tt.preset)
			}
		})
	}

	capped := DefaultConfig()
	capped.AI.MaxDepth = 2
	ApplyPreset(&capped, DifficultyHard)
	if capped.AI.Depth != 2 {
		t.Fatalf("depth not capped at max_depth: %d", capped.AI.Depth)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard "} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q): %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(fixed) err = %v, want ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("round trip = %+v", cfg)
	}
}
