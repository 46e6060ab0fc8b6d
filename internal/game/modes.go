package game

import (
	"fmt"
	"io"

	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// Mode names the pairing of player kinds for a match.
type Mode string

const (
	ModeHumanVsHuman Mode = "hvh"
	ModeVsRandom     Mode = "random"
	ModeVsAI         Mode = "ai"
	ModeAIVsAI       Mode = "aivai"
)

// ModeInfo describes a mode for menus and help output.
type ModeInfo struct {
	Mode  Mode
	Title string
	Kinds [2]string // Registry IDs of the two players
}

// Modes lists every mode in menu order.
var Modes = []ModeInfo{
	{ModeHumanVsHuman, "Human Player vs Human Player", [2]string{"human", "human"}},
	{ModeVsRandom, "Human Player vs Random Computer Player (easy)", [2]string{"human", "random"}},
	{ModeVsAI, "Human Player vs AI", [2]string{"human", "minimax"}},
	{ModeAIVsAI, "AI vs AI", [2]string{"minimax", "minimax"}},
}

// Info returns the description of m.
func (m Mode) Info() (ModeInfo, bool) {
	for _, info := range Modes {
		if info.Mode == m {
			return info, true
		}
	}
	return ModeInfo{}, false
}

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := m.Info(); !ok {
		return "", fmt.Errorf("game: unknown mode %q (want hvh, random, ai or aivai)", s)
	}
	return m, nil
}

// Setup holds what is needed to create the players of a mode.
type Setup struct {
	Mode   Mode
	Config config.Config
	Seed   int64
	Input  io.Reader // Shared by human players
	Output io.Writer // Prompts of human players
}

// NewPlayers creates both players of s.Mode through the registry. Two
// players ending up with the same name get a numeric suffix on the second,
// so results stay attributable.
func NewPlayers(s Setup) (p1, p2 registry.Player, err error) {
	info, ok := s.Mode.Info()
	if !ok {
		return nil, nil, fmt.Errorf("game: unknown mode %q", s.Mode)
	}

	names := [2]string{s.Config.Game.Player1, s.Config.Game.Player2}
	var created [2]registry.Player
	for i, kind := range info.Kinds {
		seat := core.PlayerID(i)
		opts := s.options(seat, names[i])
		p, err := registry.Create(kind, opts)
		if err != nil {
			return nil, nil, err
		}
		created[i] = p
	}

	if created[0].Name() == created[1].Name() {
		opts := s.options(core.Player2, created[1].Name()+" 2")
		p, err := registry.Create(info.Kinds[1], opts)
		if err != nil {
			return nil, nil, err
		}
		created[1] = p
	}

	return created[0], created[1], nil
}

func (s Setup) options(seat core.PlayerID, name string) registry.Options {
	return registry.Options{
		Name:    name,
		Seat:    seat,
		Seed:    s.Seed + int64(seat) + 1,
		Depth:   s.Config.AI.Depth,
		Eval:    s.Config.AI.Evaluation,
		Opening: s.Config.AI.Opening,
		Workers: s.Config.AI.Workers,
		Input:   s.Input,
		Output:  s.Output,
	}
}

// MatchConfig returns the match settings derived from cfg.
func MatchConfig(cfg config.Config, seed int64) Config {
	return Config{
		Width:       cfg.Board.Width,
		RandomStart: cfg.Game.RandomStart,
		Seed:        seed,
	}
}
