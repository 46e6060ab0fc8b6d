package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JPatryk13/triangle-game/internal/ai"
	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/game"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuAdjustsValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.Width = 19
	m := NewMenuModel(cfg, 100, 30)

	// Cursor starts on Start; two rows up is Width.
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 3; i++ {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.BoardWidth() != MaxMenuWidth {
		t.Errorf("width = %d, expected the %d cap", m.BoardWidth(), MaxMenuWidth)
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.BoardWidth() != 19 {
		t.Errorf("width = %d, expected 19", m.BoardWidth())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Mode() != game.Modes[len(game.Modes)-1].Mode {
		t.Errorf("mode = %q, expected wrap to the last mode", m.Mode())
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Preset() != config.DifficultyHard {
		t.Errorf("preset = %q, expected hard", m.Preset())
	}

	applied := m.Apply(cfg)
	if applied.Board.Width != 19 || applied.AI.Evaluation != string(ai.EvalDifferential) {
		t.Errorf("Apply() = %+v", applied)
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuResult
	}{
		{"start", tea.KeyMsg{Type: tea.KeyEnter}, MenuResult{Mode: game.ModeHumanVsHuman, Width: 11, Preset: config.DifficultyNormal}},
		{"scores", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{Mode: game.ModeHumanVsHuman, Width: 11, Preset: config.DifficultyNormal, WantsScoreboard: true}},
		{"quit", runeKey("q"), MenuResult{Mode: game.ModeHumanVsHuman, Width: 11, Preset: config.DifficultyNormal, Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuUpdate(t, NewMenuModel(config.DefaultConfig(), 100, 30), tt.msg)
			if got := m.result(); got != tt.want {
				t.Errorf("result() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(config.DefaultConfig(), 100, 30).View()
	for _, want := range []string{"T R I A N G L E", "Width:", "Start", "Scores"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	env := testEnv(3)
	var m tea.Model = NewSessionModel(env)

	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		m, _ = m.Update(msg)
		return m.(SessionModel)
	}

	s := step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.gameModel == nil {
		t.Fatal("start did not open a game")
	}

	s = step(runeKey("b"))
	if s.screen != screenMenu {
		t.Fatal("back did not return to the menu")
	}

	s = step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(s.View(), "disabled") {
		t.Error("scoreboard without a store should say history is disabled")
	}

	s = step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatal("esc did not leave the scoreboard")
	}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("q in the menu should quit")
	}
}
