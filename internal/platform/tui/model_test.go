package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/game"
	"github.com/JPatryk13/triangle-game/internal/storage"

	_ "github.com/JPatryk13/triangle-game/internal/players/human"
	_ "github.com/JPatryk13/triangle-game/internal/players/minimax"
	_ "github.com/JPatryk13/triangle-game/internal/players/random"
)

func testEnv(width int) Env {
	cfg := config.DefaultConfig()
	cfg.Board.Width = width
	cfg.AI.DelayMS = 0
	cfg.AI.Depth = 2
	return Env{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
	}
}

func newModel(t *testing.T, env Env, mode game.Mode) GameModel {
	t.Helper()
	m, err := NewGameModel(env, mode)
	if err != nil {
		t.Fatalf("NewGameModel() error: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// drive feeds the model's commands back into it until none is left.
func drive(t *testing.T, m GameModel, cmd tea.Cmd) GameModel {
	t.Helper()
	for i := 0; i < 200; i++ {
		if cmd == nil {
			return m
		}
		m, cmd = update(t, m, cmd())
	}
	t.Fatal("model never settled")
	return m
}

func TestGameModelHumanClaims(t *testing.T) {
	m := newModel(t, testEnv(3), game.ModeHumanVsHuman)

	if m.Init() != nil {
		t.Error("human opener should not schedule a computer turn")
	}
	if got := m.Cursor(); got != board.At(1, 1) {
		t.Fatalf("initial cursor = %v, expected bottom middle", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Match().Board().State(board.At(1, 1)) != board.Claimed {
		t.Fatal("enter did not claim the cursor cell")
	}
	if m.Match().Current() != core.Player2 {
		t.Errorf("current = %v, expected player two", m.Match().Current())
	}

	// Claiming the same cell again is rejected and keeps the turn.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Match().Current() != core.Player2 {
		t.Error("rejected claim changed the turn")
	}
	if !strings.Contains(m.Message(), "not available") {
		t.Errorf("message = %q, expected a rejection", m.Message())
	}
}

func TestGameModelCursorMovement(t *testing.T) {
	m := newModel(t, testEnv(5), game.ModeHumanVsHuman)

	steps := []struct {
		key  tea.KeyMsg
		want board.Coord
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, board.At(2, 1)},
		{tea.KeyMsg{Type: tea.KeyLeft}, board.At(2, 0)},
		{tea.KeyMsg{Type: tea.KeyLeft}, board.At(2, 0)}, // Edge of the row
		{tea.KeyMsg{Type: tea.KeyUp}, board.At(1, 1)},   // Clamped into the shorter row
		{tea.KeyMsg{Type: tea.KeyUp}, board.At(0, 2)},
		{tea.KeyMsg{Type: tea.KeyUp}, board.At(0, 2)}, // Top
		{tea.KeyMsg{Type: tea.KeyDown}, board.At(1, 2)},
		{tea.KeyMsg{Type: tea.KeyRight}, board.At(1, 3)},
		{tea.KeyMsg{Type: tea.KeyRight}, board.At(1, 3)},
		{tea.KeyMsg{Type: tea.KeyDown}, board.At(2, 3)},
		{tea.KeyMsg{Type: tea.KeyDown}, board.At(2, 3)}, // Bottom
	}

	for i, s := range steps {
		m, _ = update(t, m, s.key)
		if got := m.Cursor(); got != s.want {
			t.Fatalf("step %d (%s): cursor = %v, expected %v", i, s.key.String(), got, s.want)
		}
	}
}

func TestGameModelComputerTurn(t *testing.T) {
	m := newModel(t, testEnv(3), game.ModeVsAI)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Thinking() || cmd == nil {
		t.Fatal("human move should schedule the computer")
	}

	// Input is ignored while the computer thinks.
	before := m.Match().Board().OpenCount()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Match().Board().OpenCount() != before {
		t.Fatal("claim accepted while the computer was thinking")
	}

	m = drive(t, m, cmd)
	if m.Thinking() {
		t.Error("still thinking after the proposal was applied")
	}
	if got := m.Match().Board().OpenCount(); got != before-1 {
		t.Errorf("open cells = %d, expected %d", got, before-1)
	}
	if m.Match().Current() != core.Player1 {
		t.Error("turn did not return to the human")
	}
}

func TestGameModelDropsStaleProposals(t *testing.T) {
	m := newModel(t, testEnv(3), game.ModeVsAI)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	before := m.Match().Board().OpenCount()
	m, _ = update(t, m, ProposalMsg{Gen: m.gen + 1, Coord: board.At(1, 0)})
	m, _ = update(t, m, TurnMsg{Gen: m.gen + 1})
	if m.Match().Board().OpenCount() != before || !m.Thinking() {
		t.Error("stale messages changed the game")
	}
}

func TestGameModelAIVsAIFinishesAndSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	env := testEnv(5)
	env.Store = store
	m := newModel(t, env, game.ModeAIVsAI)

	m = drive(t, m, m.Init())
	if !m.Match().Over() {
		t.Fatal("match did not finish")
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("saved %d matches, expected 1", len(matches))
	}
	res, _ := m.Match().Result()
	if matches[0].Score1 != res.Scores[0] || matches[0].Score2 != res.Scores[1] || matches[0].Mode != "aivai" {
		t.Errorf("saved %+v, expected scores %v in aivai", matches[0], res.Scores)
	}

	// Restart clears the board and plays again.
	m, cmd := update(t, m, runeKey("r"))
	if m.Match().Over() {
		t.Fatal("restart did not reset the match")
	}
	m = drive(t, m, cmd)
	if !m.Match().Over() {
		t.Fatal("second match did not finish")
	}
	if matches, _ = store.RecentMatches(10); len(matches) != 2 {
		t.Errorf("saved %d matches after restart, expected 2", len(matches))
	}
}

func TestGameModelSingleCellGame(t *testing.T) {
	m := newModel(t, testEnv(1), game.ModeHumanVsHuman)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Match().Over() {
		t.Fatal("single cell board should end after one move")
	}
	if got := m.Match().Scores(); got[0] != 4 {
		t.Errorf("scores = %v, expected 4 for player one", got)
	}
	if !strings.Contains(m.Message(), "4 points") {
		t.Errorf("message = %q, expected the combo points", m.Message())
	}
	if !strings.Contains(m.View(), "wins 4 to 0") {
		t.Error("view does not show the result")
	}
}

func TestGameModelHintAndBack(t *testing.T) {
	m := newModel(t, testEnv(3), game.ModeHumanVsHuman)

	m, _ = update(t, m, runeKey("?"))
	if !strings.Contains(m.View(), "Hint:") {
		t.Error("hint not shown")
	}

	m, cmd := update(t, m, runeKey("b"))
	if !m.BackToMenu() || cmd != nil {
		t.Error("back should return to the menu without quitting")
	}

	m, cmd = update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelTooSmall(t *testing.T) {
	m := newModel(t, testEnv(21), game.ModeHumanVsHuman)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "too small") {
		t.Error("expected a too small notice")
	}
}
