package game

import (
	"context"
	"errors"
	"testing"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
	"github.com/JPatryk13/triangle-game/internal/players/random"
)

// scripted proposes a fixed list of moves, then the first open cell.
type scripted struct {
	name  string
	moves []board.Coord
	seen  []*board.Board
}

func (s *scripted) Name() string { return s.name }

func (s *scripted) Propose(_ context.Context, b *board.Board, _ core.PlayerID) (board.Coord, error) {
	s.seen = append(s.seen, b)
	if len(s.moves) > 0 {
		c := s.moves[0]
		s.moves = s.moves[1:]
		return c, nil
	}
	return b.Open()[0], nil
}

func newMatch(t *testing.T, width int, p1, p2 registry.Player) *Match {
	t.Helper()
	m, err := New(Config{Width: width}, p1, p2, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewRejectsBadWidth(t *testing.T) {
	_, err := New(Config{Width: 4}, &scripted{}, &scripted{}, nil)
	if !errors.Is(err, board.ErrInvalidWidth) {
		t.Fatalf("New err = %v, want ErrInvalidWidth", err)
	}
	if _, err := New(Config{Width: 3}, nil, &scripted{}, nil); err == nil {
		t.Fatal("New accepted a nil player")
	}
}

func TestPlayAlternatesAndTracksEachPlayer(t *testing.T) {
	m := newMatch(t, 5, &scripted{name: "A"}, &scripted{name: "B"})

	var sums [2]int
	want := core.Player1
	for !m.Over() {
		if m.Current() != want {
			t.Fatalf("Current = %v, want %v", m.Current(), want)
		}
		turn, err := m.Play(m.Board().Open()[0])
		if err != nil {
			t.Fatalf("Play: %v", err)
		}
		if turn.Player != want {
			t.Fatalf("turn.Player = %v, want %v", turn.Player, want)
		}
		sums[want.Index()] += turn.Outcome.Points
		if turn.Total != sums[want.Index()] {
			t.Fatalf("turn %d: Total = %d, want mover's own total %d", turn.Number, turn.Total, sums[want.Index()])
		}
		want = want.Opponent()
	}

	if m.Scores() != sums {
		t.Fatalf("Scores = %v, want %v", m.Scores(), sums)
	}
	res, ok := m.Result()
	if !ok {
		t.Fatal("Result not available on a finished match")
	}
	if res.Moves != 9 || len(m.History()) != 9 {
		t.Fatalf("Moves = %d, history %d, want 9", res.Moves, len(m.History()))
	}
	if res.Names != [2]string{"A", "B"} {
		t.Fatalf("Names = %v", res.Names)
	}
	switch {
	case sums[0] == sums[1]:
		if !res.Draw {
			t.Fatal("equal scores not reported as a draw")
		}
	case sums[0] > sums[1]:
		if res.Draw || res.Winner != core.Player1 {
			t.Fatalf("result %+v, want player one winning", res)
		}
	default:
		if res.Draw || res.Winner != core.Player2 {
			t.Fatalf("result %+v, want player two winning", res)
		}
	}
}

func TestSingleCellMatch(t *testing.T) {
	m := newMatch(t, 1, &scripted{name: "A"}, &scripted{name: "B"})
	turn, err := m.Play(board.At(0, 0))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !turn.Terminal || turn.Total != 4 || turn.Outcome.Points != 4 {
		t.Fatalf("turn = %+v, want terminal with 4 points", turn)
	}
	res, _ := m.Result()
	if res.Draw || res.WinnerName() != "A" {
		t.Fatalf("result = %+v, want A winning", res)
	}
	if _, err := m.Play(board.At(0, 0)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Play after end: err = %v, want ErrGameOver", err)
	}
	if _, err := m.Step(context.Background()); !errors.Is(err, ErrGameOver) {
		t.Fatalf("Step after end: err = %v, want ErrGameOver", err)
	}
}

func TestRejectedMoveKeepsTurn(t *testing.T) {
	m := newMatch(t, 3, &scripted{}, &scripted{})
	if _, err := m.Play(board.At(1, 1)); err != nil {
		t.Fatal(err)
	}

	for _, c := range []board.Coord{board.At(1, 1), board.At(0, 0), board.At(5, 5)} {
		if _, err := m.Play(c); !errors.Is(err, board.ErrMoveRejected) {
			t.Fatalf("Play(%v) err = %v, want ErrMoveRejected", c, err)
		}
	}
	if m.Current() != core.Player2 || len(m.History()) != 1 {
		t.Fatalf("rejected moves changed the match: current %v, history %d", m.Current(), len(m.History()))
	}
	if _, ok := m.Result(); ok {
		t.Fatal("Result available while running")
	}
}

func TestStepGivesPlayersAClone(t *testing.T) {
	p1 := &scripted{name: "A"}
	m := newMatch(t, 3, p1, &scripted{name: "B"})
	if _, err := m.Step(context.Background()); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if p1.seen[0] == m.Board() {
		t.Fatal("player received the live board")
	}
	// Scribbling on the clone must not reach the match.
	if _, err := p1.seen[0].Play(board.At(1, 2)); err != nil {
		t.Fatal(err)
	}
	if !m.Board().IsOpen(board.At(1, 2)) {
		t.Fatal("player's board shares state with the match")
	}
}

func TestRunRetriesRejectedMoves(t *testing.T) {
	p1 := &scripted{name: "A", moves: []board.Coord{board.At(1, 0)}}
	p2 := &scripted{name: "B", moves: []board.Coord{board.At(1, 0), board.At(0, 0), board.At(1, 2)}}
	m := newMatch(t, 3, p1, p2)

	var turns []Turn
	res, err := m.Run(context.Background(), func(t Turn) { turns = append(turns, t) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Moves != 4 || len(turns) != 4 {
		t.Fatalf("Moves = %d, callbacks %d, want 4", res.Moves, len(turns))
	}
	if turns[1].Player != core.Player2 || turns[1].Coord != board.At(1, 2) {
		t.Fatalf("second turn = %+v, want player two at (1,2)", turns[1])
	}
}

func TestRunWithRandomPlayers(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		p1 := random.New(registry.Options{Seed: seed, Seat: core.Player1})
		p2 := random.New(registry.Options{Seed: seed + 100, Seat: core.Player2})
		m := newMatch(t, 7, p1, p2)
		res, err := m.Run(context.Background(), nil)
		if err != nil {
			t.Fatalf("seed %d: Run: %v", seed, err)
		}
		if res.Moves != 16 {
			t.Fatalf("seed %d: Moves = %d, want 16", seed, res.Moves)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := newMatch(t, 3, random.New(registry.Options{}), random.New(registry.Options{}))
	if _, err := m.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
}

func TestRandomStart(t *testing.T) {
	seen := map[core.PlayerID]bool{}
	for seed := int64(0); seed < 32; seed++ {
		cfg := Config{Width: 3, RandomStart: true, Seed: seed}
		a, err := New(cfg, &scripted{}, &scripted{}, nil)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := New(cfg, &scripted{}, &scripted{}, nil)
		if a.First() != b.First() {
			t.Fatalf("seed %d: first mover not deterministic", seed)
		}
		if a.Current() != a.First() {
			t.Fatalf("seed %d: current %v, first %v", seed, a.Current(), a.First())
		}
		seen[a.First()] = true
	}
	if !seen[core.Player1] || !seen[core.Player2] {
		t.Fatalf("random start only ever picked %v", seen)
	}
}

func TestRestart(t *testing.T) {
	m := newMatch(t, 3, &scripted{}, &scripted{})
	if _, err := m.Play(board.At(1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := m.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if m.Board().OpenCount() != 4 || len(m.History()) != 0 || m.Scores() != [2]int{} {
		t.Fatal("Restart did not reset the match")
	}
	if _, ok := m.LastTurn(); ok {
		t.Fatal("LastTurn after Restart")
	}
}

func TestRecord(t *testing.T) {
	res := Result{
		Names:  [2]string{"A", "B"},
		Scores: [2]int{3, 9},
		Winner: core.Player2,
		Moves:  9,
	}
	rec := Record(ModeVsAI, 5, res)
	if rec.Winner != "B" || rec.Score2 != 9 || rec.Mode != "ai" || rec.Width != 5 {
		t.Fatalf("Record = %+v", rec)
	}
	res.Draw = true
	if rec := Record(ModeHumanVsHuman, 5, res); rec.Winner != "" {
		t.Fatalf("draw recorded with winner %q", rec.Winner)
	}
}
