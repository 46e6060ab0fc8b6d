// Package game runs a match between two players: it alternates turns,
// applies moves to the board, credits combo points and reports the result.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
	"github.com/JPatryk13/triangle-game/internal/score"
)

// ErrGameOver is returned when a move is submitted after the last cell was claimed.
var ErrGameOver = errors.New("game: match is over")

// Config holds the settings a match is created with.
type Config struct {
	Width       int
	RandomStart bool  // Pick the first mover at random instead of player one
	Seed        int64 // Seeds the first-mover choice
}

// Turn reports one accepted move.
type Turn struct {
	Number   int // 1-based move number
	Player   core.PlayerID
	Name     string
	Coord    board.Coord
	Outcome  board.Outcome
	Total    int // Mover's total after this move
	Terminal bool
}

// Result is the outcome of a finished match.
type Result struct {
	Names    [2]string
	Scores   [2]int
	Winner   core.PlayerID // Meaningless when Draw is set
	Draw     bool
	Moves    int
	First    core.PlayerID
	Duration time.Duration
}

// WinnerName returns the winner's display name, or "" for a draw.
func (r Result) WinnerName() string {
	if r.Draw {
		return ""
	}
	return r.Names[r.Winner.Index()]
}

// Match is a single game between two players. It is not safe for
// concurrent use.
type Match struct {
	cfg     Config
	rng     *rand.Rand
	board   *board.Board
	tracker *score.Tracker
	players [2]registry.Player
	first   core.PlayerID
	current core.PlayerID
	history []Turn
	started time.Time
	ended   time.Time
	log     *log.Logger
}

// New creates a match on a fresh board. A nil logger discards output.
func New(cfg Config, p1, p2 registry.Player, logger *log.Logger) (*Match, error) {
	if p1 == nil || p2 == nil {
		return nil, errors.New("game: both players are required")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Match{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		tracker: score.NewTracker(),
		players: [2]registry.Player{p1, p2},
		log:     logger,
	}
	if err := m.Restart(); err != nil {
		return nil, err
	}
	return m, nil
}

// Restart clears the board and scores and picks the first mover again.
func (m *Match) Restart() error {
	b, err := board.New(m.cfg.Width)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	m.board = b
	m.tracker.Reset()
	m.history = nil
	m.first = core.Player1
	if m.cfg.RandomStart && m.rng.Intn(2) == 1 {
		m.first = core.Player2
	}
	m.current = m.first
	m.started = time.Now()
	m.ended = time.Time{}

	m.log.Debug("match started",
		"width", m.cfg.Width,
		"player1", m.players[0].Name(),
		"player2", m.players[1].Name(),
		"first", m.first)
	return nil
}

// Board returns the live board. Callers must not modify it; use Clone for
// hypothetical moves.
func (m *Match) Board() *board.Board { return m.board }

// Current returns the seat whose turn it is.
func (m *Match) Current() core.PlayerID { return m.current }

// First returns the seat that opened the match.
func (m *Match) First() core.PlayerID { return m.first }

// Player returns the player in seat id.
func (m *Match) Player(id core.PlayerID) registry.Player { return m.players[id.Index()] }

// Scores returns both totals indexed by seat.
func (m *Match) Scores() [2]int {
	return [2]int{m.tracker.Total(core.Player1), m.tracker.Total(core.Player2)}
}

// History returns a copy of the accepted turns so far.
func (m *Match) History() []Turn {
	out := make([]Turn, len(m.history))
	copy(out, m.history)
	return out
}

// LastTurn returns the most recent turn, if any.
func (m *Match) LastTurn() (Turn, bool) {
	if len(m.history) == 0 {
		return Turn{}, false
	}
	return m.history[len(m.history)-1], true
}

// Over reports whether every cell has been claimed.
func (m *Match) Over() bool { return m.board.Terminal() }

// Play claims c for the current player. A rejected move leaves the match
// unchanged and the same player to move.
func (m *Match) Play(c board.Coord) (Turn, error) {
	if m.board.Terminal() {
		return Turn{}, ErrGameOver
	}

	out, err := m.board.Play(c)
	if err != nil {
		return Turn{}, err
	}

	mover := m.current
	total := m.tracker.Add(mover, out.Points)
	turn := Turn{
		Number:   len(m.history) + 1,
		Player:   mover,
		Name:     m.players[mover.Index()].Name(),
		Coord:    c,
		Outcome:  out,
		Total:    total,
		Terminal: m.board.Terminal(),
	}
	m.history = append(m.history, turn)
	m.current = mover.Opponent()

	m.log.Debug("move played",
		"player", turn.Name,
		"coord", c,
		"points", out.Points,
		"total", total)
	if out.Combo() {
		m.log.Debug("combo", "player", turn.Name, "lines", out.Completed())
	}

	if turn.Terminal {
		m.ended = time.Now()
		res, _ := m.Result()
		m.log.Info("match finished",
			"player1", res.Names[0],
			"score1", res.Scores[0],
			"player2", res.Names[1],
			"score2", res.Scores[1],
			"draw", res.Draw,
			"moves", res.Moves)
	}
	return turn, nil
}

// Step asks the current player for a move and plays it. The player sees a
// clone of the board. A rejected proposal is returned unchanged so the
// caller can ask again.
func (m *Match) Step(ctx context.Context) (Turn, error) {
	if m.board.Terminal() {
		return Turn{}, ErrGameOver
	}
	p := m.players[m.current.Index()]
	c, err := p.Propose(ctx, m.board.Clone(), m.current)
	if err != nil {
		return Turn{}, fmt.Errorf("game: %s: %w", p.Name(), err)
	}
	return m.Play(c)
}

// Run steps until the match is over. onTurn, when set, is called after
// each accepted move. Rejected moves are retried, other errors stop the run.
func (m *Match) Run(ctx context.Context, onTurn func(Turn)) (Result, error) {
	for !m.board.Terminal() {
		turn, err := m.Step(ctx)
		if errors.Is(err, board.ErrMoveRejected) {
			m.log.Warn("move rejected", "player", m.players[m.current.Index()].Name(), "error", err)
			continue
		}
		if err != nil {
			return Result{}, err
		}
		if onTurn != nil {
			onTurn(turn)
		}
	}
	res, _ := m.Result()
	return res, nil
}

// Result returns the final result. ok is false while the match is running.
func (m *Match) Result() (res Result, ok bool) {
	if !m.board.Terminal() {
		return Result{}, false
	}
	winner, draw := m.tracker.Leader()
	return Result{
		Names:    [2]string{m.players[0].Name(), m.players[1].Name()},
		Scores:   m.Scores(),
		Winner:   winner,
		Draw:     draw,
		Moves:    len(m.history),
		First:    m.first,
		Duration: m.ended.Sub(m.started),
	}, true
}
