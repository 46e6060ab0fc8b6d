package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/JPatryk13/triangle-game/internal/ai"
	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/game"
	"github.com/JPatryk13/triangle-game/internal/registry"
	"github.com/JPatryk13/triangle-game/internal/storage"
)

// Env is shared by every screen of a session.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables match history
	Logger  *log.Logger    // nil discards
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// GameModel is the Bubble Tea model for one match: a board with a cursor
// for human players and scheduled searches for computer players.
type GameModel struct {
	env        Env
	mode       game.Mode
	match      *game.Match
	screen     *core.Screen
	keyMapper  *KeyMapper
	cursor     board.Coord
	scoredBy   map[board.Coord]core.PlayerID
	gen        int  // Bumped on restart so stale computer moves are dropped
	thinking   bool // A computer move is scheduled or being searched
	message    string
	hint       string
	saved      bool
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a match of the given mode.
func NewGameModel(env Env, mode game.Mode) (GameModel, error) {
	seed := env.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Human players never read from these: the model collects their moves.
	p1, p2, err := game.NewPlayers(game.Setup{
		Mode:   mode,
		Config: env.Config,
		Seed:   seed,
		Input:  strings.NewReader(""),
		Output: io.Discard,
	})
	if err != nil {
		return GameModel{}, err
	}

	match, err := game.New(game.MatchConfig(env.Config, seed), p1, p2, env.logger())
	if err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		env:       env,
		mode:      mode,
		match:     match,
		screen:    core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		keyMapper: NewKeyMapper(),
	}
	m.reset()
	m.scheduleComputer()
	return m, nil
}

func (m *GameModel) reset() {
	b := m.match.Board()
	m.cursor = board.At(b.Height()-1, (b.Width()-1)/2)
	m.scoredBy = make(map[board.Coord]core.PlayerID)
	m.message = ""
	m.hint = ""
	m.saved = false
}

// scheduleComputer marks a computer turn as pending and returns the
// command that starts it, or nil when a human is to move.
func (m *GameModel) scheduleComputer() tea.Cmd {
	if m.match.Over() || registry.IsInteractive(m.match.Player(m.match.Current())) {
		m.thinking = false
		return nil
	}
	m.thinking = true
	return turnCmd(m.gen, m.env.Config.AI.Delay())
}

// Init starts the first computer turn if a computer opens the match.
func (m GameModel) Init() tea.Cmd {
	if m.thinking {
		return turnCmd(m.gen, m.env.Config.AI.Delay())
	}
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.env.Runtime.ScreenW = msg.Width
		m.env.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TurnMsg:
		if msg.Gen != m.gen || !m.thinking || m.match.Over() {
			return m, nil
		}
		seat := m.match.Current()
		return m, proposeCmd(m.gen, m.match.Player(seat), m.match.Board().Clone(), seat)

	case ProposalMsg:
		if msg.Gen != m.gen || !m.thinking {
			return m, nil
		}
		m.thinking = false
		if msg.Err != nil {
			m.message = "Computer player failed: " + msg.Err.Error()
			m.env.logger().Error("proposal failed", "error", msg.Err)
			return m, nil
		}
		return m.play(msg.Coord)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.hint = m.computeHint()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		m.gen++
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if !m.match.Over() {
			return m, nil
		}
		if err := m.match.Restart(); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.gen++
		m.reset()
		return m, m.scheduleComputer()

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = moveCursor(m.match.Board().Geometry(), m.cursor, action)
		return m, nil

	case core.ActionClaim:
		if m.match.Over() || m.thinking || !registry.IsInteractive(m.match.Player(m.match.Current())) {
			return m, nil
		}
		return m.play(m.cursor)
	}

	return m, nil
}

// play applies c for the current player and schedules the next computer
// turn if there is one.
func (m GameModel) play(c board.Coord) (tea.Model, tea.Cmd) {
	turn, err := m.match.Play(c)
	if errors.Is(err, board.ErrMoveRejected) {
		m.message = fmt.Sprintf("Field %s is not available.", c)
		return m, m.scheduleComputer()
	}
	if err != nil {
		m.message = err.Error()
		return m, nil
	}

	for _, sc := range turn.Outcome.Scored() {
		m.scoredBy[sc] = turn.Player
	}
	m.message = describeTurn(turn)
	m.hint = ""

	if turn.Terminal {
		m.saveResult()
	}
	return m, m.scheduleComputer()
}

func (m *GameModel) saveResult() {
	if m.saved {
		return
	}
	m.saved = true
	if m.env.Store == nil {
		return
	}
	res, ok := m.match.Result()
	if !ok {
		return
	}
	if _, err := m.env.Store.SaveMatch(game.Record(m.mode, m.env.Config.Board.Width, res)); err != nil {
		m.env.logger().Warn("could not save match", "error", err)
	}
}

func (m GameModel) computeHint() string {
	if m.match.Over() || m.thinking {
		return ""
	}
	depth := min(m.env.Config.AI.Depth, 2)
	res, err := ai.Search(m.match.Board().Clone(), m.match.Current(), ai.Options{Depth: depth, Eval: m.env.Config.Eval()})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Hint: %s looks best (value %d at depth %d)", res.Move, res.Value, depth)
}

func describeTurn(t game.Turn) string {
	s := fmt.Sprintf("%s claimed %s", t.Name, t.Coord)
	if t.Outcome.Points == 0 {
		return s + "."
	}
	lines := make([]string, 0, 4)
	for _, d := range t.Outcome.Completed() {
		lines = append(lines, d.String())
	}
	return fmt.Sprintf("%s and cleared %s for %d points!", s, strings.Join(lines, " + "), t.Outcome.Points)
}

// moveCursor steps the cursor over inside cells. Moving between rows keeps
// the column when possible and clamps it to the new row otherwise.
func moveCursor(g board.Geometry, c board.Coord, a core.Action) board.Coord {
	next := c
	switch a {
	case core.ActionLeft:
		next.Col--
	case core.ActionRight:
		next.Col++
	case core.ActionUp:
		next.Row--
	case core.ActionDown:
		next.Row++
	}

	if next.Row < 0 || next.Row >= g.Height() {
		return c
	}
	start, end := g.RowSpan(next.Row)
	if a == core.ActionLeft || a == core.ActionRight {
		if next.Col < start || next.Col >= end {
			return c
		}
		return next
	}
	next.Col = core.Clamp(next.Col, start, end-1)
	return next
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

func (m GameModel) draw() {
	s := m.screen
	s.Clear()
	b := m.match.Board()

	bw, bh := BoardSize(b.Width(), b.Height())
	frame := core.NewRect((s.Width()-bw)/2-2, 3, bw+4, bh+2)
	// Frame, three text lines below it and the help line must fit.
	if !core.NewRect(0, 0, s.Width(), s.Height()-1).Contains(frame.Right()-1, frame.Bottom()+2) || frame.X < 0 {
		s.DrawTextCentered(s.Height()/2, "Terminal too small for this board")
		return
	}

	s.DrawTextCentered(0, "T R I A N G L E")
	m.drawScores(2)
	s.DrawBox(frame)

	layout := BoardLayout{OriginX: frame.X + 2, OriginY: frame.Y + 1}
	view := BoardView{
		Cursor:     m.cursor,
		ShowCursor: !m.match.Over() && registry.IsInteractive(m.match.Player(m.match.Current())),
		ScoredBy:   m.scoredBy,
	}
	if last, ok := m.match.LastTurn(); ok {
		view.LastMove = &last.Coord
	}
	DrawBoard(s, b, layout, view)

	y := frame.Bottom()
	if m.message != "" {
		s.DrawTextCentered(y, m.message)
	}
	s.DrawTextCentered(y+1, m.status())
	if m.hint != "" {
		s.DrawTextColored((s.Width()-len(m.hint))/2, y+2, m.hint, core.ColorGreen)
	}

	help := "Arrows: move  Enter/Space: claim  ?: hint  B: menu  Q: quit"
	if m.match.Over() {
		help = "R: play again  B: menu  Q: quit"
	}
	s.DrawTextColored((s.Width()-len(help))/2, s.Height()-1, help, core.ColorGray)
}

func (m GameModel) drawScores(y int) {
	scores := m.match.Scores()
	parts := make([]string, 2)
	for i := 0; i < 2; i++ {
		seat := core.PlayerID(i)
		marker := "  "
		if !m.match.Over() && m.match.Current() == seat {
			marker = "> "
		}
		parts[i] = fmt.Sprintf("%s%s: %d", marker, m.match.Player(seat).Name(), scores[i])
	}
	const gap = "      "
	x := (m.screen.Width() - len(parts[0]) - len(gap) - len(parts[1])) / 2
	m.screen.DrawTextColored(x, y, parts[0], seatColors[0])
	m.screen.DrawTextColored(x+len(parts[0])+len(gap), y, parts[1], seatColors[1])
}

func (m GameModel) status() string {
	if res, ok := m.match.Result(); ok {
		if res.Draw {
			return fmt.Sprintf("Draw at %d points each!", res.Scores[0])
		}
		loser := res.Winner.Opponent()
		return fmt.Sprintf("%s wins %d to %d!", res.WinnerName(), res.Scores[res.Winner.Index()], res.Scores[loser.Index()])
	}
	p := m.match.Player(m.match.Current())
	if m.thinking {
		return p.Name() + " is thinking..."
	}
	return p.Name() + "'s turn"
}

// Match returns the underlying match.
func (m GameModel) Match() *game.Match { return m.match }

// Cursor returns the cursor position.
func (m GameModel) Cursor() board.Coord { return m.cursor }

// Thinking reports whether a computer move is pending.
func (m GameModel) Thinking() bool { return m.thinking }

// Message returns the last status message.
func (m GameModel) Message() string { return m.message }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run starts a standalone Bubble Tea program for one mode.
func Run(env Env, mode game.Mode) error {
	model, err := NewGameModel(env, mode)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err = p.Run()
	return err
}
