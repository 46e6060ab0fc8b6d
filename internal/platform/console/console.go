package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/game"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// Console drives matches over a pair of text streams.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	log   *log.Logger
	store game.Recorder
	delay time.Duration
}

// Option configures a Console.
type Option func(*Console)

// WithRecorder saves every finished match. Failures are logged, not returned.
func WithRecorder(r game.Recorder) Option {
	return func(c *Console) { c.store = r }
}

// WithDelay pauses before each computer move so it can be followed.
func WithDelay(d time.Duration) Option {
	return func(c *Console) { c.delay = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) { c.log = l }
}

// New creates a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	r, ok := in.(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(in)
	}
	c := &Console{in: r, out: out, log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input returns the buffered input stream. Human players must share it
// with the console so no typed line is lost between them.
func (c *Console) Input() *bufio.Reader { return c.in }

// Output returns the output stream.
func (c *Console) Output() io.Writer { return c.out }

// Play runs m to completion, printing the scores and the board before
// every move and the result at the end. Proposals rejected by the board
// are reported and asked for again.
func (c *Console) Play(ctx context.Context, m *game.Match) (game.Result, error) {
	for !m.Over() {
		RenderScores(c.out, m)
		RenderBoard(c.out, m.Board())

		p := m.Player(m.Current())
		interactive := registry.IsInteractive(p)
		if !interactive && c.delay > 0 {
			if err := sleep(ctx, c.delay); err != nil {
				return game.Result{}, err
			}
		}

		turn, err := c.step(ctx, m)
		if err != nil {
			return game.Result{}, err
		}
		if !interactive {
			fmt.Fprintf(c.out, "%s's move: %s\n", turn.Name, turn.Coord)
		}
	}

	res, _ := m.Result()
	RenderScores(c.out, m)
	RenderBoard(c.out, m.Board())
	RenderResult(c.out, res)
	return res, nil
}

func (c *Console) step(ctx context.Context, m *game.Match) (game.Turn, error) {
	for {
		turn, err := m.Step(ctx)
		if errors.Is(err, board.ErrMoveRejected) {
			fmt.Fprintln(c.out, "The field coordinates do not match any allowed field.")
			continue
		}
		return turn, err
	}
}

// Menu runs the numbered text menu until Exit is chosen or input ends.
func (c *Console) Menu(ctx context.Context, cfg config.Config, seed int64) error {
	for {
		fmt.Fprint(c.out, "1. New Game\n2. About\n3. Exit\n")
		choice, err := c.prompt("Choose menu entry (1-3): ")
		if err != nil {
			return eofIsExit(err)
		}

		switch choice {
		case "1":
			if err := c.newGame(ctx, cfg, seed); err != nil {
				return eofIsExit(err)
			}
			seed++
		case "2":
			RenderRules(c.out)
		case "3":
			return nil
		default:
			fmt.Fprintln(c.out, "Wrong input.")
		}
	}
}

func (c *Console) newGame(ctx context.Context, cfg config.Config, seed int64) error {
	var mode game.Mode
	for mode == "" {
		for i, info := range game.Modes {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, info.Title)
		}
		fmt.Fprintf(c.out, "\n%d. Go back to menu\n", len(game.Modes)+1)

		choice, err := c.prompt("Choose type of the game: ")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(choice)
		switch {
		case err == nil && n == len(game.Modes)+1:
			return nil
		case err == nil && n >= 1 && n <= len(game.Modes):
			mode = game.Modes[n-1].Mode
		default:
			fmt.Fprintln(c.out, "Wrong input.")
		}
	}

	info, _ := mode.Info()
	names := []*string{&cfg.Game.Player1, &cfg.Game.Player2}
	for i, kind := range info.Kinds {
		if kind != "human" {
			continue
		}
		name, err := c.prompt(fmt.Sprintf("Set name for the player number %d: ", i+1))
		if err != nil {
			return err
		}
		*names[i] = name
	}

	width, err := c.askWidth()
	if err != nil {
		return err
	}
	cfg.Board.Width = width

	p1, p2, err := game.NewPlayers(game.Setup{
		Mode:   mode,
		Config: cfg,
		Seed:   seed,
		Input:  c.in,
		Output: c.out,
	})
	if err != nil {
		return err
	}

	m, err := game.New(game.MatchConfig(cfg, seed), p1, p2, c.log)
	if err != nil {
		return err
	}

	res, err := c.Play(ctx, m)
	if err != nil {
		return err
	}
	c.Save(mode, width, res)
	return nil
}

func (c *Console) askWidth() (int, error) {
	for {
		s, err := c.prompt("Choose width of the board (must be an odd number): ")
		if err != nil {
			return 0, err
		}
		w, err := strconv.Atoi(s)
		if err != nil || w <= 0 || w%2 == 0 {
			fmt.Fprintln(c.out, "Wrong input.")
			continue
		}
		return w, nil
	}
}

// Save records a finished match when a recorder is configured.
func (c *Console) Save(mode game.Mode, width int, res game.Result) {
	if c.store == nil {
		return
	}
	if _, err := c.store.SaveMatch(game.Record(mode, width, res)); err != nil {
		c.log.Warn("could not save match", "error", err)
	}
}

func (c *Console) prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func seat(i int) core.PlayerID { return core.PlayerID(i) }
