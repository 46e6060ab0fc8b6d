// Package human implements a player that reads moves typed by a person.
package human

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// ErrBadInput is returned by Parse when a line does not hold exactly two numbers.
var ErrBadInput = errors.New("human: expected a row and a column number")

func init() {
	registry.Register("human", "Human Player", func(opts registry.Options) (registry.Player, error) {
		return New(opts), nil
	})
}

// Player prompts on an output stream and reads "row col" lines from an input stream.
type Player struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// New creates a human player. Input and output default to stdin and stdout.
// Pass the same *bufio.Reader to every human sharing one terminal.
func New(opts registry.Options) *Player {
	var in io.Reader = os.Stdin
	if opts.Input != nil {
		in = opts.Input
	}
	r, ok := in.(*bufio.Reader)
	if !ok {
		r = bufio.NewReader(in)
	}

	out := io.Writer(os.Stdout)
	if opts.Output != nil {
		out = opts.Output
	}

	return &Player{
		name: opts.NameOr("Player " + strconv.Itoa(opts.Seat.Index()+1)),
		in:   r,
		out:  out,
	}
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Interactive reports true: front ends with their own input handling
// collect this player's moves directly.
func (p *Player) Interactive() bool { return true }

// Propose prompts for a move until a well-formed line is entered.
// Whether the cell is open is decided by the board.
func (p *Player) Propose(ctx context.Context, _ *board.Board, _ core.PlayerID) (board.Coord, error) {
	for {
		if err := ctx.Err(); err != nil {
			return board.Coord{}, err
		}

		fmt.Fprintf(p.out, "%s's turn. Choose available field from the board: ", p.name)
		line, err := p.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			return board.Coord{}, err
		}

		c, perr := Parse(line)
		if perr == nil {
			return c, nil
		}
		fmt.Fprintln(p.out, "Wrong input.")
		if err != nil {
			return board.Coord{}, io.ErrUnexpectedEOF
		}
	}
}

// Parse reads a 1-indexed "row col" pair. Every character other than a
// digit or a space is dropped first, so "3, 4" and "(3 4)" are accepted.
func Parse(line string) (board.Coord, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, line)

	fields := strings.Fields(cleaned)
	if len(fields) != 2 {
		return board.Coord{}, fmt.Errorf("%w: got %q", ErrBadInput, strings.TrimSpace(line))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	return board.FromDisplay(row, col), nil
}
