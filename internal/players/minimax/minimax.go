// Package minimax implements the computer opponent backed by the search in
// package ai.
package minimax

import (
	"context"
	"math/rand"

	"github.com/JPatryk13/triangle-game/internal/ai"
	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// DefaultName is used when no name is configured.
const DefaultName = "OliverAI"

// DefaultDepth is the look-ahead used when none is configured.
const DefaultDepth = 5

func init() {
	registry.Register("minimax", "AI", func(opts registry.Options) (registry.Player, error) {
		return New(opts)
	})
}

// Player searches the game tree for its next move.
type Player struct {
	name string
	opts ai.Options
	last ai.Result
}

// New creates an AI player. A zero depth selects DefaultDepth.
func New(opts registry.Options) (*Player, error) {
	eval, err := ai.ParseEvaluation(opts.Eval)
	if err != nil {
		return nil, err
	}
	depth := opts.Depth
	if depth == 0 {
		depth = DefaultDepth
	}
	var rng *rand.Rand
	if opts.Opening {
		rng = opts.Random()
	}
	return &Player{
		name: opts.NameOr(DefaultName),
		opts: ai.Options{
			Depth:   depth,
			Eval:    eval,
			Opening: opts.Opening,
			Workers: opts.Workers,
			Rand:    rng,
		},
	}, nil
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Depth returns the configured look-ahead.
func (p *Player) Depth() int { return p.opts.Depth }

// Evaluation returns the configured evaluation.
func (p *Player) Evaluation() ai.Evaluation { return p.opts.Eval }

// Last returns the result of the most recent search.
func (p *Player) Last() ai.Result { return p.last }

// Propose runs the search for me on b.
func (p *Player) Propose(ctx context.Context, b *board.Board, me core.PlayerID) (board.Coord, error) {
	if err := ctx.Err(); err != nil {
		return board.Coord{}, err
	}
	res, err := ai.Search(b, me, p.opts)
	if err != nil {
		return board.Coord{}, err
	}
	p.last = res
	return res.Move, nil
}
