// Package random implements a player that claims a uniformly random open cell.
package random

import (
	"context"
	"errors"
	"math/rand"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// Name pools per seat, so two random players never share a name.
var names = [2][]string{
	{"Mark", "Tobias", "Otto", "Jason", "Rachel", "Lisa", "Rebecca", "Sammy"},
	{"Dominic", "Andy", "John", "Mike", "Alexa", "Tina", "Debby", "Claudia"},
}

func init() {
	registry.Register("random", "Random Computer Player", func(opts registry.Options) (registry.Player, error) {
		return New(opts), nil
	})
}

// Player picks moves with its own seeded random source.
type Player struct {
	name string
	rng  *rand.Rand
}

// New creates a random player. Without a name one is drawn from the seat's pool.
func New(opts registry.Options) *Player {
	rng := opts.Random()
	name := opts.Name
	if name == "" {
		pool := names[0]
		if opts.Seat == core.Player2 {
			pool = names[1]
		}
		name = pool[rng.Intn(len(pool))]
	}
	return &Player{name: name, rng: rng}
}

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Propose returns a random open cell.
func (p *Player) Propose(ctx context.Context, b *board.Board, _ core.PlayerID) (board.Coord, error) {
	if err := ctx.Err(); err != nil {
		return board.Coord{}, err
	}
	open := b.Open()
	if len(open) == 0 {
		return board.Coord{}, errors.New("random: no open cells")
	}
	return open[p.rng.Intn(len(open))], nil
}
