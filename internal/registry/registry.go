// Package registry provides a global registry for player factories.
// Player kinds register themselves in init() functions, allowing the match
// and the front ends to build players by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
)

// Player chooses moves for one side of a match.
// Implementations must treat the board as read-only.
type Player interface {
	// Name returns the display name used in prompts, logs and match history.
	Name() string

	// Propose returns the coordinate the player wants to claim next.
	// The coordinate is validated by the board, not by the player.
	Propose(ctx context.Context, b *board.Board, me core.PlayerID) (board.Coord, error)
}

// Interactive is implemented by players whose moves come from a person.
// Front ends collect those moves themselves instead of calling Propose.
type Interactive interface {
	Interactive() bool
}

// IsInteractive reports whether p is driven by a person.
func IsInteractive(p Player) bool {
	i, ok := p.(Interactive)
	return ok && i.Interactive()
}

// Options configures a new player. Fields a kind does not use are ignored.
type Options struct {
	Name    string        // Display name, a kind-specific default when empty
	Seat    core.PlayerID // Side the player will take
	Rand    *rand.Rand // Random source, seeded from Seed when nil
	Seed    int64
	Depth   int    // Search depth
	Eval    string // Search evaluation, see ai.ParseEvaluation
	Opening bool   // Take a bottom corner first
	Workers int    // Search workers
	Input   io.Reader
	Output  io.Writer
}

// Random returns o.Rand or a new source seeded with o.Seed.
func (o Options) Random() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(o.Seed))
}

// NameOr returns o.Name, or fallback when no name was given.
func (o Options) NameOr(fallback string) string {
	if o.Name != "" {
		return o.Name
	}
	return fallback
}

// Info contains metadata about a registered player kind.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new player.
type Factory func(opts Options) (Player, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a player factory to the registry.
// Typically called from a player package's init() function.
// Panics if a kind with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: player %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered player kinds, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new player by its kind ID.
func Create(id string, opts Options) (Player, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown player %q", id)
	}

	p, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return p, nil
}

// Exists checks if a player kind with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
