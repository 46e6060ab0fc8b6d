// Package score keeps the running point totals of both players.
package score

import (
	"fmt"

	"github.com/JPatryk13/triangle-game/internal/core"
)

// Tracker accumulates points per player. Totals never decrease.
type Tracker struct {
	totals [2]int
}

// NewTracker returns a tracker with both totals at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add credits points to player and returns the player's new total.
// Negative points or an unknown player are programming errors and panic.
func (t *Tracker) Add(player core.PlayerID, points int) int {
	if !player.Valid() {
		panic(fmt.Sprintf("score: unknown player %d", player))
	}
	if points < 0 {
		panic(fmt.Sprintf("score: negative points %d", points))
	}
	t.totals[player.Index()] += points
	return t.totals[player.Index()]
}

// Total returns the player's current total.
func (t *Tracker) Total(player core.PlayerID) int {
	if !player.Valid() {
		return 0
	}
	return t.totals[player.Index()]
}

// Leader returns the player with more points. tie is true when both are equal.
func (t *Tracker) Leader() (player core.PlayerID, tie bool) {
	switch {
	case t.totals[0] > t.totals[1]:
		return core.Player1, false
	case t.totals[1] > t.totals[0]:
		return core.Player2, false
	default:
		return core.Player1, true
	}
}

// Reset clears both totals for a new game.
func (t *Tracker) Reset() {
	t.totals = [2]int{}
}
