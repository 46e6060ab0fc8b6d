// Package tui provides the Bubble Tea integration for the triangle game.
// It handles the terminal UI loop, input mapping, computer turns and the
// menu, scoreboard and SSH session flow.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
	"github.com/JPatryk13/triangle-game/internal/registry"
)

// TurnMsg is sent when a computer player's delay has elapsed and its
// search should start. Gen ties the message to the game it was scheduled
// for, so messages from an abandoned game are ignored.
type TurnMsg struct {
	Gen int
}

// ProposalMsg carries the move a computer player chose.
type ProposalMsg struct {
	Gen   int
	Coord board.Coord
	Err   error
}

// turnCmd schedules the computer's turn after delay.
func turnCmd(gen int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return TurnMsg{Gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TurnMsg{Gen: gen}
	})
}

// proposeCmd runs the player's search off the update loop. The board must
// be a private clone.
func proposeCmd(gen int, p registry.Player, b *board.Board, seat core.PlayerID) tea.Cmd {
	return func() tea.Msg {
		c, err := p.Propose(context.Background(), b, seat)
		return ProposalMsg{Gen: gen, Coord: c, Err: err}
	}
}
