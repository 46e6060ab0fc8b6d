// Package console implements the line-based text front end: the board is
// printed after every move and moves are typed as "row col".
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/game"
)

// Glyph returns the character printed for a cell state.
func Glyph(c board.Cell) string {
	switch c {
	case board.Open:
		return "O"
	case board.Claimed:
		return "0"
	case board.Scored:
		return "X"
	default:
		return " "
	}
}

// RenderBoard writes b with 1-indexed row labels on the left and column
// labels underneath. Cells are spaced by the width of the widest column
// label so the grid stays aligned for wide boards.
func RenderBoard(w io.Writer, b *board.Board) {
	labelW := len(strconv.Itoa(b.Width())) + 1
	spacing := strings.Repeat(" ", labelW)

	for r := 0; r < b.Height(); r++ {
		label := strconv.Itoa(r+1) + "."
		var sb strings.Builder
		sb.WriteString(label)
		sb.WriteString(strings.Repeat(" ", max(labelW-len(label)+1, 1)))
		for c := 0; c < b.Width(); c++ {
			if c > 0 {
				sb.WriteString(spacing)
			}
			sb.WriteString(Glyph(b.State(board.At(r, c))))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}

	var axis strings.Builder
	axis.WriteString(strings.Repeat(" ", labelW+1))
	for c := 0; c < b.Width(); c++ {
		label := strconv.Itoa(c+1) + "."
		axis.WriteString(label)
		axis.WriteString(strings.Repeat(" ", labelW+1-len(label)))
	}
	fmt.Fprintln(w, strings.TrimRight(axis.String(), " "))
}

// DescribeClears lists the lines a move completed, or "" when none did.
func DescribeClears(out board.Outcome) string {
	var parts []string
	for _, d := range out.Completed() {
		line := out.Line(d)
		cells := make([]string, len(line.Cells))
		for i, c := range line.Cells {
			cells[i] = c.String()
		}
		parts = append(parts, fmt.Sprintf("%s: [%s]", lineName(d), strings.Join(cells, ", ")))
	}
	return strings.Join(parts, " ")
}

func lineName(d board.Direction) string {
	switch d {
	case board.DirRow:
		return "Horizontal"
	case board.DirColumn:
		return "Vertical"
	case board.DirMainDiagonal:
		return "Diagonal \\"
	default:
		return "Diagonal /"
	}
}

// RenderScores writes one line per player with its total. The lines
// cleared by the last move are appended to the mover's line.
func RenderScores(w io.Writer, m *game.Match) {
	scores := m.Scores()
	last, ok := m.LastTurn()
	for i := 0; i < 2; i++ {
		line := fmt.Sprintf("%s: %d", m.Player(seat(i)).Name(), scores[i])
		if ok && last.Player.Index() == i {
			if clears := DescribeClears(last.Outcome); clears != "" {
				line += " " + clears
			}
		}
		fmt.Fprintln(w, line)
	}
}

// RenderResult writes the winner announcement.
func RenderResult(w io.Writer, res game.Result) {
	if res.Draw {
		fmt.Fprintln(w, "Both players have the same score. It's a draw!")
		return
	}
	fmt.Fprintf(w, "Player %s won the game!\n", res.WinnerName())
}
