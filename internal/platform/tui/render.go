package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Seat colours for scores and scored cells.
var seatColors = [2]core.Color{core.ColorBrightCyan, core.ColorOrange}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// BoardLayout places board cells on a screen. Cells of a row sit two
// columns apart so the triangle keeps its shape in a terminal.
type BoardLayout struct {
	OriginX, OriginY int
}

// BoardSize returns the screen footprint of a board of the given width.
func BoardSize(width, height int) (w, h int) {
	return 2*width - 1, height
}

// CellPos returns the screen position of c.
func (l BoardLayout) CellPos(c board.Coord) (x, y int) {
	return l.OriginX + 2*c.Col, l.OriginY + c.Row
}

// BoardView is what DrawBoard needs beyond the board itself.
type BoardView struct {
	Cursor     board.Coord
	ShowCursor bool
	ScoredBy   map[board.Coord]core.PlayerID // Seat that scored each cell
	LastMove   *board.Coord
}

// DrawBoard draws every inside cell of b: open cells as 'O', claimed as
// '0' and scored as 'X' in the colour of the seat that scored them.
func DrawBoard(s *core.Screen, b *board.Board, l BoardLayout, v BoardView) {
	for _, c := range b.Geometry().Cells() {
		x, y := l.CellPos(c)
		r, col := glyph(b.State(c))
		if b.State(c) == board.Scored {
			if seat, ok := v.ScoredBy[c]; ok {
				col = seatColors[seat.Index()]
			}
		}
		if v.LastMove != nil && *v.LastMove == c && b.State(c) == board.Claimed {
			col = core.ColorYellow
		}
		s.SetColored(x, y, r, col)
	}

	if v.ShowCursor && b.Geometry().Inside(v.Cursor) {
		x, y := l.CellPos(v.Cursor)
		s.SetColored(x-1, y, '[', core.ColorBrightYellow)
		s.SetColored(x+1, y, ']', core.ColorBrightYellow)
		cell := s.GetCell(x, y)
		s.SetColored(x, y, cell.Rune, core.ColorBrightYellow)
	}
}

func glyph(c board.Cell) (rune, core.Color) {
	switch c {
	case board.Open:
		return 'O', core.ColorGray
	case board.Claimed:
		return '0', core.ColorWhite
	case board.Scored:
		return 'X', core.ColorGreen
	default:
		return ' ', core.ColorDefault
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
