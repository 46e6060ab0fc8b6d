package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JPatryk13/triangle-game/internal/config"
	"github.com/JPatryk13/triangle-game/internal/game"
)

// Board width bounds offered by the menu.
const (
	MinMenuWidth = 1
	MaxMenuWidth = 21
)

type menuRow int

const (
	rowMode menuRow = iota
	rowWidth
	rowDifficulty
	rowStart
	rowScores
	rowQuit
	menuRows
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// MenuModel is the Bubble Tea model for the match setup menu.
type MenuModel struct {
	modes          []game.ModeInfo
	modeIndex      int
	boardWidth     int
	presetIndex    int
	cursor         menuRow
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a menu preset from cfg.
func NewMenuModel(cfg config.Config, screenW, screenH int) MenuModel {
	m := MenuModel{
		modes:      game.Modes,
		boardWidth: cfg.Board.Width,
		width:      screenW,
		height:     screenH,
		keyMapper:  NewKeyMapper(),
		cursor:     rowStart,
	}
	if p := config.PresetFor(cfg); p != "" {
		for i, preset := range config.Presets {
			if preset == p {
				m.presetIndex = i
			}
		}
	} else {
		m.presetIndex = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case rowStart:
			m.started = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}
	}

	return m, nil
}

// adjust cycles the value on the selected row. Widths stay odd.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowMode:
		m.modeIndex = (m.modeIndex + delta + len(m.modes)) % len(m.modes)
	case rowWidth:
		w := m.boardWidth + 2*delta
		if w >= MinMenuWidth && w <= MaxMenuWidth {
			m.boardWidth = w
		}
	case rowDifficulty:
		n := len(config.Presets)
		m.presetIndex = (m.presetIndex + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T R I A N G L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Claim fields, complete lines, collect points", m.width))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Mode:       < %s >", m.modes[m.modeIndex].Title),
		fmt.Sprintf("Width:      < %d >", m.boardWidth),
		fmt.Sprintf("Difficulty: < %s >", config.Presets[m.presetIndex]),
		"Start",
		"Scores",
		"Quit",
	}
	for i, line := range lines {
		if menuRow(i) == rowStart {
			b.WriteString("\n")
		}
		if menuRow(i) == m.cursor {
			line = menuSelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHelpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Mode returns the selected mode.
func (m MenuModel) Mode() game.Mode { return m.modes[m.modeIndex].Mode }

// BoardWidth returns the selected board width.
func (m MenuModel) BoardWidth() int { return m.boardWidth }

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset { return config.Presets[m.presetIndex] }

// Started returns true if the user chose to start a match.
func (m MenuModel) Started() bool { return m.started }

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Apply copies the menu choices into cfg.
func (m MenuModel) Apply(cfg config.Config) config.Config {
	cfg.Board.Width = m.boardWidth
	config.ApplyPreset(&cfg, m.Preset())
	return cfg
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode            game.Mode
	Width           int
	Preset          config.DifficultyPreset
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.Config, screenW, screenH int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, screenW, screenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	res := MenuResult{
		Mode:   m.Mode(),
		Width:  m.boardWidth,
		Preset: m.Preset(),
	}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case !m.started:
		res.Quit = true
	}
	return res
}
