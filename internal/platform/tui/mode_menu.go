package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ModeModel lets users choose one of the registered game modes.
type ModeModel struct {
	modes    []registry.GameInfo
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected *registry.GameInfo
	quitting bool
}

// NewModeModel creates a new mode selection model.
func NewModeModel(width, height int) ModeModel {
	h := help.New()
	h.Width = width

	return ModeModel{
		modes:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the model.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m ModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.modes) == 0 {
			return m, nil
		}
		info := m.modes[m.cursor]
		m.selected = &info
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode selection.
func (m ModeModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		line := fmt.Sprintf("  %-16s", mode.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %-16s", mode.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		if mode.Description != "" {
			b.WriteString(centerText(descStyle.Render(mode.Description), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m ModeModel) Selected() *registry.GameInfo {
	return m.selected
}

// centerText pads text so it is centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunModeSelector shows the mode menu and returns the chosen game ID.
// An empty ID means the user quit without choosing.
func RunModeSelector(cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(ModeModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
