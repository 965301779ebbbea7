package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// moveReporter is implemented by games that expose the outcome of the last move.
type moveReporter interface {
	LastResult() (t2048.MoveResult, bool)
	Err() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	animating  bool
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game must already be Reset.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
		return m, nil
	}

	// Games that cannot resize in place start over
	if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenH = m.screen.Height()
		if err := m.game.Reset(cfg); err != nil {
			m.logger.Error("reset after resize failed", "game", m.game.ID(), "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.logger.Info("restart", "game", m.game.ID(), "moves", m.gameState.Moves, "max_tile", m.gameState.MaxTile)

		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		cfg := m.config
		cfg.ScreenH = m.screen.Height()
		if err := m.game.Reset(cfg); err != nil {
			m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.animating = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// A direction pressed while the board is at rest starts a move
	accepting := !m.animating && !m.gameState.GameOver && !m.gameState.Paused
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.animating = result.Animating

	if accepting && hasDirection(m.inputFrame) {
		m.logMove()
	}
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "game", m.game.ID(), "moves", m.gameState.Moves, "max_tile", m.gameState.MaxTile)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logMove reports the outcome of the move just applied.
func (m Model) logMove() {
	r, ok := m.game.(moveReporter)
	if !ok {
		return
	}
	if err := r.Err(); err != nil {
		m.logger.Error("move failed", "game", m.game.ID(), "error", err)
		return
	}
	res, ok := r.LastResult()
	if !ok {
		return
	}

	attrs := []any{
		"outcome", res.Outcome(),
		"ticks", res.Ticks(),
		"merges", res.Merges(),
	}
	if s, ok := res.Spawned(); ok {
		attrs = append(attrs, "spawned", s.Value, "row", s.Row, "col", s.Col)
	}
	m.logger.Debug("move", attrs...)
}

func hasDirection(in core.InputFrame) bool {
	return in.Has(core.ActionUp) || in.Has(core.ActionDown) ||
		in.Has(core.ActionLeft) || in.Has(core.ActionRight)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameCfg := cfg
	gameCfg.ScreenH = max(cfg.ScreenH-helpHeight, 0)
	if err := game.Reset(gameCfg); err != nil {
		return fmt.Errorf("reset %s: %w", game.ID(), err)
	}
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		logger.Info("game ended", "game", game.ID(), "moves", m.gameState.Moves, "max_tile", m.gameState.MaxTile)
	}
	return err
}
