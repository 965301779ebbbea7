// Package t2048 implements the 2048 sliding-tile puzzle: an animated
// slide-and-merge engine and the game mode that plays it on a core.Screen.
package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Game over rule taken from config
	ModeStrict  Mode = "strict"  // Game over only when no move is left
)

// Game implements the 2048 puzzle game on top of the slide engine.
type Game struct {
	mode Mode
	cfg  config.T2048Config
	rng  *rand.Rand
	tick uint64

	engine   *Engine
	recorder *FrameRecorder
	playback []Frame // Frames recorded by the last move, not yet shown
	frame    Frame   // Frame currently on screen

	last    MoveResult
	hasLast bool
	lastErr error
	moves   int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	selectedConfig = config.DefaultT2048Config()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.T2048Config) {
	selectedConfig = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.T2048Config {
	return selectedConfig
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewStrict creates a new strict mode game.
func NewStrict() *Game {
	return &Game{mode: ModeStrict}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_strict", func() registry.Game {
		return NewStrict()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeStrict {
		return "2048_strict"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeStrict {
		return "2048 (Strict)"
	}
	return "2048"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeStrict {
		return "Game ends only when no slide or merge is left"
	}
	return "Game ends when the board fills up"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.cfg = selectedConfig
	if err := g.cfg.Validate(); err != nil {
		return err
	}

	rule, err := ParseGameOverRule(g.cfg.Rules.GameOver)
	if err != nil {
		return err
	}
	if g.mode == ModeStrict {
		rule = RuleStalemate
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.moves = 0
	g.last = MoveResult{}
	g.hasLast = false
	g.lastErr = nil
	g.playback = nil

	board := NewBoard(g.geometry())
	if err := board.Seed(g.rng, g.cfg.Spawn.InitialTiles, g.cfg.Spawn.InitialValue); err != nil {
		return fmt.Errorf("t2048: reset: %w", err)
	}

	g.recorder = &FrameRecorder{}
	g.engine = NewEngine(board, g.rng,
		WithRenderer(g.recorder),
		WithFourProbability(g.cfg.Spawn.FourProbability),
		WithGameOverRule(rule),
	)
	g.frame = board.Frame(0)

	g.checkScreenSize()
	return nil
}

// geometry converts the config into engine geometry.
func (g *Game) geometry() Geometry {
	return Geometry{
		Rows:       g.cfg.Board.Rows,
		Cols:       g.cfg.Board.Cols,
		CellWidth:  g.cfg.Motion.CellWidth,
		CellHeight: g.cfg.Motion.CellHeight,
		Velocity:   g.cfg.Motion.Velocity,
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the game to new screen dimensions without restarting it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
// While a move is being played back, direction input is ignored.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Animating: g.Animating()}
	}

	if in.Has(core.ActionSkip) {
		g.SkipAnimation()
	}

	if g.advancePlayback() {
		return core.StepResult{State: g.State(), Animating: true}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFromInput(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State(), Animating: g.Animating()}
}

// directionFromInput maps input actions to a move direction.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove runs the slide engine to completion and queues its frames.
func (g *Game) processMove(dir Direction) {
	g.lastErr = nil
	res, err := g.engine.ApplyMove(dir)
	if err != nil {
		g.lastErr = err
		g.recorder.Drain()
		return
	}

	g.last = res
	g.hasLast = true

	g.gameOver = res.GameOver()

	if !res.Moved() {
		// Board unchanged - nothing to animate
		g.recorder.Drain()
		return
	}

	g.moves++
	g.startPlayback(g.recorder.Drain())
}

// Move applies a move directly, bypassing input mapping.
// On error the board is unchanged and the result's Outcome is OutcomeInvalid.
func (g *Game) Move(dir Direction) (MoveResult, error) {
	g.processMove(dir)
	if g.lastErr != nil {
		return MoveResult{}, g.lastErr
	}
	return g.last, nil
}

// LastResult returns the result of the most recent move.
func (g *Game) LastResult() (MoveResult, bool) {
	return g.last, g.hasLast
}

// Err returns the error of the most recent move, if any.
func (g *Game) Err() error {
	return g.lastErr
}

// Board returns the engine's board.
func (g *Game) Board() *Board {
	return g.engine.Board()
}

// State returns the current game state.
// Game over is reported once the final move has finished playing back.
func (g *Game) State() core.GameState {
	return core.GameState{
		MaxTile:  frameMaxTile(g.frame),
		Moves:    g.moves,
		GameOver: g.gameOver && !g.Animating(),
		Paused:   g.paused || g.tooSmall,
	}
}

// frameMaxTile returns the highest tile value in a frame.
func frameMaxTile(f Frame) int {
	maxVal := 0
	for _, t := range f.Tiles {
		maxVal = max(maxVal, t.Value)
	}
	return maxVal
}
