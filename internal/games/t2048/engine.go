package t2048

import (
	"fmt"
	"sort"
)

// EngineState is the slide engine state.
type EngineState int

const (
	EngineIdle EngineState = iota
	EngineAnimating
	EngineSettled
)

// String returns a human-readable name for the state.
func (s EngineState) String() string {
	switch s {
	case EngineIdle:
		return "idle"
	case EngineAnimating:
		return "animating"
	case EngineSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// GameOverRule decides when a settled board ends the game.
type GameOverRule int

const (
	// RuleOccupancy ends the game as soon as every cell is occupied.
	RuleOccupancy GameOverRule = iota
	// RuleStalemate ends the game only when the board is full and no adjacent pair can merge.
	RuleStalemate
)

// ParseGameOverRule converts a config value into a GameOverRule.
func ParseGameOverRule(s string) (GameOverRule, error) {
	switch s {
	case "", "occupancy":
		return RuleOccupancy, nil
	case "stalemate":
		return RuleStalemate, nil
	}
	return RuleOccupancy, fmt.Errorf("t2048: unknown game over rule %q", s)
}

// Engine drives the per-tick slide simulation for one move at a time.
// It is not safe for concurrent use; the board is only mutated from the
// goroutine calling ApplyMove.
type Engine struct {
	board    *Board
	src      Source
	renderer Renderer
	pacer    Pacer
	fourProb float64
	rule     GameOverRule
	state    EngineState
	tick     uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the collaborator that observes every tick.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithPacer sets the per-tick yield.
func WithPacer(p Pacer) Option {
	return func(e *Engine) {
		e.pacer = p
	}
}

// WithFourProbability sets the probability of spawning a 4 instead of a 2.
func WithFourProbability(p float64) Option {
	return func(e *Engine) {
		e.fourProb = p
	}
}

// WithGameOverRule sets the terminal check.
func WithGameOverRule(rule GameOverRule) Option {
	return func(e *Engine) {
		e.rule = rule
	}
}

// NewEngine creates an engine operating on board, drawing randomness from src.
func NewEngine(board *Board, src Source, opts ...Option) *Engine {
	e := &Engine{
		board:    board,
		src:      src,
		renderer: RendererFunc(func(Frame) {}),
		pacer:    NoPacer{},
		fourProb: 0.10,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Board returns the board the engine mutates.
func (e *Engine) Board() *Board {
	return e.board
}

// State returns the current engine state.
func (e *Engine) State() EngineState {
	return e.state
}

// Tick returns the number of frames emitted so far.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// ApplyMove slides every tile in the given direction until the board
// settles, then spawns a tile and evaluates the terminal check.
// It blocks for the whole animation. On error the board is restored to
// its state before the call and the returned MoveResult is the zero value,
// whose Outcome is OutcomeInvalid.
func (e *Engine) ApplyMove(dir Direction) (MoveResult, error) {
	profile, err := ProfileFor(dir)
	if err != nil {
		return MoveResult{}, err
	}

	e.state = EngineAnimating
	defer func() { e.state = EngineIdle }()

	saved := e.board.save()

	// A tile merges at most once per move, however many ticks elapse.
	merged := make(map[int]bool)

	var res MoveResult
	for {
		changed, merges, err := e.step(profile, merged)
		if err != nil {
			e.board.restore(saved)
			return MoveResult{}, fmt.Errorf("t2048: move %v: %w", dir, err)
		}
		res.ticks++
		res.merges += merges
		if !changed {
			break
		}
		res.moved = true
	}

	e.state = EngineSettled
	g := e.board.Geometry()
	for _, t := range e.board.Tiles() {
		t.Snap(g)
	}

	if !res.moved {
		res.outcome = OutcomeNoOp
		if e.isOver() {
			res.outcome = OutcomeGameOver
		}
		return res, nil
	}

	if !e.board.IsFull() {
		t, err := e.board.SpawnTile(e.src, e.fourProb)
		if err != nil {
			e.board.restore(saved)
			return MoveResult{}, fmt.Errorf("t2048: move %v: %w", dir, err)
		}
		v := t.View()
		res.spawned = &v
	}

	res.outcome = OutcomeContinue
	if e.isOver() {
		res.outcome = OutcomeGameOver
	}
	return res, nil
}

// step simulates one tick and commits the surviving tiles to the board.
//
// A tile is settled once it can never move again this move: it sits on the
// boundary, or it rests one cell behind a settled tile it cannot merge with.
// Trailing tiles keep a full cell of distance from a neighbor that has not
// settled, so two tiles never claim the same cell. A tile only closes in on
// an equal neighbor after that neighbor has settled, which gives merges
// near the target edge precedence.
func (e *Engine) step(p Profile, merged map[int]bool) (changed bool, merges int, err error) {
	g := e.board.Geometry()
	span := p.span(g)

	order := e.board.Tiles()
	sort.SliceStable(order, func(i, j int) bool {
		return p.Less(order[i], order[j])
	})

	removed := make(map[int]bool)
	settled := make(map[int]bool)
	active := make([]*Tile, 0, len(order))

	for _, t := range order {
		if p.AtBoundary(t, g) {
			settled[t.ID] = true
			active = append(active, t)
			continue
		}

		// Neighbor lookup uses the occupancy committed at the end of the previous tick.
		next := p.Neighbor(t, e.board)
		if next != nil && removed[next.ID] {
			next = nil
		}
		canMerge := next != nil && next.Value == t.Value && !merged[t.ID] && !merged[next.ID]

		var moved bool
		switch {
		case next == nil:
			moved = p.Advance(t, g)
		case canMerge && !settled[next.ID]:
			moved = p.Follow(t, next, g, span)
		case canMerge && p.MergeReady(t, next, g):
			next.Value *= 2
			merged[next.ID] = true
			removed[t.ID] = true
			merges++
			changed = true
			continue
		case canMerge:
			moved = p.Follow(t, next, g, 0)
		case p.ShouldKeepMoving(t, next, g):
			moved = p.Follow(t, next, g, span)
		}

		if moved {
			t.RecomputeCell(p.Rounding, g)
			changed = true
		}
		settled[t.ID] = p.AtBoundary(t, g) ||
			(next != nil && settled[next.ID] && !canMerge && !p.ShouldKeepMoving(t, next, g))
		active = append(active, t)
	}

	if err := e.board.Commit(active); err != nil {
		return false, merges, err
	}

	e.tick++
	e.renderer.RenderFrame(e.board.Frame(e.tick))
	e.pacer.Wait()

	return changed, merges, nil
}

// isOver applies the configured terminal check.
func (e *Engine) isOver() bool {
	if !e.board.IsFull() {
		return false
	}
	if e.rule == RuleStalemate {
		return !e.board.HasPossibleMerge()
	}
	return true
}
