package t2048

// Outcome is the signal returned to the caller after a move settles.
type Outcome int

const (
	OutcomeInvalid Outcome = iota // Zero value, returned alongside an error
	OutcomeContinue
	OutcomeNoOp             // Nothing moved; no tile was spawned
	OutcomeGameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeContinue:
		return "continue"
	case OutcomeNoOp:
		return "no-op"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// MoveResult is the immutable outcome of one ApplyMove call.
type MoveResult struct {
	outcome Outcome
	moved   bool
	ticks   int
	merges  int
	spawned *TileView
}

// Outcome returns the outcome signal.
func (r MoveResult) Outcome() Outcome {
	return r.outcome
}

// GameOver is shorthand for Outcome() == OutcomeGameOver.
func (r MoveResult) GameOver() bool {
	return r.outcome == OutcomeGameOver
}

// Moved reports whether any tile moved or merged.
func (r MoveResult) Moved() bool {
	return r.moved
}

// Ticks returns the number of animation ticks simulated, including the final idle tick.
func (r MoveResult) Ticks() int {
	return r.ticks
}

// Merges returns the number of merges performed.
func (r MoveResult) Merges() int {
	return r.merges
}

// Spawned returns the tile spawned after the move, if any.
func (r MoveResult) Spawned() (TileView, bool) {
	if r.spawned == nil {
		return TileView{}, false
	}
	return *r.spawned, true
}
