package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Moves       int
	Board       [][]int
	MaxTile     int
	LastOutcome string // Empty before the first move
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.Animating():
		state = StateAnimating
	case g.gameOver:
		state = StateGameOver
	}

	var outcome string
	if g.hasLast {
		outcome = g.last.Outcome().String()
	}

	board := g.engine.Board()
	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Moves:       g.moves,
		Board:       board.Values(),
		MaxTile:     board.MaxTile(),
		LastOutcome: outcome,
		State:       state,
	}
}
