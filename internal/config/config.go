// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Motion  MotionConfig  `yaml:"motion"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MotionConfig defines the continuous space tiles slide through.
// Velocity is the distance covered per tick and must be smaller than a cell.
type MotionConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Velocity   float64 `yaml:"velocity"`
}

// SpawnConfig defines the opening tiles and the spawn policy.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	InitialValue    int     `yaml:"initial_value"`
	FourProbability float64 `yaml:"four_probability"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// RulesConfig defines the terminal check.
type RulesConfig struct {
	GameOver string `yaml:"game_over"` // "occupancy" or "stalemate"
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Animation ticks per second
}

// Game over rule names.
const (
	RuleOccupancy = "occupancy"
	RuleStalemate = "stalemate"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FourProbabilityForPreset returns the spawn-4 probability for a preset.
// The second value is false for unknown presets.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return 0.10, true
	case DifficultyHard:
		return 0.25, true
	default:
		return 0, false
	}
}
