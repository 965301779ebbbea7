package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Load loads the 2048 configuration.
// Search order: customPath -> ~/.arcade/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("t2048.yaml"), filepath.Join("configs", "t2048.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg T2048Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable board.
func (c T2048Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Rows, c.Board.Cols)
	}
	if c.Motion.CellWidth <= 0 || c.Motion.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size must be positive", ErrInvalid)
	}
	if c.Motion.Velocity <= 0 || c.Motion.Velocity >= math.Min(c.Motion.CellWidth, c.Motion.CellHeight) {
		return fmt.Errorf("%w: velocity %.2f must be in (0, %.2f)", ErrInvalid,
			c.Motion.Velocity, math.Min(c.Motion.CellWidth, c.Motion.CellHeight))
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Rows*c.Board.Cols {
		return fmt.Errorf("%w: initial_tiles %d does not fit the board", ErrInvalid, c.Spawn.InitialTiles)
	}
	if v := c.Spawn.InitialValue; v < 2 || v&(v-1) != 0 {
		return fmt.Errorf("%w: initial_value %d is not a power of two", ErrInvalid, v)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: four_probability %.2f outside [0, 1]", ErrInvalid, c.Spawn.FourProbability)
	}
	switch c.Rules.GameOver {
	case RuleOccupancy, RuleStalemate:
	default:
		return fmt.Errorf("%w: unknown game_over rule %q", ErrInvalid, c.Rules.GameOver)
	}
	if c.Display.TickRate < 1 {
		return fmt.Errorf("%w: tick_rate must be positive", ErrInvalid)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *T2048Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	prob, ok := FourProbabilityForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, preset)
	}
	cfg.Spawn.FourProbability = prob
	return nil
}
