package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultT2048YAML
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Motion: MotionConfig{
			CellWidth:  150,
			CellHeight: 150,
			Velocity:   20,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			InitialValue:    2,
			FourProbability: 0.10,
		},
		Rules: RulesConfig{
			GameOver: RuleOccupancy,
		},
		Display: DisplayConfig{
			TickRate: 60,
		},
	}
}
