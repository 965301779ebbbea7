package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	data := []byte("board:\n  rows: 5\n  cols: 6\nrules:\n  game_over: stalemate\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Rows != 5 || cfg.Board.Cols != 6 {
		t.Errorf("board = %dx%d, want 5x6", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Rules.GameOver != RuleStalemate {
		t.Errorf("game_over = %q, want %q", cfg.Rules.GameOver, RuleStalemate)
	}
	// Unspecified sections keep their defaults
	if cfg.Motion != DefaultT2048Config().Motion {
		t.Errorf("motion = %+v, want defaults", cfg.Motion)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		valid  bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"zero rows", func(c *T2048Config) { c.Board.Rows = 0 }, false},
		{"velocity equals cell", func(c *T2048Config) { c.Motion.Velocity = 150 }, false},
		{"velocity above short side", func(c *T2048Config) { c.Motion.CellHeight = 10 }, false},
		{"negative probability", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, false},
		{"probability one", func(c *T2048Config) { c.Spawn.FourProbability = 1 }, true},
		{"too many initial tiles", func(c *T2048Config) { c.Spawn.InitialTiles = 17 }, false},
		{"odd initial value", func(c *T2048Config) { c.Spawn.InitialValue = 3 }, false},
		{"unknown rule", func(c *T2048Config) { c.Rules.GameOver = "sudden-death" }, false},
		{"zero tick rate", func(c *T2048Config) { c.Display.TickRate = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultT2048Config()

	if err := ApplyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyPreset(hard) failed: %v", err)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("hard four_probability = %v, want 0.25", cfg.Spawn.FourProbability)
	}

	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("ApplyPreset(\"\") = %v, want nil", err)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Error("empty preset should leave config unchanged")
	}

	if err := ApplyPreset(&cfg, "nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ApplyPreset(nightmare) = %v, want ErrInvalid", err)
	}
}

func TestMarshalRoundTripKeepsRule(t *testing.T) {
	cfg := DefaultT2048Config()
	cfg.Rules.GameOver = RuleStalemate

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Rules.GameOver != RuleStalemate {
		t.Errorf("game_over = %q, want %q", got.Rules.GameOver, RuleStalemate)
	}
}
