// t2048 is an animated 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list                 - List available game modes
//	t2048 play [mode]          - Play a mode (menu when omitted)
//	t2048 trace <dir>...       - Apply moves headlessly and log every frame
//	t2048 config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: display.tick_rate)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Spawn preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle with animated moves.

Available commands:
  list     - Show all game modes
  play     - Play a game mode
  trace    - Apply moves headlessly and log the frames
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play 2048_strict --difficulty hard
  t2048 trace left up right --seed 42 --no-pace
  t2048 config --config ./my-2048.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = display.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the structured logger shared by all commands.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration and applies the difficulty preset.
func loadConfig() (config.T2048Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tickRate returns --fps when given, the configured rate otherwise.
func tickRate(cfg config.T2048Config) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Display.TickRate
}
