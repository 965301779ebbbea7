package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start playing the given mode, or pick one from a menu.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  Space             - Skip the running animation
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5% of spawned tiles are 4s
  normal - 10% of spawned tiles are 4s
  hard   - 25% of spawned tiles are 4s

Examples:
  t2048 play
  t2048 play 2048
  t2048 play 2048_strict --difficulty hard
  t2048 play --config ./my-2048.yaml --log-file /tmp/t2048.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs would corrupt the alternate screen, so they go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	t2048.SetConfig(gameCfg)

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(gameCfg),
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
			os.Exit(1)
		}
	} else {
		gameID, err = tui.RunModeSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the menu
		if gameID == "" {
			return
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("config", "rows", gameCfg.Board.Rows, "cols", gameCfg.Board.Cols,
		"velocity", gameCfg.Motion.Velocity, "four_probability", gameCfg.Spawn.FourProbability,
		"game_over", gameCfg.Rules.GameOver)

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
