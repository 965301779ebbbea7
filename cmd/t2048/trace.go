package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagNoPace bool
	flagFrames bool
	flagStrict bool
)

var traceCmd = &cobra.Command{
	Use:   "trace <direction>...",
	Short: "Apply moves headlessly and log the frames",
	Long: `Seeds a board from the configuration, applies the given moves in order
and logs the result of each one. Directions are up, down, left, right or
their initials.

Every animation tick is paced at --fps unless --no-pace is set. With
--frames each intermediate frame is logged at debug level; otherwise only
settled boards are printed.

Examples:
  t2048 trace left up right --seed 42
  t2048 trace l l u r d --no-pace --frames --log-level debug
  t2048 trace left right --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().BoolVar(&flagNoPace, "no-pace", false, "Do not wait between animation ticks")
	traceCmd.Flags().BoolVar(&flagFrames, "frames", false, "Log every intermediate frame")
	traceCmd.Flags().BoolVar(&flagStrict, "strict", false, "End the game only when no move is left")
}

func runTrace(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	// Parse every direction before touching the board
	dirs := make([]t2048.Direction, 0, len(args))
	for _, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagStrict {
		cfg.Rules.GameOver = config.RuleStalemate
	}
	rule, err := t2048.ParseGameOverRule(cfg.Rules.GameOver)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board := t2048.NewBoard(t2048.Geometry{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		CellWidth:  cfg.Motion.CellWidth,
		CellHeight: cfg.Motion.CellHeight,
		Velocity:   cfg.Motion.Velocity,
	})
	if err := board.Seed(rng, cfg.Spawn.InitialTiles, cfg.Spawn.InitialValue); err != nil {
		return err
	}

	opts := []t2048.Option{
		t2048.WithFourProbability(cfg.Spawn.FourProbability),
		t2048.WithGameOverRule(rule),
	}
	if flagFrames {
		opts = append(opts, t2048.WithRenderer(frameLogger{logger: logger}))
	}
	if !flagNoPace {
		pacer := t2048.NewTickerPacer(tickRate(cfg))
		defer pacer.Stop()
		opts = append(opts, t2048.WithPacer(pacer))
	}
	engine := t2048.NewEngine(board, rng, opts...)

	logger.Info("trace started", "seed", seed, "rows", cfg.Board.Rows, "cols", cfg.Board.Cols, "moves", len(dirs))
	fmt.Print(formatBoard(board.Values()))

	for i, dir := range dirs {
		res, err := engine.ApplyMove(dir)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}

		attrs := []any{
			"n", i + 1,
			"dir", dir,
			"outcome", res.Outcome(),
			"ticks", res.Ticks(),
			"merges", res.Merges(),
		}
		if s, ok := res.Spawned(); ok {
			attrs = append(attrs, "spawned", s.Value, "row", s.Row, "col", s.Col)
		}
		logger.Info("move", attrs...)

		fmt.Println()
		fmt.Print(formatBoard(board.Values()))

		if res.GameOver() {
			logger.Info("game over", "moves", i+1, "max_tile", board.MaxTile(), "merge_left", board.CanMove())
			break
		}
	}
	return nil
}

// frameLogger logs every frame the engine emits.
type frameLogger struct {
	logger *log.Logger
}

// RenderFrame logs the tile positions of one frame.
func (l frameLogger) RenderFrame(f t2048.Frame) {
	var sb strings.Builder
	for i, t := range f.Tiles {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d@(%g,%g)", t.Value, t.X, t.Y)
	}
	l.logger.Debug("frame", "tick", f.Tick, "tiles", sb.String())
}

// formatBoard renders a value grid as fixed-width text, "." for empty cells.
func formatBoard(grid [][]int) string {
	var sb strings.Builder
	for _, row := range grid {
		for col, v := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
				continue
			}
			fmt.Fprintf(&sb, "%5d", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
