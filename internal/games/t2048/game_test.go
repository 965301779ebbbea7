package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// useConfig swaps the package config for the duration of a test.
func useConfig(t *testing.T, cfg config.T2048Config) {
	t.Helper()
	prev := CurrentConfig()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

// moveSomewhere applies the first direction that changes the board.
func moveSomewhere(t *testing.T, g *Game) MoveResult {
	t.Helper()
	for _, dir := range []Direction{DirLeft, DirUp, DirRight, DirDown} {
		res, err := g.Move(dir)
		if err != nil {
			t.Fatalf("Move(%v): %v", dir, err)
		}
		if res.Moved() {
			return res
		}
	}
	t.Fatal("no direction changed the board")
	return MoveResult{}
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetSeedsBoard(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	count := 0
	for _, row := range g.Snapshot().Board {
		for _, v := range row {
			if v == 0 {
				continue
			}
			count++
			if v != 2 {
				t.Errorf("initial tile value = %d, want 2", v)
			}
		}
	}
	if count != 2 {
		t.Errorf("initial tile count = %d, want 2", count)
	}
	if len(g.CurrentFrame().Tiles) != 2 {
		t.Errorf("initial frame has %d tiles, want 2", len(g.CurrentFrame().Tiles))
	}
}

func TestDeterministicGame(t *testing.T) {
	play := func() Snapshot {
		g := New()
		if err := g.Reset(testRuntimeConfig(12345)); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		for range 5 {
			moveSomewhere(t, g)
		}
		return g.Snapshot()
	}

	first := play()
	second := play()
	if !reflect.DeepEqual(first.Board, second.Board) {
		t.Errorf("same seed should produce same board:\n%v\nvs\n%v", first.Board, second.Board)
	}
	if first.Moves != 5 || second.Moves != 5 {
		t.Errorf("Moves = %d and %d, want 5", first.Moves, second.Moves)
	}
}

func TestPlaybackShowsEveryFrame(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(3)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	res := moveSomewhere(t, g)
	if !g.Animating() {
		t.Fatal("Animating() = false right after a move")
	}
	if snap := g.Snapshot(); snap.State != StateAnimating {
		t.Errorf("Snapshot State = %s, want %s", snap.State, StateAnimating)
	}

	// Direction input during playback is ignored.
	steps := 1
	for g.Animating() {
		g.Step(inputOf(core.ActionLeft))
		steps++
		if steps > res.Ticks()+2 {
			t.Fatalf("playback did not finish after %d steps", steps)
		}
	}

	// One recorded frame per engine tick plus the frame with the spawned tile.
	if steps != res.Ticks()+1 {
		t.Errorf("shown %d frames, want %d", steps, res.Ticks()+1)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.State().Moves)
	}

	want := g.Board().Frame(0).Tiles
	if got := g.CurrentFrame().Tiles; !reflect.DeepEqual(got, want) {
		t.Errorf("final frame tiles = %v, want %v", got, want)
	}
}

func TestSkipAnimation(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(5)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	moveSomewhere(t, g)

	g.Step(inputOf(core.ActionSkip))
	if g.Animating() {
		t.Error("Animating() = true after skip")
	}
	want := g.Board().Frame(0).Tiles
	if got := g.CurrentFrame().Tiles; !reflect.DeepEqual(got, want) {
		t.Errorf("frame after skip = %v, want %v", got, want)
	}
}

func TestSingleCellBoardEndsImmediately(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Rows = 1
	cfg.Board.Cols = 1
	cfg.Spawn.InitialTiles = 1
	useConfig(t, cfg)

	for _, g := range []*Game{New(), NewStrict()} {
		if err := g.Reset(testRuntimeConfig(1)); err != nil {
			t.Fatalf("%s: Reset: %v", g.ID(), err)
		}

		res, err := g.Move(DirLeft)
		if err != nil {
			t.Fatalf("%s: Move: %v", g.ID(), err)
		}
		if res.Outcome() != OutcomeGameOver {
			t.Errorf("%s: Outcome() = %v, want %v", g.ID(), res.Outcome(), OutcomeGameOver)
		}
		if g.Animating() {
			t.Errorf("%s: a move that changed nothing should not animate", g.ID())
		}
		state := g.State()
		if !state.GameOver || state.Moves != 0 {
			t.Errorf("%s: State() = %+v, want game over after 0 moves", g.ID(), state)
		}
		if snap := g.Snapshot(); snap.State != StateGameOver || snap.LastOutcome != "game-over" {
			t.Errorf("%s: Snapshot = %+v, want game_over", g.ID(), snap)
		}

		// Direction input is ignored once the game is over.
		g.Step(inputOf(core.ActionRight))
		if g.State().Moves != 0 {
			t.Errorf("%s: Moves = %d after game over input, want 0", g.ID(), g.State().Moves)
		}
	}
}

func TestStrictModeOverridesRule(t *testing.T) {
	g := NewStrict()
	if err := g.Reset(testRuntimeConfig(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.engine.rule != RuleStalemate {
		t.Errorf("strict engine rule = %v, want %v", g.engine.rule, RuleStalemate)
	}
	if g.ID() != "2048_strict" {
		t.Errorf("ID() = %q, want 2048_strict", g.ID())
	}

	g = New()
	if err := g.Reset(testRuntimeConfig(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if g.engine.rule != RuleOccupancy {
		t.Errorf("classic engine rule = %v, want %v", g.engine.rule, RuleOccupancy)
	}
}

func TestResetRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Motion.Velocity = 500
	useConfig(t, cfg)

	if err := New().Reset(testRuntimeConfig(1)); err == nil {
		t.Error("Reset() should fail when velocity exceeds the cell size")
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	g.Step(inputOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot().Board

	g.Step(inputOf(core.ActionLeft))
	g.Step(inputOf(core.ActionUp))
	if got := g.Snapshot().Board; !reflect.DeepEqual(got, before) {
		t.Errorf("board changed while paused: %v, want %v", got, before)
	}

	g.Step(inputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("game should be resumed")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testRuntimeConfig(1)
	cfg.ScreenW = 20
	cfg.ScreenH = 10
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, want %s", snap.State, StatePausedSmall)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Render() on small screen:\n%s", screen.String())
	}
}

func TestRenderBoard(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(1)); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Max: 2", "Moves: 0", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}

	// Opening tiles are drawn with a tile background.
	colored := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			if screen.GetCell(x, y).BG == core.TileColor(2) {
				colored++
			}
		}
	}
	if want := 2 * tileWidth * tileHeight; colored != want {
		t.Errorf("tile background cells = %d, want %d", colored, want)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"2048", "2048_strict"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := New()
	if err := g.Reset(testRuntimeConfig(9)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	moveSomewhere(t, g)
	g.SkipAnimation()
	before := g.Snapshot().Board

	g.Resize(10, 5)
	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, want %s", snap.State, StatePausedSmall)
	}

	g.Resize(80, 24)
	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want %s", snap.State, StatePlaying)
	}
	if !reflect.DeepEqual(snap.Board, before) || snap.Moves != 1 {
		t.Errorf("Resize changed the game: board %v moves %d, want %v moves 1", snap.Board, snap.Moves, before)
	}
}
