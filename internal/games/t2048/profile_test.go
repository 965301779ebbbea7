package t2048

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"up", DirUp},
		{"U", DirUp},
		{"down", DirDown},
		{"d", DirDown},
		{" Left ", DirLeft},
		{"l", DirLeft},
		{"right", DirRight},
		{"R", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "diagonal", "x"} {
		if _, err := ParseDirection(in); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want %v", in, err, ErrInvalidDirection)
		}
	}
}

func TestRecomputeCellRounding(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		mode    RoundingMode
		wantRow int
		wantCol int
	}{
		{"left partway stays in source cell", 280, 0, RoundUp, 0, 2},
		{"left on grid line", 150, 0, RoundUp, 0, 1},
		{"right partway stays in source cell", 170, 0, RoundDown, 0, 1},
		{"right on grid line", 300, 0, RoundDown, 0, 2},
		{"up partway", 0, 440, RoundUp, 3, 0},
		{"down partway", 0, 10, RoundDown, 0, 0},
	}

	for _, tt := range tests {
		tile := &Tile{X: tt.x, Y: tt.y}
		tile.RecomputeCell(tt.mode, testGeometry)
		if tile.Row != tt.wantRow || tile.Col != tt.wantCol {
			t.Errorf("%s: RecomputeCell(%v,%v) = (%d,%d), want (%d,%d)",
				tt.name, tt.x, tt.y, tile.Row, tile.Col, tt.wantRow, tt.wantCol)
		}
	}
}

func TestAdvanceClampsAtGridLine(t *testing.T) {
	tests := []struct {
		dir   Direction
		x, y  float64
		wantX float64
		wantY float64
	}{
		{DirLeft, 300, 0, 280, 0},
		{DirLeft, 160, 0, 150, 0},
		{DirLeft, 10, 0, 0, 0},
		{DirRight, 140, 0, 150, 0},
		{DirRight, 150, 0, 170, 0},
		{DirUp, 0, 310, 0, 300},
		{DirDown, 0, 440, 0, 450},
	}

	for _, tt := range tests {
		p, err := ProfileFor(tt.dir)
		if err != nil {
			t.Fatalf("ProfileFor(%v): %v", tt.dir, err)
		}
		tile := &Tile{X: tt.x, Y: tt.y}
		p.Advance(tile, testGeometry)
		if tile.X != tt.wantX || tile.Y != tt.wantY {
			t.Errorf("Advance(%v) from (%v,%v) = (%v,%v), want (%v,%v)",
				tt.dir, tt.x, tt.y, tile.X, tile.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestMergeReadyAndKeepMoving(t *testing.T) {
	p, _ := ProfileFor(DirLeft)
	target := &Tile{X: 0}

	tests := []struct {
		x         float64
		ready     bool
		keepGoing bool
	}{
		{10, true, false},
		{20, true, false},
		{150, false, false},
		{151, false, true},
		{190, false, true},
	}

	for _, tt := range tests {
		mover := &Tile{X: tt.x}
		if got := p.MergeReady(mover, target, testGeometry); got != tt.ready {
			t.Errorf("MergeReady at %v = %v, want %v", tt.x, got, tt.ready)
		}
		if got := p.ShouldKeepMoving(mover, target, testGeometry); got != tt.keepGoing {
			t.Errorf("ShouldKeepMoving at %v = %v, want %v", tt.x, got, tt.keepGoing)
		}
	}
}

func TestFollowKeepsDistance(t *testing.T) {
	tests := []struct {
		dir    Direction
		x      float64
		leadX  float64
		keep   float64
		wantX  float64
		moving bool
	}{
		{DirLeft, 300, 0, 150, 280, true},
		{DirLeft, 160, 0, 150, 150, true},
		{DirLeft, 150, 0, 150, 150, false},
		{DirLeft, 30, 0, 0, 10, true},
		{DirLeft, 10, 0, 0, 0, true},
		{DirRight, 140, 300, 150, 150, true},
		{DirRight, 150, 290, 150, 150, false},
		{DirRight, 290, 450, 150, 300, true},
		{DirRight, 280, 450, 0, 300, true},
	}

	for _, tt := range tests {
		p, err := ProfileFor(tt.dir)
		if err != nil {
			t.Fatalf("ProfileFor(%v): %v", tt.dir, err)
		}
		tile := &Tile{X: tt.x}
		lead := &Tile{X: tt.leadX}
		moved := p.Follow(tile, lead, testGeometry, tt.keep)
		if tile.X != tt.wantX || moved != tt.moving {
			t.Errorf("Follow(%v) from %v behind %v keep %v = %v, %v, want %v, %v",
				tt.dir, tt.x, tt.leadX, tt.keep, tile.X, moved, tt.wantX, tt.moving)
		}
	}
}

func TestTraversalOrder(t *testing.T) {
	a := &Tile{ID: 1, Row: 0, Col: 0}
	b := &Tile{ID: 2, Row: 0, Col: 3}

	tests := []struct {
		dir  Direction
		want bool // a before b
	}{
		{DirLeft, true},
		{DirRight, false},
	}
	for _, tt := range tests {
		p, _ := ProfileFor(tt.dir)
		if got := p.Less(a, b); got != tt.want {
			t.Errorf("%v: Less(col 0, col 3) = %v, want %v", tt.dir, got, tt.want)
		}
	}

	if _, err := ProfileFor(Direction(9)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ProfileFor(9) error = %v, want %v", err, ErrInvalidDirection)
	}
}
