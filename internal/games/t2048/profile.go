package t2048

import (
	"fmt"
	"math"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction symbol.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction symbol ("up", "down", "left", "right",
// or the initials u/d/l/r) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: parse %q: %w", s, ErrInvalidDirection)
}

// Axis is the grid axis a move travels along.
type Axis int

const (
	AxisCol Axis = iota // Horizontal motion, X and Col change
	AxisRow             // Vertical motion, Y and Row change
)

// Order is the traversal order of tiles during a tick.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Profile holds the direction-specific parameters of the slide engine.
// Tiles closest to the target edge come first in traversal order so they
// vacate cells before trailing tiles arrive.
type Profile struct {
	Direction Direction
	Axis      Axis
	Order     Order
	Sign      int // -1 toward lower indices, +1 toward higher
	Rounding  RoundingMode
}

var profiles = map[Direction]Profile{
	DirLeft:  {Direction: DirLeft, Axis: AxisCol, Order: Ascending, Sign: -1, Rounding: RoundUp},
	DirRight: {Direction: DirRight, Axis: AxisCol, Order: Descending, Sign: 1, Rounding: RoundDown},
	DirUp:    {Direction: DirUp, Axis: AxisRow, Order: Ascending, Sign: -1, Rounding: RoundUp},
	DirDown:  {Direction: DirDown, Axis: AxisRow, Order: Descending, Sign: 1, Rounding: RoundDown},
}

// ProfileFor returns the movement profile for a direction.
func ProfileFor(dir Direction) (Profile, error) {
	p, ok := profiles[dir]
	if !ok {
		return Profile{}, fmt.Errorf("t2048: no profile for %v: %w", dir, ErrInvalidDirection)
	}
	return p, nil
}

// StepVector returns the signed per-tick displacement.
func (p Profile) StepVector(g Geometry) (dx, dy float64) {
	v := float64(p.Sign) * g.Velocity
	if p.Axis == AxisCol {
		return v, 0
	}
	return 0, v
}

func (p Profile) index(t *Tile) int {
	if p.Axis == AxisCol {
		return t.Col
	}
	return t.Row
}

func (p Profile) pos(t *Tile) float64 {
	if p.Axis == AxisCol {
		return t.X
	}
	return t.Y
}

func (p Profile) span(g Geometry) float64 {
	if p.Axis == AxisCol {
		return g.CellWidth
	}
	return g.CellHeight
}

func (p Profile) limit(g Geometry) int {
	if p.Axis == AxisCol {
		return g.Cols
	}
	return g.Rows
}

// AtBoundary reports whether the tile cannot move further in this direction.
func (p Profile) AtBoundary(t *Tile, g Geometry) bool {
	if p.Sign < 0 {
		return p.index(t) == 0
	}
	return p.index(t) == p.limit(g)-1
}

// Neighbor returns the tile one cell further along the direction, if any.
func (p Profile) Neighbor(t *Tile, b *Board) *Tile {
	if p.Axis == AxisCol {
		return b.At(t.Row, t.Col+p.Sign)
	}
	return b.At(t.Row+p.Sign, t.Col)
}

// gap is the distance t still has to travel to fully overlap n.
func (p Profile) gap(t, n *Tile) float64 {
	return float64(-p.Sign) * (p.pos(t) - p.pos(n))
}

// MergeReady reports whether t is within one step of fully overlapping n.
func (p Profile) MergeReady(t, n *Tile, g Geometry) bool {
	return p.gap(t, n) <= g.Velocity
}

// ShouldKeepMoving reports whether t has not yet reached the trailing edge of n.
func (p Profile) ShouldKeepMoving(t, n *Tile, g Geometry) bool {
	return p.gap(t, n) > p.span(g)
}

// Less orders tiles for traversal: closest to the target edge first.
func (p Profile) Less(a, b *Tile) bool {
	ia, ib := p.index(a), p.index(b)
	if ia != ib {
		if p.Order == Ascending {
			return ia < ib
		}
		return ia > ib
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.ID < b.ID
}

// beyond reports whether position a lies further along the direction than b.
func (p Profile) beyond(a, b float64) bool {
	return float64(p.Sign)*(a-b) > 0
}

// reach returns where one step takes t, shortened so it never crosses the
// next grid line in the direction of travel.
func (p Profile) reach(t *Tile, g Geometry) float64 {
	pos := p.pos(t)
	span := p.span(g)

	var line float64
	if p.Sign < 0 {
		line = (math.Ceil(pos/span) - 1) * span
	} else {
		line = (math.Floor(pos/span) + 1) * span
	}

	stop := pos + float64(p.Sign)*g.Velocity
	if p.beyond(stop, line) {
		stop = line
	}
	return stop
}

// moveTo translates t along the axis to stop and reports whether it moved.
func (p Profile) moveTo(t *Tile, stop float64) bool {
	delta := stop - p.pos(t)
	if delta == 0 {
		return false
	}
	if p.Axis == AxisCol {
		t.Move(delta, 0)
	} else {
		t.Move(0, delta)
	}
	return true
}

// Advance applies one step to t. The step is shortened so it never crosses
// the next grid line in the direction of travel.
func (p Profile) Advance(t *Tile, g Geometry) bool {
	return p.moveTo(t, p.reach(t, g))
}

// Follow advances t like Advance but stops it keep units short of n.
// It never moves t backwards.
func (p Profile) Follow(t, n *Tile, g Geometry, keep float64) bool {
	stop := p.reach(t, g)
	if limit := p.pos(n) - float64(p.Sign)*keep; p.beyond(stop, limit) {
		stop = limit
	}
	if !p.beyond(stop, p.pos(t)) {
		return false
	}
	return p.moveTo(t, stop)
}
