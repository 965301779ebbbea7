package t2048

import "math"

// RoundingMode selects how a continuous position maps back to a grid cell.
type RoundingMode int

const (
	// RoundDown is used for motion toward higher indices (right, down).
	RoundDown RoundingMode = iota
	// RoundUp is used for motion toward lower indices (left, up).
	RoundUp
)

// Geometry describes the continuous space tiles move through.
type Geometry struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	Velocity   float64 // Distance covered per tick
}

// Tile is a numbered tile with a logical cell and a continuous position.
// At rest X == Col*CellWidth and Y == Row*CellHeight.
type Tile struct {
	ID    int
	Value int
	Row   int
	Col   int
	X     float64
	Y     float64
}

// Move translates the continuous position. No clamping is applied.
func (t *Tile) Move(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// RecomputeCell derives Row and Col from the continuous position.
func (t *Tile) RecomputeCell(mode RoundingMode, g Geometry) {
	round := math.Floor
	if mode == RoundUp {
		round = math.Ceil
	}
	t.Row = int(round(t.Y / g.CellHeight))
	t.Col = int(round(t.X / g.CellWidth))
}

// Snap moves the tile onto the grid position of its logical cell.
func (t *Tile) Snap(g Geometry) {
	t.X = float64(t.Col) * g.CellWidth
	t.Y = float64(t.Row) * g.CellHeight
}

// View returns a read-only copy of the tile for renderers.
func (t *Tile) View() TileView {
	return TileView{
		ID:    t.ID,
		Value: t.Value,
		Row:   t.Row,
		Col:   t.Col,
		X:     t.X,
		Y:     t.Y,
	}
}

// isPowerOfTwo reports whether v is a power of two no smaller than 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
