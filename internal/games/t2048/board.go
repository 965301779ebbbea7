package t2048

import (
	"fmt"
	"sort"
)

// Cell is a discrete grid location.
type Cell struct {
	Row int
	Col int
}

// Board maps occupied cells to tiles. Tiles are owned by the board and
// referenced by a stable integer id.
type Board struct {
	geom   Geometry
	cells  map[Cell]int  // cell -> tile id
	tiles  map[int]*Tile // tile id -> tile
	nextID int
}

// NewBoard creates an empty board.
func NewBoard(g Geometry) *Board {
	return &Board{
		geom:   g,
		cells:  make(map[Cell]int),
		tiles:  make(map[int]*Tile),
		nextID: 1,
	}
}

// Geometry returns the board geometry.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.geom.Rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.geom.Cols
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.cells)
}

// IsFull returns true iff every cell is occupied.
func (b *Board) IsFull() bool {
	return len(b.cells) == b.geom.Rows*b.geom.Cols
}

// inBounds reports whether the cell lies on the board.
func (b *Board) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.geom.Rows && c.Col >= 0 && c.Col < b.geom.Cols
}

// At returns the tile at the given cell, or nil if the cell is empty.
func (b *Board) At(row, col int) *Tile {
	id, ok := b.cells[Cell{Row: row, Col: col}]
	if !ok {
		return nil
	}
	return b.tiles[id]
}

// Place puts a new tile of the given value at rest in an empty cell.
func (b *Board) Place(value, row, col int) (*Tile, error) {
	if !isPowerOfTwo(value) {
		return nil, fmt.Errorf("t2048: tile value %d is not a power of two", value)
	}
	c := Cell{Row: row, Col: col}
	if !b.inBounds(c) {
		return nil, fmt.Errorf("t2048: cell (%d,%d) outside %dx%d board: %w", row, col, b.geom.Rows, b.geom.Cols, ErrCellConflict)
	}
	if _, taken := b.cells[c]; taken {
		return nil, fmt.Errorf("t2048: cell (%d,%d) occupied: %w", row, col, ErrCellConflict)
	}

	t := &Tile{ID: b.nextID, Value: value, Row: row, Col: col}
	t.Snap(b.geom)
	b.nextID++

	b.tiles[t.ID] = t
	b.cells[c] = t.ID
	return t, nil
}

// EmptyCells returns all unoccupied cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := range b.geom.Rows {
		for col := range b.geom.Cols {
			c := Cell{Row: row, Col: col}
			if _, taken := b.cells[c]; !taken {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// RandomEmptyCell samples an empty cell uniformly.
func (b *Board) RandomEmptyCell(src Source) (Cell, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, ErrBoardFull
	}
	return empty[src.Intn(len(empty))], nil
}

// SpawnTile places a 2 (or a 4 with probability fourProb) in a random empty cell.
// It returns ErrBoardFull without touching the board when every cell is taken.
func (b *Board) SpawnTile(src Source, fourProb float64) (*Tile, error) {
	cell, err := b.RandomEmptyCell(src)
	if err != nil {
		return nil, fmt.Errorf("t2048: spawn: %w", err)
	}

	value := 2
	if src.Float64() < fourProb {
		value = 4
	}
	return b.Place(value, cell.Row, cell.Col)
}

// Seed places n opening tiles of the given value in random empty cells.
func (b *Board) Seed(src Source, n, value int) error {
	for range n {
		cell, err := b.RandomEmptyCell(src)
		if err != nil {
			return fmt.Errorf("t2048: cannot seed %d tiles: %w", n, err)
		}
		if _, err := b.Place(value, cell.Row, cell.Col); err != nil {
			return err
		}
	}
	return nil
}

// Commit replaces the occupancy map with the given tiles, keyed by each
// tile's current logical cell. Tiles missing from the list are dropped.
// On conflict the board is left unchanged.
func (b *Board) Commit(tiles []*Tile) error {
	cells := make(map[Cell]int, len(tiles))
	byID := make(map[int]*Tile, len(tiles))

	for _, t := range tiles {
		c := Cell{Row: t.Row, Col: t.Col}
		if !b.inBounds(c) {
			return fmt.Errorf("t2048: tile %d at (%d,%d) outside board: %w", t.ID, t.Row, t.Col, ErrCellConflict)
		}
		if other, taken := cells[c]; taken {
			return fmt.Errorf("t2048: tiles %d and %d both at (%d,%d): %w", other, t.ID, t.Row, t.Col, ErrCellConflict)
		}
		cells[c] = t.ID
		byID[t.ID] = t
	}

	b.cells = cells
	b.tiles = byID
	return nil
}

// savedTile pairs a tile with a copy of its fields.
type savedTile struct {
	tile *Tile
	state Tile
}

// save copies every tile so a failed move can be undone.
func (b *Board) save() []savedTile {
	saved := make([]savedTile, 0, len(b.tiles))
	for _, t := range b.tiles {
		saved = append(saved, savedTile{tile: t, state: *t})
	}
	return saved
}

// restore puts the board back to a state captured by save. Tiles removed
// since then are reinstated and tiles added since then are dropped.
func (b *Board) restore(saved []savedTile) {
	b.cells = make(map[Cell]int, len(saved))
	b.tiles = make(map[int]*Tile, len(saved))
	for _, s := range saved {
		*s.tile = s.state
		b.cells[Cell{Row: s.state.Row, Col: s.state.Col}] = s.state.ID
		b.tiles[s.state.ID] = s.tile
	}
}

// Tiles returns the live tiles in row-major order.
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Row != tiles[j].Row {
			return tiles[i].Row < tiles[j].Row
		}
		if tiles[i].Col != tiles[j].Col {
			return tiles[i].Col < tiles[j].Col
		}
		return tiles[i].ID < tiles[j].ID
	})
	return tiles
}

// Values returns the board as a row-major grid of values, 0 for empty cells.
func (b *Board) Values() [][]int {
	grid := make([][]int, b.geom.Rows)
	for row := range grid {
		grid[row] = make([]int, b.geom.Cols)
	}
	for c, id := range b.cells {
		grid[c.Row][c.Col] = b.tiles[id].Value
	}
	return grid
}

// Frame returns a snapshot of the board for renderers.
func (b *Board) Frame(tick uint64) Frame {
	tiles := b.Tiles()
	views := make([]TileView, len(tiles))
	for i, t := range tiles {
		views[i] = t.View()
	}
	return Frame{
		Tick:       tick,
		Rows:       b.geom.Rows,
		Cols:       b.geom.Cols,
		CellWidth:  b.geom.CellWidth,
		CellHeight: b.geom.CellHeight,
		Tiles:      views,
	}
}

// MaxTile returns the highest tile value, 0 on an empty board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, t := range b.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// HasPossibleMerge returns true if any two adjacent tiles share a value.
func (b *Board) HasPossibleMerge() bool {
	for c, id := range b.cells {
		val := b.tiles[id].Value
		if right := b.At(c.Row, c.Col+1); right != nil && right.Value == val {
			return true
		}
		if below := b.At(c.Row+1, c.Col); below != nil && below.Value == val {
			return true
		}
	}
	return false
}

// CanMove returns true if some direction would change the board.
func (b *Board) CanMove() bool {
	return (b.Len() > 0 && !b.IsFull()) || b.HasPossibleMerge()
}
