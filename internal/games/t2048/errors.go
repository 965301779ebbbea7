package t2048

import "errors"

var (
	// ErrBoardFull is returned when a cell is sampled from a board with no empty cells.
	// Callers are expected to check IsFull first.
	ErrBoardFull = errors.New("t2048: board is full")

	// ErrInvalidDirection is returned by ApplyMove and ParseDirection for unknown directions.
	ErrInvalidDirection = errors.New("t2048: invalid direction")

	// ErrCellConflict is returned when two tiles would occupy the same cell,
	// or a tile is placed outside the board.
	ErrCellConflict = errors.New("t2048: cell conflict")
)
