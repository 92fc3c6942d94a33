// Package engine implements the Reversi rules engine: hint computation and the turn controller.
package engine

import (
	"errors"

	"reversi-local/board"
	"reversi-local/types"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = board.ErrOutOfBounds
	// ErrInvalidSize is returned when initializing with an unusable board size.
	ErrInvalidSize = board.ErrInvalidSize
	// ErrInvalidColor is returned when a non-piece color is passed where Black or White is required.
	ErrInvalidColor = errors.New("invalid color")
	// ErrIllegalCell is returned when a placement targets a cell that already holds a piece.
	ErrIllegalCell = errors.New("cell already holds a piece")
	// ErrNotInitialized is returned by operations on a controller with no board.
	ErrNotInitialized = errors.New("game not initialized")
)

// GameEngine defines what the presentation layer needs from a game.
// State is pulled after each call; there is no push mechanism.
type GameEngine interface {
	// Initialize creates a fresh seeded board of the given size.
	Initialize(size int) error

	// RequestPlacement places the current color at (x, y) and passes the turn.
	RequestPlacement(x, y int) error

	// CurrentColor returns the color to move.
	CurrentColor() types.Cell

	// BoardSize returns N, or 0 before Initialize.
	BoardSize() int

	// CellAt returns the state of (x, y).
	CellAt(x, y int) (types.Cell, error)

	// AllCells returns every cell in row-major order.
	AllCells() []board.CellInfo

	// Hints returns the cells currently marked as legal placements.
	Hints() []types.BoardPos

	// Moves returns the placements made since Initialize.
	Moves() []types.Move

	// LastMove returns the most recent placement, or false if none was made.
	LastMove() (types.Move, bool)

	// Count returns how many cells hold c.
	Count(c types.Cell) int
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize    int  // At least 4
	FlipCaptures bool // Flip outflanked opponent pieces on placement
}

// DefaultConfig returns the standard 8x8 configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:    8,
		FlipCaptures: false,
	}
}
