// Package board holds the N×N grid of cell states for a Reversi game.
// It is a bounds-checked store and knows nothing about game rules.
package board

import (
	"errors"
	"fmt"

	"reversi-local/types"
)

var (
	// ErrOutOfBounds is returned for coordinates outside [0, N).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSize is returned for board sizes smaller than MinSize.
	ErrInvalidSize = errors.New("invalid board size")
)

// MinSize is the smallest board that can hold the opening block with room to play.
const MinSize = 4

// CellInfo is a cell and its coordinates.
type CellInfo struct {
	X    int
	Y    int
	Cell types.Cell
}

// Board is indexed as cells[y][x].
type Board struct {
	size  int
	cells [][]types.Cell
}

// New creates an empty board of the given size.
func New(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cells := make([][]types.Cell, size)
	for i := range cells {
		cells[i] = make([]types.Cell, size)
	}
	return &Board{size: size, cells: cells}, nil
}

// Size returns N.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (types.Cell, error) {
	if !b.InBounds(x, y) {
		return types.Empty, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, b.size, b.size)
	}
	return b.cells[y][x], nil
}

// Set writes the cell at (x, y).
func (b *Board) Set(x, y int, c types.Cell) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, b.size, b.size)
	}
	b.cells[y][x] = c
	return nil
}

// Replace overwrites every cell holding from with to and returns how many changed.
func (b *Board) Replace(from, to types.Cell) int {
	n := 0
	for y := range b.cells {
		for x, cell := range b.cells[y] {
			if cell == from {
				b.cells[y][x] = to
				n++
			}
		}
	}
	return n
}

// AllCells returns every cell in row-major order.
func (b *Board) AllCells() []CellInfo {
	out := make([]CellInfo, 0, b.size*b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			out = append(out, CellInfo{X: x, Y: y, Cell: b.cells[y][x]})
		}
	}
	return out
}

// CellsOfType returns the positions holding c, row-major.
func (b *Board) CellsOfType(c types.Cell) []types.BoardPos {
	var out []types.BoardPos
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.cells[y][x] == c {
				out = append(out, types.BoardPos{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns how many cells hold c.
func (b *Board) Count(c types.Cell) int {
	n := 0
	for y := range b.cells {
		for _, cell := range b.cells[y] {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]types.Cell, b.size)
	for i := range cells {
		cells[i] = make([]types.Cell, b.size)
		copy(cells[i], b.cells[i])
	}
	return &Board{size: b.size, cells: cells}
}
