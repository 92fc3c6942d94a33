// Package types contains shared data structures for reversi-local.
package types

import (
	"encoding/json"
	"fmt"
)

// Cell is the state of a single board cell.
// Hint is transient: it marks an empty cell that is a legal placement for the side to move.
type Cell int

const (
	Empty Cell = iota
	Hint
	Black
	White
)

var cellNames = [...]string{"empty", "hint", "black", "white"}

func (c Cell) String() string {
	if c < 0 || int(c) >= len(cellNames) {
		return fmt.Sprintf("Cell(%d)", int(c))
	}
	return cellNames[c]
}

// IsPiece returns true for Black and White.
func (c Cell) IsPiece() bool {
	return c == Black || c == White
}

// Opponent returns the other piece color. Non-piece cells are returned unchanged.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return c
}

// MarshalJSON encodes a cell by name.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// MarshalJSON encodes BoardPos as a JSON array [x, y].
func (p BoardPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// Move is a single completed placement. Its JSON form is used in log output.
type Move struct {
	Pos   BoardPos `json:"pos"`
	Color Cell     `json:"color"`
}
