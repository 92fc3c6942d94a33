package engine

import (
	"fmt"

	"reversi-local/board"
	"reversi-local/types"
)

// direction is a unit step on the board.
type direction struct{ dx, dy int }

// directions lists the 8 compass steps: W, NW, N, NE, E, SE, S, SW.
var directions = [8]direction{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

func checkColor(color types.Cell) error {
	if !color.IsPiece() {
		return fmt.Errorf("%w: %s", ErrInvalidColor, color)
	}
	return nil
}

// clearHints resets every Hint cell to Empty.
func clearHints(b *board.Board) {
	b.Replace(types.Hint, types.Empty)
}

// RecomputeHints clears all hints on b and marks every cell where color could legally be placed.
// It returns the number of hint cells.
func RecomputeHints(b *board.Board, color types.Cell) (int, error) {
	if err := checkColor(color); err != nil {
		return 0, err
	}
	clearHints(b)

	hints := 0
	for _, p := range b.CellsOfType(color) {
		for _, d := range directions {
			if castHint(b, color, p.X, p.Y, d) {
				hints++
			}
		}
	}
	return hints, nil
}

// castHint walks from (x, y) along d and marks the first empty cell reached after
// crossing at least one opponent piece. Returns true if a new hint was marked.
func castHint(b *board.Board, color types.Cell, x, y int, d direction) bool {
	opponent := color.Opponent()
	crossed := false
	for {
		x += d.dx
		y += d.dy
		cell, err := b.Get(x, y)
		if err != nil {
			return false
		}
		switch cell {
		case opponent:
			crossed = true
		case types.Empty:
			if !crossed {
				return false
			}
			return b.Set(x, y, types.Hint) == nil
		default:
			// own color or an existing hint
			return false
		}
	}
}

// LegalMoves returns the cells where color could be placed, without modifying b.
func LegalMoves(b *board.Board, color types.Cell) ([]types.BoardPos, error) {
	scratch := b.Clone()
	if _, err := RecomputeHints(scratch, color); err != nil {
		return nil, err
	}
	return scratch.CellsOfType(types.Hint), nil
}

// outflanked returns the opponent pieces trapped between a color piece at (x, y)
// and another color piece, across all directions.
func outflanked(b *board.Board, color types.Cell, x, y int) []types.BoardPos {
	var captured []types.BoardPos
	opponent := color.Opponent()
	for _, d := range directions {
		var span []types.BoardPos
		cx, cy := x, y
		for {
			cx += d.dx
			cy += d.dy
			cell, err := b.Get(cx, cy)
			if err != nil || !cell.IsPiece() {
				span = nil
				break
			}
			if cell == opponent {
				span = append(span, types.BoardPos{X: cx, Y: cy})
				continue
			}
			// reached own color; span may be empty
			break
		}
		captured = append(captured, span...)
	}
	return captured
}
