package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Reversi coordinate system:
// - Columns: a, b, c, ... (left to right)
// - Rows: 1, 2, 3, ... (top to bottom)
// - Example: d3, f5
//
// Engine coordinate system:
// - X: 0..N-1 (left to right)
// - Y: 0..N-1 (top to bottom)
// - Example: (3, 2) for d3

// maxNotationSize is the largest board whose columns fit in a..z.
const maxNotationSize = 26

// PosToDisplay converts engine coordinates to Reversi notation.
// (0, 0) -> a1, (3, 2) -> d3, (7, 7) -> h8.
func PosToDisplay(x, y int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(x), y+1)
}

// ParsePos converts Reversi notation to engine coordinates on a board of the given size.
// Case is ignored: "D3" and "d3" both give (3, 2).
func ParsePos(s string, size int) (int, int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("invalid position: %q", s)
	}

	x := int(s[0]) - 'a'
	if x < 0 || x >= maxNotationSize {
		return 0, 0, fmt.Errorf("invalid column in position: %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in position: %q", s)
	}
	y := row - 1

	if x >= size || y < 0 || y >= size {
		return 0, 0, fmt.Errorf("%w: %q on %dx%d board", ErrOutOfBounds, s, size, size)
	}
	return x, y, nil
}
