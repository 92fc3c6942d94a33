// Package ui specifies custom controls for tview to play Reversi in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/types"
)

// Left margin for row numbers; each cell is 2 characters wide.
const (
	boardLeftMargin = 4
	cellWidth       = 2
)

type ReversiBoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	selX      int
	selY      int
	originX   int
	originY   int
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	status    string

	// typing is set while a cell name such as "d3" is being entered.
	typing bool
	typed  []rune
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *ReversiBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *ReversiBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *ReversiBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *ReversiBoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *ReversiBoardUI) MoveSelection(h, v int) {
	size := g.size()
	if size == 0 {
		return
	}
	if g.SelectedTile() == nil {
		if hints := g.eng.Hints(); len(hints) > 0 {
			g.selX, g.selY = hints[0].X, hints[0].Y
		} else {
			g.selX, g.selY = size/2, size/2
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= size {
		return
	}
	if g.selY+v < 0 || g.selY+v >= size {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *ReversiBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewReversiBoard(c *config.Config, hint *tview.TextView) *ReversiBoardUI {
	rb := &ReversiBoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		selX: -1,
		selY: -1,
	}
	rb.SetConfig(c)
	rb.Box.SetDrawFunc(rb.draw)
	rb.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		mx, my := event.Position()
		if x, y, ok := rb.cellAtScreen(mx, my); ok {
			rb.selX, rb.selY = x, y
			rb.PlayMove(x, y)
			return action, nil
		}
		return action, event
	})
	return rb
}

func (g *ReversiBoardUI) size() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.BoardSize()
}

// cellAtScreen maps a terminal position to board coordinates.
func (g *ReversiBoardUI) cellAtScreen(sx, sy int) (int, int, bool) {
	size := g.size()
	if size == 0 || sx < g.originX || sy < g.originY {
		return 0, 0, false
	}
	x := (sx - g.originX) / cellWidth
	y := sy - g.originY
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}

func (g *ReversiBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	size := g.size()
	if size == 0 {
		return x, y, 1, 1
	}
	g.originX, g.originY = x+boardLeftMargin, y
	last, hasLast := g.eng.LastMove()

	for _, ci := range g.eng.AllCells() {
		bg := g.styles[0]
		if (ci.X+ci.Y)%2 == 1 {
			bg = g.styles[1]
		}
		fg := g.styles[4]
		drawRune := g.cfg.Theme.Symbols.BoardSquare

		switch ci.Cell {
		case types.Black:
			drawRune = g.cfg.Theme.Symbols.BlackPiece
			fg = g.styles[2]
		case types.White:
			drawRune = g.cfg.Theme.Symbols.WhitePiece
			fg = g.styles[3]
		case types.Hint:
			if g.cfg.Theme.ShowHints {
				drawRune = g.cfg.Theme.Symbols.Hint
			}
		}

		if ci.X == g.selX && ci.Y == g.selY && g.cfg.Theme.DrawCursorBackground {
			bg = g.styles[5]
		} else if hasLast && ci.X == last.Pos.X && ci.Y == last.Pos.Y && g.cfg.Theme.DrawLastPlayedBackground {
			bg = g.styles[6]
		}

		drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, ci.X, ci.Y, g.originX, g.originY)
	}
	drawCoordinates(screen, x, y, g)
	return x, y, size*cellWidth + boardLeftMargin, size + 2
}

// ConnectEngine connects the board to a game engine.
func (g *ReversiBoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e
	g.status = ""
	g.ResetSelection()
	g.refreshHint()
}

// StartTyping begins entry of a cell name.
func (g *ReversiBoardUI) StartTyping() {
	if g.eng == nil {
		return
	}
	g.typing = true
	g.typed = g.typed[:0]
	g.refreshHint()
}

// IsTyping reports whether a cell name is being entered.
func (g *ReversiBoardUI) IsTyping() bool {
	return g.typing
}

// TypeRune appends r to the cell name being entered.
func (g *ReversiBoardUI) TypeRune(r rune) {
	if !g.typing || len(g.typed) >= 3 {
		return
	}
	g.typed = append(g.typed, r)
	g.refreshHint()
}

// DeleteTyped removes the last entered character.
func (g *ReversiBoardUI) DeleteTyped() {
	if len(g.typed) > 0 {
		g.typed = g.typed[:len(g.typed)-1]
	}
	g.refreshHint()
}

// CancelTyping leaves cell name entry without playing.
func (g *ReversiBoardUI) CancelTyping() {
	g.typing = false
	g.typed = g.typed[:0]
	g.refreshHint()
}

// SubmitTyped parses the entered cell name and plays there.
func (g *ReversiBoardUI) SubmitTyped() {
	name := string(g.typed)
	g.typing = false
	g.typed = g.typed[:0]

	x, y, err := engine.ParsePos(name, g.size())
	if err != nil {
		g.status = fmt.Sprintf("%q is not a cell", name)
		g.refreshHint()
		return
	}
	g.selX, g.selY = x, y
	g.PlayMove(x, y)
}

// PlayMove requests a placement at the given coordinates and refreshes the status.
func (g *ReversiBoardUI) PlayMove(x, y int) {
	if g.eng == nil {
		return
	}
	err := g.eng.RequestPlacement(x, y)
	switch {
	case err == nil:
		g.status = ""
	case errors.Is(err, engine.ErrIllegalCell):
		g.status = fmt.Sprintf("%s is taken", engine.PosToDisplay(x, y))
	case errors.Is(err, engine.ErrOutOfBounds):
		g.status = "off the board"
	default:
		g.status = err.Error()
	}
	g.refreshHint()
}

// Restart re-initializes the engine with the current board size.
func (g *ReversiBoardUI) Restart() {
	if g.eng == nil {
		return
	}
	if err := g.eng.Initialize(g.size()); err != nil {
		g.status = err.Error()
	} else {
		g.status = "new game"
	}
	g.ResetSelection()
	g.refreshHint()
}

func (g *ReversiBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 1
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // 4
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 5
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 6
	}
	g.cfg = c
}

func (g *ReversiBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetEngine(g.eng)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	if g.eng == nil {
		g.hint.SetText("")
		return
	}
	if g.typing {
		g.hint.SetText(fmt.Sprintf("  cell: %s_\n  ⏎ place   esc cancel", string(g.typed)))
		return
	}

	stone := "●"
	color := "Black"
	if g.eng.CurrentColor() == types.White {
		stone = "○"
		color = "White"
	}
	turnLine := fmt.Sprintf("  %s %s to move", stone, color)
	if len(g.eng.Hints()) == 0 {
		turnLine += " (no legal moves)"
	}
	if g.status != "" {
		turnLine += "  · " + g.status
	}

	controlsLine := `
  hjkl/↑↓←→ move   ⏎/click place   : type cell   r restart   f focus   q quit`

	g.hint.SetText(turnLine + controlsLine)
}

// drawCell draws a board cell (2 characters wide).
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*cellWidth, t+y, r, nil, c)
	s.SetContent(l+x*cellWidth+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *ReversiBoardUI) {
	size := ui.size()
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[5])

	for ix := 0; ix < size; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		}
		s.SetContent(ui.originX+ix*cellWidth, y+size, rune('a'+ix), nil, _style)
		s.SetContent(ui.originX+ix*cellWidth+1, y+size, ' ', nil, _style)
	}

	for iy := 0; iy < size; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+displayNum%10), nil, _style)
	}
}
