package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"reversi-local/engine"
	"reversi-local/types"
)

// maxVisibleMoves is how many move log lines fit beside an 8x8 board.
const maxVisibleMoves = 12

// GameInfoPanel displays game information and the move log alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
	eng engine.GameEngine
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetEngine points the panel at a game and redraws it.
func (p *GameInfoPanel) SetEngine(eng engine.GameEngine) {
	p.eng = eng
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.render())
}

func (p *GameInfoPanel) render() string {
	if p.eng == nil || p.eng.BoardSize() == 0 {
		return ""
	}

	var b strings.Builder
	size := p.eng.BoardSize()
	moves := p.eng.Moves()

	b.WriteString("[white::b]Game Info[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&b, "[white]Board:[-:-:-] %dx%d\n", size, size)
	fmt.Fprintf(&b, "[white]Move:[-:-:-]  %d\n", len(moves))
	fmt.Fprintf(&b, "[white]Pieces:[-:-:-] ● %d  ○ %d\n", p.eng.Count(types.Black), p.eng.Count(types.White))
	fmt.Fprintf(&b, "[white]Hints:[-:-:-] %d\n", len(p.eng.Hints()))

	if len(moves) == 0 {
		return b.String()
	}

	b.WriteString("\n[white::b]Moves[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	start := 0
	if len(moves) > maxVisibleMoves {
		start = len(moves) - maxVisibleMoves
	}
	for i := start; i < len(moves); i++ {
		m := moves[i]
		colorStr := "[white]B[-]"
		if m.Color == types.White {
			colorStr = "[dimgray]W[-]"
		}
		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		fmt.Fprintf(&b, "%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, engine.PosToDisplay(m.Pos.X, m.Pos.Y))
	}
	if start > 0 {
		fmt.Fprintf(&b, "[dimgray]  ··· %d earlier[-]\n", start)
	}
	return b.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *ReversiBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *ReversiBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetEngine(board.eng)

	// board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *ReversiBoardUI) {
	gameFrame.Clear()

	boardWidth := 8*cellWidth + boardLeftMargin
	boardHeight := 8 + 2
	if size := board.size(); size > 0 {
		boardWidth = size*cellWidth + boardLeftMargin
		boardHeight = size + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
