package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	status    string

	selectedBoardColor int
	selectedHintColor  int
	editingHint        bool // true = editing hint color, false = editing board color
}

type namedColor struct {
	code int
	name string
}

// Felt-like tones for the board.
var boardColors = []namedColor{
	{28, "Green"},
	{22, "Dark Green"},
	{34, "Bright Green"},
	{29, "Sea Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{240, "Gray"},
	{236, "Dark Gray"},
}

// Marker colors that stand out on the board.
var hintColors = []namedColor{
	{149, "Light Lime"},
	{190, "Yellow Green"},
	{226, "Yellow"},
	{214, "Orange Gold"},
	{208, "Dark Orange"},
	{203, "Salmon"},
	{117, "Sky Blue"},
	{51, "Cyan"},
	{201, "Magenta"},
	{250, "Gray"},
}

// previewCells is the opening position with Black's hints on a 6x6 board.
var previewCells = map[types.BoardPos]types.Cell{
	{X: 2, Y: 2}: types.White,
	{X: 3, Y: 2}: types.Black,
	{X: 3, Y: 3}: types.White,
	{X: 2, Y: 3}: types.Black,
	{X: 1, Y: 2}: types.Hint,
	{X: 3, Y: 4}: types.Hint,
	{X: 2, Y: 1}: types.Hint,
	{X: 4, Y: 3}: types.Hint,
}

const previewSize = 6

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedHintColor:  cfg.Theme.Colors.HintColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	cc.populateColorList()

	// Preview follows the highlighted item.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		palette := cc.palette()
		if index >= 0 && index < len(palette) {
			if cc.editingHint {
				cc.selectedHintColor = palette[index].code
			} else {
				cc.selectedBoardColor = palette[index].code
			}
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.palette()) {
			return
		}
		if cc.editingHint {
			cc.cfg.Theme.Colors.HintColor = cc.selectedHintColor
			cc.editingHint = false
			cc.populateColorList()
			cc.save()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
		if cc.save() {
			onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []namedColor {
	if cc.editingHint {
		return hintColors
	}
	return boardColors
}

// save writes the config and reports whether it succeeded; failures show in the preview.
func (cc *ColorConfigUI) save() bool {
	if err := cc.cfg.Save(); err != nil {
		cc.status = fmt.Sprintf("save failed: %s", err)
		return false
	}
	cc.status = ""
	return true
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	if cc.editingHint {
		cc.colorList.SetTitle(" Select Hint Color (Tab: switch to board) ")
		current = cc.selectedHintColor
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to hint) ")
	}

	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.palette() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	styles := map[types.Cell]tcell.Style{
		types.Empty: tcell.StyleDefault.Background(boardColor),
		types.Hint:  tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedHintColor)),
		types.Black: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)),
		types.White: tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)),
	}
	symbols := map[types.Cell]rune{
		types.Empty: cc.cfg.Theme.Symbols.BoardSquare,
		types.Hint:  cc.cfg.Theme.Symbols.Hint,
		types.Black: cc.cfg.Theme.Symbols.BlackPiece,
		types.White: cc.cfg.Theme.Symbols.WhitePiece,
	}

	startX := x + 2
	startY := y + 1
	for row := 0; row < previewSize; row++ {
		for col := 0; col < previewSize; col++ {
			cell := previewCells[types.BoardPos{X: col, Y: row}]
			drawCell(screen, styles[cell], symbols[cell], col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Hint: %d", cc.selectedBoardColor, cc.selectedHintColor)
	if cc.status != "" {
		info = cc.status
	}
	for i, ch := range []rune(info) {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+previewSize+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHint = !cc.editingHint
	cc.populateColorList()
}
