package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/config"
	"reversi-local/engine"
)

// boardSizes lists every size the setup form offers.
func boardSizes() []int {
	sizes := make([]int, 0, config.MaxBoardSize-config.MinBoardSize+1)
	for n := config.MinBoardSize; n <= config.MaxBoardSize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form *tview.Form
	flex *tview.Flex

	boardSize    int
	flipCaptures bool
}

// NewGameSetup creates a new game setup form seeded from the configured defaults.
func NewGameSetup(defaults config.GameDefaults, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		boardSize:    defaults.DefaultBoardSize,
		flipCaptures: defaults.FlipCaptures,
	}

	sizes := boardSizes()
	labels := make([]string, len(sizes))
	initial := 0
	for i, n := range sizes {
		labels[i] = fmt.Sprintf("%dx%d", n, n)
		if n == defaults.DefaultBoardSize {
			initial = i
		}
	}
	setup.boardSize = sizes[initial]

	form := tview.NewForm()

	form.AddDropDown("Board Size", labels, initial, func(option string, index int) {
		if index >= 0 && index < len(sizes) {
			setup.boardSize = sizes[index]
		}
	})

	form.AddCheckbox("Flip captured pieces", setup.flipCaptures, func(checked bool) {
		setup.flipCaptures = checked
	})

	form.AddButton("Start Game", func() {
		onStart(engine.GameConfig{
			BoardSize:    setup.boardSize,
			FlipCaptures: setup.flipCaptures,
		})
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
