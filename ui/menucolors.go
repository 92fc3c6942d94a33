package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for the menu UI.
var MenuColors = struct {
	Label      tcell.Color // Light gray for labels
	Hint       tcell.Color // Dim gray for hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(245),
	ButtonBG:   tcell.PaletteColor(60),
	ButtonText: tcell.PaletteColor(255),
}
