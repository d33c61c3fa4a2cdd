package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for frames and dialogs.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	CardBG     tcell.Color // Dark gray background
	Title      tcell.Color // Bright white for title
	Won        tcell.Color // Green accent for a cleared board
	Lost       tcell.Color // Red accent for a mine hit
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Border:     tcell.PaletteColor(60),  // Muted blue-gray
	CardBG:     tcell.PaletteColor(236), // Dark gray
	Title:      tcell.PaletteColor(255), // Bright white
	Won:        tcell.PaletteColor(108), // Sage green
	Lost:       tcell.PaletteColor(131), // Muted red
	ButtonBG:   tcell.PaletteColor(60),  // Nord blue
	ButtonText: tcell.PaletteColor(255), // White
}
