package ui

import (
	"github.com/rivo/tview"

	"termsweep/types"
)

// NewResultModal builds the dialog shown when a game ends.
// Escape or Close dismisses it and leaves the finished board on screen.
func NewResultModal(result types.GameResult, onNewGame, onDismiss func()) *tview.Modal {
	accent := MenuColors.Lost
	if result.Phase == types.Won {
		accent = MenuColors.Won
	}

	modal := tview.NewModal().
		SetText(result.Message()).
		AddButtons([]string{"New Game", "Close"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex == 0 {
				onNewGame()
				return
			}
			onDismiss()
		})
	modal.SetBackgroundColor(MenuColors.CardBG)
	modal.SetTextColor(MenuColors.Title)
	modal.SetButtonBackgroundColor(MenuColors.ButtonBG)
	modal.SetButtonTextColor(MenuColors.ButtonText)
	modal.SetBorderColor(accent)
	return modal
}
