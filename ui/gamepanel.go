package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termsweep/types"
)

// GameInfoPanel displays the mine counter, clock and game status alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
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

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.box.SetText(panelText(state))
}

// panelText renders the panel contents for a board state.
func panelText(state *types.BoardState) string {
	if state == nil || state.Size == 0 {
		return ""
	}

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", state.Size, state.Size)

	minesColor := "white"
	if state.MinesRemaining < 0 {
		minesColor = "red"
	}
	text += fmt.Sprintf("[white]Mines:[-:-:-] [%s]%d[-]\n", minesColor, state.MinesRemaining)
	text += fmt.Sprintf("[white]Time:[-:-:-]  %03d\n", state.Elapsed)

	text += "\n[white::b]Status[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	switch state.Phase {
	case types.AwaitingFirstMove:
		text += "[dimgray]Waiting for first move[-]\n"
	case types.InProgress:
		text += "[white]Playing[-]\n"
	case types.Won:
		text += "[green::b]Cleared![-:-:-]\n"
	case types.Lost:
		text += "[red::b]Boom[-:-:-]\n"
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *MineBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *MineBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 3, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *MineBoardUI) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth := 10*2 + boardLeft
	boardHeight := 10 + boardTop
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + boardLeft
		boardHeight = board.BoardState.Height() + boardTop
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)               // left spacer
	centerRow.AddItem(board.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)               // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
