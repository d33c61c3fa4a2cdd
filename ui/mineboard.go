// Package ui specifies custom controls for tview to play minesweeper in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termsweep/config"
	"termsweep/engine"
	"termsweep/types"
)

// Style slots for MineBoardUI.styles.
const (
	styleHidden = iota
	styleHiddenAlt
	styleRevealed
	styleFlag
	styleMine
	styleCursor
	styleDigit1 // digits 1-8 follow
)

// Screen offsets of the board inside its box: row labels on the left, column labels on top.
const (
	boardLeft = 4
	boardTop  = 1
)

type MineBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selRow     int
	selCol     int
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	onGameEnd  func(types.GameResult)
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *MineBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *MineBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *MineBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SelectedTile returns the cell under the cursor, or nil when nothing is selected.
func (g *MineBoardUI) SelectedTile() *types.Pos {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Pos{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor by one step, stopping at the board edges.
// The first move places the cursor in the center.
func (g *MineBoardUI) MoveSelection(dRow, dCol int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		// Start from the board center
		g.selRow = g.BoardState.Height() / 2
		g.selCol = g.BoardState.Width() / 2
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= g.BoardState.Height() {
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= g.BoardState.Width() {
		return
	}
	g.selRow += dRow
	g.selCol += dCol
}

// ResetSelection hides the cursor.
func (g *MineBoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

// SelectLabel moves the cursor to the cell named by a label such as C7.
func (g *MineBoardUI) SelectLabel(label string) error {
	if g.BoardState.Finished() {
		return fmt.Errorf("game is over")
	}
	pos, err := types.ParsePos(label, g.BoardState.Width())
	if err != nil {
		return err
	}
	g.selRow, g.selCol = pos.Row, pos.Col
	g.refreshHint()
	return nil
}

// NewMineBoard creates a board widget drawing with the theme from c.
func NewMineBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *MineBoardUI {
	mineBoard := &MineBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selRow:     -1,
		selCol:     -1,
	}
	mineBoard.SetConfig(c)
	mineBoard.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		state := mineBoard.BoardState
		if state == nil || state.Width() == 0 {
			return x, y, 1, 1
		}
		for row := 0; row < state.Height(); row++ {
			for col := 0; col < state.Width(); col++ {
				r, style := mineBoard.cellAppearance(row, col)
				drawCell(screen, style, r, row, col, x+boardLeft, y+boardTop)
			}
		}
		drawCoordinates(screen, x, y, mineBoard)
		// 2 characters per cell for square appearance
		return x, y, state.Width()*2 + boardLeft, state.Height() + boardTop
	})
	mineBoard.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick && action != tview.MouseRightClick {
			return action, event
		}
		bx, by, _, _ := mineBoard.Box.GetInnerRect()
		sx, sy := event.Position()
		pos, ok := mineBoard.cellAt(sx-bx, sy-by)
		if !ok {
			return action, event
		}
		mineBoard.selRow, mineBoard.selCol = pos.Row, pos.Col
		if action == tview.MouseLeftClick {
			mineBoard.Reveal(pos.Row, pos.Col)
		} else {
			mineBoard.ToggleFlag(pos.Row, pos.Col)
		}
		return action, nil
	})
	return mineBoard
}

// cellAt maps a point relative to the box's inner rectangle to a board position.
func (g *MineBoardUI) cellAt(dx, dy int) (types.Pos, bool) {
	if dx < boardLeft || dy < boardTop {
		return types.Pos{}, false
	}
	p := types.Pos{Row: dy - boardTop, Col: (dx - boardLeft) / 2}
	if p.Row >= g.BoardState.Height() || p.Col >= g.BoardState.Width() {
		return types.Pos{}, false
	}
	return p, true
}

// cellAppearance picks the rune and style for one cell of the current board state.
func (g *MineBoardUI) cellAppearance(row, col int) (rune, tcell.Style) {
	c := g.BoardState.Cells[row][col]
	symbols := g.cfg.Theme.Symbols

	bg := g.styles[styleHidden]
	if (row%2+col%2)%2 == 1 {
		bg = g.styles[styleHiddenAlt]
	}
	fg := tcell.ColorWhite
	r := symbols.Hidden

	switch c.Visibility {
	case types.Hidden:
		// Once won, every hidden cell is a mine.
		if g.BoardState.Phase == types.Won {
			r = symbols.Flag
			fg = g.styles[styleFlag]
		} else {
			fg = bg
		}
	case types.Flagged:
		r = symbols.Flag
		fg = g.styles[styleFlag]
	case types.Revealed:
		bg = g.styles[styleRevealed]
		switch {
		case c.Mine:
			r = symbols.Mine
			fg = g.styles[styleMine]
			bg = g.styles[styleFlag]
		case c.Count == 0:
			r = symbols.Blank
			fg = g.styles[styleHidden]
		default:
			r = rune('0' + c.Count)
			fg = g.styles[styleDigit1+c.Count-1]
		}
	}

	if row == g.selRow && col == g.selCol && g.cfg.Theme.DrawCursorBackground {
		bg = g.styles[styleCursor]
	}
	return r, tcell.StyleDefault.Background(bg).Foreground(fg)
}

// ConnectEngine connects the board to a game engine.
func (g *MineBoardUI) ConnectEngine(e engine.GameEngine) {
	g.eng = e

	e.OnTick(func(elapsed int) {
		// Spawn goroutine so the clock never waits on the draw loop
		go func() {
			g.app.QueueUpdateDraw(func() {
				g.refresh()
			})
		}()
	})

	e.OnGameEnd(func(result types.GameResult) {
		g.refresh()
		if g.onGameEnd != nil {
			g.onGameEnd(result)
		}
	})

	g.refresh()
}

// SetGameEndFunc registers a handler shown when a game ends.
func (g *MineBoardUI) SetGameEndFunc(f func(types.GameResult)) {
	g.onGameEnd = f
}

// Reveal opens the cell at the given coordinates.
func (g *MineBoardUI) Reveal(row, col int) {
	if g.eng == nil || g.BoardState.Finished() {
		return
	}
	g.eng.Reveal(row, col)
	g.refresh()
}

// ToggleFlag flags or unflags the cell at the given coordinates.
func (g *MineBoardUI) ToggleFlag(row, col int) {
	if g.eng == nil || g.BoardState.Finished() {
		return
	}
	g.eng.ToggleFlag(row, col)
	g.refresh()
}

// NewGame discards the current board.
func (g *MineBoardUI) NewGame() {
	if g.eng == nil {
		return
	}
	g.eng.Reset()
	g.ResetSelection()
	g.refresh()
}

// Close disconnects the engine.
func (g *MineBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

// SetConfig applies the theme colors and symbols of c.
func (g *MineBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.HiddenColor),    // styleHidden
		tcell.PaletteColor(c.Theme.Colors.HiddenColorAlt), // styleHiddenAlt
		tcell.PaletteColor(c.Theme.Colors.RevealedColor),  // styleRevealed
		tcell.PaletteColor(c.Theme.Colors.FlagColor),      // styleFlag
		tcell.PaletteColor(c.Theme.Colors.MineColor),      // styleMine
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),  // styleCursor
	}
	for _, d := range c.Theme.Colors.Digits {
		g.styles = append(g.styles, tcell.PaletteColor(d))
	}
	g.cfg = c
}

// refresh pulls a fresh snapshot from the engine.
func (g *MineBoardUI) refresh() {
	if g.eng != nil {
		g.BoardState = g.eng.Snapshot()
	}
	if g.BoardState.Finished() {
		g.ResetSelection()
	}
	g.refreshHint()
}

func (g *MineBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  z to toggle")
		return
	}

	var statusLine, controlsLine string

	switch g.BoardState.Phase {
	case types.Won, types.Lost:
		result := types.GameResult{Phase: g.BoardState.Phase, Elapsed: g.BoardState.Elapsed}
		statusLine = fmt.Sprintf("  %s\n", result.Message())
		controlsLine = "  r · new game   q · quit"
	default:
		if tile := g.SelectedTile(); tile != nil {
			statusLine = fmt.Sprintf("  ▸ %s\n", tile)
		} else {
			statusLine = "  Pick a cell to start\n"
		}
		controlsLine = "  hjkl/↑↓←→ move   ⏎/space reveal   f flag   g go to   r new   z focus   q quit"
	}

	g.hint.SetText(statusLine + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *MineBoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

// drawCell draws a cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*2, t+row, r, nil, c)
	s.SetContent(l+col*2+1, t+row, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *MineBoardUI) {
	w, h := ui.BoardState.Width(), ui.BoardState.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for col := 0; col < w; col++ {
		_style := style
		if col == ui.selCol {
			_style = highlight
		}
		s.SetContent(x+boardLeft+col*2, y, rune('A'+col), nil, _style)
		s.SetContent(x+boardLeft+col*2+1, y, ' ', nil, _style)
	}

	for row := 0; row < h; row++ {
		_style := style
		if row == ui.selRow {
			_style = highlight
		}
		displayNum := row + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+boardTop+row, tensRune, nil, _style)
		s.SetContent(x+2, y+boardTop+row, rune('0'+displayNum%10), nil, _style)
	}
}
