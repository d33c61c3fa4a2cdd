// termsweep is a terminal minesweeper.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termsweep/config"
	"termsweep/engine/minefield"
	"termsweep/logging"
	"termsweep/types"
	"termsweep/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSize       = flag.Int("size", 0, "Board size (3-26)")
	flagMines      = flag.Int("mines", -1, "Number of mines")
	flagSeed       = flag.Int64("seed", 0, "Random seed for mine placement (0 = random)")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagLogLevel   = flag.String("log-level", "info", "Debug log level (debug, info, warn, error)")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective configuration and exit")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.MineBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termsweep %s\n", Version)
		return
	}

	logCloser, err := logging.Init(*flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %s\n", err)
	} else {
		defer logCloser.Close()
	}

	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *flagSaveConfig {
		if err := cfg.Save(); err != nil {
			fmt.Printf("Failed to save config: %s\n", err)
			os.Exit(1)
		}
		return
	}

	game := minefield.NewGame(cfg.Game.EngineConfig())
	defer game.Close()
	logging.Get().Info("starting", "version", Version, "size", cfg.Game.Size, "mines", cfg.Game.Mines)

	app = tview.NewApplication()
	app.EnableMouse(true)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ✹ termsweep ")
	rootPage.SetBorderColor(ui.MenuColors.Border)

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewMineBoard(app, cfg, gameHint)

	// Create game layout with centered board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.SetGameEndFunc(showResult)
	gameBoard.ConnectEngine(game)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			revealSelected()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				if gameBoard.SelectedTile() != nil {
					gameBoard.ResetSelection()
				} else {
					app.Stop()
				}
				return nil
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case ' ':
				revealSelected()
			case 'f':
				if tile := gameBoard.SelectedTile(); tile != nil {
					gameBoard.ToggleFlag(tile.Row, tile.Col)
				}
			case 'g':
				showGoto()
				return nil
			case 'r':
				gameBoard.NewGame()
			case 'z':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	rootPage.AddPage("gameview", gameFrame, true, true)

	if *flagFocus {
		gameBoard.SetFocusMode(true)
		ui.BuildFocusLayout(gameFrame, gameBoard)
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// revealSelected reveals the tile under the cursor.
func revealSelected() {
	tile := gameBoard.SelectedTile()
	if tile == nil {
		return
	}
	gameBoard.Reveal(tile.Row, tile.Col)
}

// showResult pops up the end-of-game dialog over the frozen board.
func showResult(result types.GameResult) {
	modal := ui.NewResultModal(result,
		func() {
			rootPage.RemovePage("result")
			gameBoard.NewGame()
			app.SetFocus(gameBoard.Box)
		},
		func() {
			rootPage.RemovePage("result")
			app.SetFocus(gameBoard.Box)
		},
	)
	rootPage.AddPage("result", modal, true, true)
}

// showGoto prompts for a cell label and moves the cursor there.
func showGoto() {
	if gameBoard.IsFinished() {
		return
	}
	input := tview.NewInputField().
		SetLabel("Cell: ").
		SetFieldWidth(4).
		SetAcceptanceFunc(func(text string, last rune) bool {
			return len(text) <= 3
		})
	input.SetBorder(true).SetTitle(" Go to ").SetBorderColor(ui.MenuColors.Border)

	closeGoto := func() {
		rootPage.RemovePage("goto")
		app.SetFocus(gameBoard.Box)
	}
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			if err := gameBoard.SelectLabel(input.GetText()); err != nil {
				input.SetLabel("Cell? ")
				input.SetText("")
				return
			}
		}
		closeGoto()
	})

	// Center the prompt over the board
	row := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(input, 16, 0, true).
		AddItem(nil, 0, 1, false)
	frame := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, 3, 0, true).
		AddItem(nil, 0, 1, false)
	rootPage.AddPage("goto", frame, true, true)
	app.SetFocus(input)
}

// applyFlags overrides configured game settings with command-line flags.
func applyFlags(c *config.Config) {
	if *flagSize > 0 {
		c.Game.Size = *flagSize
	}
	if *flagMines >= 0 {
		c.Game.Mines = *flagMines
	}
	if *flagSeed != 0 {
		c.Game.Seed = *flagSeed
	}
}
