// Package engine defines the interface for minesweeper game engines.
package engine

import "termsweep/types"

// GameEngine is the input/query surface a presentation layer drives.
// Invalid inputs are silent no-ops reported through the result outcomes.
// Coordinates outside [0, size) are a caller error.
type GameEngine interface {
	// Reset discards the current board and starts a fresh game awaiting its first move.
	Reset()

	// Reveal opens the cell at (row, col). The first reveal of a game places the mines.
	Reveal(row, col int) types.RevealResult

	// ToggleFlag flips a hidden cell to flagged and back.
	ToggleFlag(row, col int) types.FlagResult

	// Cell returns the renderable state of one cell.
	Cell(row, col int) types.CellView

	// Snapshot returns a copy of the whole board for rendering.
	Snapshot() *types.BoardState

	// Phase returns the current game phase.
	Phase() types.Phase

	// MinesRemaining returns mine count minus flags placed. May be negative.
	MinesRemaining() int

	// Elapsed returns whole seconds since the first reveal.
	Elapsed() int

	// Size returns the board dimension.
	Size() int

	// OnTick registers a callback for every clock tick while a game is in progress.
	OnTick(func(elapsed int))

	// OnGameEnd registers a callback for when the game is won or lost.
	OnGameEnd(func(result types.GameResult))

	// Close stops the clock for good.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Size  int   // Board dimension N, the board is N x N
	Mines int   // Must not exceed Size*Size - 9
	Seed  int64 // 0 seeds from the current time
}

// DefaultConfig returns the standard 10x10 board with 10 mines.
func DefaultConfig() GameConfig {
	return GameConfig{
		Size:  10,
		Mines: 10,
	}
}
