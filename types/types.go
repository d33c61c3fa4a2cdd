// Package types contains shared data structures for termsweep.
package types

import (
	"encoding/json"
	"fmt"
)

// Visibility is what the player currently sees of a cell.
// Revealed and Flagged never coexist.
type Visibility int

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "hidden"
	}
}

// MarshalJSON encodes the visibility as its name.
func (v Visibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Phase is the top-level state of a game.
type Phase int

const (
	AwaitingFirstMove Phase = iota
	InProgress
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "awaiting_first_move"
	}
}

// MarshalJSON encodes the phase as its name.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Finished returns true if the phase is terminal.
func (p Phase) Finished() bool {
	return p == Won || p == Lost
}

// CellView is the renderable state of one cell.
// Count and Mine are only meaningful once the cell is revealed.
type CellView struct {
	Visibility Visibility `json:"state"`
	Count      int        `json:"count"`
	Mine       bool       `json:"is_mine"`
}

// BoardState is a point-in-time copy of a whole game, safe to hand to a renderer.
// Cells is indexed as Cells[row][col].
type BoardState struct {
	SessionID      string       `json:"session_id"`
	Size           int          `json:"size"`
	Mines          int          `json:"mines"`
	Phase          Phase        `json:"phase"`
	MinesRemaining int          `json:"mines_remaining"`
	Elapsed        int          `json:"elapsed"`
	Cells          [][]CellView `json:"cells"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase.Finished()
}

// Height returns the number of rows.
func (b *BoardState) Height() int {
	return len(b.Cells)
}

// Width returns the number of columns.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Cells[0])
}

// NewBoardState creates an all-hidden board of the given size.
func NewBoardState(size, mines int) *BoardState {
	cells := make([][]CellView, size)
	for i := range cells {
		cells[i] = make([]CellView, size)
	}
	return &BoardState{
		Size:           size,
		Mines:          mines,
		Phase:          AwaitingFirstMove,
		MinesRemaining: mines,
		Cells:          cells,
	}
}

// RevealOutcome classifies the effect of a reveal request.
type RevealOutcome int

const (
	RevealNoop RevealOutcome = iota
	RevealOK
	RevealLost
	RevealWon
)

func (o RevealOutcome) String() string {
	switch o {
	case RevealOK:
		return "revealed"
	case RevealLost:
		return "lost"
	case RevealWon:
		return "won"
	default:
		return "noop"
	}
}

// RevealResult reports every cell that became visible during one reveal.
// Elapsed is set when the reveal ended the game.
type RevealResult struct {
	Outcome  RevealOutcome `json:"outcome"`
	Revealed []Pos         `json:"revealed"`
	Elapsed  int           `json:"elapsed"`
}

// FlagOutcome classifies the effect of a flag toggle.
type FlagOutcome int

const (
	FlagNoop FlagOutcome = iota
	FlagPlaced
	FlagRemoved
)

func (o FlagOutcome) String() string {
	switch o {
	case FlagPlaced:
		return "flagged"
	case FlagRemoved:
		return "unflagged"
	default:
		return "noop"
	}
}

// FlagResult is returned from a flag toggle.
type FlagResult struct {
	Outcome        FlagOutcome `json:"outcome"`
	MinesRemaining int         `json:"mines_remaining"`
}

// GameResult is delivered to observers when a game ends.
type GameResult struct {
	SessionID string
	Phase     Phase
	Elapsed   int
}

// Message returns the text shown to the player at the end of a game.
func (r GameResult) Message() string {
	if r.Phase == Won {
		return fmt.Sprintf("You won! Time: %d seconds", r.Elapsed)
	}
	return "You hit a mine!"
}
