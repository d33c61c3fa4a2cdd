package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coordinate labels:
// - Columns: A-Z (left to right)
// - Rows: 1-26 (top to bottom)
// - Example: (row 6, col 2) is C7

// Pos represents a position on the board.
type Pos struct {
	Row int
	Col int
}

// String returns the position as a label such as C7.
func (p Pos) String() string {
	if p.Col < 0 || p.Col >= 26 || p.Row < 0 {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}

// ParsePos converts a label such as C7 back into a position on a board of the given size.
func ParsePos(label string, size int) (Pos, error) {
	label = strings.TrimSpace(strings.ToUpper(label))
	if len(label) < 2 {
		return Pos{}, fmt.Errorf("invalid position: %q", label)
	}

	col := int(label[0] - 'A')
	if label[0] < 'A' || label[0] > 'Z' {
		return Pos{}, fmt.Errorf("invalid column in position: %q", label)
	}

	row, err := strconv.Atoi(label[1:])
	if err != nil {
		return Pos{}, fmt.Errorf("invalid row in position: %q", label)
	}
	row--

	if col >= size || row < 0 || row >= size {
		return Pos{}, fmt.Errorf("position out of bounds: %q", label)
	}
	return Pos{Row: row, Col: col}, nil
}

// MarshalJSON encodes the position as a JSON array [row, col].
func (p Pos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}
