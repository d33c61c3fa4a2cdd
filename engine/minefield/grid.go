// Package minefield implements the minesweeper board and the game state machine on top of it.
package minefield

import (
	"fmt"

	"termsweep/types"
)

// Cell is one position on the board.
// Count is the number of mines among the 8 surrounding cells and is meaningless when Mine is set.
type Cell struct {
	Mine       bool
	Count      int
	Visibility types.Visibility
}

// Grid is a fixed size x size store of cells, indexed [0, size) in both dimensions.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates an all-hidden, mine-free grid.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p types.Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g *Grid) check(p types.Pos) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("minefield: position %v out of range for %dx%d grid", p, g.size, g.size))
	}
}

// Get returns a copy of the cell at p. p must be in bounds.
func (g *Grid) Get(p types.Pos) Cell {
	return *g.at(p)
}

// Set overwrites the cell at p. p must be in bounds.
func (g *Grid) Set(p types.Pos, c Cell) {
	*g.at(p) = c
}

func (g *Grid) at(p types.Pos) *Cell {
	g.check(p)
	return &g.cells[p.Row*g.size+p.Col]
}

// Neighbors returns the in-bounds positions among the 8 surrounding p.
// Edge cells have 5 and corner cells 3; there is no wraparound.
func (g *Grid) Neighbors(p types.Pos) []types.Pos {
	neighbors := make([]types.Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := types.Pos{Row: p.Row + dr, Col: p.Col + dc}
			if g.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Mines returns the positions of every mine, row by row.
func (g *Grid) Mines() []types.Pos {
	var mines []types.Pos
	for i, c := range g.cells {
		if c.Mine {
			mines = append(mines, types.Pos{Row: i / g.size, Col: i % g.size})
		}
	}
	return mines
}

// View returns the renderable form of the cell at p. Content is withheld until the cell is revealed.
func (g *Grid) View(p types.Pos) types.CellView {
	c := g.at(p)
	if c.Visibility != types.Revealed {
		return types.CellView{Visibility: c.Visibility}
	}
	return types.CellView{
		Visibility: types.Revealed,
		Count:      c.Count,
		Mine:       c.Mine,
	}
}
