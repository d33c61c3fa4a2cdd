package minefield

import "termsweep/types"

// floodReveal opens start and, when it is blank, every cell reachable through blank cells.
// Flagged and already revealed cells are left alone. A cell is marked before its neighbors
// are queued, so no cell is visited twice.
//
// opened lists every cell that became revealed, in traversal order. hitMine is set when start
// itself was a mine; cells around a blank are never mines, so only start can be one.
func floodReveal(g *Grid, start types.Pos) (opened []types.Pos, hitMine bool) {
	c := g.at(start)
	if c.Visibility != types.Hidden {
		return nil, false
	}
	c.Visibility = types.Revealed
	opened = append(opened, start)
	if c.Mine {
		return opened, true
	}

	stack := []types.Pos{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.at(p).Count != 0 {
			continue
		}
		for _, n := range g.Neighbors(p) {
			nc := g.at(n)
			if nc.Visibility != types.Hidden {
				continue
			}
			nc.Visibility = types.Revealed
			opened = append(opened, n)
			stack = append(stack, n)
		}
	}
	return opened, false
}

// revealMines opens every hidden mine. Flagged mines stay flagged.
func revealMines(g *Grid) []types.Pos {
	var opened []types.Pos
	for _, m := range g.Mines() {
		c := g.at(m)
		if c.Visibility == types.Hidden {
			c.Visibility = types.Revealed
			opened = append(opened, m)
		}
	}
	return opened
}
