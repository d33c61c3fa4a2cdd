package minefield

import (
	"math/rand"

	"termsweep/types"
)

// placeMines scatters mines uniformly over the cells outside the 3x3 exclusion zone around first,
// then computes every neighbor count.
//
// Sampling is by rejection with no retry limit. The caller must guarantee
// mines <= size*size - 9, otherwise this may never return.
func placeMines(g *Grid, mines int, first types.Pos, rng *rand.Rand) {
	placed := 0
	for placed < mines {
		p := types.Pos{Row: rng.Intn(g.size), Col: rng.Intn(g.size)}
		if inExclusionZone(p, first) {
			continue
		}
		c := g.at(p)
		if c.Mine {
			continue
		}
		c.Mine = true
		placed++
	}
	computeCounts(g)
}

// inExclusionZone reports whether p is first or one of its 8 neighbors.
func inExclusionZone(p, first types.Pos) bool {
	return abs(p.Row-first.Row) <= 1 && abs(p.Col-first.Col) <= 1
}

// computeCounts sets each non-mine cell's count to the number of mines around it.
func computeCounts(g *Grid) {
	for i := range g.cells {
		g.cells[i].Count = 0
	}
	for _, m := range g.Mines() {
		for _, n := range g.Neighbors(m) {
			if c := g.at(n); !c.Mine {
				c.Count++
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
