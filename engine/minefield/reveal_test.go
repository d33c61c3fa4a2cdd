package minefield

import (
	"math/rand"
	"testing"

	"termsweep/types"
)

func gridWithMines(size int, mines ...types.Pos) *Grid {
	g := NewGrid(size)
	for _, m := range mines {
		g.at(m).Mine = true
	}
	computeCounts(g)
	return g
}

// closure computes the cells a reveal of start should open, independently of floodReveal.
func closure(g *Grid, start types.Pos) map[types.Pos]bool {
	want := map[types.Pos]bool{start: true}
	queue := []types.Pos{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if g.Get(p).Mine || g.Get(p).Count != 0 {
			continue
		}
		for _, n := range g.Neighbors(p) {
			if want[n] || g.Get(n).Visibility != types.Hidden {
				continue
			}
			want[n] = true
			queue = append(queue, n)
		}
	}
	return want
}

func TestFloodRevealNumberedCell(t *testing.T) {
	g := gridWithMines(4, types.Pos{Row: 0, Col: 0}, types.Pos{Row: 3, Col: 3})
	opened, hit := floodReveal(g, types.Pos{Row: 0, Col: 1})
	if hit {
		t.Fatal("should not hit a mine")
	}
	if len(opened) != 1 {
		t.Fatalf("numbered cell should open alone, got %v", opened)
	}
}

func TestFloodRevealBlankRegion(t *testing.T) {
	// Mines wall off the left side:
	//   . . 2 M 2
	//   . . 3 M 3
	//   . . 3 M 3
	//   . . 2 M 2
	//   . . 1 1 1
	mines := []types.Pos{{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3}}
	g := gridWithMines(5, mines...)

	opened, hit := floodReveal(g, types.Pos{Row: 0, Col: 0})
	if hit {
		t.Fatal("should not hit a mine")
	}

	got := map[types.Pos]bool{}
	for _, p := range opened {
		if got[p] {
			t.Fatalf("%v opened twice", p)
		}
		got[p] = true
	}

	// The two blank columns plus their numbered border in column 2, nothing else.
	if len(got) != 15 {
		t.Fatalf("expected 15 opened cells, got %d: %v", len(got), opened)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			p := types.Pos{Row: row, Col: col}
			if want := col < 3; got[p] != want {
				t.Errorf("%v: opened=%v, want %v", p, got[p], want)
			}
			if !got[p] && g.Get(p).Visibility != types.Hidden {
				t.Errorf("%v should still be hidden", p)
			}
		}
	}
}

func TestFloodRevealSkipsFlags(t *testing.T) {
	g := gridWithMines(4, types.Pos{Row: 3, Col: 3})
	flag := types.Pos{Row: 1, Col: 1}
	g.at(flag).Visibility = types.Flagged

	opened, _ := floodReveal(g, types.Pos{Row: 0, Col: 0})
	for _, p := range opened {
		if p == flag {
			t.Fatal("flagged cell must not be opened")
		}
	}
	if g.Get(flag).Visibility != types.Flagged {
		t.Fatal("flag should remain")
	}
}

func TestFloodRevealAlreadyRevealed(t *testing.T) {
	g := gridWithMines(3, types.Pos{Row: 0, Col: 0})
	p := types.Pos{Row: 2, Col: 2}
	floodReveal(g, p)
	opened, hit := floodReveal(g, p)
	if len(opened) != 0 || hit {
		t.Fatalf("second reveal should be a no-op, got %v %v", opened, hit)
	}
}

func TestFloodRevealMine(t *testing.T) {
	g := gridWithMines(3, types.Pos{Row: 1, Col: 1})
	opened, hit := floodReveal(g, types.Pos{Row: 1, Col: 1})
	if !hit {
		t.Fatal("expected a mine hit")
	}
	if len(opened) != 1 || g.Get(types.Pos{Row: 1, Col: 1}).Visibility != types.Revealed {
		t.Fatalf("only the mine should be opened, got %v", opened)
	}
}

func TestFloodRevealMatchesClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		g := NewGrid(10)
		first := types.Pos{Row: rng.Intn(10), Col: rng.Intn(10)}
		placeMines(g, 15, first, rng)

		want := closure(g, first)
		opened, hit := floodReveal(g, first)
		if hit {
			t.Fatal("first click can never be a mine")
		}
		if len(opened) != len(want) {
			t.Fatalf("board %d: expected %d opened, got %d", i, len(want), len(opened))
		}
		for _, p := range opened {
			if !want[p] {
				t.Fatalf("board %d: %v opened outside closure", i, p)
			}
		}
	}
}

func TestRevealMinesLeavesFlags(t *testing.T) {
	a, b := types.Pos{Row: 0, Col: 0}, types.Pos{Row: 2, Col: 2}
	g := gridWithMines(3, a, b)
	g.at(b).Visibility = types.Flagged

	opened := revealMines(g)
	if len(opened) != 1 || opened[0] != a {
		t.Fatalf("expected only %v, got %v", a, opened)
	}
	if g.Get(b).Visibility != types.Flagged {
		t.Fatal("flagged mine should stay hidden under its flag")
	}
}
