package minefield

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"termsweep/engine"
	"termsweep/logging"
	"termsweep/types"
)

// Game implements the GameEngine interface for a single player.
//
// Inputs (Reset, Reveal, ToggleFlag) are expected one at a time from the presentation layer.
// Queries may come from any goroutine; each input is applied atomically with respect to them.
type Game struct {
	config engine.GameConfig
	clock  *Clock
	log    *slog.Logger

	// layMines populates the grid on the first reveal.
	layMines func(g *Grid, first types.Pos)

	mu            sync.Mutex
	sessionID     string
	grid          *Grid
	phase         types.Phase
	revealedCount int
	flags         int
	endCallback   func(result types.GameResult)
}

// NewGame creates a game awaiting its first move.
func NewGame(cfg engine.GameConfig) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		config: cfg,
		clock:  NewClock(time.Second),
		log:    logging.Get().With("component", "minefield"),
		layMines: func(grid *Grid, first types.Pos) {
			placeMines(grid, cfg.Mines, first, rng)
		},
	}
	g.newSession()
	return g
}

func (g *Game) newSession() {
	g.sessionID = uuid.NewString()
	g.grid = NewGrid(g.config.Size)
	g.phase = types.AwaitingFirstMove
	g.revealedCount = 0
	g.flags = 0
	g.log.Debug("session started", "session", g.sessionID, "size", g.config.Size, "mines", g.config.Mines)
}

// Reset discards the current board and starts a new session.
func (g *Game) Reset() {
	g.mu.Lock()
	g.newSession()
	done := g.clock.cancel()
	g.clock.clear()
	g.mu.Unlock()

	wait(done)
}

// Reveal opens the cell at (row, col).
// The first reveal of a session places the mines around it and starts the clock.
func (g *Game) Reveal(row, col int) types.RevealResult {
	p := types.Pos{Row: row, Col: col}

	g.check(p)

	g.mu.Lock()
	if g.phase.Finished() {
		g.mu.Unlock()
		return types.RevealResult{Outcome: types.RevealNoop}
	}

	if g.phase == types.AwaitingFirstMove {
		g.layMines(g.grid, p)
		g.phase = types.InProgress
		g.clock.Start()
		g.log.Debug("mines placed", "session", g.sessionID, "first", p.String())
	}

	opened, hitMine := floodReveal(g.grid, p)
	if len(opened) == 0 {
		g.mu.Unlock()
		return types.RevealResult{Outcome: types.RevealNoop}
	}

	result := types.RevealResult{Outcome: types.RevealOK}
	if hitMine {
		g.phase = types.Lost
		opened = append(opened, revealMines(g.grid)...)
		result.Outcome = types.RevealLost
	} else {
		g.revealedCount += len(opened)
		if g.revealedCount == g.safeCells() {
			g.phase = types.Won
			result.Outcome = types.RevealWon
		}
	}
	result.Revealed = opened

	// The clock is cancelled with the transition; its goroutine is awaited
	// after unlocking since a tick callback may be waiting on the lock.
	var clockDone <-chan struct{}
	if g.phase.Finished() {
		clockDone = g.clock.cancel()
		result.Elapsed = g.clock.Elapsed()
	}

	phase := g.phase
	sessionID := g.sessionID
	endCallback := g.endCallback
	g.mu.Unlock()

	g.log.Debug("reveal", "session", sessionID, "pos", p.String(), "outcome", result.Outcome.String(), "opened", len(opened))

	if !phase.Finished() {
		return result
	}

	wait(clockDone)
	g.log.Info("game over", "session", sessionID, "phase", phase.String(), "elapsed", result.Elapsed)

	if endCallback != nil {
		endCallback(types.GameResult{
			SessionID: sessionID,
			Phase:     phase,
			Elapsed:   result.Elapsed,
		})
	}
	return result
}

// ToggleFlag flips the cell at (row, col) between hidden and flagged.
// Flags are only accepted while the game is in progress.
func (g *Game) ToggleFlag(row, col int) types.FlagResult {
	p := types.Pos{Row: row, Col: col}
	g.check(p)

	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.grid.at(p)
	result := types.FlagResult{Outcome: types.FlagNoop}
	if g.phase == types.InProgress {
		switch c.Visibility {
		case types.Hidden:
			c.Visibility = types.Flagged
			g.flags++
			result.Outcome = types.FlagPlaced
		case types.Flagged:
			c.Visibility = types.Hidden
			g.flags--
			result.Outcome = types.FlagRemoved
		}
	}
	result.MinesRemaining = g.config.Mines - g.flags

	if result.Outcome != types.FlagNoop {
		g.log.Debug("flag", "session", g.sessionID, "pos", p.String(), "outcome", result.Outcome.String())
	}
	return result
}

// Cell returns the renderable state of the cell at (row, col).
func (g *Game) Cell(row, col int) types.CellView {
	g.check(types.Pos{Row: row, Col: col})
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.grid.View(types.Pos{Row: row, Col: col})
}

// Snapshot returns a copy of the board suitable for rendering.
func (g *Game) Snapshot() *types.BoardState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := types.NewBoardState(g.config.Size, g.config.Mines)
	state.SessionID = g.sessionID
	state.Phase = g.phase
	state.MinesRemaining = g.config.Mines - g.flags
	state.Elapsed = g.clock.Elapsed()
	for row := range state.Cells {
		for col := range state.Cells[row] {
			state.Cells[row][col] = g.grid.View(types.Pos{Row: row, Col: col})
		}
	}
	return state
}

// Phase returns the current game phase.
func (g *Game) Phase() types.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// MinesRemaining returns the mine count minus the flags placed.
func (g *Game) MinesRemaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config.Mines - g.flags
}

// Elapsed returns whole seconds since the first reveal, frozen once the game ends.
func (g *Game) Elapsed() int {
	return g.clock.Elapsed()
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.config.Size
}

// SessionID identifies the current session. It changes on every Reset.
func (g *Game) SessionID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessionID
}

// OnTick registers a callback for every clock tick. It runs on the clock goroutine.
func (g *Game) OnTick(f func(elapsed int)) {
	g.clock.SetOnTick(f)
}

// OnGameEnd registers a callback for when the game is won or lost.
func (g *Game) OnGameEnd(f func(result types.GameResult)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.endCallback = f
}

// Close stops the clock.
func (g *Game) Close() {
	g.clock.Stop()
}

// check panics on coordinates outside the board before any lock is taken.
func (g *Game) check(p types.Pos) {
	if p.Row < 0 || p.Row >= g.config.Size || p.Col < 0 || p.Col >= g.config.Size {
		panic(fmt.Sprintf("minefield: position %v out of range for %dx%d board", p, g.config.Size, g.config.Size))
	}
}

func (g *Game) safeCells() int {
	return g.config.Size*g.config.Size - g.config.Mines
}

var _ engine.GameEngine = (*Game)(nil)
