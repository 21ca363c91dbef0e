// Package game implements the playable 2048 session on top of the
// board engine: tick-driven input handling, pause/restart/win flow,
// and screen rendering.
package game

import (
	"math/rand"

	"github.com/vovakirdan/twenty48/internal/board"
	"github.com/vovakirdan/twenty48/internal/core"
)

// DefaultWinTarget is the tile value that triggers the win banner.
const DefaultWinTarget = 2048

// Package-level session options, applied on the next Reset.
var (
	selectedBoardSize  = board.DefaultSize
	selectedWinTarget  = DefaultWinTarget
	selectedStartState string
)

// SetBoardSize sets the board dimension for the next game.
// Values below the engine minimum are ignored.
func SetBoardSize(size int) {
	if size >= 2 {
		selectedBoardSize = size
	}
}

// SetWinTarget sets the tile value that counts as a win for the next game.
func SetWinTarget(target int) {
	if target > 0 {
		selectedWinTarget = target
	}
}

// SetStartState supplies a state encoding to resume from on the next
// Reset. Consumed once; an empty string means start fresh.
func SetStartState(state string) {
	selectedStartState = state
}

// Game drives a single 2048 session.
type Game struct {
	rng  *rand.Rand
	tick uint64

	board     *board.Board
	winTarget int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	won           bool // Win banner; play continues past the target
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// New creates a new 2048 game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.moveProcessed = false
	g.winTarget = selectedWinTarget

	g.board = nil
	if selectedStartState != "" {
		if b, err := board.FromState(selectedStartState, selectedBoardSize, g.rng); err == nil {
			g.board = b
		}
		selectedStartState = "" // Consumed, even when malformed.
	}
	if g.board == nil {
		b, err := board.New(selectedBoardSize, g.rng)
		if err != nil {
			// Setters reject invalid sizes, so this is unreachable;
			// fall back to the classic board anyway.
			b, _ = board.New(board.DefaultSize, g.rng)
		}
		g.board = b
	}

	g.gameOver = g.board.PossibleMoves().Over
	g.won = g.board.MaxTile() >= g.winTarget
	g.checkScreenSize()
}

// SetScreenSize updates the screen dimensions without restarting the
// game, used by the platform on terminal resize.
func (g *Game) SetScreenSize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board
// plus the HUD.
func (g *Game) checkScreenSize() {
	minW := g.board.Size()*cellWidth + 1 + 4
	minH := g.board.Size()*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		// Will be reset by the platform.
		return core.StepResult{State: g.State()}
	}
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	var dir board.Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = board.Up
		moved = true
	case in.Has(core.ActionDown):
		dir = board.Down
		moved = true
	case in.Has(core.ActionLeft):
		dir = board.Left
		moved = true
	case in.Has(core.ActionRight):
		dir = board.Right
		moved = true
	}

	if moved && !g.moveProcessed {
		g.processMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// processMove applies a move in the given direction.
func (g *Game) processMove(dir board.Direction) {
	changed, err := g.board.Move(dir, false)
	if err != nil {
		// The engine only errors here when a spawn finds no vacancy,
		// which a committed move rules out. Treat it as terminal.
		g.gameOver = true
		return
	}
	if !changed {
		return
	}

	if !g.won && g.board.MaxTile() >= g.winTarget {
		g.won = true
	}
	g.gameOver = g.board.PossibleMoves().Over
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Won reports whether the win target has been reached this session.
func (g *Game) Won() bool {
	return g.won
}

// BoardSize returns the dimension of the current board.
func (g *Game) BoardSize() int {
	return g.board.Size()
}

// MaxTile returns the highest tile on the current board.
func (g *Game) MaxTile() int {
	return g.board.MaxTile()
}

// PossibleMoves exposes the engine's legal-move set.
func (g *Game) PossibleMoves() board.Moves {
	return g.board.PossibleMoves()
}

// StateString encodes the current board for persistence.
// See board.StateString for the encoding and its tile-value ceiling.
func (g *Game) StateString() (string, error) {
	return g.board.StateString()
}
