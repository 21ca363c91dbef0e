package game

import "github.com/vovakirdan/twenty48/internal/board"

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete session state for determinism testing
// and replay.
type Snapshot struct {
	Tick    uint64
	Size    int
	Score   int
	Grid    [][]int
	MaxTile int
	Moves   board.Moves
	State   GameStateType
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Size:    g.board.Size(),
		Score:   g.board.Score(),
		Grid:    g.board.Grid(),
		MaxTile: g.board.MaxTile(),
		Moves:   g.board.PossibleMoves(),
		State:   state,
	}
}
