// Package board implements the 2048 grid engine: directional shifting
// with merges, tile spawning, scoring and legal-move detection.
// It contains pure game logic with no external dependencies so it stays
// testable and reusable by any front end.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// DefaultSize is the classic 2048 board dimension.
const DefaultSize = 4

var (
	// ErrInvalidSize is returned when constructing a board too small to
	// hold the two starting tiles.
	ErrInvalidSize = errors.New("board: size must be at least 2")

	// ErrMalformedState is returned when a state encoding cannot be
	// decoded into a grid.
	ErrMalformedState = errors.New("board: malformed state encoding")

	// ErrNoEmptyCell is returned when a tile spawn is attempted on a
	// full grid. The engine's own call sites guarantee a vacancy, so
	// seeing this error indicates a caller or engine bug.
	ErrNoEmptyCell = errors.New("board: no empty cell to spawn into")

	// ErrUnknownDirection is returned for a direction outside the four
	// recognized values.
	ErrUnknownDirection = errors.New("board: unknown direction")
)

// Moves records which of the four directions would change the grid.
// Over is true iff no direction would, the 2048 terminal condition.
type Moves struct {
	Up    bool
	Right bool
	Down  bool
	Left  bool
	Over  bool
}

// Allows reports whether moving in the given direction would change the grid.
func (m Moves) Allows(d Direction) bool {
	switch d {
	case Up:
		return m.Up
	case Right:
		return m.Right
	case Down:
		return m.Down
	case Left:
		return m.Left
	default:
		return false
	}
}

// Board is a single 2048 game state: an N×N grid of tiles (0 = empty,
// otherwise a power of two), the current score, and the set of legal
// moves. A Board is not safe for concurrent use.
type Board struct {
	size  int
	grid  [][]int
	score int
	moves Moves
	rng   *rand.Rand
}

// New creates a board of the given size with two freshly spawned tiles.
// A nil rng falls back to a time-seeded source; tests pass their own
// source for determinism. Returns ErrInvalidSize for sizes below 2.
func New(size int, rng *rand.Rand) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	b := &Board{
		size: size,
		grid: newGrid(size),
		rng:  ensureRNG(rng),
	}

	// A zero grid of size >= 2 always has room for both starting tiles.
	for range 2 {
		if err := b.spawnTile(); err != nil {
			return nil, err
		}
	}

	b.score = b.sum()
	b.updateMoves()
	return b, nil
}

// FromState creates a board of the given size from a state encoding
// (see StateString). No tiles are spawned; score and legal moves are
// computed from the decoded grid.
func FromState(state string, size int, rng *rand.Rand) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	grid, err := decodeState(state, size)
	if err != nil {
		return nil, err
	}

	b := &Board{
		size: size,
		grid: grid,
		rng:  ensureRNG(rng),
	}
	b.score = b.sum()
	b.updateMoves()
	return b, nil
}

// Move shifts and merges all tiles in the given direction.
// It reports whether the move changed the grid; an unchanged grid means
// the move is illegal and the board is left untouched.
//
// With evaluate set, Move is a pure feasibility probe: the shifted grid
// is computed on scratch storage and discarded. Otherwise a changed grid
// is committed, exactly one tile is spawned, and score and legal moves
// are recomputed.
func (b *Board) Move(dir Direction, evaluate bool) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	// Normalize the shift to the upward axis, collapse gaps, merge
	// equal neighbors once, then collapse the gaps merging left behind.
	work := rotate(cloneGrid(b.grid), dir.rotations())
	compact(work)
	merge(work)
	compact(work)
	work = rotate(work, 4-dir.rotations())

	if gridsEqual(b.grid, work) {
		return false, nil
	}
	if evaluate {
		return true, nil
	}

	b.grid = work
	if err := b.spawnTile(); err != nil {
		return true, err
	}
	b.score = b.sum()
	b.updateMoves()
	return true, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Score returns the current score: the sum of all tile values.
// It is recomputed from the grid after every committed move, so it stays
// consistent even after a direct state load.
func (b *Board) Score() int {
	return b.score
}

// PossibleMoves returns the legal moves computed after the last
// committed move (or at construction).
func (b *Board) PossibleMoves() Moves {
	return b.moves
}

// Grid returns a deep-copy snapshot of the tile grid for renderers and
// other read-only consumers.
func (b *Board) Grid() [][]int {
	return cloneGrid(b.grid)
}

// MaxTile returns the highest tile value on the grid.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, row := range b.grid {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// String formats the grid for logs and debugging, one row per line with
// "." for empty cells.
func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for i, row := range b.grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
	}
	return sb.String()
}

// spawnValues weights the spawned tile value: 2 with probability 2/3,
// 4 with probability 1/3.
var spawnValues = [3]int{2, 2, 4}

// spawnTile places a 2 or 4 into a uniformly chosen empty cell.
func (b *Board) spawnTile() error {
	type cell struct{ row, col int }

	var empty []cell
	for i := range b.size {
		for j := range b.size {
			if b.grid[i][j] == 0 {
				empty = append(empty, cell{i, j})
			}
		}
	}
	if len(empty) == 0 {
		return ErrNoEmptyCell
	}

	c := empty[b.rng.Intn(len(empty))]
	b.grid[c.row][c.col] = spawnValues[b.rng.Intn(len(spawnValues))]
	return nil
}

// updateMoves recomputes the legal-move set by probing all four
// directions with evaluate moves.
func (b *Board) updateMoves() {
	var m Moves
	m.Up, _ = b.Move(Up, true)
	m.Right, _ = b.Move(Right, true)
	m.Down, _ = b.Move(Down, true)
	m.Left, _ = b.Move(Left, true)
	m.Over = !m.Up && !m.Right && !m.Down && !m.Left
	b.moves = m
}

// sum adds up all tile values on the grid.
func (b *Board) sum() int {
	total := 0
	for _, row := range b.grid {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// compact slides every nonzero cell up past empty cells until it hits
// the top or another tile. It closes gaps without merging.
func compact(g [][]int) {
	n := len(g)
	for i := range n {
		for j := range n {
			k := i
			for g[k][j] == 0 {
				if k == n-1 {
					break
				}
				k++
			}
			if k != i {
				g[i][j], g[k][j] = g[k][j], 0
			}
		}
	}
}

// merge combines each pair of vertically adjacent equal tiles into the
// upper cell. Scanning top to bottom and zeroing the lower cell ensures
// a tile merges at most once per pass.
func merge(g [][]int) {
	n := len(g)
	for i := range n - 1 {
		for j := range n {
			if g[i][j] != 0 && g[i][j] == g[i+1][j] {
				g[i][j] += g[i+1][j]
				g[i+1][j] = 0
			}
		}
	}
}

// rotate returns the grid turned counter-clockwise by the given number
// of quarter turns.
func rotate(g [][]int, times int) [][]int {
	for range times % 4 {
		g = rotateOnce(g)
	}
	return g
}

func rotateOnce(g [][]int) [][]int {
	n := len(g)
	out := newGrid(n)
	for i := range n {
		for j := range n {
			out[n-1-j][i] = g[i][j]
		}
	}
	return out
}

func newGrid(size int) [][]int {
	g := make([][]int, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

func cloneGrid(g [][]int) [][]int {
	out := make([][]int, len(g))
	for i, row := range g {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

func gridsEqual(a, b [][]int) bool {
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
