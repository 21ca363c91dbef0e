package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The state encoding is a fixed-width textual snapshot of the grid:
// two ASCII decimal digits per cell, zero-padded, row-major, so a 4×4
// board encodes to exactly 32 characters ("02" for a 2 tile, "00" for
// an empty cell). The width caps representable tiles at 99; rather than
// emit an ambiguous string for larger tiles, StateString reports
// ErrStateOverflow and callers fall back to keeping the game in memory.

const (
	// cellDigits is the encoded width of a single cell.
	cellDigits = 2

	// MaxEncodableTile is the largest tile value the fixed-width state
	// encoding can represent.
	MaxEncodableTile = 99
)

// ErrStateOverflow is returned by StateString when a tile value exceeds
// MaxEncodableTile and therefore cannot fit the fixed-width encoding.
var ErrStateOverflow = errors.New("board: tile value too large for state encoding")

// StateString encodes the grid as a fixed-width string suitable for
// persistence. The inverse operation is FromState.
func (b *Board) StateString() (string, error) {
	var sb strings.Builder
	sb.Grow(cellDigits * b.size * b.size)

	for _, row := range b.grid {
		for _, v := range row {
			if v > MaxEncodableTile {
				return "", fmt.Errorf("%w: %d", ErrStateOverflow, v)
			}
			fmt.Fprintf(&sb, "%0*d", cellDigits, v)
		}
	}
	return sb.String(), nil
}

// decodeState parses a fixed-width state encoding into a fresh grid.
// Wrong length, non-digit characters, and values that are neither 0 nor
// a power of two are all reported as ErrMalformedState.
func decodeState(state string, size int) ([][]int, error) {
	want := cellDigits * size * size
	if len(state) != want {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformedState, len(state), want)
	}

	grid := newGrid(size)
	for idx := 0; idx < size*size; idx++ {
		chunk := state[idx*cellDigits : (idx+1)*cellDigits]
		for k := 0; k < len(chunk); k++ {
			if chunk[k] < '0' || chunk[k] > '9' {
				return nil, fmt.Errorf("%w: bad chunk %q", ErrMalformedState, chunk)
			}
		}

		v, err := strconv.Atoi(chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: bad chunk %q", ErrMalformedState, chunk)
		}
		if v != 0 && !isTileValue(v) {
			return nil, fmt.Errorf("%w: %d is not a tile value", ErrMalformedState, v)
		}
		grid[idx/size][idx%size] = v
	}
	return grid, nil
}

// isTileValue reports whether v is a power of two that can appear on
// the board.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
