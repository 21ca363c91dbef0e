package board

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
// The ordinal doubles as the number of counter-clockwise quarter turns
// that bring the direction's shift axis onto the upward axis.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all four directions in rotation order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four recognized directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// rotations returns the quarter-turn count used to normalize a shift.
func (d Direction) rotations() int {
	return int(d)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a direction token ("up", "right", "down",
// "left", case-insensitive) to a Direction.
// Returns ErrUnknownDirection for any other token.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}
