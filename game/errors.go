package game

import "fmt"

// Reason classifies why a move was rejected.
type Reason int

const (
	ReasonOutOfBounds Reason = iota
	ReasonOccupied
	ReasonSuicide
	ReasonRepeatedPosition
	ReasonOutOfTurn
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonOccupied:
		return "intersection occupied"
	case ReasonSuicide:
		return "suicide"
	case ReasonRepeatedPosition:
		return "repeated position"
	case ReasonOutOfTurn:
		return "out of turn"
	default:
		return "illegal"
	}
}

// IllegalMoveError reports a move the rules forbid. The caller should surface
// the reason and prompt for another move.
type IllegalMoveError struct {
	At     Intersection
	Player Color
	Reason Reason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move by %s at %s: %s", e.Player, e.At, e.Reason)
}

// InvalidStateError reports a mutation attempted on a terminal game. Unlike
// IllegalMoveError this is a caller bug, not a user-correctable condition.
type InvalidStateError struct {
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: game is over", e.Op)
}

// ConfigurationError reports invalid construction parameters. It is raised at
// construction time, never mid-game.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
