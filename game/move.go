package game

import "fmt"

// MoveKind distinguishes placements from passes and resignations.
type MoveKind int

const (
	KindPlace MoveKind = iota
	KindPass
	KindResign
)

// Move is one action by a player. At is meaningful only for placements.
type Move struct {
	Kind   MoveKind
	Player Color
	At     Intersection
}

// PlaceMove returns a stone placement by player at the given intersection.
func PlaceMove(player Color, at Intersection) Move {
	return Move{Kind: KindPlace, Player: player, At: at}
}

// PassMove returns a pass by player.
func PassMove(player Color) Move {
	return Move{Kind: KindPass, Player: player}
}

// ResignMove returns a resignation by player.
func ResignMove(player Color) Move {
	return Move{Kind: KindResign, Player: player}
}

func (m Move) String() string {
	switch m.Kind {
	case KindPass:
		return fmt.Sprintf("%s passes", m.Player)
	case KindResign:
		return fmt.Sprintf("%s resigns", m.Player)
	default:
		return fmt.Sprintf("%s plays %s", m.Player, m.At)
	}
}
