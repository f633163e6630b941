package bot

import (
	"time"

	"golang.org/x/exp/rand"

	"goban/game"
)

// RandomOption configures a Random strategy.
type RandomOption func(r *Random)

// WithRandomSeed makes move selection reproducible.
func WithRandomSeed(seed uint64) RandomOption {
	return func(r *Random) {
		r.rng = rand.New(rand.NewSource(seed))
	}
}

// Random picks uniformly among the legal placements of the acting player,
// and passes when none exist.
type Random struct {
	rng *rand.Rand
}

func NewRandom(options ...RandomOption) *Random {
	r := &Random{
		rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Random) SelectMove(state *game.GameState, player game.Color) (game.Move, error) {
	if state.Done() {
		return game.Move{}, &game.InvalidStateError{Op: "select move"}
	}
	if player != state.Turn() {
		return game.Move{}, &game.IllegalMoveError{Player: player, Reason: game.ReasonOutOfTurn}
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.PassMove(player), nil
	}
	return moves[r.rng.Intn(len(moves))], nil
}
