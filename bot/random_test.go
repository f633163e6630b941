package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/game"
)

func TestRandomSelectMove(t *testing.T) {
	t.Run("always returns a currently legal move", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		random := NewRandom(WithRandomSeed(11))

		for i := 0; i < 20; i++ {
			legal := s.LegalMoves()
			if len(legal) == 0 {
				break
			}
			move, err := random.SelectMove(s, s.Turn())
			require.NoError(t, err)
			require.Contains(t, legal, move)
			require.NoError(t, s.SubmitMove(move))
		}
	})

	t.Run("reproducible with a fixed seed", func(t *testing.T) {
		play := func(seed uint64) []game.Move {
			s, err := game.NewGameState(5)
			require.NoError(t, err)
			random := NewRandom(WithRandomSeed(seed))
			for i := 0; i < 15; i++ {
				move, err := random.SelectMove(s, s.Turn())
				require.NoError(t, err)
				require.NoError(t, s.SubmitMove(move))
			}
			return s.Moves()
		}

		require.Equal(t, play(42), play(42))
	})

	t.Run("passes when no placement is legal", func(t *testing.T) {
		// Occupancy snapshot only: a full board leaves nothing to play.
		s, err := game.LoadGameState(game.Black, [][]game.Color{
			{game.Black, game.White},
			{game.White, game.Black},
		})
		require.NoError(t, err)

		move, err := NewRandom(WithRandomSeed(1)).SelectMove(s, game.Black)

		require.NoError(t, err)
		require.Equal(t, game.PassMove(game.Black), move)
	})

	t.Run("rejects selection for the player not on turn", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)

		_, err = NewRandom().SelectMove(s, game.White)

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, game.ReasonOutOfTurn, illegal.Reason)
	})

	t.Run("rejects selection on a terminal game", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		require.NoError(t, s.SubmitMove(game.PassMove(game.Black)))
		require.NoError(t, s.SubmitMove(game.PassMove(game.White)))

		_, err = NewRandom().SelectMove(s, game.Black)

		var invalid *game.InvalidStateError
		require.ErrorAs(t, err, &invalid)
	})
}
