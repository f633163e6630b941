package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/bot"
	"goban/game"
	"goban/score"
)

// resigner resigns on its first turn.
type resigner struct{}

func (resigner) SelectMove(state *game.GameState, player game.Color) (game.Move, error) {
	return game.ResignMove(player), nil
}

// passer always passes.
type passer struct{}

func (passer) SelectMove(state *game.GameState, player game.Color) (game.Move, error) {
	return game.PassMove(player), nil
}

func TestEngineRun(t *testing.T) {
	t.Run("random vs random terminates within the cap", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		e := New(s,
			bot.NewRandom(bot.WithRandomSeed(3)),
			bot.NewRandom(bot.WithRandomSeed(4)),
			WithMaxMoves(200),
			WithScorer(score.Scorer{Komi: 6.5}),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.LessOrEqual(t, result.TotalMoves, 200)
		require.NotNil(t, result.Board)

		// The score is a valid partition of the final board
		empty := 25 - result.Board.Stones(game.Black) - result.Board.Stones(game.White)
		total := result.Score.Black.Territory + result.Score.White.Territory + result.Score.Neutral
		require.Equal(t, empty, total)
		require.Equal(t, 6.5, result.Score.White.Komi)
	})

	t.Run("double pass stops the game", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		e := New(s, passer{}, passer{})

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, DoublePass, result.Reason)
		require.Equal(t, 2, result.TotalMoves)
		require.True(t, s.Done())
	})

	t.Run("resignation awards the opponent", func(t *testing.T) {
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		e := New(s, resigner{}, bot.NewRandom())

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Resignation, result.Reason)
		require.Equal(t, game.White, result.Winner)
		require.Equal(t, 1, result.TotalMoves)
	})

	t.Run("move limit stops a game that will not end", func(t *testing.T) {
		s, err := game.NewGameState(9)
		require.NoError(t, err)
		e := New(s,
			bot.NewRandom(bot.WithRandomSeed(1)),
			bot.NewRandom(bot.WithRandomSeed(2)),
			WithMaxMoves(10),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, MoveLimit, result.Reason)
		require.Equal(t, 10, result.TotalMoves)
		require.False(t, s.Done())
	})

	t.Run("collects move metrics from metered strategies", func(t *testing.T) {
		s, err := game.NewGameState(3)
		require.NoError(t, err)
		lookahead := bot.NewLookahead(
			bot.WithMetrics(),
			bot.WithResponder(bot.NewRandom(bot.WithRandomSeed(9))),
		)
		e := New(s, lookahead, passer{}, WithMaxMoves(4))

		result, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, result.MoveMetrics)
		for _, m := range result.MoveMetrics {
			require.Equal(t, "black", m.Player)
			require.Positive(t, m.Candidates)
		}
	})

	t.Run("corner opening scores a small black lead", func(t *testing.T) {
		// On an empty 5x5 board a single black corner stone owns everything.
		s, err := game.NewGameState(5)
		require.NoError(t, err)
		require.NoError(t, s.SubmitMove(game.PlaceMove(game.Black, game.Intersection{Row: 0, Col: 0})))

		result := score.Scorer{}.Score(s.Board())

		require.Equal(t, 1, s.Board().Stones(game.Black))
		require.Equal(t, 24, result.Black.Territory)
		require.Equal(t, 25.0, result.Black.Total())
		require.Equal(t, game.Black, result.Winner())
	})
}
