package score

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goban/game"
)

func TestScoreEmptyBoard(t *testing.T) {
	b := game.NewBoard(5)

	result := Scorer{}.Score(b)

	require.Equal(t, 0, result.Black.Stones)
	require.Equal(t, 0, result.Black.Territory)
	require.Equal(t, 0, result.White.Territory)
	require.Equal(t, 25, result.Neutral, "a region bordered by no stones counts for neither player")
	require.Equal(t, game.Empty, result.Winner())
}

func TestScoreSingleStone(t *testing.T) {
	// One black stone claims the rest of the board as territory.
	b := game.NewBoard(5)
	_, err := b.Place(game.Intersection{Row: 0, Col: 0}, game.Black)
	require.NoError(t, err)

	result := Scorer{}.Score(b)

	require.Equal(t, 1, result.Black.Stones)
	require.Equal(t, 24, result.Black.Territory)
	require.Equal(t, 0, result.Neutral)
	require.Equal(t, game.Black, result.Winner())
	require.Equal(t, 25.0, result.Black.Total())
}

func TestScoreContestedRegion(t *testing.T) {
	// A black and a white stone bordering the same open region: all empty
	// intersections are neutral.
	b := game.NewBoard(5)
	_, err := b.Place(game.Intersection{Row: 2, Col: 1}, game.Black)
	require.NoError(t, err)
	_, err = b.Place(game.Intersection{Row: 2, Col: 3}, game.White)
	require.NoError(t, err)

	result := Scorer{}.Score(b)

	require.Equal(t, 0, result.Black.Territory)
	require.Equal(t, 0, result.White.Territory)
	require.Equal(t, 23, result.Neutral)
}

func TestScoreDividedBoard(t *testing.T) {
	// A black wall down column 2 splits the board; black owns the left
	// region, the right region touches only black too until white appears.
	s, err := game.LoadGameState(game.Black, [][]game.Color{
		{game.Empty, game.Empty, game.Black, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Black, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Black, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Black, game.Empty, game.Empty},
		{game.Empty, game.Empty, game.Black, game.White, game.Empty},
	})
	require.NoError(t, err)

	result := Scorer{}.Score(s.Board())

	require.Equal(t, 5, result.Black.Stones)
	require.Equal(t, 1, result.White.Stones)
	require.Equal(t, 10, result.Black.Territory, "left region is all black's")
	require.Equal(t, 0, result.White.Territory)
	require.Equal(t, 9, result.Neutral, "right region touches both colors")
}

func TestScoreKomi(t *testing.T) {
	// With komi, white wins an otherwise even board.
	s, err := game.LoadGameState(game.Black, [][]game.Color{
		{game.Black, game.Empty, game.White},
		{game.Black, game.Empty, game.White},
		{game.Black, game.Empty, game.White},
	})
	require.NoError(t, err)

	even := Scorer{}.Score(s.Board())
	require.Equal(t, game.Empty, even.Winner(), "board is even without komi: 3 stones each side of a neutral column")

	withKomi := Scorer{Komi: 0.5}.Score(s.Board())
	require.Equal(t, game.White, withKomi.Winner())
	require.Equal(t, 3.5, withKomi.White.Total())
}

// TestScorePartition checks the total-partition property on a played-out
// board: every empty intersection lands in exactly one bucket.
func TestScorePartition(t *testing.T) {
	s, err := game.NewGameState(5)
	require.NoError(t, err)
	placements := []game.Intersection{
		{Row: 0, Col: 0}, {Row: 4, Col: 4}, {Row: 1, Col: 1}, {Row: 3, Col: 3},
		{Row: 2, Col: 0}, {Row: 2, Col: 4}, {Row: 0, Col: 2}, {Row: 4, Col: 2},
	}
	for _, at := range placements {
		require.NoError(t, s.SubmitMove(game.PlaceMove(s.Turn(), at)))
	}

	b := s.Board()
	result := Scorer{}.Score(b)

	empty := 25 - b.Stones(game.Black) - b.Stones(game.White)
	require.Equal(t, empty, result.Black.Territory+result.White.Territory+result.Neutral)
	require.Equal(t, 4, result.Black.Stones)
	require.Equal(t, 4, result.White.Stones)
}
