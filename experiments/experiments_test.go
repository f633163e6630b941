package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"goban/bot"
	"goban/experiments/metrics"
	"goban/game"
)

const sampleConfig = `
name: smoke
board_size: 5
games: 2
komi: 6.5
agents:
  - id: 1
    kind: random
    seed: 7
  - id: 2
    kind: lookahead
    samples: 2
match_ups:
  - [1, 2]
`

func TestLoadConfig(t *testing.T) {
	t.Run("parses a valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "smoke", config.Name)
		require.Equal(t, 5, config.BoardSize)
		require.Equal(t, 6.5, config.Komi)
		require.Len(t, config.Agents, 2)
		require.Equal(t, uint64(7), config.Agents[0].Seed)
		require.Positive(t, config.MaxMoves, "move cap defaults when omitted")
	})

	t.Run("rejects unknown agent references", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		bad := sampleConfig + "  - [1, 9]\n"
		require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

		_, err := LoadConfig(path)

		var confErr *game.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})

	t.Run("rejects invalid board sizes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("board_size: 1\ngames: 1\n"), 0644))

		_, err := LoadConfig(path)

		var confErr *game.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})
}

func TestBuildStrategy(t *testing.T) {
	t.Run("builds configured strategies", func(t *testing.T) {
		random, err := BuildStrategy(metrics.AgentConfig{ID: 1, Kind: "random", Seed: 3})
		require.NoError(t, err)
		require.IsType(t, &bot.Random{}, random)

		lookahead, err := BuildStrategy(metrics.AgentConfig{ID: 2, Kind: "lookahead", Samples: 4})
		require.NoError(t, err)
		require.IsType(t, &bot.Lookahead{}, lookahead)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := BuildStrategy(metrics.AgentConfig{ID: 1, Kind: "alphabeta"})

		var confErr *game.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})

	t.Run("neural requires a weights file", func(t *testing.T) {
		_, err := BuildStrategy(metrics.AgentConfig{ID: 1, Kind: "neural"})

		var confErr *game.ConfigurationError
		require.ErrorAs(t, err, &confErr)
	})
}
