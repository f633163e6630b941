package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"goban/engine"
	"goban/experiments"
	"goban/experiments/metrics"
	"goban/game"
	"goban/neural"
	"goban/score"
)

func main() {
	var (
		mode       = flag.String("mode", "battle", "battle, experiment, or train")
		size       = flag.Int("size", 5, "Board size")
		games      = flag.Int("games", 20, "Number of games to play")
		komi       = flag.Float64("komi", 6.5, "Komi points for white")
		maxMoves   = flag.Int("moves", engine.MaxMoves, "Move cap per game")
		black      = flag.String("black", "random", "Black strategy: random, lookahead, or neural")
		white      = flag.String("white", "random", "White strategy: random, lookahead, or neural")
		samples    = flag.Int("samples", 1, "Opponent-response samples per lookahead candidate")
		seed       = flag.Uint64("seed", 0, "Random seed (0 uses the clock)")
		weights    = flag.String("weights", "", "Neural weights file (neural strategy and train mode)")
		configPath = flag.String("config", "", "Experiment config file (YAML)")
		episodes   = flag.Int("episodes", 200, "Self-play episodes for train mode")
		verbose    = flag.Bool("v", false, "Log every move")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *mode {
	case "battle":
		blackAgent := metrics.AgentConfig{ID: 1, Kind: *black, Samples: *samples, Seed: *seed, Weights: *weights}
		whiteAgent := metrics.AgentConfig{ID: 2, Kind: *white, Samples: *samples, Seed: *seed, Weights: *weights}
		if err := runBattle(*size, *games, *komi, *maxMoves, blackAgent, whiteAgent); err != nil {
			log.Fatal().Err(err).Msg("battle failed")
		}

	case "experiment":
		if *configPath == "" {
			log.Fatal().Msg("experiment mode needs -config")
		}
		config, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid experiment config")
		}
		if err := experiments.Run(config); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}

	case "train":
		output := *weights
		if output == "" {
			output = "weights.json"
		}
		_, err := neural.Train(neural.TrainingConfig{
			Episodes:       *episodes,
			BatchSize:      128,
			ReportInterval: 10,
			BoardSize:      *size,
			Seed:           *seed,
			OutputPath:     output,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("training failed")
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

// runBattle plays a series of games between two configured strategies and
// prints the win percentages.
func runBattle(size, games int, komi float64, maxMoves int, blackAgent, whiteAgent metrics.AgentConfig) error {
	blackWins, whiteWins, ties, totalMoves := 0, 0, 0, 0

	for i := 0; i < games; i++ {
		state, err := game.NewGameState(size)
		if err != nil {
			return err
		}
		blackStrategy, err := experiments.BuildStrategy(blackAgent)
		if err != nil {
			return err
		}
		whiteStrategy, err := experiments.BuildStrategy(whiteAgent)
		if err != nil {
			return err
		}

		log.Info().Msgf("game %d of %d started...", i+1, games)
		result, err := engine.New(state, blackStrategy, whiteStrategy,
			engine.WithMaxMoves(maxMoves),
			engine.WithScorer(score.Scorer{Komi: komi}),
		).Run()
		if err != nil {
			return err
		}

		totalMoves += result.TotalMoves
		switch result.Winner {
		case game.Black:
			blackWins++
		case game.White:
			whiteWins++
		default:
			ties++
		}
	}

	fmt.Printf("Black (%s) wins: %.2f%%\n", blackAgent.Kind, percent(blackWins, games))
	fmt.Printf("White (%s) wins: %.2f%%\n", whiteAgent.Kind, percent(whiteWins, games))
	fmt.Printf("Ties: %.2f%%\n", percent(ties, games))
	fmt.Printf("Average moves: %.1f\n", float64(totalMoves)/float64(games))
	return nil
}

func percent(count, total int) float64 {
	return float64(count) / float64(total) * 100
}
