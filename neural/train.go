package neural

import (
	"fmt"

	"github.com/patrikeh/go-deep/training"
	"github.com/rs/zerolog/log"

	"goban/bot"
	"goban/engine"
	"goban/game"
)

// TrainingConfig specifies parameters for self-play training.
type TrainingConfig struct {
	Episodes       int     // Self-play games
	BatchSize      int     // Examples per network update
	ReportInterval int     // Progress report period, in episodes
	BoardSize      int
	LearningRate   float64
	Seed           uint64 // Seeds the self-play strategies
	OutputPath     string // Where to save weights; empty skips saving
}

// Train runs self-play games and fits the network to predict the final
// normalized stone differential from each position, labeled from the acting
// player's perspective.
func Train(config TrainingConfig) (*Evaluator, error) {
	if config.Episodes <= 0 {
		return nil, &game.ConfigurationError{Field: "episodes", Message: "must be positive"}
	}
	if config.BatchSize <= 0 {
		return nil, &game.ConfigurationError{Field: "batch size", Message: "must be positive"}
	}
	if config.ReportInterval <= 0 {
		config.ReportInterval = 10
	}

	networkConfig := DefaultConfig(config.BoardSize)
	if config.LearningRate > 0 {
		networkConfig.LearningRate = config.LearningRate
	}
	evaluator, err := New(networkConfig)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting self-play training: %d episodes on a %dx%d board",
		config.Episodes, config.BoardSize, config.BoardSize)

	var examples training.Examples
	for episode := 0; episode < config.Episodes; episode++ {
		transcript, final, err := selfPlay(config.BoardSize, config.Seed+uint64(episode))
		if err != nil {
			return nil, fmt.Errorf("self-play episode %d failed: %w", episode, err)
		}

		batch, err := label(config.BoardSize, transcript, final)
		if err != nil {
			return nil, fmt.Errorf("labeling episode %d failed: %w", episode, err)
		}
		examples = append(examples, batch...)

		if len(examples) >= config.BatchSize {
			examples.Shuffle()
			trainer := training.NewTrainer(training.NewSGD(networkConfig.LearningRate, 0.5, 0.0, false), 0)
			iterations := len(examples)/config.BatchSize + 1
			trainer.Train(evaluator.network, examples, nil, iterations)
			examples = nil
		}

		if (episode+1)%config.ReportInterval == 0 || episode == config.Episodes-1 {
			log.Info().Msgf("episode %d/%d complete", episode+1, config.Episodes)
			if config.OutputPath != "" {
				if err := evaluator.Save(config.OutputPath); err != nil {
					return nil, err
				}
			}
		}
	}

	return evaluator, nil
}

// selfPlay runs one seeded random-vs-random game and returns its transcript
// and final board.
func selfPlay(boardSize int, seed uint64) ([]game.Move, *game.Board, error) {
	state, err := game.NewGameState(boardSize)
	if err != nil {
		return nil, nil, err
	}
	e := engine.New(state,
		bot.NewRandom(bot.WithRandomSeed(seed)),
		bot.NewRandom(bot.WithRandomSeed(seed+1)),
		engine.WithMaxMoves(4*boardSize*boardSize),
	)
	result, err := e.Run()
	if err != nil {
		return nil, nil, err
	}
	return state.Moves(), result.Board, nil
}

// label replays a transcript, emitting one example per position: the board
// features before each move, labeled with the game's final stone
// differential from the mover's perspective.
func label(boardSize int, transcript []game.Move, final *game.Board) (training.Examples, error) {
	outcome := game.EvaluateStones(final, game.Black)

	state, err := game.NewGameState(boardSize)
	if err != nil {
		return nil, err
	}

	var examples training.Examples
	for _, move := range transcript {
		sign := 1.0
		if move.Player == game.White {
			sign = -1.0
		}
		examples = append(examples, training.Example{
			Input:    features(state.Board(), move.Player),
			Response: []float64{outcome * sign},
		})
		if err := state.SubmitMove(move); err != nil {
			return nil, err
		}
	}
	return examples, nil
}
