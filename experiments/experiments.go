// Package experiments runs batches of bot-vs-bot games across agent
// configurations and records the outcomes as CSV.
package experiments

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"goban/bot"
	"goban/engine"
	"goban/experiments/metrics"
	"goban/game"
	"goban/neural"
	"goban/score"
)

// Config describes one experiment: the board, the agents, and which agent
// pairs play how many games.
type Config struct {
	Name      string                `yaml:"name"`
	BoardSize int                   `yaml:"board_size"`
	Games     int                   `yaml:"games"` // Per matchup
	Komi      float64               `yaml:"komi"`
	MaxMoves  int                   `yaml:"max_moves"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][2]int              `yaml:"match_ups"` // Pairs of agent IDs, black first
}

// LoadConfig reads and validates a YAML experiment configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.BoardSize < game.MinBoardSize || c.BoardSize > game.MaxBoardSize {
		return &game.ConfigurationError{
			Field:   "board_size",
			Message: fmt.Sprintf("%d is outside [%d, %d]", c.BoardSize, game.MinBoardSize, game.MaxBoardSize),
		}
	}
	if c.Games <= 0 {
		return &game.ConfigurationError{Field: "games", Message: "must be positive"}
	}
	if c.MaxMoves <= 0 {
		c.MaxMoves = engine.MaxMoves
	}
	if len(c.Agents) == 0 {
		return &game.ConfigurationError{Field: "agents", Message: "need at least one"}
	}
	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return &game.ConfigurationError{Field: "agents", Message: fmt.Sprintf("duplicate id %d", agent.ID)}
		}
		ids[agent.ID] = true
	}
	if len(c.MatchUps) == 0 {
		return &game.ConfigurationError{Field: "match_ups", Message: "need at least one"}
	}
	for _, matchup := range c.MatchUps {
		for _, id := range matchup {
			if !ids[id] {
				return &game.ConfigurationError{Field: "match_ups", Message: fmt.Sprintf("unknown agent id %d", id)}
			}
		}
	}
	return nil
}

func (c *Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id)) // validate() guarantees existence
}

// Run plays every matchup and writes agent configs, game records, and move
// records under a timestamped directory.
func Run(config *Config) error {
	baseDir := filepath.Join("experiments", config.Name, time.Now().UTC().Format(time.RFC3339))
	writer, err := metrics.NewWriter(baseDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return err
	}

	log.Info().Msgf("starting experiment %q: %d matchups, %d games each", config.Name, len(config.MatchUps), config.Games)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	count := 0
	for _, matchup := range config.MatchUps {
		agent1 := config.agent(matchup[0])
		agent2 := config.agent(matchup[1])
		log.Info().Msgf("starting matchup between agent %d and agent %d...", agent1.ID, agent2.ID)

		for i := 0; i < config.Games; i++ {
			count++
			record, moves, err := runGame(config, agent1, agent2, count)
			if err != nil {
				return fmt.Errorf("game %d failed: %w", count, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("experiment %q complete: %d games recorded under %s", config.Name, count, baseDir)
	return nil
}

func runGame(config *Config, agent1, agent2 metrics.AgentConfig, id int) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state, err := game.NewGameState(config.BoardSize)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	black, err := BuildStrategy(agent1)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := BuildStrategy(agent2)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.New(state, black, white,
		engine.WithMaxMoves(config.MaxMoves),
		engine.WithScorer(score.Scorer{Komi: config.Komi}),
	)
	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:     id,
		Agent1: agent1.ID,
		Agent2: agent2.ID,
		GameMetric: metrics.GameMetric{
			BoardSize:  config.BoardSize,
			Winner:     result.Winner.String(),
			Reason:     result.Reason.String(),
			StartTime:  start,
			Duration:   time.Since(start),
			TotalMoves: result.TotalMoves,
		},
	}
	moveRecords := make([]metrics.MoveRecord, 0, len(result.MoveMetrics))
	for _, m := range result.MoveMetrics {
		moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: m})
	}
	return record, moveRecords, nil
}

// BuildStrategy constructs the strategy an agent config describes.
func BuildStrategy(config metrics.AgentConfig) (bot.Strategy, error) {
	switch config.Kind {
	case "random":
		var options []bot.RandomOption
		if config.Seed != 0 {
			options = append(options, bot.WithRandomSeed(config.Seed))
		}
		return bot.NewRandom(options...), nil

	case "lookahead":
		options := []bot.LookaheadOption{bot.WithMetrics()}
		if config.Samples > 0 {
			options = append(options, bot.WithSamples(config.Samples))
		}
		if config.Seed != 0 {
			options = append(options, bot.WithResponder(bot.NewRandom(bot.WithRandomSeed(config.Seed))))
		}
		return bot.NewLookahead(options...), nil

	case "neural":
		if config.Weights == "" {
			return nil, &game.ConfigurationError{Field: "weights", Message: "neural agent needs a weights file"}
		}
		evaluator, err := neural.Load(config.Weights)
		if err != nil {
			return nil, err
		}
		options := []bot.LookaheadOption{bot.WithMetrics(), bot.WithEvaluation(evaluator.Evaluate)}
		if config.Samples > 0 {
			options = append(options, bot.WithSamples(config.Samples))
		}
		return bot.NewLookahead(options...), nil

	default:
		return nil, &game.ConfigurationError{Field: "kind", Message: fmt.Sprintf("unknown strategy %q", config.Kind)}
	}
}
