// Package neural provides a feedforward-network board evaluation that plugs
// into the same Evaluate shape the lookahead strategy consumes. Weights are
// learned by self-play and exported as JSON.
package neural

import (
	"encoding/json"
	"fmt"
	"os"

	deep "github.com/patrikeh/go-deep"

	"goban/game"
)

// Config defines the network architecture and its learned weights.
type Config struct {
	Name         string        `json:"name"`
	BoardSize    int           `json:"board_size"`
	HiddenLayers []int         `json:"hidden_layers"`
	LearningRate float64       `json:"learning_rate"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

// DefaultConfig returns a small untrained network for the given board size.
func DefaultConfig(boardSize int) Config {
	return Config{
		Name:         "default",
		BoardSize:    boardSize,
		HiddenLayers: []int{32, 16},
		LearningRate: 0.01,
	}
}

// inputSize is one cell per intersection from the acting player's
// perspective, plus one game-phase feature (fraction of the board empty).
func inputSize(boardSize int) int {
	return boardSize*boardSize + 1
}

// Evaluator scores boards with a neural network. Its Evaluate method has the
// game.Evaluate shape and returns values in [-1, 1].
type Evaluator struct {
	network *deep.Neural
	config  Config
}

// New builds an evaluator from config, applying stored weights if present.
func New(config Config) (*Evaluator, error) {
	if config.BoardSize < game.MinBoardSize || config.BoardSize > game.MaxBoardSize {
		return nil, &game.ConfigurationError{
			Field:   "board size",
			Message: fmt.Sprintf("%d is outside [%d, %d]", config.BoardSize, game.MinBoardSize, game.MaxBoardSize),
		}
	}
	if len(config.HiddenLayers) == 0 {
		return nil, &game.ConfigurationError{Field: "hidden layers", Message: "need at least one"}
	}

	layout := append([]int{}, config.HiddenLayers...)
	layout = append(layout, 1) // Single evaluation output

	network := deep.NewNeural(&deep.Config{
		Inputs:     inputSize(config.BoardSize),
		Layout:     layout,
		Activation: deep.ActivationTanh,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
	if config.Weights != nil {
		network.ApplyWeights(config.Weights)
	}

	return &Evaluator{network: network, config: config}, nil
}

// Evaluate scores the board for player. Predictions are clamped to [-1, 1].
func (e *Evaluator) Evaluate(b *game.Board, player game.Color) float64 {
	prediction := e.network.Predict(features(b, player))
	value := prediction[0]
	if value > 1 {
		return 1
	}
	if value < -1 {
		return -1
	}
	return value
}

// Config returns the evaluator's configuration with current weights.
func (e *Evaluator) Config() Config {
	config := e.config
	config.Weights = e.network.Dump().Weights
	return config
}

// Save exports the configuration and learned weights as JSON.
func (e *Evaluator) Save(path string) error {
	data, err := json.MarshalIndent(e.Config(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}
	return nil
}

// Load reads a configuration saved by Save and rebuilds the evaluator.
func Load(path string) (*Evaluator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights: %w", err)
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode weights: %w", err)
	}
	return New(config)
}

// features converts board occupancy to the player's perspective: own stones
// 1, opponent stones -1, empty 0, plus the empty fraction as a phase signal.
func features(b *game.Board, player game.Color) []float64 {
	size := b.Size()
	out := make([]float64, 0, inputSize(size))

	empty := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			color, _ := b.ColorAt(game.Intersection{Row: row, Col: col})
			switch color {
			case player:
				out = append(out, 1)
			case player.Opponent():
				out = append(out, -1)
			default:
				out = append(out, 0)
				empty++
			}
		}
	}
	out = append(out, float64(empty)/float64(size*size))
	return out
}
