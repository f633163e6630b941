// Package engine drives full games between two strategies.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"goban/bot"
	"goban/experiments/metrics"
	"goban/game"
	"goban/score"
)

// MaxMoves is the default safety bound against non-terminating bot-vs-bot
// loops.
const MaxMoves = 512

// StopReason says why a simulated game stopped.
type StopReason int

const (
	DoublePass StopReason = iota
	Resignation
	MoveLimit
)

func (r StopReason) String() string {
	switch r {
	case DoublePass:
		return "double-pass"
	case Resignation:
		return "resignation"
	default:
		return "move-limit"
	}
}

// Result is the outcome of one simulated game. Winner is the opponent of a
// resigner, otherwise the color with the higher score (Empty on a tie).
type Result struct {
	Board       *game.Board
	Reason      StopReason
	Winner      game.Color
	Score       score.Result
	TotalMoves  int
	MoveMetrics []metrics.MoveMetric
}

// Option configures an Engine.
type Option func(e *Engine)

// WithMaxMoves overrides the move cap.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// WithScorer sets the scorer applied to the final board.
func WithScorer(scorer score.Scorer) Option {
	return func(e *Engine) {
		e.scorer = scorer
	}
}

// metered is implemented by strategies that expose per-move search metrics.
type metered interface {
	Metric() metrics.SearchMetric
}

// Engine alternates two strategies against one live game state until the
// game is terminal or the move cap is reached, then scores the final board.
type Engine struct {
	state    *game.GameState
	black    bot.Strategy
	white    bot.Strategy
	scorer   score.Scorer
	maxMoves int
}

func New(state *game.GameState, black, white bot.Strategy, options ...Option) *Engine {
	e := &Engine{
		state:    state,
		black:    black,
		white:    white,
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop. It fails only on strategy misbehavior: a
// strategy returning an error or producing a move the rules reject.
func (e *Engine) Run() (Result, error) {
	log.Info().Msgf("%s is starting on a %dx%d board", e.state.Turn(), e.state.Board().Size(), e.state.Board().Size())

	var moveMetrics []metrics.MoveMetric
	totalMoves := 0
	for !e.state.Done() && totalMoves < e.maxMoves {
		player := e.state.Turn()
		strategy := e.black
		if player == game.White {
			strategy = e.white
		}

		move, err := strategy.SelectMove(e.state, player)
		if err != nil {
			return Result{}, fmt.Errorf("%s strategy failed: %w", player, err)
		}
		if err := e.state.SubmitMove(move); err != nil {
			return Result{}, fmt.Errorf("%s strategy produced an illegal move %s: %w", player, move, err)
		}
		totalMoves++

		if m, ok := strategy.(metered); ok {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         totalMoves,
				Player:       player.String(),
				SearchMetric: m.Metric(),
			})
		}

		log.Debug().Msgf("move %d: %s", totalMoves, move)
	}

	reason := MoveLimit
	winner := game.Empty
	if e.state.Done() {
		if terminal, resigned := e.state.Outcome(); terminal == game.Resignation {
			reason = Resignation
			winner = resigned.Opponent()
		} else {
			reason = DoublePass
		}
	}

	result := Result{
		Board:       e.state.Board(),
		Reason:      reason,
		Score:       e.scorer.Score(e.state.Board()),
		TotalMoves:  totalMoves,
		MoveMetrics: moveMetrics,
	}
	if winner == game.Empty {
		// Scored outcome: resignation aside, the board decides
		winner = result.Score.Winner()
	}
	result.Winner = winner

	log.Info().Msgf("game over after %d moves (%s): black %.1f, white %.1f",
		totalMoves, reason, result.Score.Black.Total(), result.Score.White.Total())
	return result, nil
}
