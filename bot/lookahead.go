package bot

import (
	"fmt"
	"math"

	"goban/experiments/metrics"
	"goban/game"
)

// LookaheadOption configures a Lookahead strategy.
type LookaheadOption func(l *Lookahead)

// WithSamples sets how many opponent responses are sampled per candidate
// move. Candidate values are averaged over the samples.
func WithSamples(samples int) LookaheadOption {
	return func(l *Lookahead) {
		if samples > 0 {
			l.samples = samples
		}
	}
}

// WithResponder sets the strategy used to pick the opponent's reply inside
// the simulation.
func WithResponder(responder Strategy) LookaheadOption {
	return func(l *Lookahead) {
		if responder != nil {
			l.responder = responder
		}
	}
}

// WithEvaluation sets the board evaluation applied after the simulated
// move/response cycle.
func WithEvaluation(evaluate game.Evaluate) LookaheadOption {
	return func(l *Lookahead) {
		if evaluate != nil {
			l.evaluate = evaluate
		}
	}
}

// WithMetrics records per-invocation search metrics, retrievable via Metric.
func WithMetrics() LookaheadOption {
	return func(l *Lookahead) {
		l.metrics = metrics.NewCollector()
	}
}

// Lookahead evaluates every legal move by cloning the game, applying the
// move, sampling an opponent response, and scoring the resulting board for
// the acting player. The candidate with the highest average value wins; ties
// go to the first candidate in row-major enumeration order. The live game
// state is never touched.
//
// The response heuristic and the sample count are configuration, not part of
// the algorithm: by default one response is drawn from a Random strategy.
type Lookahead struct {
	samples    int
	responder  Strategy
	evaluate   game.Evaluate
	metrics    metrics.Collector
	lastMetric metrics.SearchMetric
}

func NewLookahead(options ...LookaheadOption) *Lookahead {
	l := &Lookahead{ // Default values
		samples:  1,
		evaluate: game.EvaluateStones,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	if l.responder == nil {
		l.responder = NewRandom()
	}
	return l
}

func (l *Lookahead) SelectMove(state *game.GameState, player game.Color) (game.Move, error) {
	if state.Done() {
		return game.Move{}, &game.InvalidStateError{Op: "select move"}
	}
	if player != state.Turn() {
		return game.Move{}, &game.IllegalMoveError{Player: player, Reason: game.ReasonOutOfTurn}
	}

	moves := state.LegalMoves()
	l.metrics.Start(len(moves), l.samples)
	if len(moves) == 0 {
		l.lastMetric = l.metrics.Complete()
		return game.PassMove(player), nil
	}

	best := moves[0]
	bestValue := math.Inf(-1)
	for _, move := range moves {
		total := 0.0
		for i := 0; i < l.samples; i++ {
			value, err := l.playout(state, move, player)
			if err != nil {
				return game.Move{}, err
			}
			total += value
			l.metrics.AddPlayout()
		}
		// Strict comparison keeps the first-discovered candidate on ties
		if value := total / float64(l.samples); value > bestValue {
			bestValue = value
			best = move
		}
	}

	l.lastMetric = l.metrics.Complete()
	return best, nil
}

// playout applies one candidate move and one sampled opponent response to a
// disposable clone and evaluates the resulting board for player.
func (l *Lookahead) playout(state *game.GameState, move game.Move, player game.Color) (float64, error) {
	clone := state.Clone()
	if err := clone.SubmitMove(move); err != nil {
		// LegalMoves produced the candidate, so this is a bug, not a
		// recoverable condition
		return 0, fmt.Errorf("candidate move %s rejected: %w", move, err)
	}

	if !clone.Done() {
		response, err := l.responder.SelectMove(clone, clone.Turn())
		if err != nil {
			return 0, fmt.Errorf("response selection failed: %w", err)
		}
		if err := clone.SubmitMove(response); err != nil {
			return 0, fmt.Errorf("response move %s rejected: %w", response, err)
		}
	}

	return l.evaluate(clone.Board(), player), nil
}

// Metric returns the search metric of the most recent SelectMove call. Zero
// unless the strategy was built with WithMetrics.
func (l *Lookahead) Metric() metrics.SearchMetric {
	return l.lastMetric
}
