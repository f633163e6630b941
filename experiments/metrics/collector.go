package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one strategy invocation.
type SearchMetric struct {
	Candidates int           // Legal moves considered
	Samples    int           // Opponent-response samples per candidate
	Playouts   int           // Clone/apply/respond cycles actually run
	Duration   time.Duration // Wall time spent selecting the move
}

// MoveMetric ties a search metric to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one full game.
type GameMetric struct {
	BoardSize  int
	Winner     string
	Reason     string
	StartTime  time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates counters during a single move search. Playout counts
// use atomics so a host parallelizing candidate evaluation can share one
// collector.
type Collector interface {
	Start(candidates, samples int)
	AddPlayout()
	Complete() SearchMetric
}

type collector struct {
	candidates int
	samples    int
	startTime  time.Time
	playouts   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(candidates, samples int) {
	c.candidates = candidates
	c.samples = samples
	c.startTime = time.Now()
	c.playouts.Store(0)
}

func (c *collector) AddPlayout() {
	c.playouts.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Candidates: c.candidates,
		Samples:    c.samples,
		Playouts:   int(c.playouts.Load()),
		Duration:   time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for strategies that do not
// record metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(candidates, samples int) {}
func (dummyCollector) AddPlayout()                   {}
func (dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
