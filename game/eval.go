package game

// Evaluate scores a board between -1 and 1 indicating how favorable the
// position is for the given player. Cheap evaluations of this shape drive
// lookahead strategies; full territory scoring lives in the score package.
type Evaluate func(b *Board, player Color) float64

// EvaluateStones compares raw stone counts. It is deliberately cheap: no
// group or territory analysis, just occupancy tallies.
func EvaluateStones(b *Board, player Color) float64 {
	return normalize(float64(b.Stones(player)), float64(b.Stones(player.Opponent())))
}

// normalize normalizes value relative to otherValue to a score between -1
// and 1.
func normalize(value, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
