// Package score computes area scores from board snapshots. It classifies
// every empty region of the board by the colors bordering it and is usable
// at any point of a game, not just at the end.
package score

import (
	"goban/game"
)

// Tally is one player's share of the score.
type Tally struct {
	Stones    int     // Occupied intersections
	Territory int     // Empty intersections bordered only by this player
	Komi      float64 // Compensation points, conventionally for white
}

// Total returns stones plus territory plus komi.
func (t Tally) Total() float64 {
	return float64(t.Stones+t.Territory) + t.Komi
}

// Result is a full scoring of one board snapshot.
type Result struct {
	Black   Tally
	White   Tally
	Neutral int // Empty intersections bordered by both colors, or by none
}

// Winner returns the color with the higher total, or Empty on a tie.
func (r Result) Winner() game.Color {
	switch {
	case r.Black.Total() > r.White.Total():
		return game.Black
	case r.White.Total() > r.Black.Total():
		return game.White
	default:
		return game.Empty
	}
}

// Scorer classifies empty regions and tallies stones. The zero value scores
// without komi.
type Scorer struct {
	Komi float64 // Added to white's total
}

// Score partitions every empty intersection into exactly one of black
// territory, white territory, or neutral, and counts stones per color.
// Region discovery is an iterative flood fill over orthogonal adjacency with
// an explicit visited set, so it terminates on any board and never recurses.
func (s Scorer) Score(b *game.Board) Result {
	size := b.Size()
	visited := make([]bool, size*size)

	result := Result{White: Tally{Komi: s.Komi}}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			at := game.Intersection{Row: row, Col: col}
			color, _ := b.ColorAt(at)

			switch color {
			case game.Black:
				result.Black.Stones++
				continue
			case game.White:
				result.White.Stones++
				continue
			}

			idx := row*size + col
			if visited[idx] {
				continue
			}

			cells, borders := fillRegion(b, at, visited)
			switch borders {
			case borderBlack:
				result.Black.Territory += cells
			case borderWhite:
				result.White.Territory += cells
			default: // Both colors, or an empty board with no stones at all
				result.Neutral += cells
			}
		}
	}
	return result
}

type borderSet uint8

const (
	borderNone  borderSet = 0
	borderBlack borderSet = 1 << iota
	borderWhite
)

// fillRegion discovers the connected empty region containing start, marking
// every cell visited, and reports the region size and the set of stone
// colors found adjacent to it.
func fillRegion(b *game.Board, start game.Intersection, visited []bool) (int, borderSet) {
	size := b.Size()
	borders := borderNone
	cells := 0

	worklist := []game.Intersection{start}
	visited[start.Row*size+start.Col] = true

	for len(worklist) > 0 {
		at := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		cells++

		for _, neighbor := range b.Neighbors(at) {
			color, _ := b.ColorAt(neighbor)
			switch color {
			case game.Black:
				borders |= borderBlack
			case game.White:
				borders |= borderWhite
			default:
				idx := neighbor.Row*size + neighbor.Col
				if !visited[idx] {
					visited[idx] = true
					worklist = append(worklist, neighbor)
				}
			}
		}
	}
	return cells, borders
}
