package game

import (
	"fmt"
	"hash/fnv"
)

// Color identifies the contents of an intersection.
type Color int

const (
	Empty Color = iota
	Black
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Intersection is a coordinate on the board, zero-based from the top-left
// corner. It is an immutable identity, usable as a map key.
type Intersection struct {
	Row int
	Col int
}

func (i Intersection) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Col)
}

// BoardHash identifies a board configuration for repeated-position checks.
type BoardHash uint64

// Board holds the occupancy of a square grid of intersections. It knows how
// to place stones, discover connected groups and their liberties, and remove
// captured groups. It carries no turn or history knowledge.
type Board struct {
	size int
	grid []Color // Row-major, len size*size
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) *Board {
	return &Board{
		size: size,
		grid: make([]Color, size*size),
	}
}

// Size returns the number of intersections per side.
func (b *Board) Size() int {
	return b.size
}

// Contains reports whether at is within the bounds of the board.
func (b *Board) Contains(at Intersection) bool {
	return at.Row >= 0 && at.Row < b.size && at.Col >= 0 && at.Col < b.size
}

func (b *Board) index(at Intersection) int {
	return at.Row*b.size + at.Col
}

// ColorAt returns the color occupying at, or Empty. It fails with an
// out-of-bounds IllegalMoveError for coordinates off the board.
func (b *Board) ColorAt(at Intersection) (Color, error) {
	if !b.Contains(at) {
		return Empty, &IllegalMoveError{At: at, Reason: ReasonOutOfBounds}
	}
	return b.grid[b.index(at)], nil
}

func (b *Board) at(at Intersection) Color {
	return b.grid[b.index(at)]
}

func (b *Board) set(at Intersection, c Color) {
	b.grid[b.index(at)] = c
}

// Neighbors returns the orthogonally adjacent intersections of at that are
// on the board.
func (b *Board) Neighbors(at Intersection) []Intersection {
	neighbors := make([]Intersection, 0, 4)
	if at.Row > 0 {
		neighbors = append(neighbors, Intersection{at.Row - 1, at.Col})
	}
	if at.Row < b.size-1 {
		neighbors = append(neighbors, Intersection{at.Row + 1, at.Col})
	}
	if at.Col > 0 {
		neighbors = append(neighbors, Intersection{at.Row, at.Col - 1})
	}
	if at.Col < b.size-1 {
		neighbors = append(neighbors, Intersection{at.Row, at.Col + 1})
	}
	return neighbors
}

// Place puts a stone of color c at the given intersection and resolves
// captures. Opponent groups left without liberties by the placement are
// removed first; only then is the placed stone's own group checked, so a
// placement that frees its own liberties by capturing is legal. A suicide
// placement is rejected and the board restored to its prior occupancy.
// Place returns the intersections of captured opponent stones.
func (b *Board) Place(at Intersection, c Color) ([]Intersection, error) {
	if c != Black && c != White {
		panic("cannot place an empty color")
	}
	if !b.Contains(at) {
		return nil, &IllegalMoveError{At: at, Player: c, Reason: ReasonOutOfBounds}
	}
	if b.at(at) != Empty {
		return nil, &IllegalMoveError{At: at, Player: c, Reason: ReasonOccupied}
	}

	b.set(at, c)

	// Capture any adjacent opponent group with no liberties left.
	var captured []Intersection
	for _, neighbor := range b.Neighbors(at) {
		if b.at(neighbor) != c.Opponent() {
			continue // Empty, own color, or already captured
		}
		group, liberties := b.groupAndLiberties(neighbor)
		if len(liberties) == 0 {
			for _, stone := range group {
				b.set(stone, Empty)
			}
			captured = append(captured, group...)
		}
	}

	// The placed stone's own group must end up with at least one liberty.
	if _, liberties := b.groupAndLiberties(at); len(liberties) == 0 {
		b.set(at, Empty)
		for _, stone := range captured {
			b.set(stone, c.Opponent())
		}
		return nil, &IllegalMoveError{At: at, Player: c, Reason: ReasonSuicide}
	}

	return captured, nil
}

// GroupAndLiberties returns the maximal connected same-color group containing
// the stone at the given intersection, and the empty intersections adjacent
// to that group. Connectivity is orthogonal only. The group is nil if at is
// empty.
func (b *Board) GroupAndLiberties(at Intersection) (group, liberties []Intersection, err error) {
	if !b.Contains(at) {
		return nil, nil, &IllegalMoveError{At: at, Reason: ReasonOutOfBounds}
	}
	if b.at(at) == Empty {
		return nil, nil, nil
	}
	group, liberties = b.groupAndLiberties(at)
	return group, liberties, nil
}

// groupAndLiberties flood-fills from a stone with an explicit worklist, so
// group discovery never recurses regardless of board size.
func (b *Board) groupAndLiberties(at Intersection) (group, liberties []Intersection) {
	color := b.at(at)
	visited := make([]bool, len(b.grid))
	libertySeen := make([]bool, len(b.grid))

	worklist := []Intersection{at}
	visited[b.index(at)] = true

	for len(worklist) > 0 {
		stone := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		group = append(group, stone)

		for _, neighbor := range b.Neighbors(stone) {
			idx := b.index(neighbor)
			switch b.at(neighbor) {
			case Empty:
				if !libertySeen[idx] {
					libertySeen[idx] = true
					liberties = append(liberties, neighbor)
				}
			case color:
				if !visited[idx] {
					visited[idx] = true
					worklist = append(worklist, neighbor)
				}
			}
		}
	}
	return group, liberties
}

// Stones returns the number of intersections occupied by color c.
func (b *Board) Stones(c Color) int {
	count := 0
	for _, cell := range b.grid {
		if cell == c {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	grid := make([]Color, len(b.grid))
	copy(grid, b.grid)
	return &Board{size: b.size, grid: grid}
}

// Equal reports whether both boards have the same size and occupancy.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, cell := range b.grid {
		if cell != other.grid[i] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-64a hash of the board occupancy. Equal boards hash
// equal; callers comparing configurations should confirm a hash hit with
// Equal.
func (b *Board) Hash() BoardHash {
	h := fnv.New64a()
	for _, cell := range b.grid {
		h.Write([]byte{byte(cell)})
	}
	return BoardHash(h.Sum64())
}

// Grid returns the occupancy as a row-major matrix copy, for display layers
// and state snapshots.
func (b *Board) Grid() [][]Color {
	grid := make([][]Color, b.size)
	for row := 0; row < b.size; row++ {
		grid[row] = make([]Color, b.size)
		for col := 0; col < b.size; col++ {
			grid[row][col] = b.grid[row*b.size+col]
		}
	}
	return grid
}
