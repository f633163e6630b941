package game

import "fmt"

// TerminalReason says why a game ended.
type TerminalReason int

const (
	NotTerminal TerminalReason = iota
	DoublePass
	Resignation
)

func (r TerminalReason) String() string {
	switch r {
	case DoublePass:
		return "double-pass"
	case Resignation:
		return "resignation"
	default:
		return "in progress"
	}
}

// MinBoardSize and MaxBoardSize bound the configurable square grid.
const (
	MinBoardSize = 2
	MaxBoardSize = 25
)

// GameState owns a board plus everything the rules need beyond occupancy:
// whose turn it is, the sequence of configurations seen so far (for the
// positional superko rule), consecutive passes, and the terminal condition.
// All mutation goes through SubmitMove; once terminal, only reads are
// permitted.
type GameState struct {
	board    *Board
	turn     Color
	passes   int
	reason   TerminalReason
	resigned Color
	moves    []Move

	// Every configuration that has occurred, including the current one.
	// Boards stored here are never mutated: each placement commits a fresh
	// clone, so appending the committed board is safe.
	hashes  []BoardHash
	history []*Board
}

// NewGameState starts a game on an empty size x size board with Black to
// move.
func NewGameState(size int) (*GameState, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, &ConfigurationError{
			Field:   "board size",
			Message: fmt.Sprintf("%d is outside [%d, %d]", size, MinBoardSize, MaxBoardSize),
		}
	}
	board := NewBoard(size)
	return &GameState{
		board:   board,
		turn:    Black,
		hashes:  []BoardHash{board.Hash()},
		history: []*Board{board.Clone()},
	}, nil
}

// LoadGameState rebuilds a state from a grid snapshot with the given player
// to move. Prior history is not recoverable from a snapshot, so the repeated-
// position check starts over from the loaded configuration.
func LoadGameState(turn Color, grid [][]Color) (*GameState, error) {
	if turn != Black && turn != White {
		return nil, &ConfigurationError{Field: "turn", Message: "must be black or white"}
	}
	size := len(grid)
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, &ConfigurationError{
			Field:   "grid",
			Message: fmt.Sprintf("%d rows is outside [%d, %d]", size, MinBoardSize, MaxBoardSize),
		}
	}
	board := NewBoard(size)
	for row, cells := range grid {
		if len(cells) != size {
			return nil, &ConfigurationError{
				Field:   "grid",
				Message: fmt.Sprintf("row %d has %d columns, want %d", row, len(cells), size),
			}
		}
		for col, cell := range cells {
			if cell != Empty && cell != Black && cell != White {
				return nil, &ConfigurationError{
					Field:   "grid",
					Message: fmt.Sprintf("unknown color %d at (%d,%d)", cell, row, col),
				}
			}
			board.set(Intersection{row, col}, cell)
		}
	}
	return &GameState{
		board:   board,
		turn:    turn,
		hashes:  []BoardHash{board.Hash()},
		history: []*Board{board.Clone()},
	}, nil
}

// Board returns the live board. Callers must treat it as read-only; all
// mutation goes through SubmitMove.
func (s *GameState) Board() *Board {
	return s.board
}

// Turn returns the player to move. Meaningless once the game is over.
func (s *GameState) Turn() Color {
	return s.turn
}

// Done reports whether the game has reached a terminal condition.
func (s *GameState) Done() bool {
	return s.reason != NotTerminal
}

// Outcome returns why the game ended and, for resignations, the player who
// resigned. Before the terminal condition it returns (NotTerminal, Empty).
func (s *GameState) Outcome() (TerminalReason, Color) {
	return s.reason, s.resigned
}

// Passes returns the current count of consecutive passes.
func (s *GameState) Passes() int {
	return s.passes
}

// Moves returns the ordered sequence of applied moves. The transcript is
// enough for an external layer to serialize a full game record.
func (s *GameState) Moves() []Move {
	moves := make([]Move, len(s.moves))
	copy(moves, s.moves)
	return moves
}

// SubmitMove validates and applies one move. Placements are staged on a
// board clone so rejected moves leave the game untouched: captures and
// the superko check happen before anything is committed.
func (s *GameState) SubmitMove(m Move) error {
	if s.Done() {
		return &InvalidStateError{Op: "submit move"}
	}
	if m.Player != s.turn {
		return &IllegalMoveError{At: m.At, Player: m.Player, Reason: ReasonOutOfTurn}
	}

	switch m.Kind {
	case KindPass:
		s.passes++
		s.moves = append(s.moves, m)
		s.turn = s.turn.Opponent()
		if s.passes >= 2 {
			s.reason = DoublePass
		}
		return nil

	case KindResign:
		s.moves = append(s.moves, m)
		s.reason = Resignation
		s.resigned = m.Player
		return nil

	case KindPlace:
		staged := s.board.Clone()
		if _, err := staged.Place(m.At, m.Player); err != nil {
			return err
		}
		hash := staged.Hash()
		if s.isRepeat(hash, staged) {
			return &IllegalMoveError{At: m.At, Player: m.Player, Reason: ReasonRepeatedPosition}
		}
		s.board = staged
		s.hashes = append(s.hashes, hash)
		s.history = append(s.history, staged)
		s.moves = append(s.moves, m)
		s.passes = 0
		s.turn = s.turn.Opponent()
		return nil

	default:
		panic(fmt.Sprintf("unknown move kind %d", m.Kind))
	}
}

// isRepeat reports whether the staged board reproduces any prior
// configuration (positional superko). Hash hits are confirmed with an exact
// occupancy comparison.
func (s *GameState) isRepeat(hash BoardHash, staged *Board) bool {
	for i, h := range s.hashes {
		if h == hash && s.history[i].Equal(staged) {
			return true
		}
	}
	return false
}

// LegalPlacement reports whether the current player could place a stone at
// the given intersection: on the board, empty, not suicide, and not
// reproducing a prior configuration.
func (s *GameState) LegalPlacement(at Intersection) bool {
	if s.Done() {
		return false
	}
	staged := s.board.Clone()
	if _, err := staged.Place(at, s.turn); err != nil {
		return false
	}
	return !s.isRepeat(staged.Hash(), staged)
}

// LegalMoves enumerates the current player's legal placements in row-major
// order. Passing and resigning are always available and not included.
func (s *GameState) LegalMoves() []Move {
	if s.Done() {
		return nil
	}
	var moves []Move
	for row := 0; row < s.board.Size(); row++ {
		for col := 0; col < s.board.Size(); col++ {
			at := Intersection{row, col}
			if s.LegalPlacement(at) {
				moves = append(moves, PlaceMove(s.turn, at))
			}
		}
	}
	return moves
}

// Clone returns a fully independent deep copy, safe to mutate without
// touching the original. Strategies evaluate candidate moves on clones.
func (s *GameState) Clone() *GameState {
	moves := make([]Move, len(s.moves))
	copy(moves, s.moves)

	hashes := make([]BoardHash, len(s.hashes))
	copy(hashes, s.hashes)

	history := make([]*Board, len(s.history))
	for i, board := range s.history {
		history[i] = board.Clone()
	}

	return &GameState{
		board:    s.board.Clone(),
		turn:     s.turn,
		passes:   s.passes,
		reason:   s.reason,
		resigned: s.resigned,
		moves:    moves,
		hashes:   hashes,
		history:  history,
	}
}
