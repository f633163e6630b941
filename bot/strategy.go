// Package bot holds the automated move-selection strategies. A strategy
// reads a game state and produces exactly one move; it never mutates the
// state it is given, so the same live game can safely drive any number of
// strategies.
package bot

import "goban/game"

// Strategy picks one move for a player. Implementations treat the state as
// read-only; any simulation happens on clones.
type Strategy interface {
	SelectMove(state *game.GameState, player game.Color) (game.Move, error)
}
