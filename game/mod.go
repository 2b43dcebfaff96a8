// Package game defines the contract a two-player zero-sum perfect-information
// game must satisfy to be searchable, plus a reference TicTacToe
// implementation used to validate it.
package game

import "errors"

// WinScore is the magnitude at which decided positions saturate. Evaluate
// implementations must keep heuristic values strictly inside
// (-WinScore, WinScore) so a win at any depth outranks any undecided score.
const WinScore = 1000.0

// DrawScore is the evaluation of a finished game with no winner.
const DrawScore = 0.0

// ErrInvalidMove flags a move that is not legal in the current position: an
// occupied cell, an out-of-range index, or a move submitted after game end.
var ErrInvalidMove = errors.New("invalid move")

// State is the capability set consumed by the searcher. M identifies one
// legal transition and must be comparable, so callers can select among
// equally scored candidates and tests can assert on chosen moves.
//
// Apply and Undo are the only mutating operations. The searcher always calls
// them in symmetric pairs, so a search leaves the state exactly as it found
// it; every other method is a pure read of the current position.
type State[M comparable] interface {
	// LegalMoves returns every move playable in the current position, in a
	// stable deterministic order. The result is empty if and only if the
	// position is terminal.
	LegalMoves() []M

	// Apply mutates the state to reflect the given side playing move. The
	// move must be a member of the most recent LegalMoves result; otherwise
	// Apply returns an error wrapping ErrInvalidMove and leaves the state
	// untouched.
	Apply(move M, maximizing bool) error

	// Undo reverses the most recent matching Apply. It is only ever called
	// in that paired relationship.
	Undo(move M, maximizing bool)

	// IsTerminal reports whether the game is over: a win for either side or
	// a draw.
	IsTerminal() bool

	// Evaluate scores the position from the maximizing player's
	// perspective. Decided positions saturate to ±(WinScore +
	// depthRemaining), so a faster win scores strictly higher than a slower
	// one and a faster loss strictly lower. Draws score DrawScore.
	Evaluate(depthRemaining int) float64
}
