// Package agent provides move-picking strategies for driving one side of a
// running game.
package agent

import "minimax/game"

// Agent picks a move for one side of a game in progress.
type Agent[M comparable] interface {
	// FindMove returns the agent's move for the current position. The state
	// is read (and, for searching agents, explored through paired
	// Apply/Undo calls) but left unchanged.
	FindMove(state game.State[M], maximizing bool) (M, error)
}
