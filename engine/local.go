// Package engine runs complete games between two agents over a single
// mutable state.
package engine

import (
	"fmt"

	"minimax/agent"
	"minimax/game"

	"github.com/rs/zerolog/log"
)

// Update describes one applied ply.
type Update[M comparable] struct {
	Ply        int
	Move       M
	Maximizing bool
}

// Observer is notified after every applied ply; the CLI uses it to print the
// board.
type Observer[M comparable] func(Update[M])

type Option[M comparable] func(*Local[M])

// WithObserver registers an observer for applied plies.
func WithObserver[M comparable](observer Observer[M]) Option[M] {
	return func(e *Local[M]) {
		e.observers = append(e.observers, observer)
	}
}

// Local alternates turns between two agents on one state until the game is
// over. The maximizing side moves first.
type Local[M comparable] struct {
	state     game.State[M]
	maxAgent  agent.Agent[M]
	minAgent  agent.Agent[M]
	observers []Observer[M]
}

func NewLocal[M comparable](state game.State[M], maxAgent, minAgent agent.Agent[M], options ...Option[M]) *Local[M] {
	e := &Local[M]{
		state:    state,
		maxAgent: maxAgent,
		minAgent: minAgent,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the game to completion and returns the number of plies played.
// Agent failures and contract violations abort the game with an error; the
// state is left as of the last applied ply.
func (e *Local[M]) Run() (int, error) {
	maximizing := true
	plies := 0
	for !e.state.IsTerminal() {
		if len(e.state.LegalMoves()) == 0 {
			return plies, fmt.Errorf("non-terminal position with no legal moves after %d plies", plies)
		}

		mover := e.minAgent
		if maximizing {
			mover = e.maxAgent
		}
		move, err := mover.FindMove(e.state, maximizing)
		if err != nil {
			return plies, fmt.Errorf("ply %d: %w", plies+1, err)
		}
		if err := e.state.Apply(move, maximizing); err != nil {
			return plies, fmt.Errorf("ply %d: %w", plies+1, err)
		}
		plies++
		log.Debug().
			Int("ply", plies).
			Bool("maximizing", maximizing).
			Interface("move", move).
			Msg("ply-applied")

		for _, observer := range e.observers {
			observer(Update[M]{Ply: plies, Move: move, Maximizing: maximizing})
		}
		maximizing = !maximizing
	}
	return plies, nil
}
