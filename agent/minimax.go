package agent

import (
	"minimax/game"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
)

type minimaxAgent[M comparable] struct {
	engine *searcher.Minimax[M]
	depth  int
}

// NewMinimax returns an agent that searches depth plies ahead for every move
// it is asked for.
func NewMinimax[M comparable](engine *searcher.Minimax[M], depth int) Agent[M] {
	return minimaxAgent[M]{engine: engine, depth: depth}
}

func (a minimaxAgent[M]) FindMove(state game.State[M], maximizing bool) (M, error) {
	result, err := a.engine.BestMove(state, a.depth, maximizing)
	if err != nil {
		var zero M
		return zero, err
	}
	log.Debug().
		Interface("move", result.Move).
		Float64("score", result.Score).
		Msg("minimax-agent-move")
	return result.Move, nil
}
