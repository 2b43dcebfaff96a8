package agent

import (
	"minimax/game"
	"minimax/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[M comparable] struct {
	rng *rand.Rand
}

// NewRandom returns a baseline agent picking uniformly among the legal
// moves. Fix the seed for reproducible games.
func NewRandom[M comparable](seed uint64) Agent[M] {
	return randomAgent[M]{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent[M]) FindMove(state game.State[M], maximizing bool) (M, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		var zero M
		return zero, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}
