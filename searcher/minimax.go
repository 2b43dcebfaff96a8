// Package searcher implements depth-limited minimax search with alpha-beta
// pruning over any game satisfying the game.State contract.
package searcher

import (
	"errors"
	"math"

	"minimax/game"

	"github.com/rs/zerolog/log"
)

// ErrNoLegalMoves is returned when BestMove is called on a position with no
// playable moves. Callers should check IsTerminal before searching.
var ErrNoLegalMoves = errors.New("no legal moves in the current position")

// SearchResult pairs the chosen move with its guaranteed score and the
// telemetry of the search that produced it.
type SearchResult[M comparable] struct {
	Move    M
	Score   float64
	Metrics SearchMetrics
}

type Option[M comparable] func(*Minimax[M])

// WithMetrics enables search telemetry collection.
func WithMetrics[M comparable]() Option[M] {
	return func(m *Minimax[M]) {
		m.metrics = NewMetricsCollector()
	}
}

// WithPruningDisabled turns off alpha-beta cutoffs, degrading the search to
// exhaustive minimax. The chosen move and score must not change; the option
// exists to verify exactly that.
func WithPruningDisabled[M comparable]() Option[M] {
	return func(m *Minimax[M]) {
		m.disablePruning = true
	}
}

// Minimax finds, among the moves legal at a position, the one that optimizes
// the mover's worst-case outcome against a rational adversary within a ply
// budget, skipping subtrees that provably cannot affect the result.
//
// A Minimax is not safe for concurrent use: a search borrows the state
// exclusively, mutating and restoring it in place through paired Apply/Undo
// calls.
type Minimax[M comparable] struct {
	metrics        MetricsCollector
	disablePruning bool
}

func NewMinimax[M comparable](options ...Option[M]) *Minimax[M] {
	m := &Minimax[M]{
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMove returns the best move for the given side at the given ply budget,
// breaking ties in favor of the first qualifying move in LegalMoves order.
// The state is restored to its pre-call configuration before returning.
//
// A position with no legal moves fails with ErrNoLegalMoves. At depth 0 (or
// on a terminal root) the result carries the static evaluation and the zero
// move; callers wanting a playable move must budget at least one ply.
func (m *Minimax[M]) BestMove(state game.State[M], depth int, maximizing bool) (SearchResult[M], error) {
	m.metrics.Start()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return SearchResult[M]{}, ErrNoLegalMoves
	}
	if depth == 0 || state.IsTerminal() {
		m.metrics.AddLeaf()
		return SearchResult[M]{Score: state.Evaluate(depth), Metrics: m.metrics.Complete()}, nil
	}

	log.Debug().
		Int("depth", depth).
		Bool("maximizing", maximizing).
		Int("moves", len(moves)).
		Bool("pruning", !m.disablePruning).
		Msg("minimax-search")

	var (
		bestMove  M
		bestScore = math.Inf(-1)
		alpha     = math.Inf(-1)
		beta      = math.Inf(1)
	)
	if !maximizing {
		bestScore = math.Inf(1)
	}

	m.metrics.AddNode()
	for _, move := range moves {
		if err := state.Apply(move, maximizing); err != nil {
			return SearchResult[M]{}, err
		}
		score, err := m.alphabeta(state, depth-1, alpha, beta, !maximizing)
		state.Undo(move, maximizing)
		if err != nil {
			return SearchResult[M]{}, err
		}

		if maximizing && score > bestScore || !maximizing && score < bestScore {
			bestScore = score
			bestMove = move
		}
		if maximizing {
			alpha = math.Max(alpha, bestScore)
		} else {
			beta = math.Min(beta, bestScore)
		}
		if alpha >= beta && !m.disablePruning {
			m.metrics.AddCutoff()
			break
		}
	}

	result := SearchResult[M]{Move: bestMove, Score: bestScore, Metrics: m.metrics.Complete()}
	log.Debug().
		Float64("score", result.Score).
		Int64("nodes", result.Metrics.Nodes).
		Int64("leaves", result.Metrics.Leaves).
		Int64("cutoffs", result.Metrics.Cutoffs).
		Dur("elapsed", result.Metrics.Duration).
		Msg("minimax-done")
	return result, nil
}

// alphabeta is the fail-soft recursive core. It returns the exact minimax
// value whenever that value lies inside the (alpha, beta) window, which is
// all the root loop ever relies on; outside the window it returns a bound
// that cannot change the root decision.
func (m *Minimax[M]) alphabeta(state game.State[M], depth int, alpha, beta float64, maximizing bool) (float64, error) {
	if depth == 0 || state.IsTerminal() {
		m.metrics.AddLeaf()
		return state.Evaluate(depth), nil
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		// A conforming game never reaches here: empty moves implies
		// terminal. Evaluate rather than guess.
		m.metrics.AddLeaf()
		return state.Evaluate(depth), nil
	}
	m.metrics.AddNode()

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	for _, move := range moves {
		if err := state.Apply(move, maximizing); err != nil {
			return 0, err
		}
		score, err := m.alphabeta(state, depth-1, alpha, beta, !maximizing)
		state.Undo(move, maximizing)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = math.Max(best, score)
			alpha = math.Max(alpha, best)
		} else {
			best = math.Min(best, score)
			beta = math.Min(beta, best)
		}
		if alpha >= beta && !m.disablePruning {
			m.metrics.AddCutoff()
			break
		}
	}
	return best, nil
}
