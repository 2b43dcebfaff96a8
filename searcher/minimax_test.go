package searcher

import (
	"fmt"
	"testing"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, cfg game.Config) *game.TicTacToe {
	t.Helper()
	g, err := game.NewTicTacToe(cfg)
	require.NoError(t, err)
	return g
}

// play applies a scripted sequence of (cell, maximizing) pairs.
func play(t *testing.T, g *game.TicTacToe, plies ...int) {
	t.Helper()
	for i, cell := range plies {
		require.NoError(t, g.Apply(cell, i%2 == 0))
	}
}

func TestBestMoveForcedWin(t *testing.T) {
	// o o .        x is the minimizer; with x to move the engine must
	// x x .        complete the row at cell 5 rather than block at 2.
	// . . .
	forcedWin := func(t *testing.T) *game.TicTacToe {
		g := newBoard(t, game.Config{Size: 3})
		play(t, g, 0, 3, 1, 4)
		return g
	}

	t.Run("maximizer completes its row", func(t *testing.T) {
		g := forcedWin(t)
		result, err := NewMinimax[int]().BestMove(g, 9, true)
		require.NoError(t, err)
		require.Equal(t, 2, result.Move, "cell 2 completes the top row")
		require.GreaterOrEqual(t, result.Score, game.WinScore, "a forced win must saturate")
	})

	t.Run("minimizer completes its row", func(t *testing.T) {
		g := forcedWin(t)
		result, err := NewMinimax[int]().BestMove(g, 9, false)
		require.NoError(t, err)
		require.Equal(t, 5, result.Move, "an immediate win beats blocking")
		require.LessOrEqual(t, result.Score, -game.WinScore)
	})

	t.Run("prefers the faster of two wins", func(t *testing.T) {
		// With both 2 and 5 winning immediately for their sides, the
		// one-ply win must outscore any deeper line.
		g := forcedWin(t)
		shallow, err := NewMinimax[int]().BestMove(g, 2, true)
		require.NoError(t, err)
		deep, err := NewMinimax[int]().BestMove(g, 9, true)
		require.NoError(t, err)
		require.Equal(t, shallow.Move, deep.Move, "depth must not change an immediate win")
		require.Greater(t, deep.Score, shallow.Score,
			"more remaining depth at the winning leaf scores higher")
	})
}

func TestBestMoveOpening(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})
	result, err := NewMinimax[int]().BestMove(g, 9, true)
	require.NoError(t, err)
	require.Equal(t, 0, result.Move,
		"all openings draw under optimal play; the tie-break picks the first corner")
	require.Equal(t, game.DrawScore, result.Score,
		"3x3 TicTacToe is a draw at full depth")
}

func TestBestMoveTieBreakStability(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})
	play(t, g, 4, 0)

	m := NewMinimax[int]()
	first, err := m.BestMove(g, 6, true)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		again, err := m.BestMove(g, 6, true)
		require.NoError(t, err)
		require.Equal(t, first.Move, again.Move, "identical searches must pick the identical move")
		require.Equal(t, first.Score, again.Score)
	}
}

func TestPruningEquivalence(t *testing.T) {
	positions := map[string]func(t *testing.T) *game.TicTacToe{
		"empty board": func(t *testing.T) *game.TicTacToe {
			return newBoard(t, game.Config{Size: 3})
		},
		"center vs corner": func(t *testing.T) *game.TicTacToe {
			g := newBoard(t, game.Config{Size: 3})
			play(t, g, 4, 0)
			return g
		},
		"double threat": func(t *testing.T) *game.TicTacToe {
			g := newBoard(t, game.Config{Size: 3})
			play(t, g, 0, 3, 1, 4)
			return g
		},
		"4x4 midgame": func(t *testing.T) *game.TicTacToe {
			g := newBoard(t, game.Config{Size: 4})
			play(t, g, 5, 0, 10, 15, 6)
			return g
		},
	}

	for name, build := range positions {
		for depth := 1; depth <= 5; depth++ {
			for _, maximizing := range []bool{true, false} {
				t.Run(fmt.Sprintf("%s depth %d maximizing %v", name, depth, maximizing), func(t *testing.T) {
					g := build(t)
					pruned, err := NewMinimax[int](WithMetrics[int]()).BestMove(g, depth, maximizing)
					require.NoError(t, err)
					exhaustive, err := NewMinimax[int](
						WithMetrics[int](), WithPruningDisabled[int](),
					).BestMove(g, depth, maximizing)
					require.NoError(t, err)

					require.Equal(t, exhaustive.Move, pruned.Move,
						"pruning must not change the chosen move")
					require.Equal(t, exhaustive.Score, pruned.Score,
						"pruning must not change the root score")
					require.LessOrEqual(t, pruned.Metrics.Leaves, exhaustive.Metrics.Leaves,
						"pruning can only shrink the explored tree")
				})
			}
		}
	}
}

func TestOptimalSelfPlayDraws(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})
	m := NewMinimax[int]()

	maximizing := true
	for !g.IsTerminal() {
		result, err := m.BestMove(g, 9, maximizing)
		require.NoError(t, err)
		require.NoError(t, g.Apply(result.Move, maximizing))
		maximizing = !maximizing
	}

	_, won := g.Winner()
	require.False(t, won, "optimal play by both sides must end in a draw")
	require.Equal(t, game.DrawScore, g.Evaluate(0))
}

func TestBestMoveErrors(t *testing.T) {
	t.Run("no legal moves", func(t *testing.T) {
		g := newBoard(t, game.Config{Size: 3})
		play(t, g, 0, 3, 1, 4, 2) // top row win for the maximizer

		_, err := NewMinimax[int]().BestMove(g, 3, false)
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}

func TestBestMoveDepthZero(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})
	play(t, g, 4)

	result, err := NewMinimax[int]().BestMove(g, 0, false)
	require.NoError(t, err)
	require.Equal(t, g.Evaluate(0), result.Score, "depth 0 forces immediate evaluation")
	require.Zero(t, result.Move, "no move is searched at depth 0")
}

func TestStateRestoredAfterSearch(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})
	play(t, g, 4, 8)
	board := g.String()
	moves := g.LegalMoves()

	_, err := NewMinimax[int]().BestMove(g, 7, true)
	require.NoError(t, err)
	require.Equal(t, board, g.String(), "a search must restore the state it borrowed")
	require.Equal(t, moves, g.LegalMoves())
}

func TestSearchMetrics(t *testing.T) {
	g := newBoard(t, game.Config{Size: 3})

	result, err := NewMinimax[int](WithMetrics[int]()).BestMove(g, 4, true)
	require.NoError(t, err)
	require.Positive(t, result.Metrics.Nodes)
	require.Positive(t, result.Metrics.Leaves)
	require.Positive(t, result.Metrics.Cutoffs, "a uniform opening position produces cutoffs")
	require.False(t, result.Metrics.StartTime.IsZero())

	silent, err := NewMinimax[int]().BestMove(g, 4, true)
	require.NoError(t, err)
	require.Zero(t, silent.Metrics, "metrics are off by default")
}
