package game

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Marks used when the corresponding Config field is left zero.
const (
	DefaultEmptyMark     = byte('-')
	DefaultMaximizerMark = byte('o')
	DefaultMinimizerMark = byte('x')
)

// ErrInvalidConfig flags an unusable game configuration.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Config describes a TicTacToe game. Size is the board dimension (n for an
// n-by-n board); the marks are the characters rendered for each cell state.
type Config struct {
	Size      int
	Empty     byte
	Maximizer byte
	Minimizer byte
}

func (c Config) withDefaults() Config {
	if c.Empty == 0 {
		c.Empty = DefaultEmptyMark
	}
	if c.Maximizer == 0 {
		c.Maximizer = DefaultMaximizerMark
	}
	if c.Minimizer == 0 {
		c.Minimizer = DefaultMinimizerMark
	}
	return c
}

func (c Config) validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: board size %d, need at least 2", ErrInvalidConfig, c.Size)
	}
	if c.Maximizer == c.Minimizer || c.Maximizer == c.Empty || c.Minimizer == c.Empty {
		return fmt.Errorf("%w: marks %q, %q and %q must be distinct",
			ErrInvalidConfig, c.Maximizer, c.Minimizer, c.Empty)
	}
	return nil
}

// TicTacToe is an n-by-n board implementing State[int]; a move is the
// row-major index of the cell to claim.
type TicTacToe struct {
	size      int
	board     []byte
	moves     int
	empty     byte
	maximizer byte
	minimizer byte
}

// NewTicTacToe creates a fresh game from cfg, filling zero fields with the
// default marks.
func NewTicTacToe(cfg Config) (*TicTacToe, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &TicTacToe{
		size:      cfg.Size,
		board:     bytes.Repeat([]byte{cfg.Empty}, cfg.Size*cfg.Size),
		empty:     cfg.Empty,
		maximizer: cfg.Maximizer,
		minimizer: cfg.Minimizer,
	}, nil
}

// Size returns the board dimension.
func (t *TicTacToe) Size() int { return t.size }

// MaximizerMark returns the maximizing player's mark.
func (t *TicTacToe) MaximizerMark() byte { return t.maximizer }

// MinimizerMark returns the minimizing player's mark.
func (t *TicTacToe) MinimizerMark() byte { return t.minimizer }

// LegalMoves returns the indices of all empty cells in row-major order, or
// nothing once the game is decided.
func (t *TicTacToe) LegalMoves() []int {
	if _, won := t.Winner(); won {
		return nil
	}
	moves := make([]int, 0, len(t.board)-t.moves)
	for cell, mark := range t.board {
		if mark == t.empty {
			moves = append(moves, cell)
		}
	}
	return moves
}

// Apply claims cell for the given side.
func (t *TicTacToe) Apply(cell int, maximizing bool) error {
	if cell < 0 || cell >= len(t.board) {
		return fmt.Errorf("%w: cell %d out of range for a %dx%d board",
			ErrInvalidMove, cell, t.size, t.size)
	}
	if t.IsTerminal() {
		return fmt.Errorf("%w: the game is already over", ErrInvalidMove)
	}
	if t.board[cell] != t.empty {
		return fmt.Errorf("%w: cell %d is occupied", ErrInvalidMove, cell)
	}
	if maximizing {
		t.board[cell] = t.maximizer
	} else {
		t.board[cell] = t.minimizer
	}
	t.moves++
	return nil
}

// Undo clears the cell claimed by the matching Apply.
func (t *TicTacToe) Undo(cell int, maximizing bool) {
	t.board[cell] = t.empty
	t.moves--
}

// IsTerminal reports whether either side has n in a row or the board is full.
func (t *TicTacToe) IsTerminal() bool {
	if _, won := t.Winner(); won {
		return true
	}
	return t.moves == len(t.board)
}

// Winner returns the winning mark, or the empty mark and false when the game
// is undecided or drawn.
func (t *TicTacToe) Winner() (byte, bool) {
	for _, mark := range [2]byte{t.maximizer, t.minimizer} {
		if t.hasWin(mark) {
			return mark, true
		}
	}
	return t.empty, false
}

// Evaluate scores the position from the maximizer's perspective. Wins and
// losses saturate to ±(WinScore + depthRemaining); draws score DrawScore; an
// undecided position counts open winning lines for each side.
func (t *TicTacToe) Evaluate(depthRemaining int) float64 {
	if winner, won := t.Winner(); won {
		score := WinScore + float64(depthRemaining)
		if winner == t.minimizer {
			return -score
		}
		return score
	}
	if t.moves == len(t.board) {
		return DrawScore
	}
	return float64(t.openLines(t.maximizer) - t.openLines(t.minimizer))
}

// String renders the board one row per line.
func (t *TicTacToe) String() string {
	var b strings.Builder
	for row := 0; row < t.size; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.Write(t.board[row*t.size : (row+1)*t.size])
	}
	return b.String()
}

// The 2n+2 winning lines of an n-by-n board, as (start, stride) pairs over
// the row-major cell array.
func (t *TicTacToe) lines(visit func(start, stride int) bool) bool {
	n := t.size
	for row := 0; row < n; row++ {
		if visit(row*n, 1) {
			return true
		}
	}
	for col := 0; col < n; col++ {
		if visit(col, n) {
			return true
		}
	}
	if visit(0, n+1) { // main diagonal
		return true
	}
	return visit(n-1, n-1) // anti-diagonal
}

func (t *TicTacToe) hasWin(mark byte) bool {
	return t.lines(func(start, stride int) bool {
		for i := 0; i < t.size; i++ {
			if t.board[start+i*stride] != mark {
				return false
			}
		}
		return true
	})
}

// openLines counts the winning lines not yet blocked by the opponent of mark.
func (t *TicTacToe) openLines(mark byte) int {
	opponent := t.minimizer
	if mark == t.minimizer {
		opponent = t.maximizer
	}
	open := 0
	t.lines(func(start, stride int) bool {
		for i := 0; i < t.size; i++ {
			if t.board[start+i*stride] == opponent {
				return false
			}
		}
		open++
		return false
	})
	return open
}
