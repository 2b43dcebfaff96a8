// Command minimax plays interactive TicTacToe against the search engine.
// You play the maximizing side and move first; enter the row-major cell
// index to claim a cell.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"minimax/agent"
	"minimax/config"
	"minimax/engine"
	"minimax/game"
	"minimax/searcher"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	ttt, err := game.NewTicTacToe(game.Config{
		Size:      cfg.BoardSize,
		Maximizer: cfg.Maximizer,
		Minimizer: cfg.Minimizer,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:              "minimax> ",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("readline init")
	}
	defer l.Close()

	var opponent agent.Agent[int]
	switch cfg.Opponent {
	case "random":
		opponent = agent.NewRandom[int](cfg.Seed)
	default:
		opponent = agent.NewMinimax(searcher.NewMinimax[int](), cfg.Depth)
	}
	human := &humanAgent{l: l, size: cfg.BoardSize}

	fmt.Printf("You are %c, the engine is %c. Enter a cell index, e.g. %d for (row %d, col %d).\n",
		cfg.Maximizer, cfg.Minimizer, cfg.BoardSize+1, 1, 1)
	printBoard(ttt)

	e := engine.NewLocal[int](ttt, human, opponent,
		engine.WithObserver(func(u engine.Update[int]) {
			who := "you"
			if !u.Maximizing {
				who = "engine"
			}
			fmt.Printf("%s played cell %d (row %d, col %d)\n",
				who, u.Move, u.Move/cfg.BoardSize, u.Move%cfg.BoardSize)
			printBoard(ttt)
		}))

	if _, err := e.Run(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			fmt.Println("goodbye")
			return
		}
		log.Fatal().Err(err).Msg("game aborted")
	}

	switch winner, won := ttt.Winner(); {
	case !won:
		fmt.Println("Game tied!")
	case winner == ttt.MaximizerMark():
		fmt.Println("You win!")
	default:
		fmt.Println("The engine wins!")
	}
}

func printBoard(t *game.TicTacToe) {
	fmt.Println(t)
	fmt.Println()
}

// humanAgent reads moves from the terminal, re-prompting until the input
// parses to a legal cell.
type humanAgent struct {
	l    *readline.Instance
	size int
}

func (h *humanAgent) FindMove(state game.State[int], maximizing bool) (int, error) {
	for {
		line, err := h.l.Readline()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			return 0, io.EOF
		}
		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Printf("enter a cell index between 0 and %d\n", h.size*h.size-1)
			continue
		}
		if !slices.Contains(state.LegalMoves(), cell) {
			fmt.Printf("cell %d is not playable\n", cell)
			continue
		}
		return cell, nil
	}
}
