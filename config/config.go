// Package config loads driver configuration from command-line flags and
// MINIMAX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrBadConfig flags malformed configuration input.
var ErrBadConfig = errors.New("bad configuration")

// Config carries everything the CLI driver needs.
type Config struct {
	BoardSize int
	Depth     int
	Opponent  string // minimax or random
	Seed      uint64
	Maximizer byte
	Minimizer byte
	LogLevel  string
}

// Load parses args into a Config. Environment variables (MINIMAX_SIZE,
// MINIMAX_DEPTH, ...) override flag defaults; explicit flags win.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("minimax", pflag.ContinueOnError)
	fs.Int("size", 3, "board size (n for an n-by-n board)")
	fs.Int("depth", 6, "engine search depth in plies")
	fs.String("opponent", "minimax", "engine opponent: minimax or random")
	fs.Uint64("seed", 1, "seed for the random opponent")
	fs.String("maximizer", "o", "mark for the maximizing player (you)")
	fs.String("minimizer", "x", "mark for the minimizing player (the engine)")
	fs.String("log-level", "info", "zerolog level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	v.SetEnvPrefix("minimax")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c := &Config{
		BoardSize: v.GetInt("size"),
		Depth:     v.GetInt("depth"),
		Opponent:  v.GetString("opponent"),
		Seed:      v.GetUint64("seed"),
		LogLevel:  v.GetString("log-level"),
	}
	var err error
	if c.Maximizer, err = mark(v.GetString("maximizer")); err != nil {
		return nil, err
	}
	if c.Minimizer, err = mark(v.GetString("minimizer")); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func mark(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: mark %q must be a single character", ErrBadConfig, s)
	}
	return s[0], nil
}

func (c *Config) validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("%w: board size %d, need at least 2", ErrBadConfig, c.BoardSize)
	}
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth %d, need at least one ply", ErrBadConfig, c.Depth)
	}
	switch c.Opponent {
	case "minimax", "random":
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrBadConfig, c.Opponent)
	}
	return nil
}
