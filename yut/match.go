package yut

import (
	"errors"
	"fmt"
)

type Config struct {
	Shape   *Shape
	Players int
	Tokens  int
	Names   []string
}

const (
	DefaultPlayers = 2
	DefaultTokens  = 4

	MaxPlayers = 8
	MaxTokens  = 8
)

var ErrBadConfig = errors.New("bad match config")

// Match is a game in progress: the players in turn order, the board
// and whose turn it is.
type Match struct {
	cfg     Config
	board   *Board
	players []*Player
	current int
}

func NewMatch(cfg Config) (*Match, error) {
	if cfg.Shape == nil {
		cfg.Shape = Traditional
	}
	if cfg.Players == 0 {
		cfg.Players = DefaultPlayers
		if len(cfg.Names) > cfg.Players {
			cfg.Players = len(cfg.Names)
		}
	}
	if cfg.Tokens == 0 {
		cfg.Tokens = DefaultTokens
	}
	if cfg.Players < 2 || cfg.Players > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players", ErrBadConfig, cfg.Players)
	}
	if cfg.Tokens < 1 || cfg.Tokens > MaxTokens {
		return nil, fmt.Errorf("%w: %d tokens", ErrBadConfig, cfg.Tokens)
	}
	if len(cfg.Names) > cfg.Players {
		return nil, fmt.Errorf("%w: %d names for %d players", ErrBadConfig, len(cfg.Names), cfg.Players)
	}
	m := &Match{cfg: cfg, board: NewBoard(cfg.Shape)}
	for i := 0; i < cfg.Players; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(cfg.Names) && cfg.Names[i] != "" {
			name = cfg.Names[i]
		}
		m.players = append(m.players, NewPlayer(i, name, cfg.Tokens))
	}
	return m, nil
}

func (m *Match) Config() Config   { return m.cfg }
func (m *Match) Shape() *Shape    { return m.cfg.Shape }
func (m *Match) Board() *Board    { return m.board }
func (m *Match) Current() *Player { return m.players[m.current] }

func (m *Match) Players() []*Player {
	out := make([]*Player, len(m.players))
	copy(out, m.players)
	return out
}

func (m *Match) Player(i int) *Player {
	return m.players[i]
}

// Advance passes the turn to the next player in seating order.
func (m *Match) Advance() *Player {
	m.current = (m.current + 1) % len(m.players)
	return m.players[m.current]
}

// Winner returns the first player whose tokens have all finished.
func (m *Match) Winner() (*Player, bool) {
	for _, p := range m.players {
		if p.Done() {
			return p, true
		}
	}
	return nil, false
}
