package selfplay

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/yutboard/yut/turn"
	"github.com/yutboard/yut/yut"
)

type Config struct {
	Games   int
	Threads int
	Seed    uint64
	Cutoff  int

	Match yut.Config

	// Check validates the board after every move.
	Check   bool
	Verbose bool
}

type Stats struct {
	Games    int
	Cutoff   int
	Wins     []int
	Turns    int
	Throws   int
	Moves    int
	Captures int

	Results []Result `json:"-"`
}

type Result struct {
	Game       int
	Seed       uint64
	Winner     string
	WinnerSeat int
	Turns      int
	Throws     int
	Captures   int
	Moves      []Move
}

// Move records one applied move of a simulated game.
type Move struct {
	Turn     int
	Seat     int
	Throw    yut.Throw
	Token    string
	From, To yut.Cell
	Carried  int
	Captured int
	Won      bool
}

func (s *Stats) add(r *Result) {
	s.Games++
	if r.WinnerSeat < 0 {
		s.Cutoff++
	} else {
		s.Wins[r.WinnerSeat]++
	}
	s.Turns += r.Turns
	s.Throws += r.Throws
	s.Moves += len(r.Moves)
	s.Captures += r.Captures
}

// gameSeed spreads the run seed so each game's seed does not depend
// on which worker plays it.
func gameSeed(seed uint64, game int) uint64 {
	return seed + uint64(game+1)*0x9e3779b97f4a7c15
}

// Simulate plays c.Games matches in parallel, every player choosing
// uniformly among its legal moves.
func Simulate(ctx context.Context, c *Config) (*Stats, error) {
	if c.Threads < 1 {
		c.Threads = 1
	}
	results := make([]Result, c.Games)
	games := make(chan int)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(games)
		for i := 0; i < c.Games; i++ {
			select {
			case games <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < c.Threads; i++ {
		grp.Go(func() error {
			for g := range games {
				r, err := playGame(c, g)
				if err != nil {
					return fmt.Errorf("game %d: %w", g, err)
				}
				if c.Verbose {
					log.Debug().Msgf("game n=%d turns=%d throws=%d captures=%d winner=%q",
						g, r.Turns, r.Throws, r.Captures, r.Winner)
				}
				results[g] = r
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	m, err := yut.NewMatch(c.Match)
	if err != nil {
		return nil, err
	}
	st := &Stats{Wins: make([]int, len(m.Players()))}
	for i := range results {
		st.add(&results[i])
	}
	st.Results = results
	return st, nil
}

type turnCounter struct {
	turn.NopPresenter
	turns int
}

func (t *turnCounter) AnnounceTurn(string) { t.turns++ }

func playGame(c *Config, game int) (Result, error) {
	seed := gameSeed(c.Seed, game)
	res := Result{Game: game, Seed: seed, WinnerSeat: -1}
	m, err := yut.NewMatch(c.Match)
	if err != nil {
		return res, err
	}
	r := rand.New(rand.NewSource(seed))
	ui := &turnCounter{}
	e := turn.New(m, yut.NewRandomThrower(seed>>1), ui)
	e.Start()
	for !e.Over() && (c.Cutoff <= 0 || ui.turns <= c.Cutoff) {
		if e.State().CanThrow() {
			if err := e.Throw(); err != nil {
				return res, err
			}
			res.Throws++
			continue
		}
		legal := e.Legal()
		if len(legal) == 0 {
			if err := e.EndTurn(); err != nil {
				return res, err
			}
			continue
		}
		pick := legal[r.Intn(len(legal))]
		seat := m.Current().ID
		out, err := e.Move(pick.Throw, pick.Token)
		if err != nil {
			return res, err
		}
		res.Captures += len(out.Captured)
		res.Moves = append(res.Moves, Move{
			Turn:     ui.turns,
			Seat:     seat,
			Throw:    pick.Throw,
			Token:    pick.Token.String(),
			From:     out.From,
			To:       out.To,
			Carried:  len(out.Group),
			Captured: len(out.Captured),
			Won:      out.Won,
		})
		if c.Check {
			if err := checkBoard(m); err != nil {
				return res, fmt.Errorf("after move %d: %w", len(res.Moves), err)
			}
		}
	}
	res.Turns = ui.turns
	if w, ok := e.Winner(); ok {
		res.Winner = w.Name
		res.WinnerSeat = w.ID
	}
	return res, nil
}

// checkBoard verifies that no cell holds two players' tokens and that
// every token is accounted for exactly once.
func checkBoard(m *yut.Match) error {
	b := m.Board()
	seen := make(map[*yut.Token]bool)
	for _, c := range m.Shape().Cells() {
		occ := b.Occupants(c)
		for _, t := range occ {
			if t.Owner() != occ[0].Owner() {
				return fmt.Errorf("%s holds tokens of %s and %s", c, occ[0].Owner(), t.Owner())
			}
			if t.Cell() != c {
				return fmt.Errorf("token %s on %s thinks it is on %s", t, c, t.Cell())
			}
			if seen[t] {
				return fmt.Errorf("token %s is on two cells", t)
			}
			seen[t] = true
		}
	}
	for _, t := range b.Finished() {
		if seen[t] {
			return fmt.Errorf("finished token %s is still on the board", t)
		}
		seen[t] = true
	}
	for _, p := range m.Players() {
		for _, t := range p.Tokens() {
			if t.Cell() == yut.Start {
				if seen[t] {
					return fmt.Errorf("token %s is both in start and on the board", t)
				}
				seen[t] = true
			}
			if !seen[t] {
				return fmt.Errorf("token %s is lost", t)
			}
		}
	}
	return nil
}
