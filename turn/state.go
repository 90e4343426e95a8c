package turn

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/yutboard/yut/yut"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrNoThrow       = errors.New("no throw available")
	ErrStaleThrow    = errors.New("throw result not available")
	ErrNotOwner      = errors.New("token belongs to another player")
	ErrTokenFinished = errors.New("token already finished")
	ErrNoDesignation = errors.New("no throw designated")
)

// State is the current player's progress through a turn. Its methods
// are pure: they return the next state and never modify the receiver.
type State struct {
	// Thrown is set once the turn's free throw has been taken.
	Thrown bool
	// Bonus counts earned throws not yet taken.
	Bonus int
	// BonusRoll is set when the latest throw was a quad or penta that
	// has not yet been settled by a move or another throw.
	BonusRoll bool
	// Results are the throws of the current burst awaiting a move.
	Results []yut.Throw
}

func (s State) clone() State {
	s.Results = slices.Clone(s.Results)
	return s
}

// CanThrow reports whether the player may throw again.
func (s State) CanThrow() bool {
	return !s.Thrown || s.BonusRoll || s.Bonus > 0
}

// Throw records a throw. The turn's first throw is free; later ones
// spend a pending bonus roll, and then an earned bonus throw.
func (s State) Throw(t yut.Throw) (State, error) {
	if !t.Valid() {
		return s, fmt.Errorf("%w: %d", yut.ErrBadThrow, int(t))
	}
	next := s.clone()
	switch {
	case !next.Thrown:
		next.Thrown = true
	case next.BonusRoll:
		next.BonusRoll = false
	case next.Bonus > 0:
		next.Bonus--
	default:
		return s, ErrNoThrow
	}
	next.Results = append(next.Results, t)
	if t.Bonus() {
		next.BonusRoll = true
	}
	return next, nil
}

// Has reports whether t is among the unused results.
func (s State) Has(t yut.Throw) bool {
	return slices.Contains(s.Results, t)
}

// Apply consumes one t for a move. An unsettled bonus roll becomes a
// bonus throw, and a capture earns another.
func (s State) Apply(t yut.Throw, captured bool) (State, error) {
	i := slices.Index(s.Results, t)
	if i < 0 {
		return s, fmt.Errorf("%w: %s", ErrStaleThrow, t)
	}
	next := s.clone()
	next.Results = slices.Delete(next.Results, i, i+1)
	if next.BonusRoll {
		next.BonusRoll = false
		next.Bonus++
	}
	if captured {
		next.Bonus++
	}
	return next, nil
}

// End finishes the current burst. Unused results are discarded. If
// bonus throws remain, again is true and the same player starts a
// fresh burst; otherwise the returned state is the zero State for
// the next player.
func (s State) End() (next State, again bool) {
	bonus := s.Bonus
	if s.BonusRoll {
		bonus++
	}
	if bonus > 0 {
		return State{Thrown: true, Bonus: bonus}, true
	}
	return State{}, false
}

func (s State) String() string {
	return fmt.Sprintf("thrown=%t bonus=%d roll=%t results=%v",
		s.Thrown, s.Bonus, s.BonusRoll, s.Results)
}
