package yut

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/rand"
)

// Throw is the outcome of one throw of the sticks. Its value is the
// signed number of steps it moves a token.
type Throw int8

const (
	Backward Throw = -1
	One      Throw = 1
	Two      Throw = 2
	Three    Throw = 3
	Quad     Throw = 4
	Penta    Throw = 5
)

var Throws = []Throw{Backward, One, Two, Three, Quad, Penta}

var ErrBadThrow = errors.New("bad throw")

func (t Throw) Steps() int {
	return int(t)
}

// Bonus reports whether throwing t earns another throw.
func (t Throw) Bonus() bool {
	return t == Quad || t == Penta
}

func (t Throw) Valid() bool {
	return t == Backward || (t >= One && t <= Penta)
}

func (t Throw) String() string {
	switch t {
	case Backward:
		return "backward"
	case One:
		return "one"
	case Two:
		return "two"
	case Three:
		return "three"
	case Quad:
		return "quad"
	case Penta:
		return "penta"
	default:
		return fmt.Sprintf("throw(%d)", int8(t))
	}
}

// Traditional returns the stick-game name of t.
func (t Throw) Traditional() string {
	switch t {
	case Backward:
		return "backdo"
	case One:
		return "do"
	case Two:
		return "gae"
	case Three:
		return "geol"
	case Quad:
		return "yut"
	case Penta:
		return "mo"
	default:
		return t.String()
	}
}

// ParseThrow accepts either the English or the traditional name of
// a throw, or its signed step count.
func ParseThrow(s string) (Throw, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Throws {
		if s == t.String() || s == t.Traditional() || s == fmt.Sprint(t.Steps()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadThrow, s)
}

// A Thrower produces throws on request.
type Thrower interface {
	Throw() Throw
}

type ThrowFunc func() Throw

func (f ThrowFunc) Throw() Throw { return f() }

// RandomThrower draws throws with the sticks' distribution:
// backward 5%, one 25%, two 25%, three 20%, quad 15%, penta 10%.
type RandomThrower struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandomThrower(seed uint64) *RandomThrower {
	return &RandomThrower{r: rand.New(rand.NewSource(seed))}
}

func (r *RandomThrower) Throw() Throw {
	r.mu.Lock()
	n := r.r.Intn(100)
	r.mu.Unlock()
	return throwFromPercentile(n)
}

func throwFromPercentile(n int) Throw {
	switch {
	case n < 5:
		return Backward
	case n < 30:
		return One
	case n < 55:
		return Two
	case n < 75:
		return Three
	case n < 90:
		return Quad
	default:
		return Penta
	}
}
