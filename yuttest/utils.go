package yuttest

import (
	"fmt"
	"strings"

	"github.com/yutboard/yut/yut"
)

func Cell(s *yut.Shape, str string) yut.Cell {
	c, e := yut.ParseCell(s, str)
	if e != nil {
		panic(e)
	}
	return c
}

func Cells(s *yut.Shape, str string) []yut.Cell {
	var out []yut.Cell
	for _, w := range strings.Fields(str) {
		out = append(out, Cell(s, w))
	}
	return out
}

// Token finds a token by its name, e.g. "2b" for player 2's second
// token.
func Token(m *yut.Match, name string) *yut.Token {
	var pi int
	var ti rune
	if _, e := fmt.Sscanf(name, "%d%c", &pi, &ti); e != nil {
		panic(fmt.Sprintf("bad token %q: %v", name, e))
	}
	if pi < 1 || pi > len(m.Players()) {
		panic(fmt.Sprintf("bad token %q: no player %d", name, pi))
	}
	t := m.Player(pi - 1).Token(int(ti - 'a'))
	if t == nil {
		panic(fmt.Sprintf("bad token %q", name))
	}
	return t
}

// Match builds a match and arranges its tokens. layout is a list of
// token=cell assignments, with an optional path context after a
// slash: "1a=o3 1b=o3 2a=center/A2".
func Match(cfg yut.Config, layout string) *yut.Match {
	m, e := yut.NewMatch(cfg)
	if e != nil {
		panic(e)
	}
	Arrange(m, layout)
	return m
}

func Arrange(m *yut.Match, layout string) {
	for _, w := range strings.Fields(layout) {
		bits := strings.SplitN(w, "=", 2)
		if len(bits) != 2 {
			panic(fmt.Sprintf("bad layout entry %q", w))
		}
		tok := Token(m, bits[0])
		where := strings.SplitN(bits[1], "/", 2)
		ctx := yut.NoCell
		if len(where) == 2 {
			ctx = Cell(m.Shape(), where[1])
		}
		m.Board().Set(tok, Cell(m.Shape(), where[0]), ctx)
	}
}

// Throws returns a thrower that yields ts in order and panics when
// they run out.
func Throws(ts ...yut.Throw) yut.Thrower {
	i := 0
	return yut.ThrowFunc(func() yut.Throw {
		if i >= len(ts) {
			panic("scripted throws exhausted")
		}
		t := ts[i]
		i++
		return t
	})
}
