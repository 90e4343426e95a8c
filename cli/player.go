package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yutboard/yut/yut"
)

const help = `commands:
  throw              throw the sticks
  designate          declare a throw instead of drawing one
  move THROW TOKEN   move TOKEN (e.g. 1a) with THROW (e.g. quad or yut)
  end                end the turn
  board              show the board
  quit               stop playing
`

var errUsage = errors.New("usage: move THROW TOKEN")

// command runs one input line. Errors from the engine are already
// reported through the Presenter, so only parse errors are returned.
func (c *CLI) command(line string) error {
	words := strings.Fields(line)
	switch strings.ToLower(words[0]) {
	case "throw", "t":
		_ = c.engine.Throw()
	case "designate", "d":
		_ = c.engine.ThrowDesignated()
	case "move", "m":
		if len(words) != 3 {
			return errUsage
		}
		t, err := yut.ParseThrow(words[1])
		if err != nil {
			return err
		}
		tok, err := ParseToken(c.engine.Match(), words[2])
		if err != nil {
			return err
		}
		_, _ = c.engine.Move(t, tok)
	case "end", "e":
		_ = c.engine.EndTurn()
	case "board", "b":
		RenderBoard(c.Out, c.engine.Match())
	case "help", "h", "?":
		fmt.Fprint(c.Out, help)
	case "quit", "q":
		c.quit = true
	default:
		return fmt.Errorf("unknown command %q (try help)", words[0])
	}
	return nil
}

// ParseToken finds a token by the name Token.String gives it.
func ParseToken(m *yut.Match, s string) (*yut.Token, error) {
	for _, p := range m.Players() {
		for _, t := range p.Tokens() {
			if strings.EqualFold(t.String(), s) {
				return t, nil
			}
		}
	}
	return nil, fmt.Errorf("no token %q", s)
}
