package yut

import "fmt"

// A Token is one of a player's pieces. Tokens are only moved through
// a Board.
type Token struct {
	owner   *Player
	id      int
	cell    Cell
	context Cell
}

func (t *Token) Owner() *Player { return t.owner }
func (t *Token) ID() int        { return t.id }
func (t *Token) Cell() Cell     { return t.cell }

// Context is the shortcut slot the token last passed around Center,
// or NoCell.
func (t *Token) Context() Cell {
	return t.context
}

func (t *Token) Finished() bool {
	return t.cell == Finish
}

func (t *Token) String() string {
	return fmt.Sprintf("%d%c", t.owner.ID+1, 'a'+rune(t.id))
}

type Player struct {
	ID     int
	Name   string
	tokens []*Token
}

func NewPlayer(id int, name string, tokens int) *Player {
	p := &Player{ID: id, Name: name}
	for i := 0; i < tokens; i++ {
		p.tokens = append(p.tokens, &Token{owner: p, id: i, cell: Start})
	}
	return p
}

func (p *Player) Tokens() []*Token {
	out := make([]*Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

func (p *Player) Token(i int) *Token {
	if i < 0 || i >= len(p.tokens) {
		return nil
	}
	return p.tokens[i]
}

// Done reports whether all of p's tokens are finished.
func (p *Player) Done() bool {
	for _, t := range p.tokens {
		if !t.Finished() {
			return false
		}
	}
	return true
}

func (p *Player) String() string {
	return p.Name
}
