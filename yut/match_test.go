package yut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchDefaults(t *testing.T) {
	m, err := NewMatch(Config{})
	require.NoError(t, err)
	assert.Same(t, Traditional, m.Shape())
	require.Len(t, m.Players(), 2)
	for i, p := range m.Players() {
		assert.Equal(t, i, p.ID)
		assert.Len(t, p.Tokens(), 4)
		for _, tok := range p.Tokens() {
			assert.Equal(t, Start, tok.Cell())
			assert.Same(t, p, tok.Owner())
		}
	}
	assert.Equal(t, "Player 1", m.Player(0).Name)
	assert.Same(t, m.Player(0), m.Current())
}

func TestNewMatchNames(t *testing.T) {
	m, err := NewMatch(Config{Names: []string{"ann", "", "cy"}, Tokens: 2})
	require.NoError(t, err)
	require.Len(t, m.Players(), 3)
	assert.Equal(t, "ann", m.Player(0).Name)
	assert.Equal(t, "Player 2", m.Player(1).Name)
	assert.Equal(t, "cy", m.Player(2).Name)
	assert.Equal(t, "1a", m.Player(0).Token(0).String())
	assert.Equal(t, "3b", m.Player(2).Token(1).String())
	assert.Nil(t, m.Player(2).Token(2))
}

func TestNewMatchErrors(t *testing.T) {
	for _, cfg := range []Config{
		{Players: 1},
		{Players: MaxPlayers + 1},
		{Tokens: -1},
		{Tokens: MaxTokens + 1},
		{Players: 2, Names: []string{"a", "b", "c"}},
	} {
		_, err := NewMatch(cfg)
		assert.ErrorIs(t, err, ErrBadConfig, "%+v", cfg)
	}
}

func TestAdvance(t *testing.T) {
	m, err := NewMatch(Config{Players: 3})
	require.NoError(t, err)
	var order []int
	for i := 0; i < 7; i++ {
		order = append(order, m.Advance().ID)
	}
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1}, order)
	assert.Same(t, m.Player(1), m.Current())
}

func TestWinner(t *testing.T) {
	m := newTestMatch(t, Traditional)
	b := m.Board()
	p2 := m.Player(1)
	toks := p2.Tokens()
	for _, tok := range toks[:len(toks)-1] {
		b.Place(tok, Finish)
		_, won := m.Winner()
		assert.False(t, won)
		assert.False(t, p2.Done())
	}
	b.Place(toks[len(toks)-1], Finish)
	w, won := m.Winner()
	require.True(t, won)
	assert.Same(t, p2, w)
	assert.False(t, m.Player(0).Done())
}
