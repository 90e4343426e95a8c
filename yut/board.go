package yut

// Board tracks where every token stands. Start is not stored: a
// token whose cell is Start is in its owner's pool.
type Board struct {
	shape    *Shape
	cells    map[Cell][]*Token
	finished map[*Token]struct{}
}

func NewBoard(s *Shape) *Board {
	return &Board{
		shape:    s,
		cells:    make(map[Cell][]*Token),
		finished: make(map[*Token]struct{}),
	}
}

func (b *Board) Shape() *Shape { return b.shape }

// Place moves t onto dest, sending any other player's tokens there
// back to Start. It reports whether anything was captured.
func (b *Board) Place(t *Token, dest Cell) bool {
	return len(b.place(t, dest)) > 0
}

func (b *Board) place(t *Token, dest Cell) []*Token {
	b.lift(t)
	switch dest {
	case Finish:
		b.finished[t] = struct{}{}
		t.cell = Finish
		t.context = NoCell
		return nil
	case Start:
		t.cell = Start
		t.context = NoCell
		return nil
	}
	var captured, stay []*Token
	for _, o := range b.cells[dest] {
		if o.owner != t.owner {
			o.cell = Start
			o.context = NoCell
			captured = append(captured, o)
		} else {
			stay = append(stay, o)
		}
	}
	b.cells[dest] = append(stay, t)
	t.cell = dest
	return captured
}

func (b *Board) lift(t *Token) {
	switch t.cell {
	case Start:
		return
	case Finish:
		delete(b.finished, t)
		return
	}
	ts := b.cells[t.cell]
	for i, o := range ts {
		if o == t {
			ts = append(ts[:i:i], ts[i+1:]...)
			break
		}
	}
	if len(ts) == 0 {
		delete(b.cells, t.cell)
	} else {
		b.cells[t.cell] = ts
	}
}

// Set puts t on c with the given path context without capturing.
// It is meant for setting up positions.
func (b *Board) Set(t *Token, c, context Cell) {
	b.lift(t)
	switch c {
	case Start:
		context = NoCell
	case Finish:
		context = NoCell
		b.finished[t] = struct{}{}
	default:
		b.cells[c] = append(b.cells[c], t)
	}
	t.cell = c
	t.context = context
}

// Occupants returns the tokens on c in carry order.
func (b *Board) Occupants(c Cell) []*Token {
	ts := b.cells[c]
	out := make([]*Token, len(ts))
	copy(out, ts)
	return out
}

// Group returns the tokens that move together with t: t alone when it
// is in Start, otherwise every token of t's owner on t's cell.
func (b *Board) Group(t *Token) []*Token {
	if t.cell == Start || t.cell == Finish {
		return []*Token{t}
	}
	var out []*Token
	for _, o := range b.cells[t.cell] {
		if o.owner == t.owner {
			out = append(out, o)
		}
	}
	return out
}

func (b *Board) Finished() []*Token {
	var out []*Token
	for t := range b.finished {
		out = append(out, t)
	}
	return out
}

// Step describes one applied move.
type Step struct {
	Token    *Token
	Group    []*Token
	From, To Cell
	Path     []Cell
	Captured []*Token
}

// Move carries t's group along path. The group lands on the path's
// last cell and shares the path context derived from t's move.
func (b *Board) Move(t *Token, path []Cell) Step {
	if len(path) == 0 {
		panic("move along an empty path")
	}
	st := Step{
		Token: t,
		Group: b.Group(t),
		From:  t.cell,
		To:    path[len(path)-1],
		Path:  path,
	}
	ctx := DeriveContext(t.context, t.cell, path)
	for _, m := range st.Group {
		st.Captured = append(st.Captured, b.place(m, st.To)...)
		m.context = ctx
	}
	return st
}
