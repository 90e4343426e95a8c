package yut

import (
	"errors"
	"fmt"
)

var (
	ErrZeroSteps         = errors.New("zero-step move")
	ErrBackwardFromStart = errors.New("cannot move backward from start")
	ErrNoMove            = errors.New("token cannot move")
)

// Resolve computes the cells a token at origin passes through when it
// moves steps cells (negative steps move backward). context is the
// token's path context, or NoCell. The returned path excludes origin
// and ends at the destination, or at Finish when the move leaves the
// board.
//
// Leaving Start is a placement rather than a walk, so a path from
// Start always has exactly one cell.
func Resolve(s *Shape, origin, context Cell, steps int) ([]Cell, error) {
	if steps == 0 {
		return nil, ErrZeroSteps
	}
	switch origin.Kind {
	case KindStart:
		if steps < 0 {
			return nil, ErrBackwardFromStart
		}
		if steps >= s.ring {
			return []Cell{Finish}, nil
		}
		return []Cell{s.RingCell(steps)}, nil
	case KindNone, KindFinish:
		return nil, fmt.Errorf("%w: from %s", ErrNoMove, origin)
	}
	if !s.Contains(origin) {
		return nil, fmt.Errorf("%w: %s is not on the %s board", ErrNoMove, origin, s.name)
	}
	if steps > 0 {
		return s.forward(origin, context, steps), nil
	}
	return s.backward(origin, context, -steps), nil
}

func (s *Shape) forward(origin, context Cell, n int) []Cell {
	out := make([]Cell, 0, n)
	switch origin.Kind {
	case KindOuter:
		return s.ringForward(origin.Index, n, out)
	case KindEntry, KindShortcut:
		d := s.diagonal(origin.Diag)
		return s.diagForward(d, d.indexOf(origin), n, out)
	case KindCenter:
		d := s.chooseDiagonal(context, true)
		return s.diagForward(d, centerIndex, n, out)
	}
	panic(fmt.Sprintf("forward from %s", origin))
}

// ringForward walks the ring from index i. A lap ends at index ring, so
// stepping past ring-1 leaves the board, as does any step from index 0.
func (s *Shape) ringForward(i, n int, out []Cell) []Cell {
	for ; n > 0; n-- {
		if i == 0 || i+1 == s.ring {
			return append(out, Finish)
		}
		i++
		out = append(out, s.RingCell(i))
	}
	return out
}

func (s *Shape) diagForward(d *Diagonal, at, n int, out []Cell) []Cell {
	for ; n > 0; n-- {
		at++
		if at == pathLength-1 {
			if d.Home {
				return append(out, Finish)
			}
			out = append(out, d.path[at])
			return s.ringForward(d.Exit, n-1, out)
		}
		out = append(out, d.path[at])
	}
	return out
}

func (s *Shape) backward(origin, context Cell, n int) []Cell {
	out := make([]Cell, 0, n)
	switch origin.Kind {
	case KindOuter, KindEntry:
		return s.ringBackward(origin.Index, n, out)
	case KindShortcut:
		d := s.diagonal(origin.Diag)
		return s.diagBackward(d, d.indexOf(origin), n, out)
	case KindCenter:
		d := s.chooseDiagonal(context, false)
		return s.diagBackward(d, centerIndex, n, out)
	}
	panic(fmt.Sprintf("backward from %s", origin))
}

func (s *Shape) ringBackward(i, n int, out []Cell) []Cell {
	for ; n > 0; n-- {
		i = (i - 1 + s.ring) % s.ring
		out = append(out, s.RingCell(i))
	}
	return out
}

func (s *Shape) diagBackward(d *Diagonal, at, n int, out []Cell) []Cell {
	for ; n > 0; n-- {
		at--
		out = append(out, d.path[at])
		if at == 0 {
			return s.ringBackward(d.Entry, n-1, out)
		}
	}
	return out
}

// ChooseDiagonal picks the diagonal a token at Center follows. In
// order: the diagonal of a Shortcut context; the diagonal whose entry
// cell is the context; the diagonal entered at an Outer context's
// index. Without a usable context a forward move takes the shape's
// default diagonal and a backward move the one nearest Finish.
func (s *Shape) ChooseDiagonal(context Cell, forward bool) DiagName {
	return s.chooseDiagonal(context, forward).Name
}

func (s *Shape) chooseDiagonal(context Cell, forward bool) *Diagonal {
	switch context.Kind {
	case KindShortcut:
		if d := s.diagonal(context.Diag); d != nil {
			return d
		}
	case KindEntry:
		for i := range s.diagonals {
			if s.diagonals[i].EntryCell() == context {
				return &s.diagonals[i]
			}
		}
	case KindOuter:
		if di, ok := s.byEntry[context.Index]; ok {
			return &s.diagonals[di]
		}
	}
	if forward {
		return s.diagonal(s.def)
	}
	return s.diagonal(s.nearest)
}

// DeriveContext computes a token's path context after it moved from
// origin along path, given its context before the move.
//
// Entering Center from a diagonal, or leaving Center onto one,
// records that diagonal's slot-2 cell. Landing on the ring, Start or
// Finish clears the context. Other steps keep it.
func DeriveContext(old, origin Cell, path []Cell) Cell {
	ctx := old
	prev := origin
	for _, c := range path {
		switch {
		case c.OnRing(), c == Start, c == Finish:
			ctx = NoCell
		case c == Center && prev.Kind == KindShortcut:
			ctx = Shortcut(prev.Diag, 2)
		case c.Kind == KindShortcut && prev == Center:
			ctx = Shortcut(c.Diag, 2)
		}
		prev = c
	}
	return ctx
}
