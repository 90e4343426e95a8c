package yut

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Kind byte

const (
	KindNone Kind = iota
	KindStart
	KindOuter
	KindEntry
	KindShortcut
	KindCenter
	KindFinish
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindStart:
		return "start"
	case KindOuter:
		return "outer"
	case KindEntry:
		return "entry"
	case KindShortcut:
		return "shortcut"
	case KindCenter:
		return "center"
	case KindFinish:
		return "finish"
	default:
		panic(fmt.Sprintf("bad kind: %d", byte(k)))
	}
}

// DiagName names one of a shape's diagonals ('A', 'B', ...).
type DiagName byte

func (d DiagName) String() string {
	return string(rune(d))
}

// Cell is a position on the board. Cells compare with ==; the zero
// Cell means "no cell".
//
// Index is the ring index for Outer and Entry cells. Diag names the
// diagonal of Entry and Shortcut cells, and Slot (1-4) the position
// along a diagonal.
type Cell struct {
	Kind  Kind
	Index int
	Diag  DiagName
	Slot  int
}

var (
	NoCell = Cell{}
	Start  = Cell{Kind: KindStart}
	Center = Cell{Kind: KindCenter}
	Finish = Cell{Kind: KindFinish}
)

func Outer(i int) Cell {
	return Cell{Kind: KindOuter, Index: i}
}

func Entry(d DiagName, i int) Cell {
	return Cell{Kind: KindEntry, Index: i, Diag: d}
}

func Shortcut(d DiagName, slot int) Cell {
	return Cell{Kind: KindShortcut, Diag: d, Slot: slot}
}

func (c Cell) IsZero() bool {
	return c.Kind == KindNone
}

// OnRing reports whether c is one of the outer ring's cells.
func (c Cell) OnRing() bool {
	return c.Kind == KindOuter || c.Kind == KindEntry
}

func (c Cell) String() string {
	switch c.Kind {
	case KindNone:
		return "-"
	case KindStart, KindCenter, KindFinish:
		return c.Kind.String()
	case KindOuter:
		return fmt.Sprintf("o%d", c.Index)
	case KindEntry:
		return fmt.Sprintf("%s0", c.Diag)
	case KindShortcut:
		return fmt.Sprintf("%s%d", c.Diag, c.Slot)
	default:
		panic(fmt.Sprintf("bad cell kind: %d", byte(c.Kind)))
	}
}

var ErrBadCell = errors.New("bad cell")

// ParseCell parses the notation produced by Cell.String. Ring cells
// may be written "o<index>", which resolves to the entry cell when a
// diagonal starts at that index.
func ParseCell(s *Shape, str string) (Cell, error) {
	str = strings.TrimSpace(str)
	switch strings.ToLower(str) {
	case "start":
		return Start, nil
	case "center":
		return Center, nil
	case "finish":
		return Finish, nil
	case "":
		return NoCell, fmt.Errorf("%w: empty", ErrBadCell)
	}
	if str[0] == 'o' {
		i, err := strconv.Atoi(str[1:])
		if err != nil || i < 0 || i >= s.RingLength() {
			return NoCell, fmt.Errorf("%w: %q", ErrBadCell, str)
		}
		return s.RingCell(i), nil
	}
	if len(str) != 2 {
		return NoCell, fmt.Errorf("%w: %q", ErrBadCell, str)
	}
	d, ok := s.Diagonal(DiagName(str[0]))
	if !ok {
		return NoCell, fmt.Errorf("%w: no diagonal %q", ErrBadCell, str[:1])
	}
	switch str[1] {
	case '0':
		return d.EntryCell(), nil
	case '1', '2', '3', '4':
		return Shortcut(d.Name, int(str[1]-'0')), nil
	}
	return NoCell, fmt.Errorf("%w: %q", ErrBadCell, str)
}
