package yut

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// centerIndex is Center's position in every diagonal path.
const centerIndex = 3

const pathLength = 7

var (
	ErrBadShape     = errors.New("bad board shape")
	ErrUnknownShape = errors.New("unknown board shape")
)

// Diagonal is a shortcut from the ring through the center.
// A diagonal either rejoins the ring at Exit, or, if Home is set,
// leads straight to Finish.
type Diagonal struct {
	Name  DiagName
	Entry int
	Exit  int
	Home  bool

	path [pathLength]Cell
}

func (d *Diagonal) EntryCell() Cell {
	return Entry(d.Name, d.Entry)
}

// Path returns [entry, 1, 2, center, 3, 4, exit].
func (d *Diagonal) Path() []Cell {
	out := make([]Cell, pathLength)
	copy(out, d.path[:])
	return out
}

func (d *Diagonal) indexOf(c Cell) int {
	for i, p := range d.path {
		if p == c {
			return i
		}
	}
	return -1
}

type ShapeConfig struct {
	Name      string
	Ring      int
	Default   DiagName
	Diagonals []Diagonal
}

// Shape is an immutable board topology.
type Shape struct {
	name      string
	ring      int
	def       DiagName
	diagonals []Diagonal

	byEntry  map[int]int
	distance map[DiagName]int
	nearest  DiagName
}

func NewShape(cfg ShapeConfig) (*Shape, error) {
	if cfg.Ring < 4 {
		return nil, fmt.Errorf("%w: %s: ring length %d", ErrBadShape, cfg.Name, cfg.Ring)
	}
	if len(cfg.Diagonals) == 0 {
		return nil, fmt.Errorf("%w: %s: no diagonals", ErrBadShape, cfg.Name)
	}
	s := &Shape{
		name:     cfg.Name,
		ring:     cfg.Ring,
		def:      cfg.Default,
		byEntry:  make(map[int]int),
		distance: make(map[DiagName]int),
	}
	homes := 0
	seen := make(map[DiagName]bool)
	for i, d := range cfg.Diagonals {
		if d.Name < 'A' || d.Name > 'Z' {
			return nil, fmt.Errorf("%w: %s: bad diagonal name %q", ErrBadShape, cfg.Name, byte(d.Name))
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate diagonal %s", ErrBadShape, cfg.Name, d.Name)
		}
		seen[d.Name] = true
		if d.Entry <= 0 || d.Entry >= cfg.Ring {
			return nil, fmt.Errorf("%w: %s: diagonal %s enters at %d", ErrBadShape, cfg.Name, d.Name, d.Entry)
		}
		if _, dup := s.byEntry[d.Entry]; dup {
			return nil, fmt.Errorf("%w: %s: two diagonals enter at %d", ErrBadShape, cfg.Name, d.Entry)
		}
		s.byEntry[d.Entry] = i
		if d.Home {
			homes++
		} else if d.Exit < 0 || d.Exit >= cfg.Ring {
			return nil, fmt.Errorf("%w: %s: diagonal %s exits at %d", ErrBadShape, cfg.Name, d.Name, d.Exit)
		}
		s.diagonals = append(s.diagonals, d)
	}
	if homes != 1 {
		return nil, fmt.Errorf("%w: %s: %d home diagonals", ErrBadShape, cfg.Name, homes)
	}
	if !seen[cfg.Default] {
		return nil, fmt.Errorf("%w: %s: default diagonal %s missing", ErrBadShape, cfg.Name, cfg.Default)
	}

	for i := range s.diagonals {
		d := &s.diagonals[i]
		d.path = [pathLength]Cell{
			d.EntryCell(),
			Shortcut(d.Name, 1),
			Shortcut(d.Name, 2),
			Center,
			Shortcut(d.Name, 3),
			Shortcut(d.Name, 4),
			s.exitCell(d),
		}
		if err := s.checkPath(d); err != nil {
			return nil, err
		}
		s.distance[d.Name] = s.exitDistance(d)
	}
	s.nearest = s.diagonals[0].Name
	for _, d := range s.diagonals[1:] {
		if s.distance[d.Name] < s.distance[s.nearest] {
			s.nearest = d.Name
		}
	}
	return s, nil
}

func MustShape(cfg ShapeConfig) *Shape {
	s, err := NewShape(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shape) exitCell(d *Diagonal) Cell {
	if d.Home {
		return Finish
	}
	return s.RingCell(d.Exit)
}

func (s *Shape) checkPath(d *Diagonal) error {
	p := d.path
	if p[0].Kind != KindEntry || p[0].Index != d.Entry {
		return fmt.Errorf("%w: %s: diagonal %s does not start on the ring", ErrBadShape, s.name, d.Name)
	}
	if p[centerIndex] != Center {
		return fmt.Errorf("%w: %s: diagonal %s misses the center", ErrBadShape, s.name, d.Name)
	}
	if last := p[pathLength-1]; !last.OnRing() && last != Finish {
		return fmt.Errorf("%w: %s: diagonal %s ends on %s", ErrBadShape, s.name, d.Name, last)
	}
	return nil
}

// exitDistance counts the ring steps from d's exit to Finish. A
// diagonal exiting onto index 0 is one step from Finish.
func (s *Shape) exitDistance(d *Diagonal) int {
	switch {
	case d.Home:
		return 0
	case d.Exit == 0:
		return 1
	default:
		return s.ring - d.Exit
	}
}

func (s *Shape) Name() string      { return s.name }
func (s *Shape) RingLength() int   { return s.ring }
func (s *Shape) Default() DiagName { return s.def }

func (s *Shape) String() string { return s.name }

func (s *Shape) Diagonals() []Diagonal {
	out := make([]Diagonal, len(s.diagonals))
	copy(out, s.diagonals)
	return out
}

func (s *Shape) Diagonal(name DiagName) (Diagonal, bool) {
	if d := s.diagonal(name); d != nil {
		return *d, true
	}
	return Diagonal{}, false
}

func (s *Shape) diagonal(name DiagName) *Diagonal {
	for i := range s.diagonals {
		if s.diagonals[i].Name == name {
			return &s.diagonals[i]
		}
	}
	return nil
}

// DiagonalAt returns the diagonal entered at ring index i, if any.
func (s *Shape) DiagonalAt(i int) (Diagonal, bool) {
	if di, ok := s.byEntry[i]; ok {
		return s.diagonals[di], true
	}
	return Diagonal{}, false
}

// RingCell returns the cell at ring index i: the entry cell when a
// diagonal starts there, an Outer cell otherwise.
func (s *Shape) RingCell(i int) Cell {
	i = ((i % s.ring) + s.ring) % s.ring
	if di, ok := s.byEntry[i]; ok {
		return s.diagonals[di].EntryCell()
	}
	return Outer(i)
}

func (s *Shape) Ring() []Cell {
	out := make([]Cell, s.ring)
	for i := range out {
		out[i] = s.RingCell(i)
	}
	return out
}

// Contains reports whether c is a cell of this shape.
func (s *Shape) Contains(c Cell) bool {
	switch c.Kind {
	case KindStart, KindCenter, KindFinish:
		return c == Cell{Kind: c.Kind}
	case KindOuter:
		_, entry := s.byEntry[c.Index]
		return c.Index >= 0 && c.Index < s.ring && !entry && c == Outer(c.Index)
	case KindEntry:
		d := s.diagonal(c.Diag)
		return d != nil && d.EntryCell() == c
	case KindShortcut:
		return s.diagonal(c.Diag) != nil && c.Slot >= 1 && c.Slot <= 4 && c == Shortcut(c.Diag, c.Slot)
	}
	return false
}

// Cells lists every addressable cell: Start, the ring, the shortcut
// slots, Center and Finish.
func (s *Shape) Cells() []Cell {
	out := []Cell{Start}
	out = append(out, s.Ring()...)
	for _, d := range s.diagonals {
		for slot := 1; slot <= 4; slot++ {
			out = append(out, Shortcut(d.Name, slot))
		}
	}
	return append(out, Center, Finish)
}

// DistanceToFinish is the number of ring steps from the named
// diagonal's exit to Finish; zero for the home diagonal.
func (s *Shape) DistanceToFinish(name DiagName) int {
	d, ok := s.distance[name]
	if !ok {
		panic(fmt.Sprintf("no diagonal %s in %s", name, s.name))
	}
	return d
}

var (
	Traditional = MustShape(ShapeConfig{
		Name:    "traditional",
		Ring:    20,
		Default: 'B',
		Diagonals: []Diagonal{
			{Name: 'A', Entry: 5, Exit: 15},
			{Name: 'B', Entry: 10, Home: true},
		},
	})
	Pentagon = MustShape(ShapeConfig{
		Name:    "pentagon",
		Ring:    25,
		Default: 'B',
		Diagonals: []Diagonal{
			{Name: 'A', Entry: 5, Exit: 20},
			{Name: 'B', Entry: 10, Home: true},
			{Name: 'C', Entry: 15, Exit: 0},
		},
	})
	Hexagon = MustShape(ShapeConfig{
		Name:    "hexagon",
		Ring:    30,
		Default: 'C',
		Diagonals: []Diagonal{
			{Name: 'A', Entry: 5, Exit: 20},
			{Name: 'B', Entry: 10, Exit: 25},
			{Name: 'C', Entry: 15, Home: true},
		},
	})
)

var shapes = map[string]*Shape{
	Traditional.name: Traditional,
	Pentagon.name:    Pentagon,
	Hexagon.name:     Hexagon,
}

func ShapeByName(name string) (*Shape, error) {
	if s, ok := shapes[strings.ToLower(name)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownShape, name, strings.Join(ShapeNames(), ", "))
}

func ShapeNames() []string {
	var out []string
	for n := range shapes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
