package yut

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredefinedShapes(t *testing.T) {
	cases := []struct {
		shape *Shape
		ring  int
		names string
		def   DiagName
		home  DiagName
	}{
		{Traditional, 20, "AB", 'B', 'B'},
		{Pentagon, 25, "ABC", 'B', 'B'},
		{Hexagon, 30, "ABC", 'C', 'C'},
	}
	for _, tc := range cases {
		t.Run(tc.shape.Name(), func(t *testing.T) {
			assert.Equal(t, tc.ring, tc.shape.RingLength())
			assert.Equal(t, tc.def, tc.shape.Default())
			var names string
			for _, d := range tc.shape.Diagonals() {
				names += d.Name.String()
				path := d.Path()
				require.Len(t, path, 7)
				assert.Equal(t, d.EntryCell(), path[0])
				assert.Equal(t, Center, path[3])
				if d.Name == tc.home {
					assert.True(t, d.Home)
					assert.Equal(t, Finish, path[6])
					assert.Equal(t, 0, tc.shape.DistanceToFinish(d.Name))
				} else {
					assert.False(t, d.Home)
					assert.True(t, path[6].OnRing(), "exit %s", path[6])
				}
			}
			assert.Equal(t, tc.names, names)
		})
	}
}

func TestDiagonalPath(t *testing.T) {
	d, ok := Traditional.Diagonal('A')
	require.True(t, ok)
	assert.Equal(t, []Cell{
		Entry('A', 5), Shortcut('A', 1), Shortcut('A', 2), Center,
		Shortcut('A', 3), Shortcut('A', 4), Outer(15),
	}, d.Path())

	c, ok := Pentagon.Diagonal('C')
	require.True(t, ok)
	assert.Equal(t, Outer(0), c.Path()[6])

	_, ok = Traditional.Diagonal('C')
	assert.False(t, ok)
}

func TestDistanceToFinish(t *testing.T) {
	assert.Equal(t, 5, Traditional.DistanceToFinish('A'))
	assert.Equal(t, 0, Traditional.DistanceToFinish('B'))
	assert.Equal(t, 5, Pentagon.DistanceToFinish('A'))
	assert.Equal(t, 1, Pentagon.DistanceToFinish('C'))
	assert.Equal(t, 10, Hexagon.DistanceToFinish('A'))
	assert.Equal(t, 5, Hexagon.DistanceToFinish('B'))

	// the distance is exactly the steps a move from the exit needs
	for _, s := range []*Shape{Traditional, Pentagon, Hexagon} {
		for _, d := range s.Diagonals() {
			if d.Home {
				continue
			}
			n := s.DistanceToFinish(d.Name)
			path, err := Resolve(s, s.RingCell(d.Exit), NoCell, n)
			require.NoError(t, err)
			assert.Equal(t, Finish, path[len(path)-1], "%s %c", s, d.Name)
			if n > 1 {
				path, err = Resolve(s, s.RingCell(d.Exit), NoCell, n-1)
				require.NoError(t, err)
				assert.NotEqual(t, Finish, path[len(path)-1], "%s %c", s, d.Name)
			}
		}
	}
}

func TestRingCell(t *testing.T) {
	assert.Equal(t, Outer(0), Traditional.RingCell(0))
	assert.Equal(t, Outer(4), Traditional.RingCell(4))
	assert.Equal(t, Entry('A', 5), Traditional.RingCell(5))
	assert.Equal(t, Entry('B', 10), Traditional.RingCell(10))
	assert.Equal(t, Outer(15), Traditional.RingCell(15))
	assert.Equal(t, Outer(0), Traditional.RingCell(20))
	assert.Equal(t, Outer(19), Traditional.RingCell(-1))
	assert.Equal(t, Entry('C', 15), Hexagon.RingCell(15))

	d, ok := Pentagon.DiagonalAt(15)
	require.True(t, ok)
	assert.Equal(t, DiagName('C'), d.Name)
	_, ok = Pentagon.DiagonalAt(14)
	assert.False(t, ok)
}

func TestCells(t *testing.T) {
	cells := Traditional.Cells()
	assert.Len(t, cells, 1+20+8+2)
	seen := make(map[Cell]bool)
	for _, c := range cells {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
		assert.True(t, Traditional.Contains(c), "%s", c)
	}
	assert.False(t, Traditional.Contains(Outer(5)))
	assert.False(t, Traditional.Contains(Outer(20)))
	assert.False(t, Traditional.Contains(Shortcut('C', 1)))
	assert.False(t, Traditional.Contains(Shortcut('A', 5)))
	assert.False(t, Traditional.Contains(NoCell))
}

func TestParseCell(t *testing.T) {
	for _, s := range []*Shape{Traditional, Pentagon, Hexagon} {
		for _, c := range s.Cells() {
			got, err := ParseCell(s, c.String())
			if err != nil {
				t.Errorf("%s: parse %q: %v", s, c, err)
				continue
			}
			if got != c {
				t.Errorf("%s: parse %q = %s", s, c, got)
			}
		}
	}
	c, err := ParseCell(Traditional, "o5")
	require.NoError(t, err)
	assert.Equal(t, Entry('A', 5), c)

	for _, bad := range []string{"", "o20", "ox", "C1", "A5", "A12", "banana"} {
		_, err := ParseCell(Traditional, bad)
		assert.ErrorIs(t, err, ErrBadCell, "%q", bad)
	}
}

func TestNewShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  ShapeConfig
	}{
		{"short ring", ShapeConfig{Ring: 2, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 1, Home: true}}}},
		{"no diagonals", ShapeConfig{Ring: 20, Default: 'A'}},
		{"no home", ShapeConfig{Ring: 20, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Exit: 15}}}},
		{"two homes", ShapeConfig{Ring: 20, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Home: true}, {Name: 'B', Entry: 10, Home: true}}}},
		{"duplicate name", ShapeConfig{Ring: 20, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Exit: 15}, {Name: 'A', Entry: 10, Home: true}}}},
		{"shared entry", ShapeConfig{Ring: 20, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Exit: 15}, {Name: 'B', Entry: 5, Home: true}}}},
		{"entry at origin", ShapeConfig{Ring: 20, Default: 'A',
			Diagonals: []Diagonal{{Name: 'A', Entry: 0, Home: true}}}},
		{"exit off ring", ShapeConfig{Ring: 20, Default: 'B',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Exit: 20}, {Name: 'B', Entry: 10, Home: true}}}},
		{"missing default", ShapeConfig{Ring: 20, Default: 'Z',
			Diagonals: []Diagonal{{Name: 'A', Entry: 5, Home: true}}}},
		{"bad name", ShapeConfig{Ring: 20, Default: 'a',
			Diagonals: []Diagonal{{Name: 'a', Entry: 5, Home: true}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Name = tc.name
			_, err := NewShape(tc.cfg)
			if !errors.Is(err, ErrBadShape) {
				t.Fatalf("NewShape: got %v, want ErrBadShape", err)
			}
		})
	}
	assert.Panics(t, func() { MustShape(cases[1].cfg) })
}

func TestShapeByName(t *testing.T) {
	s, err := ShapeByName("Pentagon")
	require.NoError(t, err)
	assert.Same(t, Pentagon, s)
	_, err = ShapeByName("square")
	assert.ErrorIs(t, err, ErrUnknownShape)
	assert.Equal(t, []string{"hexagon", "pentagon", "traditional"}, ShapeNames())
}
