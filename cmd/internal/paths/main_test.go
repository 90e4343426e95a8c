package paths

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yutboard/yut/yut"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, yut.Traditional, []yut.Cell{yut.Start, yut.Outer(4), yut.Center}, yut.Shortcut('A', 2), false)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"from", "backward", "one", "two", "three", "quad", "penta"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"start", "-", "o1", "o2", "o3", "o4", "A0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"o4", "o3", "A0", "o6", "o7", "o8", "o9"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"center", "A2", "A3", "A4", "o15", "o16", "o17"}, strings.Fields(lines[3]))
}

func TestRenderFull(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, yut.Traditional, []yut.Cell{yut.Shortcut('B', 3)}, yut.NoCell, true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"B3", "center", "B4", "B4,finish", "B4,finish", "B4,finish", "B4,finish"},
		strings.Fields(lines[1]))
}
