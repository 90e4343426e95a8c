package selfplay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/yutboard/yut/logs"
	"github.com/yutboard/yut/yut"
	"github.com/yutboard/yut/yuttest"
)

func simulate(t *testing.T, threads int, shape *yut.Shape) *Stats {
	st, err := Simulate(context.Background(), &Config{
		Games:   12,
		Threads: threads,
		Seed:    7,
		Cutoff:  1000,
		Check:   true,
		Match:   yut.Config{Shape: shape, Players: 3, Tokens: 3},
	})
	require.NoError(t, err)
	return st
}

func TestSimulate(t *testing.T) {
	for _, s := range []*yut.Shape{yut.Traditional, yut.Pentagon, yut.Hexagon} {
		st := simulate(t, 3, s)
		assert.Equal(t, 12, st.Games)
		require.Len(t, st.Wins, 3)
		wins := 0
		for _, w := range st.Wins {
			wins += w
		}
		assert.Equal(t, st.Games, wins+st.Cutoff)

		for _, r := range st.Results {
			won := 0
			for _, m := range r.Moves {
				if m.Won {
					won++
				}
				assert.NotEqual(t, yut.Start, m.To)
			}
			if r.WinnerSeat >= 0 {
				assert.Equal(t, 1, won, "game %d", r.Game)
				last := r.Moves[len(r.Moves)-1]
				assert.True(t, last.Won)
				assert.Equal(t, yut.Finish, last.To)
				assert.Equal(t, r.WinnerSeat, last.Seat)
			} else {
				assert.Zero(t, won)
			}
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := simulate(t, 1, yut.Traditional)
	b := simulate(t, 4, yut.Traditional)
	require.Len(t, b.Results, len(a.Results))
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Winner, b.Results[i].Winner)
		assert.Equal(t, a.Results[i].Moves, b.Results[i].Moves)
	}
	assert.Equal(t, a.Wins, b.Wins)
}

func TestCheckBoard(t *testing.T) {
	m := yuttest.Match(yut.Config{}, "1a=o3 1b=o3 2a=A2")
	assert.NoError(t, checkBoard(m))

	m = yuttest.Match(yut.Config{}, "1a=o3 2a=o3")
	assert.ErrorContains(t, checkBoard(m), "holds tokens of")
}

func TestExports(t *testing.T) {
	st := simulate(t, 2, yut.Traditional)
	dir := t.TempDir()

	records := moveRecords("7", st.Results)
	require.Len(t, records, st.Moves)
	path := filepath.Join(dir, "moves.parquet")
	require.NoError(t, WriteMoves(path, records, 2))

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(MoveRecord), 2)
	require.NoError(t, err)
	defer pr.ReadStop()
	require.Equal(t, int64(len(records)), pr.GetNumRows())
	got := make([]MoveRecord, 5)
	require.NoError(t, pr.Read(&got))
	assert.Equal(t, records[:5], got)

	c := &Command{index: filepath.Join(dir, "index.db"), players: 3, tokens: 3}
	require.NoError(t, c.writeIndex("7", yut.Traditional, st))
	repo, err := logs.Open(c.index)
	require.NoError(t, err)
	defer repo.Close()
	ms, err := repo.Matches("7")
	require.NoError(t, err)
	require.Len(t, ms, st.Games)
	for i, m := range ms {
		assert.Equal(t, st.Results[i].Turns, m.Turns)
		assert.Equal(t, st.Results[i].WinnerSeat, m.WinnerSeat)
	}
}
