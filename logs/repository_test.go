package logs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "matches.db"))
	require.NoError(t, err)
	defer repo.Close()

	now := time.Now()
	mk := func(game, seat int) *Match {
		winner := ""
		if seat >= 0 {
			winner = []string{"Player 1", "Player 2"}[seat]
		}
		return &Match{
			Run: "seed-1", Game: game, Timestamp: now, Shape: "traditional",
			Players: 2, Tokens: 4, Winner: winner, WinnerSeat: seat,
			Turns: 30 + game, Throws: 40, Moves: 35, Captures: 3,
		}
	}

	require.NoError(t, repo.InsertMatch(mk(0, 1)))
	require.NoError(t, repo.InsertMatches([]*Match{mk(1, 0), mk(2, 1), mk(3, -1)}))
	require.NoError(t, repo.InsertMatch(&Match{Run: "other", Game: 0, WinnerSeat: 0}))

	ms, err := repo.Matches("seed-1")
	require.NoError(t, err)
	require.Len(t, ms, 4)
	for i, m := range ms {
		assert.Equal(t, i, m.Game)
		assert.Equal(t, 30+i, m.Turns)
		assert.NotZero(t, m.ID)
		assert.WithinDuration(t, now, m.Timestamp, time.Second)
	}
	assert.Equal(t, "Player 2", ms[0].Winner)
	assert.Equal(t, -1, ms[3].WinnerSeat)

	wins, err := repo.SeatWins("seed-1")
	require.NoError(t, err)
	assert.Equal(t, []SeatWins{{Seat: 0, Wins: 1}, {Seat: 1, Wins: 2}}, wins)

	none, err := repo.Matches("missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}
