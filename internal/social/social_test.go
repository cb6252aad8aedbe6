package social

import (
	"context"
	"testing"
	"time"

	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestContainer() (*Container, store.Store) {
	st := store.NewMemoryStore()
	return NewContainer(st, logging.NewNopLogger()), st
}

func sampleLeague() League {
	start := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	return League{
		ID:   "bronze-week-35",
		Name: "Bronze League",
		Roster: []Profile{
			{ID: "nastya", DisplayName: "Nastya", Points: 120, Level: 3},
			{ID: "gleb", DisplayName: "Gleb", Points: 80, Level: 2},
			{ID: "slava", DisplayName: "Slava", Points: 200, Level: 4},
		},
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
	}
}

func TestAddFriend_Idempotent(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.AddFriend(ctx, Profile{ID: "gleb", DisplayName: "Gleb"})
	c.AddFriend(ctx, Profile{ID: "gleb", DisplayName: "Gleb", Points: 10})

	friends := c.Friends()
	require.Len(t, friends, 1)
	require.Equal(t, 10, friends[0].Points)
}

func TestRemoveFriend(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.AddFriend(ctx, Profile{ID: "gleb"})
	c.AddFriend(ctx, Profile{ID: "slava"})

	c.RemoveFriend(ctx, "gleb")
	require.Len(t, c.Friends(), 1)

	// Removing an absent id is a no-op.
	c.RemoveFriend(ctx, "ghost")
	require.Len(t, c.Friends(), 1)
}

func TestAwardPoints_NoLeagueIsNoOp(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.BindUser(ctx, "nastya")
	c.AwardPoints(ctx, 50)

	require.Nil(t, c.CurrentLeague())
	require.Nil(t, c.Leaderboard())
}

func TestAwardPoints_MutatesOnlyBoundUser(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.BindUser(ctx, "nastya")
	c.JoinLeague(ctx, sampleLeague())
	c.AwardPoints(ctx, 50)

	league := c.CurrentLeague()
	require.NotNil(t, league)
	for _, p := range league.Roster {
		switch p.ID {
		case "nastya":
			require.Equal(t, 170, p.Points)
		case "gleb":
			require.Equal(t, 80, p.Points)
		case "slava":
			require.Equal(t, 200, p.Points)
		}
	}
}

func TestAwardPoints_UnboundUserIsNoOp(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.JoinLeague(ctx, sampleLeague())
	c.AwardPoints(ctx, 50)

	for _, p := range c.CurrentLeague().Roster {
		require.NotEqual(t, 170, p.Points)
	}
}

func TestJoinLeague_ReplacesWholesale(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.JoinLeague(ctx, sampleLeague())

	replacement := League{ID: "silver-week-36", Name: "Silver League"}
	c.JoinLeague(ctx, replacement)

	league := c.CurrentLeague()
	require.Equal(t, "silver-week-36", league.ID)
	require.Empty(t, league.Roster)
}

func TestLeaderboard_SortedByPointsDescending(t *testing.T) {
	c, _ := newTestContainer()
	ctx := context.Background()

	c.JoinLeague(ctx, sampleLeague())

	board := c.Leaderboard()
	require.Len(t, board, 3)
	require.Equal(t, "slava", board[0].ID)
	require.Equal(t, "nastya", board[1].ID)
	require.Equal(t, "gleb", board[2].ID)

	// Stored roster order is untouched; ordering is read-time only.
	require.Equal(t, "nastya", c.CurrentLeague().Roster[0].ID)
}

func TestRestore_RoundTrip(t *testing.T) {
	c, st := newTestContainer()
	ctx := context.Background()

	c.BindUser(ctx, "nastya")
	c.JoinLeague(ctx, sampleLeague())
	c.AddFriend(ctx, Profile{ID: "gleb", DisplayName: "Gleb"})
	c.AwardPoints(ctx, 30)

	restored := NewContainer(st, logging.NewNopLogger())
	restored.Restore(ctx)

	require.Equal(t, c.Friends(), restored.Friends())
	require.Equal(t, c.Leaderboard(), restored.Leaderboard())
}
