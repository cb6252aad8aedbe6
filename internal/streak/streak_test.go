package streak

import (
	"context"
	"testing"
	"time"

	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestContainer(now time.Time) (*Container, store.Store) {
	st := store.NewMemoryStore()
	c := NewContainer(st, logging.NewNopLogger())
	c.now = func() time.Time { return now }
	return c, st
}

func day(daysAgo int) time.Time {
	base := time.Date(2026, time.August, 30, 15, 4, 5, 0, time.UTC)
	return base.AddDate(0, 0, -daysAgo)
}

func TestCheckIn_Fresh(t *testing.T) {
	c, _ := newTestContainer(day(0))

	s := c.CheckIn(context.Background())
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 1, s.Multiplier)
	require.NotNil(t, s.LastCheckIn)
	require.Equal(t, startOfDay(day(0)), *s.LastCheckIn)
}

func TestCheckIn_SameDayIdempotent(t *testing.T) {
	c, _ := newTestContainer(day(0))
	ctx := context.Background()

	first := c.CheckIn(ctx)
	second := c.CheckIn(ctx)
	require.Equal(t, first, second)
	require.Equal(t, 1, second.CurrentStreak)
}

func TestCheckIn_YesterdayContinuesStreak(t *testing.T) {
	c, _ := newTestContainer(day(0))
	ctx := context.Background()

	yesterday := startOfDay(day(1))
	require.NoError(t, c.state.Mutate(ctx, func(s *State) error {
		s.CurrentStreak = 6
		s.LastCheckIn = &yesterday
		s.Multiplier = 1
		return nil
	}))

	s := c.CheckIn(ctx)
	require.Equal(t, 7, s.CurrentStreak)
	require.Equal(t, 2, s.Multiplier) // floor(7/7)+1
}

func TestCheckIn_MultiplierGrowsEverySevenDays(t *testing.T) {
	c, _ := newTestContainer(day(0))
	ctx := context.Background()

	yesterday := startOfDay(day(1))
	require.NoError(t, c.state.Mutate(ctx, func(s *State) error {
		s.CurrentStreak = 13
		s.LastCheckIn = &yesterday
		s.Multiplier = 2
		return nil
	}))

	s := c.CheckIn(ctx)
	require.Equal(t, 14, s.CurrentStreak)
	require.Equal(t, 3, s.Multiplier)
}

func TestCheckIn_GapResets(t *testing.T) {
	c, _ := newTestContainer(day(0))
	ctx := context.Background()

	threeDaysAgo := startOfDay(day(3))
	require.NoError(t, c.state.Mutate(ctx, func(s *State) error {
		s.CurrentStreak = 12
		s.LastCheckIn = &threeDaysAgo
		s.Multiplier = 2
		return nil
	}))

	s := c.CheckIn(ctx)
	require.Equal(t, 1, s.CurrentStreak)
	require.Equal(t, 1, s.Multiplier)
	require.Equal(t, startOfDay(day(0)), *s.LastCheckIn)
}

func TestReset(t *testing.T) {
	c, _ := newTestContainer(day(0))
	ctx := context.Background()

	c.CheckIn(ctx)
	c.Reset(ctx)

	s := c.Current()
	require.Equal(t, 0, s.CurrentStreak)
	require.Nil(t, s.LastCheckIn)
	require.Equal(t, 1, s.Multiplier)
}

func TestRestore_RoundTrip(t *testing.T) {
	c, st := newTestContainer(day(0))
	ctx := context.Background()

	c.CheckIn(ctx)

	restored := NewContainer(st, logging.NewNopLogger())
	restored.Restore(ctx)
	require.Equal(t, c.Current(), restored.Current())
}

func TestEmptyStateMultiplierIsOne(t *testing.T) {
	c, _ := newTestContainer(day(0))
	s := c.Current()
	require.Equal(t, 0, s.CurrentStreak)
	require.Equal(t, 1, s.Multiplier)
}
