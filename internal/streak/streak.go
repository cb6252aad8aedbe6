// Package streak tracks the calendar-day check-in streak and its reward
// multiplier.
//
// The state machine:
//
//	Fresh  (no check-in yet)      -> first CheckIn sets streak 1
//	Active (lastCheckIn == today) -> CheckIn is a no-op within the same day
//	Active (lastCheckIn == yesterday) -> streak+1, multiplier recomputed
//	gap of two days or more       -> streak resets to 1
//
// The multiplier is always floor(streak/7)+1.
package streak

import (
	"context"
	"time"

	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for streak state.
const SnapshotKey = "streak-store"

// State is the persisted streak snapshot.
type State struct {
	CurrentStreak int        `json:"currentStreak"`
	LastCheckIn   *time.Time `json:"lastCheckIn,omitempty"`
	Multiplier    int        `json:"multiplier"`
}

// Container is the streak state container.
type Container struct {
	state *container.Container[State]
	now   func() time.Time
}

func NewContainer(st store.Store, log logging.Logger) *Container {
	return &Container{
		state: container.New(SnapshotKey, st, log, func() State {
			return State{Multiplier: 1}
		}),
		now: time.Now,
	}
}

// Restore loads the persisted streak, if any.
func (c *Container) Restore(ctx context.Context) {
	c.state.Restore(ctx)
}

// Current returns a copy of the streak state.
func (c *Container) Current() State {
	var s State
	c.state.View(func(st *State) {
		s = *st
		if st.LastCheckIn != nil {
			d := *st.LastCheckIn
			s.LastCheckIn = &d
		}
	})
	return s
}

// CheckIn records today's check-in, advancing or resetting the streak.
// Calling it twice on the same calendar day is idempotent.
func (c *Container) CheckIn(ctx context.Context) State {
	today := startOfDay(c.now())

	_ = c.state.Mutate(ctx, func(s *State) error {
		if s.LastCheckIn == nil {
			s.CurrentStreak = 1
			s.LastCheckIn = &today
			s.Multiplier = 1
			return nil
		}

		last := startOfDay(*s.LastCheckIn)
		switch {
		case last.Equal(today):
			// Already checked in today.
		case last.AddDate(0, 0, 1).Equal(today):
			s.CurrentStreak++
			s.Multiplier = s.CurrentStreak/7 + 1
			s.LastCheckIn = &today
		default:
			s.CurrentStreak = 1
			s.Multiplier = 1
			s.LastCheckIn = &today
		}
		return nil
	})

	return c.Current()
}

// Reset force-transitions back to the no-check-in state.
func (c *Container) Reset(ctx context.Context) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.CurrentStreak = 0
		s.LastCheckIn = nil
		s.Multiplier = 1
		return nil
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
