// Package progress owns the append-only activity log and the aggregate
// stats derived from it.
package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for progress state.
const SnapshotKey = "progress-store"

// Kind of a completed activity.
type Kind string

const (
	KindMeditation Kind = "meditation"
	KindWorkout    Kind = "workout"
	KindJournal    Kind = "journal"
)

// Activity is one completed practice session. Records are append-only and
// never mutated after creation.
type Activity struct {
	ID              string    `json:"id"`
	Kind            Kind      `json:"kind"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

// Stats are the aggregates derived from the full activity list.
//
// StreakDays here is an activity-count heuristic (floor(count/3)),
// deliberately distinct from the calendar-day streak the streak
// container tracks.
type Stats struct {
	TotalMeditationMinutes int
	TotalWorkouts          int
	TotalJournalEntries    int
	StreakDays             int
}

// State is the persisted progress snapshot.
type State struct {
	Activities []Activity `json:"activities"`
}

// Container is the progress state container.
type Container struct {
	state *container.Container[State]
	now   func() time.Time
}

func NewContainer(st store.Store, log logging.Logger) *Container {
	return &Container{
		state: container.New(SnapshotKey, st, log, func() State { return State{} }),
		now:   time.Now,
	}
}

// Restore loads the persisted activity log, if any.
func (p *Container) Restore(ctx context.Context) {
	p.state.Restore(ctx)
}

// AddActivity appends a new record with a fresh id and the current
// timestamp. It never rejects a valid kind/duration.
func (p *Container) AddActivity(ctx context.Context, kind Kind, durationSeconds int) Activity {
	activity := Activity{
		ID:              uuid.NewString(),
		Kind:            kind,
		DurationSeconds: durationSeconds,
		CompletedAt:     p.now().UTC(),
	}
	_ = p.state.Mutate(ctx, func(s *State) error {
		s.Activities = append(s.Activities, activity)
		return nil
	})
	return activity
}

// Stats derives the aggregates from the current activity list.
func (p *Container) Stats() Stats {
	var stats Stats
	p.state.View(func(s *State) {
		meditationSeconds := 0
		for _, a := range s.Activities {
			switch a.Kind {
			case KindMeditation:
				meditationSeconds += a.DurationSeconds
			case KindWorkout:
				stats.TotalWorkouts++
			case KindJournal:
				stats.TotalJournalEntries++
			}
		}
		stats.TotalMeditationMinutes = meditationSeconds / 60
		stats.StreakDays = len(s.Activities) / 3
	})
	return stats
}

// Count returns the number of recorded activities.
func (p *Container) Count() int {
	var n int
	p.state.View(func(s *State) { n = len(s.Activities) })
	return n
}

// Recent returns up to n most recent activities, newest first.
func (p *Container) Recent(n int) []Activity {
	var result []Activity
	p.state.View(func(s *State) {
		for i := len(s.Activities) - 1; i >= 0 && len(result) < n; i-- {
			result = append(result, s.Activities[i])
		}
	})
	return result
}
