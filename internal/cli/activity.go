package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/janovian/stillpoint/internal/progress"
)

// LogActivity records a completed session of the given kind. Duration in
// minutes comes from args or an interactive prompt. Completing an activity
// also checks in the daily streak and awards league points scaled by the
// streak multiplier.
func (a *App) LogActivity(ctx context.Context, kind progress.Kind, args []string) {
	if !a.requireLogin() {
		return
	}

	var minutes int
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(a.out, "Usage: %s <minutes>\n", kind)
			return
		}
		minutes = n
	} else {
		n, err := GetPositiveInt(a.reader, "How many minutes?", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		minutes = n
	}

	a.ctx.Progress.AddActivity(ctx, kind, minutes*60)
	state := a.ctx.Streak.CheckIn(ctx)
	points := minutes * state.Multiplier
	a.ctx.Social.AwardPoints(ctx, points)

	fmt.Fprintf(a.out, "Logged %d min of %s. +%d points (x%d streak bonus).\n",
		minutes, kind, points, state.Multiplier)
}

func (a *App) Stats() {
	if !a.requireLogin() {
		return
	}
	stats := a.ctx.Progress.Stats()
	fmt.Fprintf(a.out, "Meditation: %d min total\n", stats.TotalMeditationMinutes)
	fmt.Fprintf(a.out, "Workouts:   %d\n", stats.TotalWorkouts)
	fmt.Fprintf(a.out, "Journal:    %d entries\n", stats.TotalJournalEntries)
	fmt.Fprintf(a.out, "Momentum:   %d\n", stats.StreakDays)
}

func (a *App) Recent() {
	if !a.requireLogin() {
		return
	}
	recent := a.ctx.Progress.Recent(10)
	if len(recent) == 0 {
		fmt.Fprintln(a.out, "No activities yet.")
		return
	}
	for _, act := range recent {
		fmt.Fprintf(a.out, "%s  %-10s %3d min\n",
			act.CompletedAt.Local().Format("2006-01-02 15:04"), act.Kind, act.DurationSeconds/60)
	}
}

func (a *App) CheckIn(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	state := a.ctx.Streak.CheckIn(ctx)
	fmt.Fprintf(a.out, "Checked in. Streak: %d day(s), multiplier x%d.\n",
		state.CurrentStreak, state.Multiplier)
}

func (a *App) ShowStreak() {
	if !a.requireLogin() {
		return
	}
	state := a.ctx.Streak.Current()
	if state.LastCheckIn == nil {
		fmt.Fprintln(a.out, "No check-ins yet.")
		return
	}
	fmt.Fprintf(a.out, "Streak: %d day(s), multiplier x%d, last check-in %s.\n",
		state.CurrentStreak, state.Multiplier, state.LastCheckIn.Format("2006-01-02"))
}
