package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/janovian/stillpoint/internal/social"
)

func (a *App) Friend(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: friend add|remove <name>")
		return
	}

	name := strings.Join(args[1:], " ")
	id := strings.ToLower(args[1])

	switch args[0] {
	case "add":
		a.ctx.Social.AddFriend(ctx, social.Profile{ID: id, DisplayName: name, Level: 1})
		fmt.Fprintf(a.out, "Added %s.\n", name)
	case "remove":
		a.ctx.Social.RemoveFriend(ctx, id)
		fmt.Fprintf(a.out, "Removed %s.\n", name)
	default:
		fmt.Fprintln(a.out, "Usage: friend add|remove <name>")
	}
}

func (a *App) Friends() {
	if !a.requireLogin() {
		return
	}
	friends := a.ctx.Social.Friends()
	if len(friends) == 0 {
		fmt.Fprintln(a.out, "No friends yet.")
		return
	}
	for _, f := range friends {
		fmt.Fprintf(a.out, "%-16s level %d, %d points\n", f.DisplayName, f.Level, f.Points)
	}
}

// JoinLeague enrolls the user in this week's league alongside a few of the
// demo community members.
func (a *App) JoinLeague(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	session := a.ctx.Auth.Session()

	name := "Bronze League"
	if len(args) > 0 {
		name = strings.Join(args, " ") + " League"
	}

	year, week := time.Now().ISOWeek()
	start := startOfISOWeek(time.Now())
	league := social.League{
		ID:   fmt.Sprintf("%s-%d-w%02d", strings.ToLower(strings.Fields(name)[0]), year, week),
		Name: name,
		Roster: []social.Profile{
			{ID: session.UserID, DisplayName: session.Name, Level: 1},
			{ID: "gleb", DisplayName: "Gleb", Points: 95, StreakDays: 4, Level: 2},
			{ID: "slava", DisplayName: "Slava", Points: 210, StreakDays: 12, Level: 4},
			{ID: "ariadna", DisplayName: "Ariadna", Points: 160, StreakDays: 8, Level: 3},
		},
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
	}

	a.ctx.Social.JoinLeague(ctx, league)
	fmt.Fprintf(a.out, "Joined %s (ends %s).\n", league.Name, league.EndDate.Format("2006-01-02"))
}

func (a *App) Leaderboard() {
	if !a.requireLogin() {
		return
	}
	board := a.ctx.Social.Leaderboard()
	if board == nil {
		fmt.Fprintln(a.out, "Join a league first.")
		return
	}
	for i, p := range board {
		fmt.Fprintf(a.out, "%2d. %-16s %d points\n", i+1, p.DisplayName, p.Points)
	}
}

func startOfISOWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}
