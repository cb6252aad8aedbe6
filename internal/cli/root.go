package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if session := a.ctx.Auth.Session(); session != nil {
		s = session.Name
		if plan := a.ctx.Subscription.Current().Plan; plan != "" {
			s = s + " " + string(plan)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive command loop.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Stillpoint (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "still %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "verify":
			a.Verify(ctx, args)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()

		case "meditate":
			a.LogActivity(ctx, "meditation", args)
		case "workout":
			a.LogActivity(ctx, "workout", args)
		case "journal":
			a.LogActivity(ctx, "journal", args)
		case "stats":
			a.Stats()
		case "recent":
			a.Recent()

		case "checkin":
			a.CheckIn(ctx)
		case "streak":
			a.ShowStreak()

		case "friend":
			a.Friend(ctx, args)
		case "friends":
			a.Friends()
		case "league":
			a.JoinLeague(ctx, args)
		case "leaderboard":
			a.Leaderboard()

		case "upgrade":
			a.Upgrade(ctx)
		case "downgrade":
			a.Downgrade(ctx)
		case "plan":
			a.ShowPlan()

		case "sound":
			a.SoundPrefs(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: meditate, workout, journal, stats, recent, checkin, streak,")
		fmt.Fprintln(a.out, "  friend add|remove, friends, league, leaderboard, upgrade, downgrade, plan,")
		fmt.Fprintln(a.out, "  sound, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, signup, verify <token>, exit")
	}
}

// requireLogin reports whether a session exists, printing a hint otherwise.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}
