// Package social owns friends, the active league, and league points.
// Leaderboard ordering is derived at read time and never stored.
package social

import (
	"context"
	"sort"
	"time"

	"github.com/janovian/stillpoint/internal/common"
	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for social state.
const SnapshotKey = "social-store"

// Profile is a member of a league roster or friends list.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Points      int    `json:"points"`
	StreakDays  int    `json:"streakDays"`
	Level       int    `json:"level"`
}

// League is a time-boxed group leaderboard.
type League struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Roster    []Profile `json:"roster"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// State is the persisted social snapshot.
type State struct {
	UserID        string    `json:"userId,omitempty"`
	CurrentLeague *League   `json:"currentLeague,omitempty"`
	Friends       []Profile `json:"friends"`
}

// Container is the social state container. It is bound to the session's
// user id so point awards land on the right roster entry.
type Container struct {
	state *container.Container[State]
	log   logging.Logger
}

func NewContainer(st store.Store, log logging.Logger) *Container {
	return &Container{
		state: container.New(SnapshotKey, st, log, func() State { return State{} }),
		log:   log.With("container", SnapshotKey),
	}
}

// Restore loads the persisted social state, if any.
func (c *Container) Restore(ctx context.Context) {
	c.state.Restore(ctx)
}

// BindUser sets the id whose roster entry AwardPoints mutates.
func (c *Container) BindUser(ctx context.Context, userID string) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.UserID = userID
		return nil
	})
}

// AddFriend adds a friend by id. Adding an existing friend updates the
// stored profile instead of duplicating the entry.
func (c *Container) AddFriend(ctx context.Context, friend Profile) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		for i, f := range s.Friends {
			if f.ID == friend.ID {
				s.Friends[i] = friend
				return nil
			}
		}
		s.Friends = append(s.Friends, friend)
		return nil
	})
}

// RemoveFriend removes a friend by id. Removing an absent id is a no-op.
func (c *Container) RemoveFriend(ctx context.Context, friendID string) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		filtered := s.Friends[:0]
		for _, f := range s.Friends {
			if f.ID != friendID {
				filtered = append(filtered, f)
			}
		}
		s.Friends = filtered
		return nil
	})
}

// Friends returns a copy of the friends list.
func (c *Container) Friends() []Profile {
	var friends []Profile
	c.state.View(func(s *State) {
		friends = append(friends, s.Friends...)
	})
	return friends
}

// JoinLeague replaces the current league wholesale.
func (c *Container) JoinLeague(ctx context.Context, league League) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.CurrentLeague = &league
		return nil
	})
}

// CurrentLeague returns a copy of the active league, or nil.
func (c *Container) CurrentLeague() *League {
	var league *League
	c.state.View(func(s *State) {
		if s.CurrentLeague != nil {
			copied := *s.CurrentLeague
			copied.Roster = append([]Profile(nil), s.CurrentLeague.Roster...)
			league = &copied
		}
	})
	return league
}

// AwardPoints adds delta to the bound user's entry in the active league's
// roster. With no active league or no matching roster entry it is a silent
// no-op.
func (c *Container) AwardPoints(ctx context.Context, delta int) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		if s.CurrentLeague == nil {
			c.log.Debug(ctx, "points ignored", "reason", common.ErrorNoLeague.Error())
			return nil
		}
		for i, p := range s.CurrentLeague.Roster {
			if p.ID == s.UserID {
				s.CurrentLeague.Roster[i].Points = p.Points + delta
				return nil
			}
		}
		return nil
	})
}

// Leaderboard returns the active league's roster sorted by points,
// descending. Ties keep roster order. Without a league it returns nil.
func (c *Container) Leaderboard() []Profile {
	var board []Profile
	c.state.View(func(s *State) {
		if s.CurrentLeague == nil {
			return
		}
		board = append(board, s.CurrentLeague.Roster...)
	})
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})
	return board
}
