// Package subscription owns the premium-plan state. Payment verification is
// not this container's job: SetPremium is called only after an external
// checkout confirmation, and expiry is enforced by whoever gates premium
// features, via Active.
package subscription

import (
	"context"
	"time"

	"github.com/janovian/stillpoint/internal/common"
	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for subscription state.
const SnapshotKey = "subscription-store"

// Plan of the current subscription.
type Plan string

const (
	PlanUnset   Plan = ""
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// State is the persisted subscription snapshot. A premium plan always
// carries a subscription id.
type State struct {
	Subscribed     bool       `json:"isSubscribed"`
	Plan           Plan       `json:"plan"`
	SubscriptionID string     `json:"subscriptionId,omitempty"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

// Container is the subscription state container.
type Container struct {
	state *container.Container[State]
}

func NewContainer(st store.Store, log logging.Logger) *Container {
	return &Container{
		state: container.New(SnapshotKey, st, log, func() State { return State{} }),
	}
}

// Restore loads the persisted subscription, if any.
func (c *Container) Restore(ctx context.Context) {
	c.state.Restore(ctx)
}

// Current returns a copy of the subscription state.
func (c *Container) Current() State {
	var s State
	c.state.View(func(st *State) {
		s = *st
		if st.ExpiresAt != nil {
			e := *st.ExpiresAt
			s.ExpiresAt = &e
		}
	})
	return s
}

// SetPremium records a confirmed checkout. The subscription id must be
// present; expiry is stored as-is and not validated against the clock.
func (c *Container) SetPremium(ctx context.Context, subscriptionID string, expiresAt time.Time) error {
	if subscriptionID == "" {
		return common.ErrorNoSubscriber
	}
	return c.state.Mutate(ctx, func(s *State) error {
		s.Subscribed = true
		s.Plan = PlanPremium
		s.SubscriptionID = subscriptionID
		e := expiresAt
		s.ExpiresAt = &e
		return nil
	})
}

// SetFree clears back to the free plan.
func (c *Container) SetFree(ctx context.Context) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.Subscribed = false
		s.Plan = PlanFree
		s.SubscriptionID = ""
		s.ExpiresAt = nil
		return nil
	})
}

// Active reports whether a premium subscription is in force at now.
// This is the external gating check; the container itself never expires
// the stored plan.
func (c *Container) Active(now time.Time) bool {
	s := c.Current()
	if s.Plan != PlanPremium {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}
