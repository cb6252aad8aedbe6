package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/janovian/stillpoint/internal/common"
)

// Confirmation is the result of a completed checkout session.
type Confirmation struct {
	SubscriptionID string
	ExpiresAt      time.Time
}

// Checkout is the external payment collaborator. SetPremium is only called
// with a Confirmation it produced.
type Checkout interface {
	Purchase(ctx context.Context, userID string) (*Confirmation, error)
}

// SimulatedCheckout stands in for the real payment provider: it waits out a
// fixed latency and confirms a month-long subscription with a generated id.
type SimulatedCheckout struct {
	latency time.Duration
	now     func() time.Time
}

func NewSimulatedCheckout(latency time.Duration) *SimulatedCheckout {
	return &SimulatedCheckout{latency: latency, now: time.Now}
}

func (c *SimulatedCheckout) Purchase(ctx context.Context, userID string) (*Confirmation, error) {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	suffix, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription id: %w", err)
	}

	return &Confirmation{
		SubscriptionID: "sub_" + suffix,
		ExpiresAt:      c.now().AddDate(0, 1, 0),
	}, nil
}
