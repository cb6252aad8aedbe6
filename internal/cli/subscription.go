package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/janovian/stillpoint/internal/subscription"
)

// Upgrade runs a checkout session and records the confirmed premium plan.
func (a *App) Upgrade(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	session := a.ctx.Auth.Session()

	if a.ctx.Subscription.Active(time.Now()) {
		fmt.Fprintln(a.out, "Already on premium.")
		return
	}

	fmt.Fprintln(a.out, "Processing payment...")
	conf, err := a.ctx.Checkout.Purchase(ctx, session.UserID)
	if err != nil {
		fmt.Fprintf(a.out, "Checkout failed: %v\n", err)
		return
	}

	if err := a.ctx.Subscription.SetPremium(ctx, conf.SubscriptionID, conf.ExpiresAt); err != nil {
		fmt.Fprintf(a.out, "Could not activate subscription: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Welcome to premium! Renews %s.\n", conf.ExpiresAt.Format("2006-01-02"))
}

// Downgrade cancels premium and returns to the free plan.
func (a *App) Downgrade(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	a.ctx.Subscription.SetFree(ctx)
	fmt.Fprintln(a.out, "Back on the free plan.")
}

func (a *App) ShowPlan() {
	s := a.ctx.Subscription.Current()
	switch {
	case s.Plan == subscription.PlanPremium && a.ctx.Subscription.Active(time.Now()):
		if s.ExpiresAt != nil {
			fmt.Fprintf(a.out, "Plan: premium (renews %s)\n", s.ExpiresAt.Format("2006-01-02"))
		} else {
			fmt.Fprintln(a.out, "Plan: premium")
		}
	case s.Plan == subscription.PlanPremium:
		fmt.Fprintln(a.out, "Plan: premium (expired)")
	default:
		fmt.Fprintln(a.out, "Plan: free")
	}
}
