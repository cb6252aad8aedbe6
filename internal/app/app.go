// Package app assembles the application: configuration, logging, the local
// state database, the simulated backend collaborators, and all six state
// containers. Everything is constructed once here and threaded explicitly;
// there are no package-level singletons.
package app

import (
	"context"
	"database/sql"

	"github.com/janovian/stillpoint/internal/auth"
	"github.com/janovian/stillpoint/internal/config"
	"github.com/janovian/stillpoint/internal/directory"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/progress"
	"github.com/janovian/stillpoint/internal/social"
	"github.com/janovian/stillpoint/internal/sound"
	"github.com/janovian/stillpoint/internal/store"
	"github.com/janovian/stillpoint/internal/streak"
	"github.com/janovian/stillpoint/internal/subscription"
)

// App is the explicit application context handed to the UI layer.
type App struct {
	Config *config.Config
	Log    logging.Logger

	Store     store.Store
	Directory directory.Directory
	Checkout  subscription.Checkout

	Auth         *auth.Container
	Progress     *progress.Container
	Streak       *streak.Container
	Social       *social.Container
	Sound        *sound.Container
	Subscription *subscription.Container

	db *sql.DB
}

// New builds the application context. When the state database cannot be
// opened the app degrades to an in-memory-only session: snapshots live in a
// memory store and directory-backed actions report the backend unavailable.
// Construction itself never fails on a missing persistence medium.
func New(ctx context.Context, cfg *config.Config, log logging.Logger, sender auth.VerificationSender) *App {
	a := &App{Config: cfg, Log: log}

	db, err := store.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Warn(ctx, "state database unavailable, running in-memory only", "path", cfg.DatabasePath, "error", err)
		a.Store = store.NewMemoryStore()
		a.Directory = directory.Unavailable{}
	} else {
		a.db = db
		a.Store = store.NewSQLiteStore(db)
		dir := directory.NewSQLiteDirectory(db, cfg.SimulatedLatency)
		if err := dir.Seed(ctx); err != nil {
			log.Warn(ctx, "demo account seed failed", "error", err)
		}
		a.Directory = dir
	}

	a.Checkout = subscription.NewSimulatedCheckout(cfg.SimulatedLatency)

	tokens := directory.NewTokenIssuer([]byte(cfg.VerificationSecret), cfg.VerificationTokenValidity)
	a.Auth = auth.NewContainer(a.Store, a.Directory, tokens, sender, log)
	a.Progress = progress.NewContainer(a.Store, log)
	a.Streak = streak.NewContainer(a.Store, log)
	a.Social = social.NewContainer(a.Store, log)
	a.Sound = sound.NewContainer(a.Store, log)
	a.Subscription = subscription.NewContainer(a.Store, log)

	a.restore(ctx)
	return a
}

// restore reloads every container from its persisted snapshot.
func (a *App) restore(ctx context.Context) {
	a.Auth.Restore(ctx)
	a.Progress.Restore(ctx)
	a.Streak.Restore(ctx)
	a.Social.Restore(ctx)
	a.Sound.Restore(ctx)
	a.Subscription.Restore(ctx)
}

// Close releases the state database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
