// Package container implements the shared runtime for state containers:
// a typed in-memory snapshot bound to one key in the persisted snapshot
// store. Every mutation goes through Mutate, which applies the change and
// then saves the new snapshot wholesale, so individual actions never call
// the store themselves.
package container

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// Container owns one bounded state record of type S.
//
// A store failure during Save is absorbed: the in-memory snapshot stays
// authoritative for the rest of the run and the failure is logged. Worst
// case is loss of the most recent mutations on restart, which matches the
// best-effort durability the snapshot store promises.
type Container[S any] struct {
	key     string
	store   store.Store
	log     logging.Logger
	initial func() S

	mu    sync.Mutex
	state S
}

// New constructs a container bound to the snapshot key. initial produces the
// documented empty state, used before Restore and whenever the persisted
// snapshot is absent or corrupt.
func New[S any](key string, st store.Store, log logging.Logger, initial func() S) *Container[S] {
	return &Container[S]{
		key:     key,
		store:   st,
		log:     log.With("container", key),
		initial: initial,
		state:   initial(),
	}
}

// Key returns the snapshot key the container persists under.
func (c *Container[S]) Key() string { return c.key }

// Restore loads the persisted snapshot and replaces the in-memory state.
// Absent and corrupt snapshots both fall back to the empty state; neither
// is an error to the caller.
func (c *Container[S]) Restore(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.log.Warn(ctx, "snapshot load failed, starting empty", "error", err)
		c.state = c.initial()
		return
	}
	if data == nil {
		c.state = c.initial()
		return
	}

	restored := c.initial()
	if err := json.Unmarshal(data, &restored); err != nil {
		c.log.Warn(ctx, "snapshot corrupt, starting empty", "error", err)
		c.state = c.initial()
		return
	}
	c.state = restored
}

// Mutate applies fn to the snapshot and, if fn succeeds, persists the new
// snapshot. The error returned is fn's error; persistence failures are
// absorbed and logged.
func (c *Container[S]) Mutate(ctx context.Context, fn func(s *S) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := fn(&c.state); err != nil {
		return err
	}
	c.persistLocked(ctx)
	return nil
}

// View runs fn with the current snapshot under the container lock. fn must
// not retain references to mutable parts of the snapshot.
func (c *Container[S]) View(fn func(s *S)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
}

func (c *Container[S]) persistLocked(ctx context.Context) {
	data, err := json.Marshal(c.state)
	if err != nil {
		c.log.Error(ctx, "snapshot marshal failed", "error", err)
		return
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		c.log.Warn(ctx, "snapshot save failed, state is in-memory only", "error", err)
	}
}
