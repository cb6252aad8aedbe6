// Package sound owns playback preferences for meditation soundscapes.
package sound

import (
	"context"

	"github.com/janovian/stillpoint/internal/container"
	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
)

// SnapshotKey is the persisted snapshot key for sound preferences.
const SnapshotKey = "sound-store"

const defaultVolume = 0.5

// State is the persisted sound snapshot.
type State struct {
	Muted  bool    `json:"isMuted"`
	Volume float64 `json:"volume"`
}

// Container is the sound preferences container.
type Container struct {
	state *container.Container[State]
}

func NewContainer(st store.Store, log logging.Logger) *Container {
	return &Container{
		state: container.New(SnapshotKey, st, log, func() State {
			return State{Volume: defaultVolume}
		}),
	}
}

// Restore loads the persisted preferences, if any.
func (c *Container) Restore(ctx context.Context) {
	c.state.Restore(ctx)
}

// Current returns the current preferences.
func (c *Container) Current() State {
	var s State
	c.state.View(func(st *State) { s = *st })
	return s
}

// SetMuted toggles mute.
func (c *Container) SetMuted(ctx context.Context, muted bool) {
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.Muted = muted
		return nil
	})
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (c *Container) SetVolume(ctx context.Context, volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	_ = c.state.Mutate(ctx, func(s *State) error {
		s.Volume = volume
		return nil
	})
}
