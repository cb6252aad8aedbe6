// Package store implements the persisted snapshot store: each state
// container serializes its full state as one JSON blob under a fixed key,
// written wholesale after every mutation and read back on startup.
package store

import "context"

// Store is the durable key/value medium behind container snapshots.
//
// Contract:
//   - Load returns (nil, nil) when no snapshot exists under key; callers
//     must treat an absent snapshot as "start from the empty state".
//   - Save overwrites the snapshot wholesale; there are no partial writes.
//   - Implementations must be safe for use from a single goroutine at a
//     time per key; the application serializes container mutations.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
