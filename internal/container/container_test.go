package container

import (
	"context"
	"errors"
	"testing"

	"github.com/janovian/stillpoint/internal/logging"
	"github.com/janovian/stillpoint/internal/store"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N int `json:"n"`
}

func newCounter(st store.Store) *Container[counter] {
	return New("counter", st, logging.NewNopLogger(), func() counter { return counter{} })
}

// failingStore fails every Save but remembers Loads served from an inner map.
type failingStore struct {
	store.Store
	saveErr error
}

func (f *failingStore) Save(ctx context.Context, key string, value []byte) error {
	return f.saveErr
}

func TestContainer_MutatePersistsSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	c := newCounter(st)
	require.NoError(t, c.Mutate(ctx, func(s *counter) error {
		s.N = 3
		return nil
	}))

	data, err := st.Load(ctx, "counter")
	require.NoError(t, err)
	require.JSONEq(t, `{"n":3}`, string(data))
}

func TestContainer_RestoreRoundTrip(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	first := newCounter(st)
	require.NoError(t, first.Mutate(ctx, func(s *counter) error {
		s.N = 7
		return nil
	}))

	// Simulates a process restart: a fresh container over the same store.
	second := newCounter(st)
	second.Restore(ctx)
	second.View(func(s *counter) {
		require.Equal(t, 7, s.N)
	})
}

func TestContainer_RestoreAbsentUsesEmptyState(t *testing.T) {
	c := newCounter(store.NewMemoryStore())
	c.Restore(context.Background())
	c.View(func(s *counter) {
		require.Equal(t, 0, s.N)
	})
}

func TestContainer_RestoreCorruptUsesEmptyState(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, "counter", []byte(`{not json`)))

	c := newCounter(st)
	c.Restore(ctx)
	c.View(func(s *counter) {
		require.Equal(t, 0, s.N)
	})
}

func TestContainer_MutateErrorLeavesSnapshotUnsaved(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	c := newCounter(st)
	boom := errors.New("boom")
	err := c.Mutate(ctx, func(s *counter) error { return boom })
	require.ErrorIs(t, err, boom)

	data, err := st.Load(ctx, "counter")
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestContainer_SaveFailureIsAbsorbed(t *testing.T) {
	st := &failingStore{Store: store.NewMemoryStore(), saveErr: errors.New("disk gone")}
	ctx := context.Background()

	c := New("counter", st, logging.NewNopLogger(), func() counter { return counter{} })
	require.NoError(t, c.Mutate(ctx, func(s *counter) error {
		s.N = 9
		return nil
	}))

	// In-memory state stays authoritative despite the failed save.
	c.View(func(s *counter) {
		require.Equal(t, 9, s.N)
	})
}
