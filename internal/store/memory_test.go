package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value, err := s.Load(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, value)

	require.NoError(t, s.Save(ctx, "sound-store", []byte(`{"volume":0.5}`)))
	loaded, err := s.Load(ctx, "sound-store")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"volume":0.5}`), loaded)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "k", []byte(`abc`)))
	loaded, err := s.Load(ctx, "k")
	require.NoError(t, err)

	loaded[0] = 'x'

	again, err := s.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte(`abc`), again)
}

func TestMemoryStore_DeleteClearList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Save(ctx, "b", []byte(`2`)))

	require.NoError(t, s.Delete(ctx, "a"))
	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
