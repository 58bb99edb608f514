package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte("in-memory blob")
	require.NoError(t, store.Put(ctx, "a", data))
	require.NoError(t, store.Put(ctx, "b", []byte("other")))

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	raw, err := Bytes(blob)
	require.NoError(t, err)
	require.Equal(t, data, raw)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, store.Delete(ctx, "a"))
	names, err = store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, names)
}

func TestMemoryStore_OpenIsolatesFromPut(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", []byte("v1")))

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	// Overwrite after open; the open blob keeps the old content.
	require.NoError(t, store.Put(ctx, "a", []byte("v2")))

	raw, err := Bytes(blob)
	require.NoError(t, err)
	require.Equal(t, "v1", string(raw))
}
