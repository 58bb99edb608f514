package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	// 1. Put
	name := "data-001.bin"
	data := []byte("hello world, this is a test blob for kdgo")
	require.NoError(t, store.Put(ctx, name, data))

	// 2. Open and ReadAt
	blob, err := store.Open(ctx, name)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(buf, 6) // "world"
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	// 3. Zero-copy access
	raw, err := Bytes(blob)
	require.NoError(t, err)
	require.Equal(t, data, raw)

	// 4. List
	require.NoError(t, store.Put(ctx, "data-002.bin", nil))

	names, err := store.List(ctx, "data-")
	require.NoError(t, err)
	require.Equal(t, []string{"data-001.bin", "data-002.bin"}, names)

	// 5. Delete
	require.NoError(t, store.Delete(ctx, name))
	names, err = store.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"data-002.bin"}, names)

	_, err = store.Open(ctx, name)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, name))
}

func TestLocalStore_PutIsAtomic(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "blob.bin", []byte("v1")))
	require.NoError(t, store.Put(ctx, "blob.bin", []byte("v2-longer")))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, "blob.bin"))
	require.NoError(t, err)
	require.Equal(t, "v2-longer", string(content))
}

func TestLocalStore_ReadAtBoundaries(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "b", []byte("0123456789")))

	blob, err := store.Open(ctx, "b")
	require.NoError(t, err)
	defer blob.Close()

	// Read past the end returns the tail plus EOF.
	buf := make([]byte, 4)
	n, err := blob.ReadAt(buf, 8)
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, 2, n)
	require.Equal(t, "89", string(buf[:n]))

	// Offset beyond the blob is EOF outright.
	_, err = blob.ReadAt(buf, 10)
	require.ErrorIs(t, err, io.EOF)
}
