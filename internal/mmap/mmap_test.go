package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapping_OpenReadClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	content := []byte("kdgo mmap smoke test payload")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	m, err := Open(path)
	require.NoError(t, err)

	require.Equal(t, int64(len(content)), m.Size())
	require.Equal(t, content, m.Bytes())

	require.NoError(t, m.Close())
	require.Nil(t, m.Bytes())

	// Close is idempotent.
	require.NoError(t, m.Close())
}

func TestMapping_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, int64(0), m.Size())
	require.Empty(t, m.Bytes())
	require.NoError(t, m.Close())
}

func TestMapping_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
