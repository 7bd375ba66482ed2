package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycalc/internal/store"
)

func TestReadFile_MissingIsNil(t *testing.T) {
	b, err := store.ReadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestWriteFile_CreatesDirAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, store.WriteFile(path, []byte("first"), 0o600))
	require.NoError(t, store.WriteFile(path, []byte("second"), 0o600))

	b, err := store.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temp files left behind.
	left, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, left)
}
