package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndPath(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Store(strings.NewReader("png-bytes"), "logo", "original.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "logo_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	path, err := store.Path(name)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestStore_UniqueNames(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Store(strings.NewReader("a"), "logo", "logo.png")
	require.NoError(t, err)
	second, err := store.Store(strings.NewReader("b"), "logo", "logo.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPath_NotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Path("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPath_StripsTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "..", "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o600))

	store, err := NewFileStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	_, err = store.Path("../secret.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewFileStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
