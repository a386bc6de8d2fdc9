package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/storage"
)

func TestLocalStore_PutAndRemove(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewLocalStore(root, "media")
	require.NoError(t, err)
	assert.Equal(t, "/media/", store.URLPrefix())

	ref, err := store.Put(context.Background(), "items/a.jpg", []byte("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/media/items/a.jpg", ref)

	content, err := os.ReadFile(filepath.Join(root, "items", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	require.NoError(t, store.Remove(context.Background(), ref))
	_, err = os.Stat(filepath.Join(root, "items", "a.jpg"))
	assert.True(t, os.IsNotExist(err))

	// removing twice is not an error
	assert.NoError(t, store.Remove(context.Background(), ref))
}

func TestLocalStore_StaysInsideRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "media")
	store, err := storage.NewLocalStore(root, "/media/")
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "../../escape.txt", []byte("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/media/escape.txt", ref)
	_, err = os.Stat(filepath.Join(root, "escape.txt"))
	assert.NoError(t, err)

	assert.Error(t, store.Remove(context.Background(), "/elsewhere/escape.txt"))
}
