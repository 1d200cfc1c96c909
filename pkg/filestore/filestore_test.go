package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "gigs.json")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := openTemp(t)

	_, ok, err := store.Get(context.Background(), "saved_gigs")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, path := openTemp(t)

	require.NoError(t, store.Put(ctx, "saved_gigs", `[{"id":"g1"}]`))
	require.NoError(t, store.Put(ctx, "other", "x"))

	value, ok, err := store.Get(ctx, "saved_gigs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"g1"}]`, value)

	require.NoError(t, store.Delete(ctx, "saved_gigs"))
	_, ok, err = store.Get(ctx, "saved_gigs")
	require.NoError(t, err)
	assert.False(t, ok)

	// other keys survive
	value, ok, err = store.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", value)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_DeleteMissing(t *testing.T) {
	store, path := openTemp(t)

	require.NoError(t, store.Delete(context.Background(), "nothing"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	store, path := openTemp(t)
	require.NoError(t, store.Put(ctx, "k", "v"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestStore_CorruptFile(t *testing.T) {
	store, path := openTemp(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse store file")
}

func TestStore_CancelledContext(t *testing.T) {
	store, path := openTemp(t)

	// Hold the lock from a second handle so the store has to wait
	other, err := Open(path)
	require.NoError(t, err)
	defer other.Close()
	require.NoError(t, other.lock.Lock())
	defer other.lock.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Put(ctx, "k", "v")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to lock store")
}
