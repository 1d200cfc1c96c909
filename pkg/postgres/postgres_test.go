package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when GIG_MATCHER_TEST_POSTGRES_URL is set
func TestDB_KeyValue(t *testing.T) {
	url := os.Getenv("GIG_MATCHER_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("GIG_MATCHER_TEST_POSTGRES_URL not set")
	}

	ctx := context.Background()
	db, err := NewDB(ctx, url)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.RunMigrations(ctx))
	// Running twice applies nothing new
	require.NoError(t, db.RunMigrations(ctx))

	key := "test_saved_gigs"
	t.Cleanup(func() { db.Delete(ctx, key) })

	require.NoError(t, db.Put(ctx, key, "[]"))
	require.NoError(t, db.Put(ctx, key, `[{"id":"g1"}]`))

	value, ok, err := db.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"g1"}]`, value)

	require.NoError(t, db.Delete(ctx, key))
	_, ok, err = db.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "001_kv.sql", entries[0].Name())
}
