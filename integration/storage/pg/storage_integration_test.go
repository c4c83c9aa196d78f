package pg_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/core/credential"
	"github.com/hrforge/cvclient/integration/storage/pg"
)

// Integration tests are opt-in and require CVCLIENT_TEST_PG_URL pointing at a
// disposable Postgres database.

func mustOpenTestStorage(t *testing.T) *pg.Storage {
	t.Helper()

	url := os.Getenv("CVCLIENT_TEST_PG_URL")
	if url == "" {
		t.Skip("CVCLIENT_TEST_PG_URL not set; skipping postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pg.Connect(ctx, pg.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		RetryInterval:  time.Second,
		ConnectTimeout: 15 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storage := pg.NewStorage(pool)
	require.NoError(t, storage.EnsureSchema(ctx))
	return storage
}

// testKey namespaces keys per test so parallel tests sharing the table do not
// collide.
func testKey(t *testing.T, role string) string {
	return fmt.Sprintf("%s:%s", t.Name(), role)
}

func TestStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := mustOpenTestStorage(t)
	ctx := context.Background()
	key := testKey(t, "accessToken")

	require.NoError(t, storage.Set(ctx, key, "Bearer abc", time.Time{}))

	value, err := storage.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", value)

	// Upsert replaces the previous entry.
	require.NoError(t, storage.Set(ctx, key, "Bearer def", time.Time{}))

	value, err = storage.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Bearer def", value)

	require.NoError(t, storage.Remove(ctx, key))

	_, err = storage.Get(ctx, key)
	assert.ErrorIs(t, err, credential.ErrNotFound)
}

func TestStorage_MissingKey(t *testing.T) {
	t.Parallel()

	storage := mustOpenTestStorage(t)

	_, err := storage.Get(context.Background(), testKey(t, "never-written"))
	assert.ErrorIs(t, err, credential.ErrNotFound)
}

func TestStorage_ExpiredEntryIsAbsent(t *testing.T) {
	t.Parallel()

	storage := mustOpenTestStorage(t)
	ctx := context.Background()
	key := testKey(t, "accessToken")

	require.NoError(t, storage.Set(ctx, key, "Bearer stale", time.Now().Add(-time.Minute)))

	_, err := storage.Get(ctx, key)
	assert.ErrorIs(t, err, credential.ErrNotFound)
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty connection URL", func(t *testing.T) {
		t.Parallel()

		_, err := pg.Connect(context.Background(), pg.Config{})
		assert.ErrorIs(t, err, pg.ErrEmptyConnectionURL)
	})

	t.Run("malformed connection URL", func(t *testing.T) {
		t.Parallel()

		_, err := pg.Connect(context.Background(), pg.Config{
			ConnectionURL: "://not-a-url",
		})
		assert.ErrorIs(t, err, pg.ErrFailedToParseConnString)
	})
}
