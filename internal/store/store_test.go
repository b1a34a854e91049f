package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "definition:cat")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "definition:cat", "a feline"))
	v, ok, err := c.Get(ctx, "definition:cat")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a feline", v)

	require.NoError(t, c.Put(ctx, "definition:cat", "a small feline"))
	v, _, err = c.Get(ctx, "definition:cat")
	require.NoError(t, err)
	assert.Equal(t, "a small feline", v)
}

func TestMemoryCache(t *testing.T) {
	exerciseCache(t, NewMemoryCache())
}

func TestMemoryCacheConcurrent(t *testing.T) {
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Put(context.Background(), "k", "v")
			_, _, _ = c.Get(context.Background(), "k")
		}()
	}
	wg.Wait()
	v, ok, _ := c.Get(context.Background(), "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestSQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	c, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseCache(t, c)
	require.NoError(t, c.Close())

	// Reopening must not re-apply migrations and must keep data.
	c, err = OpenSQLite(path)
	require.NoError(t, err)
	defer c.Close()
	v, ok, err := c.Get(context.Background(), "definition:cat")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a small feline", v)

	var applied int
	require.NoError(t, c.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}
