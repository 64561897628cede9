package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookly-be/internal/cache"
)

func setupRedisStore(t *testing.T) Store {
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(mr.Addr())
	require.NoError(t, err)
	return NewRedisStore(c, time.Hour)
}

func testStore(t *testing.T, store Store) {
	ctx := context.Background()

	// Nothing revoked yet
	revoked, err := store.IsRevoked(ctx, "user-1", time.Now())
	require.NoError(t, err)
	assert.False(t, revoked)

	issuedBefore := time.Now().Add(-time.Minute)
	require.NoError(t, store.RevokeAll(ctx, "user-1"))

	// Tokens issued before the revocation are dead
	revoked, err = store.IsRevoked(ctx, "user-1", issuedBefore)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Tokens issued after the revocation are live
	revoked, err = store.IsRevoked(ctx, "user-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, revoked)

	// Other users are untouched
	revoked, err = store.IsRevoked(ctx, "user-2", issuedBefore)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore(t *testing.T) {
	testStore(t, setupRedisStore(t))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}
