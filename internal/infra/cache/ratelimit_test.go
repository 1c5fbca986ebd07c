package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiter(client), mr
}

func TestRateLimiter_FirstCallAllowed(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	ok, err := limiter.Allow(context.Background(), "ping:user-1", time.Minute)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_SecondCallWithinWindowRejected(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "ping:user-1", time.Minute)
	require.NoError(t, err)
	require.True(t, first)

	second, err := limiter.Allow(ctx, "ping:user-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestRateLimiter_AllowedAgainAfterWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "ping:user-1", time.Minute)
	require.NoError(t, err)
	require.True(t, first)

	mr.FastForward(2 * time.Minute)

	again, err := limiter.Allow(ctx, "ping:user-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, again)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "ping:user-1", time.Minute)
	require.NoError(t, err)
	require.True(t, first)

	other, err := limiter.Allow(ctx, "ping:user-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, other)
}
