package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a minimum interval between repeated actions by the
// same actor. State lives in Redis so the limit holds across instances.
type RateLimiter struct {
	client *redis.Client
}

// NewRateLimiter builds a rate limiter on top of the shared Redis client.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow reports whether the action identified by key may proceed. The first
// caller within a window wins; everyone else is rejected until the key
// expires.
func (r *RateLimiter) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, time.Now().Unix(), window).Result()
	if err != nil {
		return false, errors.Wrap(err, "rate limiter setnx")
	}

	return ok, nil
}
