package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisLimiter shares a fixed window per key across service instances.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client rueidis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow counts the hit and, in the same pipeline, gives the key a TTL if it
// has none. A key left without expiry by an earlier failure is repaired on
// the next call.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := r.prefix + ":" + key

	results := r.client.DoMulti(ctx,
		r.client.B().Incr().Key(redisKey).Build(),
		r.client.B().Pexpire().Key(redisKey).Milliseconds(r.window.Milliseconds()).Nx().Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if err := results[1].Error(); err != nil {
		return false, fmt.Errorf("pexpire %s: %w", redisKey, err)
	}

	return count <= int64(r.limit), nil
}
