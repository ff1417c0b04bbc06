package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, rueidis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return mr, client
}

func TestRedisLimiter_WindowExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	l := NewRedisLimiter(client, "rl", 2, time.Minute)
	ctx := context.Background()

	results := make([]bool, 0, 3)
	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		results = append(results, ok)
	}
	assert.Equal(t, []bool{true, true, false}, results)

	ttl := mr.TTL("rl:10.0.0.1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	ok, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok, "keys are limited independently")

	mr.FastForward(time.Minute + time.Second)

	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts after the key expires")
}

func TestRedisLimiter_RepairsKeyWithoutTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	l := NewRedisLimiter(client, "p", 2, time.Minute)
	ctx := context.Background()

	// counter left behind without an expiry
	_, err := mr.Incr("p:ip", 1)
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), mr.TTL("p:ip"))

	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, mr.TTL("p:ip"), time.Duration(0))

	ok, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(time.Hour)

	ok, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok, "client must not stay blocked once the window passes")
}

func TestRedisLimiter_ExistingTTLIsKept(t *testing.T) {
	mr, client := newTestRedis(t)
	l := NewRedisLimiter(client, "p", 5, time.Minute)
	ctx := context.Background()

	_, err := l.Allow(ctx, "ip")
	require.NoError(t, err)

	mr.FastForward(40 * time.Second)
	_, err = l.Allow(ctx, "ip")
	require.NoError(t, err)

	assert.LessOrEqual(t, mr.TTL("p:ip"), 20*time.Second, "later hits must not extend the window")
}
