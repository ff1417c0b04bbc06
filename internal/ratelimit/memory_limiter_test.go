package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_WindowReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "third request in the window should be rejected")

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "keys are limited independently")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "a new window starts after the window elapses")
}

func TestMemoryLimiter_Concurrent(t *testing.T) {
	const limit = 10
	l := NewMemoryLimiter(limit, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	wg.Add(50)
	for i := 0; i < 50; i++ {
		go func() {
			defer wg.Done()
			ok, _ := l.Allow(context.Background(), "k")
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}

func TestMemoryLimiter_SweepsExpiredBuckets(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }
	l.sweepThreshold = 3

	ctx := context.Background()
	for _, ip := range []string{"a", "b", "c"} {
		_, err := l.Allow(ctx, ip)
		require.NoError(t, err)
	}
	require.Len(t, l.buckets, 3)

	now = now.Add(30 * time.Second)
	_, _ = l.Allow(ctx, "d")
	assert.Len(t, l.buckets, 4, "live buckets are kept")

	now = now.Add(45 * time.Second)
	_, _ = l.Allow(ctx, "e")
	assert.Len(t, l.buckets, 2, "buckets older than the window are dropped")
	assert.Contains(t, l.buckets, "d")
	assert.Contains(t, l.buckets, "e")

	ok, _ := l.Allow(ctx, "d")
	assert.False(t, ok, "sweeping must not reset a live window")
}
