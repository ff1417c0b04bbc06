package ratelimit

import (
	"context"
	"sync"
	"time"
)

// defaultSweepThreshold is the bucket count above which expired buckets are
// dropped on insert.
const defaultSweepThreshold = 1024

// MemoryLimiter keeps a fixed window per key inside the process.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	sweepThreshold int

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:          limit,
		window:         window,
		now:            time.Now,
		sweepThreshold: defaultSweepThreshold,
		buckets:        make(map[string]*bucket),
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) >= m.window {
		if !ok && len(m.buckets) >= m.sweepThreshold {
			m.sweep(now)
		}
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.limit {
		return false, nil
	}

	b.count++
	return true, nil
}

func (m *MemoryLimiter) sweep(now time.Time) {
	for key, b := range m.buckets {
		if now.Sub(b.start) >= m.window {
			delete(m.buckets, key)
		}
	}
}
