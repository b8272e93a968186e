package oracle

import (
	"context"
	"sync"
	"time"
)

// RateLimiter serializes oracle calls across the whole process: no matter
// which client makes the request, at most one request is started per
// minDelay interval. Callers reserve a slot under the mutex and then
// sleep outside it.
type RateLimiter struct {
	mu       sync.Mutex
	minDelay time.Duration
	next     time.Time
}

func NewRateLimiter(minDelay time.Duration) *RateLimiter {
	return &RateLimiter{
		minDelay: minDelay,
	}
}

func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()

	now := time.Now()
	start := r.next
	if start.Before(now) {
		start = now
	}
	r.next = start.Add(r.minDelay)

	r.mu.Unlock()

	wait := time.Until(start)
	if wait <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
