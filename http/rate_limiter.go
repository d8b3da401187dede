package http

import (
	"sync"
	"time"
)

const (
	bucketIdleThreshold = 1 * time.Hour
	cleanupInterval     = 30 * time.Minute
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

func (b *bucket) refill(capacity int, refillDur time.Duration, now time.Time) {
	if now.Sub(b.lastRefill) >= refillDur {
		b.tokens = capacity
		b.lastRefill = now
	}
}

// RateLimiter is a per-client token bucket. Buckets idle for more than
// bucketIdleThreshold are dropped by a background sweep.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	buckets   map[string]*bucket
	stop      chan struct{}
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		buckets:   make(map[string]*bucket),
		stop:      make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for client, b := range r.buckets {
		if now.Sub(b.lastRefill) > bucketIdleThreshold {
			delete(r.buckets, client)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stop)
}

// Allow reports whether the client may make another request, consuming
// a token when it may.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	b, exists := r.buckets[client]
	if !exists {
		r.buckets[client] = &bucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	b.refill(r.capacity, r.refillDur, now)

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}
