// Package ratelimiter provides a per-identity token bucket limiter for
// write endpoints. Buckets for idle identities are swept lazily on the
// request path, so the limiter holds no timers or goroutines.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// UserRateLimiter keeps one token bucket per identity string. Each bucket
// starts full and refills at rate tokens per second up to capacity.
// Buckets idle longer than ttl are dropped; the sweep runs at most once
// per ttl, piggybacked on Allow.
type UserRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      float64
	capacity  float64
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

func NewUserRateLimiter(rate, capacity float64, ttl time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Allow consumes one token from the identity's bucket, reporting whether
// the request is within budget.
func (url *UserRateLimiter) Allow(identity string) bool {
	url.mu.Lock()
	defer url.mu.Unlock()

	now := url.now()
	url.sweep(now)

	b, ok := url.buckets[identity]
	if !ok {
		b = &bucket{tokens: url.capacity, lastRefill: now}
		url.buckets[identity] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * url.rate
	if b.tokens > url.capacity {
		b.tokens = url.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// sweep drops buckets idle longer than ttl. Caller holds the mutex.
func (url *UserRateLimiter) sweep(now time.Time) {
	if now.Before(url.nextSweep) {
		return
	}
	for identity, b := range url.buckets {
		if now.Sub(b.lastSeen) > url.ttl {
			delete(url.buckets, identity)
		}
	}
	url.nextSweep = now.Add(url.ttl)
}
