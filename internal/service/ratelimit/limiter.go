package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more request from key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// TokenBucket is an in-process limiter with one bucket per key.
type TokenBucket struct {
	mu         sync.Mutex
	m          map[string]*bucket
	capacity   float64
	refillRate float64
	now        func() time.Time
}

// NewTokenBucket allows bursts of capacity and refills refillPerSec tokens per second.
func NewTokenBucket(capacity, refillPerSec float64) *TokenBucket {
	return &TokenBucket{
		m:          make(map[string]*bucket),
		capacity:   capacity,
		refillRate: refillPerSec,
		now:        time.Now,
	}
}

// Allow returns true if one token can be consumed for key.
func (l *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, capacity: l.capacity, refillRate: l.refillRate, last: now}
		l.m[key] = b
	}
	// refill
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return true, nil
	}
	return false, nil
}
