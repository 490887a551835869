// Package ratelimit throttles clients of the public site with token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket: capacity tokens that refill at a steady rate.
type bucket struct {
	mu         sync.Mutex
	capacity   float64
	perSecond  float64
	tokens     float64
	lastRefill time.Time
}

func newBucket(capacity int, perSecond float64) *bucket {
	return &bucket{
		capacity:   float64(capacity),
		perSecond:  perSecond,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refillLocked tops the bucket up for the time elapsed. Callers hold mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.perSecond
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// take consumes one token if available. It reports the remaining count, when
// the bucket will be full again, and how long until the next token when the
// request was rejected.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	} else {
		retryAfter = time.Duration((1 - b.tokens) / b.perSecond * float64(time.Second))
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		deficit := b.capacity - b.tokens
		reset = now.Add(time.Duration(deficit / b.perSecond * float64(time.Second)))
	}
	return allowed, remaining, reset, retryAfter
}

// Info reports the limit state for one decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter throttles clients independently. Buckets are created on first
// sight of a client and dropped again after an hour of silence.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	lastSeen map[string]time.Time
	config   *Config
	ticker   *time.Ticker
	stop     chan struct{}
}

// NewLimiter builds a limiter from config. A nil config gets the defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = defaultConfig()
	}

	l := &Limiter{
		buckets:  make(map[string]*bucket),
		lastSeen: make(map[string]time.Time),
		config:   config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether one request from clientID goes through.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	allowed, remaining, reset, retryAfter := l.bucketFor(clientID).take()

	return allowed, Info{
		Allowed:    allowed,
		Limit:      l.config.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucketFor(clientID string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastSeen[clientID] = time.Now()
	if b, ok := l.buckets[clientID]; ok {
		return b
	}

	capacity := l.config.Burst
	if capacity <= 0 {
		capacity = l.config.Limit
	}
	b := newBucket(capacity, float64(l.config.Limit)/l.config.Window.Seconds())
	l.buckets[clientID] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.dropIdle(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

// dropIdle removes the buckets of clients not seen since the cutoff.
func (l *Limiter) dropIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for clientID, seen := range l.lastSeen {
		if seen.Before(cutoff) {
			delete(l.buckets, clientID)
			delete(l.lastSeen, clientID)
		}
	}
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
