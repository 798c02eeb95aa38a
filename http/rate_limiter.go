package http

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens      int
	windowStart time.Time
}

// RateLimiter allows capacity requests per client within each fixed window.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// Decision describes the outcome of a single Take.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Duration // tiempo hasta que se recargue la ventana
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
		now:         time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	threshold := max(bucketCleanupThreshold, r.window)
	for ip, bucket := range r.clients {
		if now.Sub(bucket.windowStart) > threshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow consumes a token for ip and reports whether the request may proceed.
func (r *RateLimiter) Allow(ip string) bool {
	return r.Take(ip).Allowed
}

func (r *RateLimiter) Take(ip string) Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]

	if !exists {
		bucket = &clientBucket{tokens: r.capacity, windowStart: now}
		r.clients[ip] = bucket
	} else if now.Sub(bucket.windowStart) >= r.window {
		bucket.tokens = r.capacity
		bucket.windowStart = now
	}

	d := Decision{
		Limit: r.capacity,
		Reset: r.window - now.Sub(bucket.windowStart),
	}

	if bucket.tokens <= 0 {
		return d
	}

	bucket.tokens--
	d.Allowed = true
	d.Remaining = bucket.tokens
	return d
}
