package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per key in fixed windows that start
// at a key's first request.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]window
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]window),
		limit:   limit,
		window:  w,
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, ok := rl.clients[key]
	if !ok || !now.Before(w.resetAt) {
		rl.clients[key] = window{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}
	if w.count >= rl.limit {
		return false, w.resetAt.Sub(now)
	}

	w.count++
	rl.clients[key] = w
	return true, 0
}

// Prune drops expired windows so idle keys do not accumulate.
func (rl *FixedWindowRateLimiter) Prune() int {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	removed := 0
	for key, w := range rl.clients {
		if !now.Before(w.resetAt) {
			delete(rl.clients, key)
			removed++
		}
	}
	return removed
}
