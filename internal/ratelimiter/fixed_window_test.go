package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	now := start
	rl := NewFixedWindowLimiter(2, 5*time.Second)
	rl.now = func() time.Time { return now }

	t.Run("allows up to the limit", func(t *testing.T) {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok)
		ok, _ = rl.Allow("10.0.0.1")
		assert.True(t, ok)

		now = start.Add(2 * time.Second)
		ok, retry := rl.Allow("10.0.0.1")
		assert.False(t, ok)
		assert.Equal(t, 3*time.Second, retry)
	})

	t.Run("keys are independent", func(t *testing.T) {
		ok, _ := rl.Allow("10.0.0.2")
		assert.True(t, ok)
	})

	t.Run("window resets", func(t *testing.T) {
		now = start.Add(5 * time.Second)
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok)
	})

	t.Run("prune drops expired keys", func(t *testing.T) {
		now = start.Add(time.Minute)
		assert.Equal(t, 2, rl.Prune())
	})
}

func TestFixedWindowConcurrent(t *testing.T) {
	rl := NewFixedWindowLimiter(50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("otp:1:7"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
