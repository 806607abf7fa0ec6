package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsUpToBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
		Burst:   3,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1")
		assert.True(t, allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
		Burst:   1,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	// A different client has its own bucket
	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer func() {
		// No cleanup goroutine runs when disabled, but Stop must be safe
		limiter.Stop()
	}()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
	}
}

func TestLimiterRefills(t *testing.T) {
	// 10 tokens per second so a short sleep restores capacity
	limiter := NewLimiter(&Config{
		Enabled: true,
		Limit:   600,
		Window:  time.Minute,
		Burst:   1,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, _ = limiter.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestDropIdle(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, Limit: 10, Window: time.Minute})
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.dropIdle(time.Now().Add(time.Second))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.buckets)
}
