package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("login:a@example.com"), "request %d should pass", i)
	}
	assert.False(t, rl.Allow("login:a@example.com"))

	// Other keys are unaffected.
	assert.True(t, rl.Allow("login:b@example.com"))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(10*time.Millisecond, 1)

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("k"))
}
