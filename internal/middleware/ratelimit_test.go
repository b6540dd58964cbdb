package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "third request exceeds the burst")

	// Limits are tracked per client.
	assert.True(t, rl.Allow("10.0.0.2"))
}
