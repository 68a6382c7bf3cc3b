package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendMessageLimit(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("u1", "send_message")
		assert.True(t, allowed, "send %d should be within the limit", i+1)
	}

	allowed, wait := limiter.Allow("u1", "send_message")
	assert.False(t, allowed)
	assert.Greater(t, wait.Seconds(), 0.0)
}

func TestLimitsAreScopedPerUser(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 20; i++ {
		limiter.Allow("u1", "send_message")
	}

	allowed, _ := limiter.Allow("u2", "send_message")
	assert.True(t, allowed, "one user's burst must not starve another")
}

func TestCreateConversationLimitIsSeparate(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 20; i++ {
		limiter.Allow("u1", "send_message")
	}

	allowed, _ := limiter.Allow("u1", "create_conversation")
	assert.True(t, allowed, "actions are limited independently")
}
