package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courseadmin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNoopLimiter_AlwaysAllows(t *testing.T) {
	limiter := NewNoopLimiter()

	for range 100 {
		allowed, retryAfter, err := limiter.Allow(context.Background(), "login:127.0.0.1", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	}
}

func TestNewRateLimiter_WithoutRedisIsNoop(t *testing.T) {
	limiter := NewRateLimiter(LimiterParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.IsType(t, noopLimiter{}, limiter)
}

func TestRedisLimiter_NonPositiveLimitSkipsRedis(t *testing.T) {
	// a nil client would panic if touched
	limiter := &redisLimiter{}

	allowed, _, err := limiter.Allow(context.Background(), "coupon-validate:1.2.3.4", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
