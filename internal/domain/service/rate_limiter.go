package service

import (
	"context"
	"time"
)

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within limit.
	// retryAfter is the remaining window when the hit is rejected.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}
