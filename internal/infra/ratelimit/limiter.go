// Package ratelimit counts requests per key in fixed Redis windows.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"courseadmin/config"
	"courseadmin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "rate_limit:"

type redisLimiter struct {
	client redis.Cmdable
}

// NewRedisLimiter uses INCR on a per-window key, arming the expiry on the first hit.
func NewRedisLimiter(client redis.Cmdable) service.RateLimiter {
	return &redisLimiter{client: client}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	if limit <= 0 {
		return true, 0, nil
	}

	redisKey := keyPrefix + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, 0, errors.Wrapf(err, "incr %s", redisKey)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return true, 0, errors.Wrapf(err, "expire %s", redisKey)
		}
	}

	if count <= int64(limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		// key lost its expiry; re-arm so the caller is not locked out forever
		_ = l.client.Expire(ctx, redisKey, window).Err()
		ttl = window
	}

	return false, ttl, nil
}

type noopLimiter struct{}

// NewNoopLimiter allows every request.
func NewNoopLimiter() service.RateLimiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string, int, time.Duration) (bool, time.Duration, error) {
	return true, 0, nil
}

// LimiterParams holds dependencies for RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter connects to Redis when configured and falls back to allowing everything.
func NewRateLimiter(params LimiterParams) service.RateLimiter {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, rate limiting disabled")

		return NewNoopLimiter()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, rate limiter will fail open", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisLimiter(client)
}

// Module provides the rate limiter FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRateLimiter),
)
