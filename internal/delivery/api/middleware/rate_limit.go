package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"courseadmin/config"
	"courseadmin/internal/delivery/api/response"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const defaultRateLimitWindow = time.Minute

// RateLimitMiddleware throttles sensitive endpoints per client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	cfg     *config.RateLimitConfig
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates the throttling middleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, cfg: cfg.RateLimit, logger: logger}
}

// Login limits login attempts.
func (m *RateLimitMiddleware) Login() echo.MiddlewareFunc {
	limit := 0
	if m.cfg != nil {
		limit = m.cfg.LoginPerWindow
	}

	return m.limit("login", limit)
}

// CouponValidation limits coupon code checks.
func (m *RateLimitMiddleware) CouponValidation() echo.MiddlewareFunc {
	limit := 0
	if m.cfg != nil {
		limit = m.cfg.CouponValidatePerWindow
	}

	return m.limit("coupon_validate", limit)
}

func (m *RateLimitMiddleware) limit(scope string, limit int) echo.MiddlewareFunc {
	window := defaultRateLimitWindow
	if m.cfg != nil && m.cfg.Window > 0 {
		window = m.cfg.Window
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			allowed, retryAfter, err := m.limiter.Allow(ctx, scope+":"+c.RealIP(), limit, window)
			if err != nil {
				// fails open when the limiter store is unreachable
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(max(seconds, 1)))

				return response.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			}

			return next(c)
		}
	}
}
