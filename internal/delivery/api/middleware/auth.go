package middleware

import (
	"log/slog"
	"strings"

	"courseadmin/internal/delivery/api/response"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and role checks.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the actor on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "Invalid or expired token")
		}

		actor := &deliverycontext.Actor{AdminID: claims.AdminID, Role: claims.Role}
		ctx := deliverycontext.WithActor(c.Request().Context(), actor)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("admin_id", actor.AdminID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects actors whose role is not in allowed.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	roles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := deliverycontext.GetActor(c.Request().Context())
			if actor == nil {
				return response.Unauthorized(c, "Authentication required")
			}

			if !roles.Contains(actor.Role) {
				return response.Forbidden(c, "Permission denied: requires one of roles "+strings.Join(roles.ToStrings(), ", "))
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated actor of the request.
func GetActor(c echo.Context) (*deliverycontext.Actor, bool) {
	actor := deliverycontext.GetActor(c.Request().Context())

	return actor, actor != nil
}
