package service

import (
	"courseadmin/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access token claims the API trusts after validation.
type Claims struct {
	AdminID uuid.UUID   `json:"-"`
	Role    entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the admin carrying its role.
	GenerateAccessToken(adminID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
