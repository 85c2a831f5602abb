package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken string        `json:"accessToken"`
	Admin       *entity.Admin `json:"admin"`
}

// CreateAdminInput carries a validated admin account request.
type CreateAdminInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
}

// AuthUsecase defines admin authentication operations
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.Admin, error)

	// EnsureBootstrapAdmin creates the configured superadmin when no admin exists yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}
