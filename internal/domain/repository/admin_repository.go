package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminRepository defines the interface for admin account persistence.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
}
