package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanRepository defines the interface for subscription plan persistence.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// List returns plans ordered by priority then creation time.
	List(ctx context.Context, filter entity.PlanFilter, page entity.Page) ([]*entity.Plan, int64, error)

	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
}
