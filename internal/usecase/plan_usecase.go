package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlanInput carries a validated plan creation request.
type CreatePlanInput struct {
	Name           string
	Title          string
	Amount         float64
	DurationInDays int
	Priority       int
	Status         entity.Status // defaults to active
	CourseIDs      []string
	EbookIDs       []string
	CouponIDs      []uuid.UUID
}

// UpdatePlanInput carries a validated partial update. Nil fields are left unchanged.
type UpdatePlanInput struct {
	Name           *string
	Title          *string
	Amount         *float64
	DurationInDays *int
	Priority       *int
	Status         *entity.Status
	CourseIDs      []string
	EbookIDs       []string
	CouponIDs      []uuid.UUID
}

// PlanUsecase defines subscription plan management operations
type PlanUsecase interface {
	CreatePlan(ctx context.Context, input *CreatePlanInput) (*entity.Plan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.Plan, error)
	ListPlans(ctx context.Context, filter entity.PlanFilter, page entity.Page) (*entity.PageResult[*entity.Plan], error)
	UpdatePlan(ctx context.Context, id uuid.UUID, input *UpdatePlanInput) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
}
