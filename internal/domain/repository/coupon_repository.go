package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponRepository defines the interface for coupon persistence.
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindByCode looks up a coupon by its normalized code regardless of state.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	List(ctx context.Context, filter entity.CouponFilter, page entity.Page) ([]*entity.Coupon, int64, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindExistingIDs returns the subset of ids that exist.
	FindExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}
