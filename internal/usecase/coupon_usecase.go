package usecase

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCouponInput carries a validated coupon creation request.
type CreateCouponInput struct {
	Code                string
	Description         string
	Type                entity.DiscountType
	DiscountValue       float64
	UsageLimitPerUser   *int // defaults to 1
	StartDate           time.Time
	ExpireDate          time.Time
	IsActive            *bool
	ApplicableCourseIDs []string
}

// UpdateCouponInput carries a validated partial update. Nil fields are left unchanged.
type UpdateCouponInput struct {
	Code                *string
	Description         *string
	Type                *entity.DiscountType
	DiscountValue       *float64
	UsageLimitPerUser   *int
	StartDate           *time.Time
	ExpireDate          *time.Time
	IsActive            *bool
	ApplicableCourseIDs []string // nil leaves the list unchanged, empty clears it
}

// CouponValidation is the outcome of checking whether a code can be redeemed now.
type CouponValidation struct {
	Valid  bool                   `json:"valid"`
	Reason entity.CouponRejection `json:"reason,omitempty"`
	Coupon *entity.Coupon         `json:"coupon,omitempty"`
}

// CouponUsecase defines coupon management operations
type CouponUsecase interface {
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)
	GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	ListCoupons(ctx context.Context, filter entity.CouponFilter, page entity.Page) (*entity.PageResult[*entity.Coupon], error)
	UpdateCoupon(ctx context.Context, id uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, id uuid.UUID) error

	// ValidateCoupon checks, in order: exists, active, started, not expired.
	ValidateCoupon(ctx context.Context, code string) (*CouponValidation, error)

	// GenerateCouponQR renders a PNG QR code for the coupon's code.
	GenerateCouponQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
