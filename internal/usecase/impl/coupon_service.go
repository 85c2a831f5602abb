package impl

import (
	"context"
	"log/slog"
	"time"

	"courseadmin/config"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/errors"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultUsageLimitPerUser = 1
	maxPercentageDiscount    = 100
)

type couponService struct {
	couponRepo repository.CouponRepository
	qrcode     service.QRCodeService
	notifier   contentNotifier
	config     *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo    repository.CouponRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		qrcode:     params.QRCodeService,
		notifier:   newContentNotifier(params.Publisher, params.Logger),
		config:     params.Config,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (s *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateCoupon normalizes the code, checks it is unused and persists the coupon.
func (s *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	now := s.now()
	coupon := &entity.Coupon{
		ID:                  uuid.New(),
		Code:                entity.NormalizeCouponCode(input.Code),
		Description:         input.Description,
		Type:                input.Type,
		DiscountValue:       input.DiscountValue,
		UsageLimitPerUser:   defaultUsageLimitPerUser,
		StartDate:           input.StartDate,
		ExpireDate:          input.ExpireDate,
		IsActive:            boolOr(input.IsActive, true),
		ApplicableCourseIDs: input.ApplicableCourseIDs,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.UsageLimitPerUser != nil {
		coupon.UsageLimitPerUser = *input.UsageLimitPerUser
	}
	if coupon.ApplicableCourseIDs == nil {
		coupon.ApplicableCourseIDs = []string{}
	}

	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	if err := s.ensureCodeFree(ctx, coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, domainerrors.ErrCouponCodeTaken, "create coupon")
	}

	s.log(ctx).Info("Coupon created", slog.Any("couponID", coupon.ID), slog.String("code", coupon.Code))
	s.notifier.notify(ctx, resourceCoupon, service.ActionCreated, coupon.ID)

	return coupon, nil
}

// GetCoupon retrieves a coupon by ID
func (s *couponService) GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupon")
	}

	return coupon, nil
}

// ListCoupons returns one page of coupons
func (s *couponService) ListCoupons(ctx context.Context, filter entity.CouponFilter, page entity.Page) (*entity.PageResult[*entity.Coupon], error) {
	if filter.Code != "" {
		filter.Code = entity.NormalizeCouponCode(filter.Code)
	}

	page = normalizePage(s.config, page)
	coupons, total, err := s.couponRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, nil, "list coupons")
	}

	return entity.NewPageResult(coupons, total, page), nil
}

// UpdateCoupon applies a partial update and re-checks the merged record.
func (s *couponService) UpdateCoupon(ctx context.Context, id uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupon")
	}

	codeChanged := false
	if input.Code != nil {
		code := entity.NormalizeCouponCode(*input.Code)
		codeChanged = code != coupon.Code
		coupon.Code = code
	}
	if input.Description != nil {
		coupon.Description = *input.Description
	}
	if input.Type != nil {
		coupon.Type = *input.Type
	}
	if input.DiscountValue != nil {
		coupon.DiscountValue = *input.DiscountValue
	}
	if input.UsageLimitPerUser != nil {
		coupon.UsageLimitPerUser = *input.UsageLimitPerUser
	}
	if input.StartDate != nil {
		coupon.StartDate = *input.StartDate
	}
	if input.ExpireDate != nil {
		coupon.ExpireDate = *input.ExpireDate
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}
	if input.ApplicableCourseIDs != nil {
		coupon.ApplicableCourseIDs = input.ApplicableCourseIDs
	}

	if err := validateCoupon(coupon); err != nil {
		return nil, err
	}

	if codeChanged {
		if err := s.ensureCodeFree(ctx, coupon); err != nil {
			return nil, err
		}
	}

	coupon.UpdatedAt = s.now()
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, domainerrors.ErrCouponCodeTaken, "update coupon")
	}

	s.notifier.notify(ctx, resourceCoupon, service.ActionUpdated, coupon.ID)

	return coupon, nil
}

// DeleteCoupon removes a coupon permanently
func (s *couponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	if err := s.couponRepo.Delete(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrCouponNotFound, nil, "delete coupon")
	}

	s.notifier.notify(ctx, resourceCoupon, service.ActionDeleted, id)

	return nil
}

// ValidateCoupon reports whether code can be redeemed right now.
// An unknown code is a normal, invalid result rather than an error.
func (s *couponService) ValidateCoupon(ctx context.Context, code string) (*usecase.CouponValidation, error) {
	coupon, err := s.couponRepo.FindByCode(ctx, entity.NormalizeCouponCode(code))
	if errors.Is(err, repository.ErrNotFound) {
		return &usecase.CouponValidation{Valid: false, Reason: entity.CouponNotFound}, nil
	}
	if err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupon by code")
	}

	if reason := coupon.Redeemability(s.now()); reason != "" {
		return &usecase.CouponValidation{Valid: false, Reason: reason, Coupon: coupon}, nil
	}

	return &usecase.CouponValidation{Valid: true, Coupon: coupon}, nil
}

// GenerateCouponQR renders the coupon's code as a PNG QR code
func (s *couponService) GenerateCouponQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	coupon, err := s.couponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupon")
	}

	png, err := s.qrcode.GenerateCouponQR(coupon.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate coupon QR")
	}

	return png, nil
}

// ensureCodeFree fails when another coupon already uses coupon.Code.
func (s *couponService) ensureCodeFree(ctx context.Context, coupon *entity.Coupon) error {
	existing, err := s.couponRepo.FindByCode(ctx, coupon.Code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, domainerrors.ErrCouponNotFound, nil, "find coupon by code")
	}
	if existing.ID == coupon.ID {
		return nil
	}

	return domainerrors.ErrCouponCodeTaken.WithDetails("code " + coupon.Code + " is already in use")
}

// validateCoupon checks the rules that span fields of a complete coupon.
func validateCoupon(coupon *entity.Coupon) error {
	verr := domainerrors.NewValidationError()
	if coupon.Code == "" {
		verr.Add("code", "Coupon code is required.")
	}
	if !coupon.Type.IsValid() {
		verr.Add("type", "type must be one of: percentage, fixed")
	}
	if coupon.DiscountValue < 0 {
		verr.Add("discountValue", "discountValue must be greater than or equal to 0")
	}
	if coupon.Type == entity.DiscountPercentage && coupon.DiscountValue > maxPercentageDiscount {
		verr.Add("discountValue", "discountValue must not exceed 100 for percentage coupons")
	}
	if coupon.UsageLimitPerUser < 1 {
		verr.Add("usageLimitPerUser", "usageLimitPerUser must be at least 1")
	}
	if coupon.ExpireDate.Before(coupon.StartDate) {
		verr.Add("expireDate", "expireDate must be on or after startDate")
	}

	return verr.OrNil()
}
