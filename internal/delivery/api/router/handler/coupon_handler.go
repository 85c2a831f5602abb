package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CouponHandlerParams holds dependencies for CouponHandler, injected by Fx.
type CouponHandlerParams struct {
	fx.In

	CouponUC usecase.CouponUsecase
	Logger   *slog.Logger
}

// CouponHandler serves /coupons
type CouponHandler struct {
	couponUC usecase.CouponUsecase
	logger   *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler
func NewCouponHandler(params CouponHandlerParams) *CouponHandler {
	return &CouponHandler{
		couponUC: params.CouponUC,
		logger:   params.Logger,
	}
}

type createCouponRequest struct {
	Code                request.Text   `json:"code" label:"Coupon code" validate:"notblank"`
	Description         request.Text   `json:"description"`
	Type                request.Text   `json:"type" label:"Coupon type" validate:"notblank,oneof=percentage fixed"`
	DiscountValue       request.Number `json:"discountValue" validate:"present,numeric,min=0"`
	UsageLimitPerUser   request.Number `json:"usageLimitPerUser" validate:"omitempty,numeric,min=1,max=1000000,integer"`
	StartDate           request.Date   `json:"startDate" label:"Start date" validate:"present,date"`
	ExpireDate          request.Date   `json:"expireDate" label:"Expire date" validate:"present,date"`
	IsActive            request.Bool   `json:"isActive" validate:"omitempty,boolean"`
	ApplicableCourseIDs []string       `json:"applicableCourseIds"`
}

func (r *createCouponRequest) CheckCrossFields(verr *domainerrors.ValidationError) {
	checkCouponRules(verr, r.Type, r.DiscountValue, r.StartDate, r.ExpireDate)
}

type updateCouponRequest struct {
	Code                request.Text   `json:"code" label:"Coupon code" validate:"omitempty,notblank"`
	Description         request.Text   `json:"description"`
	Type                request.Text   `json:"type" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue       request.Number `json:"discountValue" validate:"omitempty,numeric,min=0"`
	UsageLimitPerUser   request.Number `json:"usageLimitPerUser" validate:"omitempty,numeric,min=1,max=1000000,integer"`
	StartDate           request.Date   `json:"startDate" validate:"omitempty,date"`
	ExpireDate          request.Date   `json:"expireDate" validate:"omitempty,date"`
	IsActive            request.Bool   `json:"isActive" validate:"omitempty,boolean"`
	ApplicableCourseIDs []string       `json:"applicableCourseIds"`
}

// CheckCrossFields only compares the dates when the patch carries both;
// the usecase re-checks the merged record.
func (r *updateCouponRequest) CheckCrossFields(verr *domainerrors.ValidationError) {
	checkCouponRules(verr, r.Type, r.DiscountValue, r.StartDate, r.ExpireDate)
}

func checkCouponRules(verr *domainerrors.ValidationError, kind request.Text, discount request.Number, start, expire request.Date) {
	if kind.Value() == string(entity.DiscountPercentage) && discount.Valid() && discount.Float() > 100 {
		verr.Add("discountValue", "discountValue must not exceed 100 for percentage coupons")
	}
	if start.Valid() && expire.Valid() && expire.Time().Before(start.Time()) {
		verr.Add("expireDate", "expireDate must be on or after startDate")
	}
}

type couponListQuery struct {
	listQuery
	IsActive request.Bool `query:"isActive" validate:"omitempty,boolean"`
	Type     request.Text `query:"type" validate:"omitempty,oneof=percentage fixed"`
	Code     request.Text `query:"code"`
}

type validateCouponRequest struct {
	Code request.Text `json:"code" label:"Coupon code" validate:"notblank"`
}

// CreateCoupon handles POST /coupons
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), &usecase.CreateCouponInput{
		Code:                req.Code.Value(),
		Description:         req.Description.Value(),
		Type:                entity.DiscountType(req.Type.Value()),
		DiscountValue:       req.DiscountValue.Float(),
		UsageLimitPerUser:   req.UsageLimitPerUser.IntPtr(),
		StartDate:           req.StartDate.Time(),
		ExpireDate:          req.ExpireDate.Time(),
		IsActive:            req.IsActive.Ptr(),
		ApplicableCourseIDs: req.ApplicableCourseIDs,
	})
	if err != nil {
		return err
	}

	return response.Created(c, coupon, "Coupon created successfully")
}

// GetCoupon handles GET /coupons/:id
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	coupon, err := h.couponUC.GetCoupon(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, coupon, "Coupon retrieved successfully")
}

// ListCoupons handles GET /coupons
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	var query couponListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	filter := entity.CouponFilter{
		IsActive: query.IsActive.Ptr(),
		Type:     entity.DiscountType(query.Type.Value()),
		Code:     query.Code.Value(),
	}
	result, err := h.couponUC.ListCoupons(c.Request().Context(), filter, query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Coupons retrieved successfully")
}

// UpdateCoupon handles PUT /coupons/:id
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCouponRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateCouponInput{
		Code:                req.Code.Ptr(),
		Description:         req.Description.Ptr(),
		DiscountValue:       req.DiscountValue.FloatPtr(),
		UsageLimitPerUser:   req.UsageLimitPerUser.IntPtr(),
		StartDate:           req.StartDate.Ptr(),
		ExpireDate:          req.ExpireDate.Ptr(),
		IsActive:            req.IsActive.Ptr(),
		ApplicableCourseIDs: req.ApplicableCourseIDs,
	}
	if req.Type.IsSet() {
		kind := entity.DiscountType(req.Type.Value())
		input.Type = &kind
	}

	coupon, err := h.couponUC.UpdateCoupon(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, coupon, "Coupon updated successfully")
}

// DeleteCoupon handles DELETE /coupons/:id
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Coupon deleted successfully")
}

// ValidateCoupon handles POST /coupons/validate. A rejected code is still a 200
// carrying valid=false and the reason.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var req validateCouponRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.couponUC.ValidateCoupon(c.Request().Context(), strings.TrimSpace(req.Code.Value()))
	if err != nil {
		return err
	}

	message := "Coupon is valid"
	if !result.Valid {
		message = "Coupon is not valid"
	}

	return response.OK(c, result, message)
}

// CouponQR handles GET /coupons/:id/qr
func (h *CouponHandler) CouponQR(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.couponUC.GenerateCouponQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
