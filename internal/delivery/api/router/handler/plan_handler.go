package handler

import (
	"log/slog"

	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler serves /plans
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

type createPlanRequest struct {
	Name           request.Text   `json:"name" label:"Plan name" validate:"notblank"`
	Title          request.Text   `json:"title"`
	Amount         request.Number `json:"amount" validate:"present,numeric,min=0"`
	DurationInDays request.Number `json:"durationInDays" validate:"present,numeric,min=1,max=36500,integer"`
	Priority       request.Number `json:"priority" validate:"omitempty,numeric,min=-1000000,max=1000000,integer"`
	Status         request.Text   `json:"status" validate:"omitempty,oneof=active inactive"`
	CourseIDs      []string       `json:"courseIds"`
	EbookIDs       []string       `json:"ebookIds"`
	CouponIDs      []string       `json:"couponIds"`
}

type updatePlanRequest struct {
	Name           request.Text   `json:"name" label:"Plan name" validate:"omitempty,notblank"`
	Title          request.Text   `json:"title"`
	Amount         request.Number `json:"amount" validate:"omitempty,numeric,min=0"`
	DurationInDays request.Number `json:"durationInDays" validate:"omitempty,numeric,min=1,max=36500,integer"`
	Priority       request.Number `json:"priority" validate:"omitempty,numeric,min=-1000000,max=1000000,integer"`
	Status         request.Text   `json:"status" validate:"omitempty,oneof=active inactive"`
	CourseIDs      []string       `json:"courseIds"`
	EbookIDs       []string       `json:"ebookIds"`
	CouponIDs      []string       `json:"couponIds"`
}

type planListQuery struct {
	listQuery
	Status request.Text `query:"status" validate:"omitempty,oneof=active inactive"`
}

// CreatePlan handles POST /plans
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req createPlanRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	couponIDs, err := parseUUIDs(req.CouponIDs, "couponIds")
	if err != nil {
		return err
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), &usecase.CreatePlanInput{
		Name:           req.Name.Value(),
		Title:          req.Title.Value(),
		Amount:         req.Amount.Float(),
		DurationInDays: req.DurationInDays.Int(),
		Priority:       req.Priority.Int(),
		Status:         entity.Status(req.Status.Value()),
		CourseIDs:      req.CourseIDs,
		EbookIDs:       req.EbookIDs,
		CouponIDs:      couponIDs,
	})
	if err != nil {
		return err
	}

	return response.Created(c, plan, "Plan created successfully")
}

// GetPlan handles GET /plans/:id
func (h *PlanHandler) GetPlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, plan, "Plan retrieved successfully")
}

// ListPlans handles GET /plans
func (h *PlanHandler) ListPlans(c echo.Context) error {
	var query planListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	result, err := h.planUC.ListPlans(c.Request().Context(), entity.PlanFilter{Status: entity.Status(query.Status.Value())}, query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Plans retrieved successfully")
}

// UpdatePlan handles PUT /plans/:id
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePlanRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	couponIDs, err := parseUUIDs(req.CouponIDs, "couponIds")
	if err != nil {
		return err
	}

	input := &usecase.UpdatePlanInput{
		Name:           req.Name.Ptr(),
		Title:          req.Title.Ptr(),
		Amount:         req.Amount.FloatPtr(),
		DurationInDays: req.DurationInDays.IntPtr(),
		Priority:       req.Priority.IntPtr(),
		CourseIDs:      req.CourseIDs,
		EbookIDs:       req.EbookIDs,
		CouponIDs:      couponIDs,
	}
	if req.Status.IsSet() {
		status := entity.Status(req.Status.Value())
		input.Status = &status
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, plan, "Plan updated successfully")
}

// DeletePlan handles DELETE /plans/:id
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.planUC.DeletePlan(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Plan deleted successfully")
}
