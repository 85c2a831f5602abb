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

// SectionHandlerParams holds dependencies for SectionHandler, injected by Fx.
type SectionHandlerParams struct {
	fx.In

	SectionUC usecase.SectionUsecase
	Logger    *slog.Logger
}

// SectionHandler serves /sections
type SectionHandler struct {
	sectionUC usecase.SectionUsecase
	logger    *slog.Logger
}

// NewSectionHandler is the constructor for SectionHandler
func NewSectionHandler(params SectionHandlerParams) *SectionHandler {
	return &SectionHandler{
		sectionUC: params.SectionUC,
		logger:    params.Logger,
	}
}

type createSectionRequest struct {
	Name        request.Text `json:"name" label:"Section name" validate:"notblank"`
	Description request.Text `json:"description"`
	IsActive    request.Bool `json:"isActive" validate:"omitempty,boolean"`
}

type updateSectionRequest struct {
	Name        request.Text `json:"name" label:"Section name" validate:"omitempty,notblank"`
	Description request.Text `json:"description"`
	IsActive    request.Bool `json:"isActive" validate:"omitempty,boolean"`
}

// namedListQuery filters sections and teachers.
type namedListQuery struct {
	listQuery
	IsActive request.Bool `query:"isActive" validate:"omitempty,boolean"`
	Name     request.Text `query:"name"`
}

func (q namedListQuery) filter() entity.NamedFilter {
	return entity.NamedFilter{IsActive: q.IsActive.Ptr(), Name: q.Name.Value()}
}

// CreateSection handles POST /sections
func (h *SectionHandler) CreateSection(c echo.Context) error {
	var req createSectionRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	section, err := h.sectionUC.CreateSection(c.Request().Context(), &usecase.SectionInput{
		Name:        req.Name.Ptr(),
		Description: req.Description.Ptr(),
		IsActive:    req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, section, "Section created successfully")
}

// GetSection handles GET /sections/:id
func (h *SectionHandler) GetSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	section, err := h.sectionUC.GetSection(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, section, "Section retrieved successfully")
}

// ListSections handles GET /sections
func (h *SectionHandler) ListSections(c echo.Context) error {
	var query namedListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	result, err := h.sectionUC.ListSections(c.Request().Context(), query.filter(), query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Sections retrieved successfully")
}

// UpdateSection handles PUT /sections/:id
func (h *SectionHandler) UpdateSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSectionRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	section, err := h.sectionUC.UpdateSection(c.Request().Context(), id, &usecase.SectionInput{
		Name:        req.Name.Ptr(),
		Description: req.Description.Ptr(),
		IsActive:    req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.OK(c, section, "Section updated successfully")
}

// DeleteSection handles DELETE /sections/:id
func (h *SectionHandler) DeleteSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.sectionUC.DeleteSection(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Section deleted successfully")
}
