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

// SEOURLHandlerParams holds dependencies for SEOURLHandler, injected by Fx.
type SEOURLHandlerParams struct {
	fx.In

	SEOURLUC usecase.SEOURLUsecase
	Logger   *slog.Logger
}

// SEOURLHandler serves /seo-urls
type SEOURLHandler struct {
	seoURLUC usecase.SEOURLUsecase
	logger   *slog.Logger
}

// NewSEOURLHandler is the constructor for SEOURLHandler
func NewSEOURLHandler(params SEOURLHandlerParams) *SEOURLHandler {
	return &SEOURLHandler{
		seoURLUC: params.SEOURLUC,
		logger:   params.Logger,
	}
}

type createSEOURLRequest struct {
	URL             request.Text   `json:"url" label:"SEO url" validate:"notblank"`
	Title           request.Text   `json:"title"`
	MetaDescription request.Text   `json:"metaDescription"`
	Keywords        []string       `json:"keywords"`
	Priority        request.Number `json:"priority" validate:"omitempty,numeric,min=0,max=1"`
	IsActive        request.Bool   `json:"isActive" validate:"omitempty,boolean"`
}

type updateSEOURLRequest struct {
	URL             request.Text   `json:"url" label:"SEO url" validate:"omitempty,notblank"`
	Title           request.Text   `json:"title"`
	MetaDescription request.Text   `json:"metaDescription"`
	Keywords        []string       `json:"keywords"`
	Priority        request.Number `json:"priority" validate:"omitempty,numeric,min=0,max=1"`
	IsActive        request.Bool   `json:"isActive" validate:"omitempty,boolean"`
}

type seoURLPriorityRequest struct {
	Priority request.Number `json:"priority" validate:"present,numeric,min=0,max=1"`
}

type seoURLListQuery struct {
	listQuery
	IsActive request.Bool `query:"isActive" validate:"omitempty,boolean"`
}

// CreateSEOURL handles POST /seo-urls
func (h *SEOURLHandler) CreateSEOURL(c echo.Context) error {
	var req createSEOURLRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	seoURL, err := h.seoURLUC.CreateSEOURL(c.Request().Context(), &usecase.SEOURLInput{
		URL:             req.URL.Ptr(),
		Title:           req.Title.Ptr(),
		MetaDescription: req.MetaDescription.Ptr(),
		Keywords:        req.Keywords,
		Priority:        req.Priority.FloatPtr(),
		IsActive:        req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, seoURL, "SEO url created successfully")
}

// GetSEOURL handles GET /seo-urls/:id
func (h *SEOURLHandler) GetSEOURL(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	seoURL, err := h.seoURLUC.GetSEOURL(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, seoURL, "SEO url retrieved successfully")
}

// ListSEOURLs handles GET /seo-urls
func (h *SEOURLHandler) ListSEOURLs(c echo.Context) error {
	var query seoURLListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	result, err := h.seoURLUC.ListSEOURLs(c.Request().Context(), entity.SEOURLFilter{IsActive: query.IsActive.Ptr()}, query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "SEO urls retrieved successfully")
}

// UpdateSEOURL handles PUT /seo-urls/:id
func (h *SEOURLHandler) UpdateSEOURL(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSEOURLRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	seoURL, err := h.seoURLUC.UpdateSEOURL(c.Request().Context(), id, &usecase.SEOURLInput{
		URL:             req.URL.Ptr(),
		Title:           req.Title.Ptr(),
		MetaDescription: req.MetaDescription.Ptr(),
		Keywords:        req.Keywords,
		Priority:        req.Priority.FloatPtr(),
		IsActive:        req.IsActive.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.OK(c, seoURL, "SEO url updated successfully")
}

// UpdateSEOURLPriority handles PATCH /seo-urls/:id/priority
func (h *SEOURLHandler) UpdateSEOURLPriority(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req seoURLPriorityRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	seoURL, err := h.seoURLUC.UpdateSEOURLPriority(c.Request().Context(), id, req.Priority.Float())
	if err != nil {
		return err
	}

	return response.OK(c, seoURL, "SEO url priority updated successfully")
}

// DeleteSEOURL handles DELETE /seo-urls/:id by deactivating the entry
func (h *SEOURLHandler) DeleteSEOURL(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.seoURLUC.DeleteSEOURL(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "SEO url deactivated successfully")
}
