package handler

import (
	"log/slog"

	"courseadmin/config"
	"courseadmin/internal/delivery/api/request"
	"courseadmin/internal/delivery/api/response"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BannerHandlerParams holds dependencies for BannerHandler, injected by Fx.
type BannerHandlerParams struct {
	fx.In

	BannerUC usecase.BannerUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// BannerHandler serves /banners
type BannerHandler struct {
	bannerUC      usecase.BannerUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler
func NewBannerHandler(params BannerHandlerParams) *BannerHandler {
	return &BannerHandler{
		bannerUC:      params.BannerUC,
		maxUploadSize: maxUploadSize(params.Config),
		logger:        params.Logger,
	}
}

// bannerRequest is the body of banner create and update requests, sent as
// JSON with image URLs or as multipart/form-data with image and mobileImage files.
type bannerRequest struct {
	Title          request.Text   `json:"title" form:"title"`
	ImageURL       request.Text   `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
	MobileImageURL request.Text   `json:"mobileImageUrl" form:"mobileImageUrl" validate:"omitempty,url"`
	RedirectURL    request.Text   `json:"redirectUrl" form:"redirectUrl" validate:"omitempty,url"`
	Priority       request.Number `json:"priority" form:"priority" validate:"omitempty,numeric,min=1,max=1000000,integer"`
	IsActive       request.Bool   `json:"isActive" form:"isActive" validate:"omitempty,boolean"`
	StartDate      request.Date   `json:"startDate" form:"startDate" validate:"omitempty,date"`
	EndDate        request.Date   `json:"endDate" form:"endDate" validate:"omitempty,date"`
}

func (r *bannerRequest) CheckCrossFields(verr *domainerrors.ValidationError) {
	if r.StartDate.Valid() && r.EndDate.Valid() && r.EndDate.Time().Before(r.StartDate.Time()) {
		verr.Add("endDate", "endDate must be on or after startDate")
	}
}

type bannerListQuery struct {
	listQuery
	IsActive request.Bool `query:"isActive" validate:"omitempty,boolean"`
}

// CreateBanner handles POST /banners
func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var req bannerRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	image, mobileImage, err := h.readImages(c)
	if err != nil {
		return err
	}

	banner, err := h.bannerUC.CreateBanner(c.Request().Context(), &usecase.CreateBannerInput{
		Title:          req.Title.Value(),
		ImageURL:       req.ImageURL.Value(),
		Image:          image,
		MobileImageURL: req.MobileImageURL.Value(),
		MobileImage:    mobileImage,
		RedirectURL:    req.RedirectURL.Value(),
		Priority:       req.Priority.IntPtr(),
		IsActive:       req.IsActive.Ptr(),
		StartDate:      req.StartDate.Ptr(),
		EndDate:        req.EndDate.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.Created(c, banner, "Banner created successfully")
}

// GetBanner handles GET /banners/:id
func (h *BannerHandler) GetBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	banner, err := h.bannerUC.GetBanner(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, banner, "Banner retrieved successfully")
}

// ListBanners handles GET /banners
func (h *BannerHandler) ListBanners(c echo.Context) error {
	var query bannerListQuery
	if err := bindRequest(c, &query); err != nil {
		return err
	}

	result, err := h.bannerUC.ListBanners(c.Request().Context(), entity.BannerFilter{IsActive: query.IsActive.Ptr()}, query.page())
	if err != nil {
		return err
	}

	return response.OK(c, result, "Banners retrieved successfully")
}

// UpdateBanner handles PUT /banners/:id
func (h *BannerHandler) UpdateBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req bannerRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	image, mobileImage, err := h.readImages(c)
	if err != nil {
		return err
	}

	banner, err := h.bannerUC.UpdateBanner(c.Request().Context(), id, &usecase.UpdateBannerInput{
		Title:          req.Title.Ptr(),
		ImageURL:       req.ImageURL.Ptr(),
		Image:          image,
		MobileImageURL: req.MobileImageURL.Ptr(),
		MobileImage:    mobileImage,
		RedirectURL:    req.RedirectURL.Ptr(),
		Priority:       req.Priority.IntPtr(),
		IsActive:       req.IsActive.Ptr(),
		StartDate:      req.StartDate.Ptr(),
		EndDate:        req.EndDate.Ptr(),
	})
	if err != nil {
		return err
	}

	return response.OK(c, banner, "Banner updated successfully")
}

// DeleteBanner handles DELETE /banners/:id
func (h *BannerHandler) DeleteBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.bannerUC.DeleteBanner(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, nil, "Banner deleted successfully")
}

// ToggleBanner handles PATCH /banners/:id/toggle
func (h *BannerHandler) ToggleBanner(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	banner, err := h.bannerUC.ToggleBanner(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, banner, "Banner status updated successfully")
}

func (h *BannerHandler) readImages(c echo.Context) (image, mobileImage *usecase.AssetUpload, err error) {
	image, err = formFile(c, "image", h.maxUploadSize)
	if err != nil {
		return nil, nil, err
	}
	mobileImage, err = formFile(c, "mobileImage", h.maxUploadSize)
	if err != nil {
		return nil, nil, err
	}

	return image, mobileImage, nil
}

func maxUploadSize(cfg *config.Config) int64 {
	if cfg == nil || cfg.Assets == nil {
		return 0
	}

	return cfg.Assets.MaxUploadSize
}
