// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// AssetUpload is a file received from a client that should be stored.
type AssetUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateBannerInput carries a validated banner creation request.
// Either ImageURL or Image must be set; Image wins when both are.
type CreateBannerInput struct {
	Title          string
	ImageURL       string
	Image          *AssetUpload
	MobileImageURL string
	MobileImage    *AssetUpload
	RedirectURL    string
	Priority       *int // nil means "next after the highest active priority"
	IsActive       *bool
	StartDate      *time.Time
	EndDate        *time.Time
}

// UpdateBannerInput carries a validated partial update. Nil fields are left unchanged.
type UpdateBannerInput struct {
	Title          *string
	ImageURL       *string
	Image          *AssetUpload
	MobileImageURL *string
	MobileImage    *AssetUpload
	RedirectURL    *string
	Priority       *int
	IsActive       *bool
	StartDate      *time.Time
	EndDate        *time.Time
}

// BannerUsecase defines banner management operations
type BannerUsecase interface {
	CreateBanner(ctx context.Context, input *CreateBannerInput) (*entity.Banner, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
	ListBanners(ctx context.Context, filter entity.BannerFilter, page entity.Page) (*entity.PageResult[*entity.Banner], error)
	UpdateBanner(ctx context.Context, id uuid.UUID, input *UpdateBannerInput) (*entity.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	// ToggleBanner flips isActive and returns the updated banner.
	ToggleBanner(ctx context.Context, id uuid.UUID) (*entity.Banner, error)
}
