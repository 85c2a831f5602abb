package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// BannerRepository defines the interface for banner persistence.
type BannerRepository interface {
	// Create persists a new banner. A priority clash among active banners returns ErrDuplicate.
	Create(ctx context.Context, banner *entity.Banner) error

	// FindByID retrieves a banner by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error)

	// List returns one page of banners ordered by priority and the total match count.
	List(ctx context.Context, filter entity.BannerFilter, page entity.Page) ([]*entity.Banner, int64, error)

	// Update overwrites every mutable field of the banner.
	Update(ctx context.Context, banner *entity.Banner) error

	// Delete removes a banner permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxActivePriority returns the highest priority among active banners, or 0 when none are active.
	MaxActivePriority(ctx context.Context) (int, error)

	// FindActiveByPriority returns the active banner holding priority, or ErrNotFound.
	FindActiveByPriority(ctx context.Context, priority int) (*entity.Banner, error)
}
