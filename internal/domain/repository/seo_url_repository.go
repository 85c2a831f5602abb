package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// SEOURLRepository defines the interface for SEO URL persistence.
type SEOURLRepository interface {
	Create(ctx context.Context, seoURL *entity.SEOURL) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SEOURL, error)
	FindByURL(ctx context.Context, url string) (*entity.SEOURL, error)
	List(ctx context.Context, filter entity.SEOURLFilter, page entity.Page) ([]*entity.SEOURL, int64, error)
	Update(ctx context.Context, seoURL *entity.SEOURL) error

	// UpdatePriority changes only the sitemap priority.
	UpdatePriority(ctx context.Context, id uuid.UUID, priority float64) error

	// Deactivate flips isActive off; SEO entries are never hard deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
