package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// SEOURLInput carries SEO URL fields; on update nil fields are left unchanged.
type SEOURLInput struct {
	URL             *string
	Title           *string
	MetaDescription *string
	Keywords        []string
	Priority        *float64
	IsActive        *bool
}

// SEOURLUsecase defines SEO URL management operations
type SEOURLUsecase interface {
	CreateSEOURL(ctx context.Context, input *SEOURLInput) (*entity.SEOURL, error)
	GetSEOURL(ctx context.Context, id uuid.UUID) (*entity.SEOURL, error)
	ListSEOURLs(ctx context.Context, filter entity.SEOURLFilter, page entity.Page) (*entity.PageResult[*entity.SEOURL], error)
	UpdateSEOURL(ctx context.Context, id uuid.UUID, input *SEOURLInput) (*entity.SEOURL, error)
	UpdateSEOURLPriority(ctx context.Context, id uuid.UUID, priority float64) (*entity.SEOURL, error)

	// DeleteSEOURL deactivates the entry instead of removing it.
	DeleteSEOURL(ctx context.Context, id uuid.UUID) error
}
