package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// SectionInput carries section fields; on update nil fields are left unchanged.
type SectionInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// SectionUsecase defines section management operations
type SectionUsecase interface {
	CreateSection(ctx context.Context, input *SectionInput) (*entity.Section, error)
	GetSection(ctx context.Context, id uuid.UUID) (*entity.Section, error)
	ListSections(ctx context.Context, filter entity.NamedFilter, page entity.Page) (*entity.PageResult[*entity.Section], error)
	UpdateSection(ctx context.Context, id uuid.UUID, input *SectionInput) (*entity.Section, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
}
