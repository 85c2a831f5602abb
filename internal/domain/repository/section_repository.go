package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// SectionRepository defines the interface for section persistence.
type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Section, error)

	// FindByName matches the exact name among all sections, active or not.
	FindByName(ctx context.Context, name string) (*entity.Section, error)

	List(ctx context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Section, int64, error)
	Update(ctx context.Context, section *entity.Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}
