package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// TeacherRepository defines the interface for teacher persistence.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)

	// FindByName matches the exact name among all teachers, active or not.
	FindByName(ctx context.Context, name string) (*entity.Teacher, error)

	List(ctx context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Teacher, int64, error)
	Update(ctx context.Context, teacher *entity.Teacher) error
	Delete(ctx context.Context, id uuid.UUID) error
}
