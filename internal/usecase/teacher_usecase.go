package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// TeacherInput carries teacher fields; on update nil fields are left unchanged.
// Image, when set, is uploaded and replaces ImageURL.
type TeacherInput struct {
	Name        *string
	Designation *string
	Description *string
	ImageURL    *string
	Image       *AssetUpload
	IsActive    *bool
}

// TeacherUsecase defines teacher management operations
type TeacherUsecase interface {
	CreateTeacher(ctx context.Context, input *TeacherInput) (*entity.Teacher, error)
	GetTeacher(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	ListTeachers(ctx context.Context, filter entity.NamedFilter, page entity.Page) (*entity.PageResult[*entity.Teacher], error)
	UpdateTeacher(ctx context.Context, id uuid.UUID, input *TeacherInput) (*entity.Teacher, error)
	DeleteTeacher(ctx context.Context, id uuid.UUID) error
}
