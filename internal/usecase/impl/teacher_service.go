package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courseadmin/config"
	deliverycontext "courseadmin/internal/delivery/context"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/errors"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const teacherAssetFolder = "teachers"

type teacherService struct {
	teacherRepo repository.TeacherRepository
	assets      assetStore
	notifier    contentNotifier
	config      *config.Config
	logger      *slog.Logger
	now         func() time.Time
}

// TeacherServiceParams holds dependencies for TeacherService, injected by Fx.
type TeacherServiceParams struct {
	fx.In

	TeacherRepo    repository.TeacherRepository
	Storage        service.ObjectStorage
	ImageProcessor service.ImageProcessor
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(params TeacherServiceParams) usecase.TeacherUsecase {
	return &teacherService{
		teacherRepo: params.TeacherRepo,
		assets:      assetStore{storage: params.Storage, images: params.ImageProcessor},
		notifier:    newContentNotifier(params.Publisher, params.Logger),
		config:      params.Config,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *teacherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateTeacher persists a teacher profile with a unique name.
func (s *teacherService) CreateTeacher(ctx context.Context, input *usecase.TeacherInput) (*entity.Teacher, error) {
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, domainerrors.NewValidationError(domainerrors.Issue{Field: "name", Message: "Teacher name is required."})
	}

	now := s.now()
	teacher := &entity.Teacher{
		ID:        uuid.New(),
		Name:      name,
		IsActive:  boolOr(input.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Designation != nil {
		teacher.Designation = *input.Designation
	}
	if input.Description != nil {
		teacher.Description = *input.Description
	}
	if input.ImageURL != nil {
		teacher.ImageURL = *input.ImageURL
	}

	if err := s.ensureNameFree(ctx, teacher); err != nil {
		return nil, err
	}

	if input.Image != nil {
		obj, err := s.assets.put(ctx, teacherAssetFolder, input.Image)
		if err != nil {
			return nil, err
		}
		teacher.ImageKey, teacher.ImageURL = obj.Key, obj.URL
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		s.assets.discard(ctx, s.log(ctx), teacher.ImageKey)

		return nil, storeError(err, domainerrors.ErrTeacherNotFound, domainerrors.ErrTeacherNameTaken, "create teacher")
	}

	s.notifier.notify(ctx, resourceTeacher, service.ActionCreated, teacher.ID)

	return teacher, nil
}

// GetTeacher retrieves a teacher by ID
func (s *teacherService) GetTeacher(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	teacher, err := s.teacherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrTeacherNotFound, nil, "find teacher")
	}

	return teacher, nil
}

// ListTeachers returns one page of teachers
func (s *teacherService) ListTeachers(ctx context.Context, filter entity.NamedFilter, page entity.Page) (*entity.PageResult[*entity.Teacher], error) {
	page = normalizePage(s.config, page)
	teachers, total, err := s.teacherRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrTeacherNotFound, nil, "list teachers")
	}

	return entity.NewPageResult(teachers, total, page), nil
}

// UpdateTeacher applies a partial update. A new image is uploaded first and the
// previous one is removed after the record is written.
func (s *teacherService) UpdateTeacher(ctx context.Context, id uuid.UUID, input *usecase.TeacherInput) (*entity.Teacher, error) {
	teacher, err := s.teacherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrTeacherNotFound, nil, "find teacher")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.NewValidationError(domainerrors.Issue{Field: "name", Message: "Teacher name is required."})
		}
		if name != teacher.Name {
			teacher.Name = name
			if err := s.ensureNameFree(ctx, teacher); err != nil {
				return nil, err
			}
		}
	}
	if input.Designation != nil {
		teacher.Designation = *input.Designation
	}
	if input.Description != nil {
		teacher.Description = *input.Description
	}
	if input.IsActive != nil {
		teacher.IsActive = *input.IsActive
	}

	var replaced, uploaded string
	switch {
	case input.Image != nil:
		obj, err := s.assets.put(ctx, teacherAssetFolder, input.Image)
		if err != nil {
			return nil, err
		}
		replaced, uploaded = teacher.ImageKey, obj.Key
		teacher.ImageKey, teacher.ImageURL = obj.Key, obj.URL
	case input.ImageURL != nil && *input.ImageURL != teacher.ImageURL:
		replaced = teacher.ImageKey
		teacher.ImageKey, teacher.ImageURL = "", *input.ImageURL
	}

	teacher.UpdatedAt = s.now()
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		s.assets.discard(ctx, s.log(ctx), uploaded)

		return nil, storeError(err, domainerrors.ErrTeacherNotFound, domainerrors.ErrTeacherNameTaken, "update teacher")
	}

	s.assets.discard(ctx, s.log(ctx), replaced)
	s.notifier.notify(ctx, resourceTeacher, service.ActionUpdated, teacher.ID)

	return teacher, nil
}

// DeleteTeacher removes the teacher and then its stored image.
func (s *teacherService) DeleteTeacher(ctx context.Context, id uuid.UUID) error {
	teacher, err := s.teacherRepo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, domainerrors.ErrTeacherNotFound, nil, "find teacher")
	}

	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return storeError(err, domainerrors.ErrTeacherNotFound, nil, "delete teacher")
	}

	s.assets.discard(ctx, s.log(ctx), teacher.ImageKey)
	s.notifier.notify(ctx, resourceTeacher, service.ActionDeleted, id)

	return nil
}

func (s *teacherService) ensureNameFree(ctx context.Context, teacher *entity.Teacher) error {
	existing, err := s.teacherRepo.FindByName(ctx, teacher.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, domainerrors.ErrTeacherNotFound, nil, "find teacher by name")
	}
	if existing.ID == teacher.ID {
		return nil
	}

	return domainerrors.ErrTeacherNameTaken
}
