package postgres

import (
	"context"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/errors"
	"courseadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// teacherRepository implements the repository.TeacherRepository interface.
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository is the constructor for teacherRepository.
func NewTeacherRepository(db *gorm.DB) repository.TeacherRepository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	if err := repo.db.WithContext(ctx).Create(fromTeacherDomain(teacher)).Error; err != nil {
		return translateWriteError(err, "failed to create teacher")
	}

	return nil
}

func (repo *teacherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&teacherM).Error; err != nil {
		return nil, translateReadError(err, "failed to find teacher by ID")
	}

	return toTeacherDomain(&teacherM), nil
}

func (repo *teacherRepository) FindByName(ctx context.Context, name string) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&teacherM).Error; err != nil {
		return nil, translateReadError(err, "failed to find teacher by name")
	}

	return toTeacherDomain(&teacherM), nil
}

func (repo *teacherRepository) List(ctx context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Teacher, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TeacherModel{}).Scopes(whereActive(filter.IsActive))
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count teachers")
	}

	var teacherModels []*model.TeacherModel
	if err := query.Order("created_at DESC, name ASC").Scopes(paginate(page)).Find(&teacherModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list teachers")
	}

	teachers := make([]*entity.Teacher, 0, len(teacherModels))
	for _, teacherM := range teacherModels {
		teachers = append(teachers, toTeacherDomain(teacherM))
	}

	return teachers, total, nil
}

func (repo *teacherRepository) Update(ctx context.Context, teacher *entity.Teacher) error {
	result := updateAll(repo.db.WithContext(ctx), fromTeacherDomain(teacher), teacher.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update teacher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *teacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeacherModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete teacher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromTeacherDomain(t *entity.Teacher) *model.TeacherModel {
	return &model.TeacherModel{
		ID:          t.ID,
		Name:        t.Name,
		Designation: t.Designation,
		Description: t.Description,
		ImageURL:    t.ImageURL,
		ImageKey:    t.ImageKey,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTeacherDomain(m *model.TeacherModel) *entity.Teacher {
	return &entity.Teacher{
		ID:          m.ID,
		Name:        m.Name,
		Designation: m.Designation,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ImageKey:    m.ImageKey,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
