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

// sectionRepository implements the repository.SectionRepository interface.
type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository is the constructor for sectionRepository.
func NewSectionRepository(db *gorm.DB) repository.SectionRepository {
	return &sectionRepository{db: db}
}

func (repo *sectionRepository) Create(ctx context.Context, section *entity.Section) error {
	if err := repo.db.WithContext(ctx).Create(fromSectionDomain(section)).Error; err != nil {
		return translateWriteError(err, "failed to create section")
	}

	return nil
}

func (repo *sectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Section, error) {
	var sectionM model.SectionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sectionM).Error; err != nil {
		return nil, translateReadError(err, "failed to find section by ID")
	}

	return toSectionDomain(&sectionM), nil
}

func (repo *sectionRepository) FindByName(ctx context.Context, name string) (*entity.Section, error) {
	var sectionM model.SectionModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&sectionM).Error; err != nil {
		return nil, translateReadError(err, "failed to find section by name")
	}

	return toSectionDomain(&sectionM), nil
}

func (repo *sectionRepository) List(ctx context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Section, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SectionModel{}).Scopes(whereActive(filter.IsActive))
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sections")
	}

	var sectionModels []*model.SectionModel
	if err := query.Order("created_at DESC, name ASC").Scopes(paginate(page)).Find(&sectionModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sections")
	}

	sections := make([]*entity.Section, 0, len(sectionModels))
	for _, sectionM := range sectionModels {
		sections = append(sections, toSectionDomain(sectionM))
	}

	return sections, total, nil
}

func (repo *sectionRepository) Update(ctx context.Context, section *entity.Section) error {
	result := updateAll(repo.db.WithContext(ctx), fromSectionDomain(section), section.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update section")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *sectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SectionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete section")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromSectionDomain(s *entity.Section) *model.SectionModel {
	return &model.SectionModel{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSectionDomain(m *model.SectionModel) *entity.Section {
	return &entity.Section{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
