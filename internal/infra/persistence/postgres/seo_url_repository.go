package postgres

import (
	"context"
	"time"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/errors"
	"courseadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seoURLRepository implements the repository.SEOURLRepository interface.
type seoURLRepository struct {
	db *gorm.DB
}

// NewSEOURLRepository is the constructor for seoURLRepository.
func NewSEOURLRepository(db *gorm.DB) repository.SEOURLRepository {
	return &seoURLRepository{db: db}
}

func (repo *seoURLRepository) Create(ctx context.Context, seoURL *entity.SEOURL) error {
	if err := repo.db.WithContext(ctx).Create(fromSEOURLDomain(seoURL)).Error; err != nil {
		return translateWriteError(err, "failed to create seo url")
	}

	return nil
}

func (repo *seoURLRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SEOURL, error) {
	var seoURLM model.SEOURLModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&seoURLM).Error; err != nil {
		return nil, translateReadError(err, "failed to find seo url by ID")
	}

	return toSEOURLDomain(&seoURLM), nil
}

func (repo *seoURLRepository) FindByURL(ctx context.Context, url string) (*entity.SEOURL, error) {
	var seoURLM model.SEOURLModel
	if err := repo.db.WithContext(ctx).Where("url = ?", url).First(&seoURLM).Error; err != nil {
		return nil, translateReadError(err, "failed to find seo url by url")
	}

	return toSEOURLDomain(&seoURLM), nil
}

// List returns SEO entries by sitemap priority, highest first.
func (repo *seoURLRepository) List(ctx context.Context, filter entity.SEOURLFilter, page entity.Page) ([]*entity.SEOURL, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SEOURLModel{}).Scopes(whereActive(filter.IsActive)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count seo urls")
	}

	var seoURLModels []*model.SEOURLModel
	if err := query.Order("priority DESC, url ASC").Scopes(paginate(page)).Find(&seoURLModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list seo urls")
	}

	seoURLs := make([]*entity.SEOURL, 0, len(seoURLModels))
	for _, seoURLM := range seoURLModels {
		seoURLs = append(seoURLs, toSEOURLDomain(seoURLM))
	}

	return seoURLs, total, nil
}

func (repo *seoURLRepository) Update(ctx context.Context, seoURL *entity.SEOURL) error {
	result := updateAll(repo.db.WithContext(ctx), fromSEOURLDomain(seoURL), seoURL.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update seo url")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *seoURLRepository) UpdatePriority(ctx context.Context, id uuid.UUID, priority float64) error {
	return repo.updateColumns(ctx, id, map[string]any{"priority": priority, "updated_at": time.Now()}, "failed to update seo url priority")
}

func (repo *seoURLRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, map[string]any{"is_active": false, "updated_at": time.Now()}, "failed to deactivate seo url")
}

func (repo *seoURLRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, op string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SEOURLModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return translateWriteError(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromSEOURLDomain(s *entity.SEOURL) *model.SEOURLModel {
	return &model.SEOURLModel{
		ID:              s.ID,
		URL:             s.URL,
		Title:           s.Title,
		MetaDescription: s.MetaDescription,
		Keywords:        nonNilStrings(s.Keywords),
		Priority:        s.Priority,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSEOURLDomain(m *model.SEOURLModel) *entity.SEOURL {
	return &entity.SEOURL{
		ID:              m.ID,
		URL:             m.URL,
		Title:           m.Title,
		MetaDescription: m.MetaDescription,
		Keywords:        nonNilStrings(m.Keywords),
		Priority:        m.Priority,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
