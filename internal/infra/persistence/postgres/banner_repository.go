// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// bannerRepository implements the repository.BannerRepository interface.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{db: db}
}

// Create persists a new banner.
func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	if err := repo.db.WithContext(ctx).Create(fromBannerDomain(banner)).Error; err != nil {
		return translateWriteError(err, "failed to create banner")
	}

	return nil
}

// FindByID retrieves a banner by its unique ID.
func (repo *bannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Banner, error) {
	var bannerM model.BannerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bannerM).Error; err != nil {
		return nil, translateReadError(err, "failed to find banner by ID")
	}

	return toBannerDomain(&bannerM), nil
}

// List returns banners ordered by priority.
func (repo *bannerRepository) List(ctx context.Context, filter entity.BannerFilter, page entity.Page) ([]*entity.Banner, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BannerModel{}).Scopes(whereActive(filter.IsActive)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count banners")
	}

	var bannerModels []*model.BannerModel
	if err := query.Order("priority ASC, created_at ASC, id ASC").Scopes(paginate(page)).Find(&bannerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list banners")
	}

	banners := make([]*entity.Banner, 0, len(bannerModels))
	for _, bannerM := range bannerModels {
		banners = append(banners, toBannerDomain(bannerM))
	}

	return banners, total, nil
}

// Update overwrites every mutable column of the banner.
func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	result := updateAll(repo.db.WithContext(ctx), fromBannerDomain(banner), banner.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a banner permanently.
func (repo *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BannerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// MaxActivePriority returns the highest priority among active banners, or 0.
func (repo *bannerRepository) MaxActivePriority(ctx context.Context) (int, error) {
	var highest int
	if err := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("is_active = ?", true).
		Select("COALESCE(MAX(priority), 0)").
		Scan(&highest).Error; err != nil {
		return 0, errors.Wrap(err, "failed to find max active banner priority")
	}

	return highest, nil
}

// FindActiveByPriority returns the active banner holding priority.
func (repo *bannerRepository) FindActiveByPriority(ctx context.Context, priority int) (*entity.Banner, error) {
	var bannerM model.BannerModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND priority = ?", true, priority).
		First(&bannerM).Error; err != nil {
		return nil, translateReadError(err, "failed to find banner by priority")
	}

	return toBannerDomain(&bannerM), nil
}

func fromBannerDomain(b *entity.Banner) *model.BannerModel {
	return &model.BannerModel{
		ID:             b.ID,
		Title:          b.Title,
		ImageURL:       b.ImageURL,
		ImageKey:       b.ImageKey,
		MobileImageURL: b.MobileImageURL,
		MobileImageKey: b.MobileImageKey,
		RedirectURL:    b.RedirectURL,
		Priority:       b.Priority,
		IsActive:       b.IsActive,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toBannerDomain(m *model.BannerModel) *entity.Banner {
	return &entity.Banner{
		ID:             m.ID,
		Title:          m.Title,
		ImageURL:       m.ImageURL,
		ImageKey:       m.ImageKey,
		MobileImageURL: m.MobileImageURL,
		MobileImageKey: m.MobileImageKey,
		RedirectURL:    m.RedirectURL,
		Priority:       m.Priority,
		IsActive:       m.IsActive,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
