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

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	if err := repo.db.WithContext(ctx).Create(fromPlanDomain(plan)).Error; err != nil {
		return translateWriteError(err, "failed to create plan")
	}

	return nil
}

func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&planM).Error; err != nil {
		return nil, translateReadError(err, "failed to find plan by ID")
	}

	return toPlanDomain(&planM), nil
}

func (repo *planRepository) List(ctx context.Context, filter entity.PlanFilter, page entity.Page) ([]*entity.Plan, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PlanModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count plans")
	}

	var planModels []*model.PlanModel
	if err := query.Order("priority ASC, created_at ASC, id ASC").Scopes(paginate(page)).Find(&planModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, total, nil
}

func (repo *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	result := updateAll(repo.db.WithContext(ctx), fromPlanDomain(plan), plan.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlanModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete plan")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromPlanDomain(p *entity.Plan) *model.PlanModel {
	couponIDs := p.CouponIDs
	if couponIDs == nil {
		couponIDs = []uuid.UUID{}
	}

	return &model.PlanModel{
		ID:             p.ID,
		Name:           p.Name,
		Title:          p.Title,
		Amount:         p.Amount,
		DurationInDays: p.DurationInDays,
		Priority:       p.Priority,
		Status:         string(p.Status),
		CourseIDs:      nonNilStrings(p.CourseIDs),
		EbookIDs:       nonNilStrings(p.EbookIDs),
		CouponIDs:      couponIDs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPlanDomain(m *model.PlanModel) *entity.Plan {
	couponIDs := []uuid.UUID(m.CouponIDs)
	if couponIDs == nil {
		couponIDs = []uuid.UUID{}
	}

	return &entity.Plan{
		ID:             m.ID,
		Name:           m.Name,
		Title:          m.Title,
		Amount:         m.Amount,
		DurationInDays: m.DurationInDays,
		Priority:       m.Priority,
		Status:         entity.Status(m.Status),
		CourseIDs:      nonNilStrings(m.CourseIDs),
		EbookIDs:       nonNilStrings(m.EbookIDs),
		CouponIDs:      couponIDs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
