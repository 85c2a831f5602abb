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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	if err := repo.db.WithContext(ctx).Create(fromCouponDomain(coupon)).Error; err != nil {
		return translateWriteError(err, "failed to create coupon")
	}

	return nil
}

func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&couponM).Error; err != nil {
		return nil, translateReadError(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).Where("code = ?", code).First(&couponM).Error; err != nil {
		return nil, translateReadError(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

func (repo *couponRepository) List(ctx context.Context, filter entity.CouponFilter, page entity.Page) ([]*entity.Coupon, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CouponModel{}).Scopes(whereActive(filter.IsActive))
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count coupons")
	}

	var couponModels []*model.CouponModel
	if err := query.Order("created_at DESC, code ASC").Scopes(paginate(page)).Find(&couponModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, total, nil
}

func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	result := updateAll(repo.db.WithContext(ctx), fromCouponDomain(coupon), coupon.ID)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CouponModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (repo *couponRepository) FindExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	var found []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find coupon IDs")
	}

	return found, nil
}

func fromCouponDomain(c *entity.Coupon) *model.CouponModel {
	return &model.CouponModel{
		ID:                  c.ID,
		Code:                c.Code,
		Description:         c.Description,
		Type:                string(c.Type),
		DiscountValue:       c.DiscountValue,
		UsageLimitPerUser:   c.UsageLimitPerUser,
		StartDate:           c.StartDate,
		ExpireDate:          c.ExpireDate,
		IsActive:            c.IsActive,
		ApplicableCourseIDs: nonNilStrings(c.ApplicableCourseIDs),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toCouponDomain(m *model.CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:                  m.ID,
		Code:                m.Code,
		Description:         m.Description,
		Type:                entity.DiscountType(m.Type),
		DiscountValue:       m.DiscountValue,
		UsageLimitPerUser:   m.UsageLimitPerUser,
		StartDate:           m.StartDate,
		ExpireDate:          m.ExpireDate,
		IsActive:            m.IsActive,
		ApplicableCourseIDs: nonNilStrings(m.ApplicableCourseIDs),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func nonNilStrings(ss []string) []string {
	if ss == nil {
		return []string{}
	}

	return ss
}
