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

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := &model.AdminModel{
		ID:           admin.ID,
		Email:        admin.Email,
		Name:         admin.Name,
		PasswordHash: admin.PasswordHash,
		Role:         admin.Role.String(),
		IsActive:     admin.IsActive,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		return translateWriteError(err, "failed to create admin")
	}

	return nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&adminM).Error; err != nil {
		return nil, translateReadError(err, "failed to find admin by ID")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&adminM).Error; err != nil {
		return nil, translateReadError(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}

func toAdminDomain(m *model.AdminModel) *entity.Admin {
	return &entity.Admin{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
