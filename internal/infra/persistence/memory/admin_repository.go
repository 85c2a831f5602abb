package memory

import (
	"context"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type adminRepository struct {
	db *table[entity.Admin]
}

// NewAdminRepository creates an admin repository backed by db.
func NewAdminRepository(db *DB) repository.AdminRepository {
	return &adminRepository{db: db.admins}
}

func (repo *adminRepository) Create(_ context.Context, admin *entity.Admin) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	_, err := repo.db.first(func(a *entity.Admin) bool { return a.Email == admin.Email })
	if _, ok := repo.db.rows[admin.ID]; ok || err == nil {
		return repository.ErrDuplicate
	}
	repo.db.put(admin.ID, admin)

	return nil
}

func (repo *adminRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *adminRepository) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(a *entity.Admin) bool { return a.Email == email })
}

func (repo *adminRepository) Count(_ context.Context) (int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return int64(len(repo.db.rows)), nil
}
