package memory

import (
	"context"

	"courseadmin/internal/domain/repository"
)

type transactionManager struct {
	db *DB
}

// NewTransactionManager returns a TransactionManager that serialises units of work.
// Writes made before a failing step are not rolled back; callers validate before writing.
func NewTransactionManager(db *DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn while holding the database-wide transaction lock.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.db.txMutex.Lock()
	defer tm.db.txMutex.Unlock()

	return fn(&repositoryFactory{db: tm.db})
}

type repositoryFactory struct {
	db *DB
}

// NewBannerRepository returns a banner repository on the shared database.
func (f *repositoryFactory) NewBannerRepository() repository.BannerRepository {
	return NewBannerRepository(f.db)
}

// NewCouponRepository returns a coupon repository on the shared database.
func (f *repositoryFactory) NewCouponRepository() repository.CouponRepository {
	return NewCouponRepository(f.db)
}

// NewPlanRepository returns a plan repository on the shared database.
func (f *repositoryFactory) NewPlanRepository() repository.PlanRepository {
	return NewPlanRepository(f.db)
}
