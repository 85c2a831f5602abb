package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type couponRepository struct {
	db *table[entity.Coupon]
}

// NewCouponRepository creates a coupon repository backed by db.
func NewCouponRepository(db *DB) repository.CouponRepository {
	return &couponRepository{db: db.coupons}
}

func (repo *couponRepository) codeTaken(coupon *entity.Coupon) bool {
	_, err := repo.db.first(func(c *entity.Coupon) bool {
		return c.Code == coupon.Code && c.ID != coupon.ID
	})

	return err == nil
}

func (repo *couponRepository) Create(_ context.Context, coupon *entity.Coupon) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[coupon.ID]; ok || repo.codeTaken(coupon) {
		return repository.ErrDuplicate
	}
	repo.db.put(coupon.ID, coupon)

	return nil
}

func (repo *couponRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Coupon, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *couponRepository) FindByCode(_ context.Context, code string) (*entity.Coupon, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(c *entity.Coupon) bool { return c.Code == code })
}

func (repo *couponRepository) List(_ context.Context, filter entity.CouponFilter, page entity.Page) ([]*entity.Coupon, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(c *entity.Coupon) bool {
		return (filter.IsActive == nil || c.IsActive == *filter.IsActive) &&
			(filter.Type == "" || c.Type == filter.Type) &&
			(filter.Code == "" || c.Code == filter.Code)
	})
	slices.SortFunc(rows, func(a, b *entity.Coupon) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.Code, b.Code))
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *couponRepository) Update(_ context.Context, coupon *entity.Coupon) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[coupon.ID]; !ok {
		return repository.ErrNotFound
	}
	if repo.codeTaken(coupon) {
		return repository.ErrDuplicate
	}
	repo.db.put(coupon.ID, coupon)

	return nil
}

func (repo *couponRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(repo.db.rows, id)

	return nil
}

func (repo *couponRepository) FindExistingIDs(_ context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	found := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := repo.db.rows[id]; ok {
			found = append(found, id)
		}
	}

	return found, nil
}
