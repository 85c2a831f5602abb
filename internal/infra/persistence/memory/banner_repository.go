package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type bannerRepository struct {
	db *table[entity.Banner]
}

// NewBannerRepository creates a banner repository backed by db.
func NewBannerRepository(db *DB) repository.BannerRepository {
	return &bannerRepository{db: db.banners}
}

// priorityHeld mirrors the partial unique index on active priorities. Callers hold the lock.
func (repo *bannerRepository) priorityHeld(banner *entity.Banner) bool {
	if !banner.IsActive {
		return false
	}
	_, err := repo.db.first(func(b *entity.Banner) bool {
		return b.IsActive && b.Priority == banner.Priority && b.ID != banner.ID
	})

	return err == nil
}

func (repo *bannerRepository) Create(_ context.Context, banner *entity.Banner) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[banner.ID]; ok || repo.priorityHeld(banner) {
		return repository.ErrDuplicate
	}
	repo.db.put(banner.ID, banner)

	return nil
}

func (repo *bannerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Banner, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *bannerRepository) List(_ context.Context, filter entity.BannerFilter, page entity.Page) ([]*entity.Banner, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(b *entity.Banner) bool {
		return filter.IsActive == nil || b.IsActive == *filter.IsActive
	})
	slices.SortFunc(rows, func(a, b *entity.Banner) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *bannerRepository) Update(_ context.Context, banner *entity.Banner) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[banner.ID]; !ok {
		return repository.ErrNotFound
	}
	if repo.priorityHeld(banner) {
		return repository.ErrDuplicate
	}
	repo.db.put(banner.ID, banner)

	return nil
}

func (repo *bannerRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(repo.db.rows, id)

	return nil
}

func (repo *bannerRepository) MaxActivePriority(_ context.Context) (int, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	highest := 0
	for _, b := range repo.db.rows {
		if b.IsActive && b.Priority > highest {
			highest = b.Priority
		}
	}

	return highest, nil
}

func (repo *bannerRepository) FindActiveByPriority(_ context.Context, priority int) (*entity.Banner, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(b *entity.Banner) bool {
		return b.IsActive && b.Priority == priority
	})
}
