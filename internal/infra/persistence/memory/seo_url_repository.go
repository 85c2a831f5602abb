package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type seoURLRepository struct {
	db *table[entity.SEOURL]
}

// NewSEOURLRepository creates an SEO URL repository backed by db.
func NewSEOURLRepository(db *DB) repository.SEOURLRepository {
	return &seoURLRepository{db: db.seoURLs}
}

func (repo *seoURLRepository) urlTaken(seoURL *entity.SEOURL) bool {
	_, err := repo.db.first(func(s *entity.SEOURL) bool {
		return s.URL == seoURL.URL && s.ID != seoURL.ID
	})

	return err == nil
}

func (repo *seoURLRepository) Create(_ context.Context, seoURL *entity.SEOURL) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[seoURL.ID]; ok || repo.urlTaken(seoURL) {
		return repository.ErrDuplicate
	}
	repo.db.put(seoURL.ID, seoURL)

	return nil
}

func (repo *seoURLRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SEOURL, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *seoURLRepository) FindByURL(_ context.Context, url string) (*entity.SEOURL, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(s *entity.SEOURL) bool { return s.URL == url })
}

func (repo *seoURLRepository) List(_ context.Context, filter entity.SEOURLFilter, page entity.Page) ([]*entity.SEOURL, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(s *entity.SEOURL) bool {
		return filter.IsActive == nil || s.IsActive == *filter.IsActive
	})
	slices.SortFunc(rows, func(a, b *entity.SEOURL) int {
		return cmp.Or(cmp.Compare(b.Priority, a.Priority), cmp.Compare(a.URL, b.URL))
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *seoURLRepository) Update(_ context.Context, seoURL *entity.SEOURL) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[seoURL.ID]; !ok {
		return repository.ErrNotFound
	}
	if repo.urlTaken(seoURL) {
		return repository.ErrDuplicate
	}
	repo.db.put(seoURL.ID, seoURL)

	return nil
}

func (repo *seoURLRepository) UpdatePriority(_ context.Context, id uuid.UUID, priority float64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	row, ok := repo.db.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	row.Priority = priority
	row.UpdatedAt = time.Now()

	return nil
}

func (repo *seoURLRepository) Deactivate(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	row, ok := repo.db.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	row.IsActive = false
	row.UpdatedAt = time.Now()

	return nil
}
