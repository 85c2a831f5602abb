package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type sectionRepository struct {
	db *table[entity.Section]
}

// NewSectionRepository creates a section repository backed by db.
func NewSectionRepository(db *DB) repository.SectionRepository {
	return &sectionRepository{db: db.sections}
}

func (repo *sectionRepository) nameTaken(section *entity.Section) bool {
	_, err := repo.db.first(func(s *entity.Section) bool {
		return s.Name == section.Name && s.ID != section.ID
	})

	return err == nil
}

func (repo *sectionRepository) Create(_ context.Context, section *entity.Section) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[section.ID]; ok || repo.nameTaken(section) {
		return repository.ErrDuplicate
	}
	repo.db.put(section.ID, section)

	return nil
}

func (repo *sectionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Section, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *sectionRepository) FindByName(_ context.Context, name string) (*entity.Section, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(s *entity.Section) bool { return s.Name == name })
}

func (repo *sectionRepository) List(_ context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Section, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(s *entity.Section) bool {
		return (filter.IsActive == nil || s.IsActive == *filter.IsActive) &&
			(filter.Name == "" || s.Name == filter.Name)
	})
	slices.SortFunc(rows, func(a, b *entity.Section) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.Name, b.Name))
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *sectionRepository) Update(_ context.Context, section *entity.Section) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[section.ID]; !ok {
		return repository.ErrNotFound
	}
	if repo.nameTaken(section) {
		return repository.ErrDuplicate
	}
	repo.db.put(section.ID, section)

	return nil
}

func (repo *sectionRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(repo.db.rows, id)

	return nil
}
