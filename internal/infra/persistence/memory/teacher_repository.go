package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type teacherRepository struct {
	db *table[entity.Teacher]
}

// NewTeacherRepository creates a teacher repository backed by db.
func NewTeacherRepository(db *DB) repository.TeacherRepository {
	return &teacherRepository{db: db.teachers}
}

func (repo *teacherRepository) nameTaken(teacher *entity.Teacher) bool {
	_, err := repo.db.first(func(t *entity.Teacher) bool {
		return t.Name == teacher.Name && t.ID != teacher.ID
	})

	return err == nil
}

func (repo *teacherRepository) Create(_ context.Context, teacher *entity.Teacher) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[teacher.ID]; ok || repo.nameTaken(teacher) {
		return repository.ErrDuplicate
	}
	repo.db.put(teacher.ID, teacher)

	return nil
}

func (repo *teacherRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *teacherRepository) FindByName(_ context.Context, name string) (*entity.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.first(func(t *entity.Teacher) bool { return t.Name == name })
}

func (repo *teacherRepository) List(_ context.Context, filter entity.NamedFilter, page entity.Page) ([]*entity.Teacher, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(t *entity.Teacher) bool {
		return (filter.IsActive == nil || t.IsActive == *filter.IsActive) &&
			(filter.Name == "" || t.Name == filter.Name)
	})
	slices.SortFunc(rows, func(a, b *entity.Teacher) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.Name, b.Name))
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *teacherRepository) Update(_ context.Context, teacher *entity.Teacher) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[teacher.ID]; !ok {
		return repository.ErrNotFound
	}
	if repo.nameTaken(teacher) {
		return repository.ErrDuplicate
	}
	repo.db.put(teacher.ID, teacher)

	return nil
}

func (repo *teacherRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(repo.db.rows, id)

	return nil
}
