package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type planRepository struct {
	db *table[entity.Plan]
}

// NewPlanRepository creates a plan repository backed by db.
func NewPlanRepository(db *DB) repository.PlanRepository {
	return &planRepository{db: db.plans}
}

func (repo *planRepository) Create(_ context.Context, plan *entity.Plan) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[plan.ID]; ok {
		return repository.ErrDuplicate
	}
	repo.db.put(plan.ID, plan)

	return nil
}

func (repo *planRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Plan, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *planRepository) List(_ context.Context, filter entity.PlanFilter, page entity.Page) ([]*entity.Plan, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(p *entity.Plan) bool {
		return filter.Status == "" || p.Status == filter.Status
	})
	slices.SortFunc(rows, func(a, b *entity.Plan) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *planRepository) Update(_ context.Context, plan *entity.Plan) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[plan.ID]; !ok {
		return repository.ErrNotFound
	}
	repo.db.put(plan.ID, plan)

	return nil
}

func (repo *planRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(repo.db.rows, id)

	return nil
}
