// Package memory is an in-process implementation of the persistence layer.
// It backs the "memory" database driver used for local development and tests.
package memory

import (
	"slices"
	"sync"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type (
	// DB holds one table per entity.
	DB struct {
		banners    *table[entity.Banner]
		coupons    *table[entity.Coupon]
		plans      *table[entity.Plan]
		sections   *table[entity.Section]
		teachers   *table[entity.Teacher]
		rankScores *table[entity.RankScore]
		seoURLs    *table[entity.SEOURL]
		admins     *table[entity.Admin]

		// txMutex serialises transactions against each other.
		txMutex sync.Mutex
	}

	table[T any] struct {
		rows  map[uuid.UUID]*T
		clone func(*T) *T
		mutex sync.RWMutex
	}
)

// Open returns an empty database.
func Open() *DB {
	return &DB{
		banners:    newTable(func(b *entity.Banner) *entity.Banner { c := *b; return &c }),
		coupons:    newTable(cloneCoupon),
		plans:      newTable(clonePlan),
		sections:   newTable(func(s *entity.Section) *entity.Section { c := *s; return &c }),
		teachers:   newTable(func(t *entity.Teacher) *entity.Teacher { c := *t; return &c }),
		rankScores: newTable(func(r *entity.RankScore) *entity.RankScore { c := *r; return &c }),
		seoURLs:    newTable(cloneSEOURL),
		admins:     newTable(func(a *entity.Admin) *entity.Admin { c := *a; return &c }),
	}
}

func newTable[T any](clone func(*T) *T) *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*T), clone: clone}
}

// find returns a copy of the row with id. Callers hold the lock.
func (t *table[T]) find(id uuid.UUID) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return t.clone(row), nil
}

// query returns copies of every row matching keep. Callers hold the lock.
func (t *table[T]) query(keep func(*T) bool) []*T {
	out := make([]*T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, t.clone(row))
		}
	}

	return out
}

// first returns a copy of the first row matching keep. Callers hold the lock.
func (t *table[T]) first(keep func(*T) bool) (*T, error) {
	for _, row := range t.rows {
		if keep(row) {
			return t.clone(row), nil
		}
	}

	return nil, repository.ErrNotFound
}

func (t *table[T]) put(id uuid.UUID, row *T) {
	t.rows[id] = t.clone(row)
}

// paginate slices an already sorted result.
func paginate[T any](rows []*T, page entity.Page) []*T {
	if page.Limit <= 0 {
		return rows
	}

	start := page.Offset()
	if start >= len(rows) {
		return []*T{}
	}
	end := min(start+page.Limit, len(rows))

	return rows[start:end]
}

func cloneCoupon(c *entity.Coupon) *entity.Coupon {
	out := *c
	out.ApplicableCourseIDs = slices.Clone(c.ApplicableCourseIDs)

	return &out
}

func clonePlan(p *entity.Plan) *entity.Plan {
	out := *p
	out.CourseIDs = slices.Clone(p.CourseIDs)
	out.EbookIDs = slices.Clone(p.EbookIDs)
	out.CouponIDs = slices.Clone(p.CouponIDs)

	return &out
}

func cloneSEOURL(s *entity.SEOURL) *entity.SEOURL {
	out := *s
	out.Keywords = slices.Clone(s.Keywords)

	return &out
}
