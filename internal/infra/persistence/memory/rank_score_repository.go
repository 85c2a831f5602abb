package memory

import (
	"cmp"
	"context"
	"slices"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"

	"github.com/google/uuid"
)

type rankScoreRepository struct {
	db *table[entity.RankScore]
}

// NewRankScoreRepository creates an append-only rank score repository backed by db.
func NewRankScoreRepository(db *DB) repository.RankScoreRepository {
	return &rankScoreRepository{db: db.rankScores}
}

func (repo *rankScoreRepository) Create(_ context.Context, score *entity.RankScore) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rows[score.ID]; ok {
		return repository.ErrDuplicate
	}
	repo.db.put(score.ID, score)

	return nil
}

func (repo *rankScoreRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.RankScore, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	return repo.db.find(id)
}

func (repo *rankScoreRepository) List(_ context.Context, filter entity.RankScoreFilter, page entity.Page) ([]*entity.RankScore, int64, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(r *entity.RankScore) bool {
		return (filter.UserID == "" || r.UserID == filter.UserID) &&
			(filter.CourseID == "" || r.CourseID == filter.CourseID) &&
			(filter.Level == "" || r.Level == filter.Level)
	})
	slices.SortFunc(rows, newestFirst)

	return paginate(rows, page), int64(len(rows)), nil
}

func (repo *rankScoreRepository) FindTop(_ context.Context, userID, courseID string) (*entity.RankScore, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := repo.db.query(func(r *entity.RankScore) bool {
		return r.UserID == userID && r.CourseID == courseID
	})
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}

	return slices.MinFunc(rows, bestFirst), nil
}

func (repo *rankScoreRepository) SummarizeByUser(_ context.Context, userID string) ([]*entity.ScoreSummary, error) {
	repo.db.mutex.RLock()
	rows := repo.db.query(func(r *entity.RankScore) bool { return r.UserID == userID })
	repo.db.mutex.RUnlock()

	summaries := summarize(rows, func(r *entity.RankScore) string { return r.CourseID })
	slices.SortFunc(summaries, func(a, b *entity.ScoreSummary) int {
		return cmp.Or(cmp.Compare(b.MaxRankScore, a.MaxRankScore), cmp.Compare(a.CourseID, b.CourseID))
	})

	return summaries, nil
}

func (repo *rankScoreRepository) SummarizeByCourse(_ context.Context, courseID string, limit int) ([]*entity.ScoreSummary, error) {
	repo.db.mutex.RLock()
	rows := repo.db.query(func(r *entity.RankScore) bool { return r.CourseID == courseID })
	repo.db.mutex.RUnlock()

	summaries := summarize(rows, func(r *entity.RankScore) string { return r.UserID })
	slices.SortFunc(summaries, func(a, b *entity.ScoreSummary) int {
		return cmp.Or(
			cmp.Compare(b.MaxRankScore, a.MaxRankScore),
			a.LastAttemptAt.Compare(b.LastAttemptAt),
			cmp.Compare(a.UserID, b.UserID),
		)
	})
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}

	return summaries, nil
}

// summarize reduces attempts per group: the best attempt supplies the score and
// level fields, the latest attempt supplies lastAttemptAt.
func summarize(rows []*entity.RankScore, groupKey func(*entity.RankScore) string) []*entity.ScoreSummary {
	type group struct {
		best    *entity.RankScore
		summary *entity.ScoreSummary
	}

	groups := make(map[string]*group)
	order := make([]string, 0)
	for _, r := range rows {
		key := groupKey(r)
		g, ok := groups[key]
		if !ok {
			g = &group{best: r, summary: &entity.ScoreSummary{UserID: r.UserID, CourseID: r.CourseID}}
			groups[key] = g
			order = append(order, key)
		}
		if bestFirst(r, g.best) < 0 {
			g.best = r
		}
		if r.CreatedAt.After(g.summary.LastAttemptAt) {
			g.summary.LastAttemptAt = r.CreatedAt
		}
		g.summary.Attempts++
	}

	out := make([]*entity.ScoreSummary, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.summary.MaxRankScore = g.best.RankScore
		g.summary.LevelScore = g.best.LevelScore
		g.summary.Level = g.best.Level
		out = append(out, g.summary)
	}

	return out
}

// bestFirst orders attempts by score descending; among equal scores the latest wins.
func bestFirst(a, b *entity.RankScore) int {
	return cmp.Or(
		cmp.Compare(b.RankScore, a.RankScore),
		b.CreatedAt.Compare(a.CreatedAt),
		cmp.Compare(b.ID.String(), a.ID.String()),
	)
}

func newestFirst(a, b *entity.RankScore) int {
	return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID.String(), a.ID.String()))
}
