package repository

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// RankScoreRepository is the append-only store of rank score attempts.
// There is deliberately no update or delete.
type RankScoreRepository interface {
	Create(ctx context.Context, score *entity.RankScore) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RankScore, error)

	// List returns attempts newest first.
	List(ctx context.Context, filter entity.RankScoreFilter, page entity.Page) ([]*entity.RankScore, int64, error)

	// FindTop returns the highest scoring attempt for the user on the course, or ErrNotFound.
	FindTop(ctx context.Context, userID, courseID string) (*entity.RankScore, error)

	// SummarizeByUser groups the user's attempts by course, ordered by best score descending.
	SummarizeByUser(ctx context.Context, userID string) ([]*entity.ScoreSummary, error)

	// SummarizeByCourse groups the course's attempts by user, best score first,
	// and returns at most limit groups.
	SummarizeByCourse(ctx context.Context, courseID string, limit int) ([]*entity.ScoreSummary, error)
}
