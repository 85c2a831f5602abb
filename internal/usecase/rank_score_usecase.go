package usecase

import (
	"context"

	"courseadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordRankScoreInput carries one validated attempt.
type RecordRankScoreInput struct {
	UserID     string
	CourseID   string
	RankScore  int
	LevelScore int
	Level      entity.Level
}

// RankScoreUsecase records attempts and derives leaderboard views from them
type RankScoreUsecase interface {
	RecordRankScore(ctx context.Context, input *RecordRankScoreInput) (*entity.RankScore, error)
	GetRankScore(ctx context.Context, id uuid.UUID) (*entity.RankScore, error)
	ListRankScores(ctx context.Context, filter entity.RankScoreFilter, page entity.Page) (*entity.PageResult[*entity.RankScore], error)

	// GetMaxScore returns the user's best attempt on the course.
	GetMaxScore(ctx context.Context, userID, courseID string) (*entity.RankScore, error)

	// GetUserSummary returns the user's best result per course, best first.
	GetUserSummary(ctx context.Context, userID string) ([]*entity.ScoreSummary, error)

	// GetLeaderboard ranks users on a course by their best attempt. limit <= 0 uses the default.
	GetLeaderboard(ctx context.Context, courseID string, limit int) ([]*entity.LeaderboardEntry, error)
}
