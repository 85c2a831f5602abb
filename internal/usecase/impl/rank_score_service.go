package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courseadmin/config"
	"courseadmin/internal/domain/entity"
	domainerrors "courseadmin/internal/domain/errors"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/domain/service"
	"courseadmin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxScore = 100

type rankScoreService struct {
	rankScoreRepo repository.RankScoreRepository
	notifier      contentNotifier
	config        *config.Config
	now           func() time.Time
}

// RankScoreServiceParams holds dependencies for RankScoreService, injected by Fx.
type RankScoreServiceParams struct {
	fx.In

	RankScoreRepo repository.RankScoreRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRankScoreService creates a new rank score service instance
func NewRankScoreService(params RankScoreServiceParams) usecase.RankScoreUsecase {
	return &rankScoreService{
		rankScoreRepo: params.RankScoreRepo,
		notifier:      newContentNotifier(params.Publisher, params.Logger),
		config:        params.Config,
		now:           time.Now,
	}
}

// RecordRankScore appends one attempt to the log.
func (s *rankScoreService) RecordRankScore(ctx context.Context, input *usecase.RecordRankScoreInput) (*entity.RankScore, error) {
	score := &entity.RankScore{
		ID:         uuid.New(),
		UserID:     strings.TrimSpace(input.UserID),
		CourseID:   strings.TrimSpace(input.CourseID),
		RankScore:  input.RankScore,
		LevelScore: input.LevelScore,
		Level:      input.Level,
		CreatedAt:  s.now(),
	}

	verr := domainerrors.NewValidationError()
	if score.UserID == "" {
		verr.Add("userId", "userId is required")
	}
	if score.CourseID == "" {
		verr.Add("courseId", "courseId is required")
	}
	if score.RankScore < 0 || score.RankScore > maxScore {
		verr.Add("rankScore", "rankScore must be between 0 and 100")
	}
	if score.LevelScore < 0 || score.LevelScore > maxScore {
		verr.Add("levelScore", "levelScore must be between 0 and 100")
	}
	if !score.Level.IsValid() {
		verr.Add("level", "level must be one of: Beginner, Medium, Advanced, Pro")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if err := s.rankScoreRepo.Create(ctx, score); err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "create rank score")
	}

	s.notifier.notify(ctx, resourceRankScore, service.ActionCreated, score.ID)

	return score, nil
}

// GetRankScore retrieves a single attempt by ID
func (s *rankScoreService) GetRankScore(ctx context.Context, id uuid.UUID) (*entity.RankScore, error) {
	score, err := s.rankScoreRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "find rank score")
	}

	return score, nil
}

// ListRankScores returns one page of attempts, newest first
func (s *rankScoreService) ListRankScores(ctx context.Context, filter entity.RankScoreFilter, page entity.Page) (*entity.PageResult[*entity.RankScore], error) {
	page = normalizePage(s.config, page)
	scores, total, err := s.rankScoreRepo.List(ctx, filter, page)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "list rank scores")
	}

	return entity.NewPageResult(scores, total, page), nil
}

// GetMaxScore returns the user's best attempt on a course
func (s *rankScoreService) GetMaxScore(ctx context.Context, userID, courseID string) (*entity.RankScore, error) {
	score, err := s.rankScoreRepo.FindTop(ctx, userID, courseID)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "find top rank score")
	}

	return score, nil
}

// GetUserSummary returns the user's best result on every course attempted.
// A user without attempts gets an empty summary.
func (s *rankScoreService) GetUserSummary(ctx context.Context, userID string) ([]*entity.ScoreSummary, error) {
	summaries, err := s.rankScoreRepo.SummarizeByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "summarize rank scores by user")
	}
	if summaries == nil {
		summaries = []*entity.ScoreSummary{}
	}

	return summaries, nil
}

// GetLeaderboard ranks users on a course by their best attempt.
func (s *rankScoreService) GetLeaderboard(ctx context.Context, courseID string, limit int) ([]*entity.LeaderboardEntry, error) {
	_, maxLimit := s.config.PageLimits()
	if limit <= 0 {
		limit = s.config.LeaderboardLimit()
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	summaries, err := s.rankScoreRepo.SummarizeByCourse(ctx, courseID, limit)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrRankScoreNotFound, nil, "summarize rank scores by course")
	}

	entries := make([]*entity.LeaderboardEntry, 0, len(summaries))
	for i, summary := range summaries {
		if i == limit {
			break
		}
		entries = append(entries, &entity.LeaderboardEntry{Rank: i + 1, ScoreSummary: *summary})
	}

	return entries, nil
}
