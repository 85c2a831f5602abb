package postgres

import (
	"context"
	"fmt"

	"courseadmin/internal/domain/entity"
	"courseadmin/internal/domain/repository"
	"courseadmin/internal/errors"
	"courseadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// bestAttemptPerGroup keeps the best attempt of each group (latest wins a tie)
// alongside the group's latest attempt time and attempt count.
const bestAttemptPerGroup = `
SELECT DISTINCT ON (%[1]s)
	user_id,
	course_id,
	rank_score AS max_rank_score,
	level_score,
	level,
	MAX(created_at) OVER (PARTITION BY %[1]s) AS last_attempt_at,
	COUNT(*) OVER (PARTITION BY %[1]s) AS attempts
FROM rank_scores
WHERE %[2]s = ?
ORDER BY %[1]s, rank_score DESC, created_at DESC, id DESC`

// rankScoreRepository implements the repository.RankScoreRepository interface.
type rankScoreRepository struct {
	db *gorm.DB
}

// NewRankScoreRepository is the constructor for rankScoreRepository.
func NewRankScoreRepository(db *gorm.DB) repository.RankScoreRepository {
	return &rankScoreRepository{db: db}
}

func (repo *rankScoreRepository) Create(ctx context.Context, score *entity.RankScore) error {
	scoreM := &model.RankScoreModel{
		ID:         score.ID,
		UserID:     score.UserID,
		CourseID:   score.CourseID,
		RankScore:  score.RankScore,
		LevelScore: score.LevelScore,
		Level:      string(score.Level),
		CreatedAt:  score.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(scoreM).Error; err != nil {
		return translateWriteError(err, "failed to create rank score")
	}

	return nil
}

func (repo *rankScoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RankScore, error) {
	var scoreM model.RankScoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&scoreM).Error; err != nil {
		return nil, translateReadError(err, "failed to find rank score by ID")
	}

	return toRankScoreDomain(&scoreM), nil
}

func (repo *rankScoreRepository) List(ctx context.Context, filter entity.RankScoreFilter, page entity.Page) ([]*entity.RankScore, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RankScoreModel{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CourseID != "" {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", string(filter.Level))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rank scores")
	}

	var scoreModels []*model.RankScoreModel
	if err := query.Order("created_at DESC, id DESC").Scopes(paginate(page)).Find(&scoreModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rank scores")
	}

	scores := make([]*entity.RankScore, 0, len(scoreModels))
	for _, scoreM := range scoreModels {
		scores = append(scores, toRankScoreDomain(scoreM))
	}

	return scores, total, nil
}

func (repo *rankScoreRepository) FindTop(ctx context.Context, userID, courseID string) (*entity.RankScore, error) {
	var scoreM model.RankScoreModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("rank_score DESC, created_at DESC, id DESC").
		First(&scoreM).Error; err != nil {
		return nil, translateReadError(err, "failed to find top rank score")
	}

	return toRankScoreDomain(&scoreM), nil
}

func (repo *rankScoreRepository) SummarizeByUser(ctx context.Context, userID string) ([]*entity.ScoreSummary, error) {
	var rows []*model.ScoreSummaryRow
	err := repo.db.WithContext(ctx).
		Table("(?) AS best", gorm.Expr(bestAttemptQuery("course_id", "user_id"), userID)).
		Order("max_rank_score DESC, course_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize rank scores by user")
	}

	return toScoreSummaries(rows), nil
}

func (repo *rankScoreRepository) SummarizeByCourse(ctx context.Context, courseID string, limit int) ([]*entity.ScoreSummary, error) {
	query := repo.db.WithContext(ctx).
		Table("(?) AS best", gorm.Expr(bestAttemptQuery("user_id", "course_id"), courseID)).
		Order("max_rank_score DESC, last_attempt_at ASC, user_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.ScoreSummaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize rank scores by course")
	}

	return toScoreSummaries(rows), nil
}

// bestAttemptQuery groups by one of user_id/course_id and filters on the other.
func bestAttemptQuery(groupBy, filterBy string) string {
	return fmt.Sprintf(bestAttemptPerGroup, groupBy, filterBy)
}

func toScoreSummaries(rows []*model.ScoreSummaryRow) []*entity.ScoreSummary {
	summaries := make([]*entity.ScoreSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.ScoreSummary{
			UserID:        row.UserID,
			CourseID:      row.CourseID,
			MaxRankScore:  row.MaxRankScore,
			LevelScore:    row.LevelScore,
			Level:         entity.Level(row.Level),
			LastAttemptAt: row.LastAttemptAt,
			Attempts:      row.Attempts,
		})
	}

	return summaries
}

func toRankScoreDomain(m *model.RankScoreModel) *entity.RankScore {
	return &entity.RankScore{
		ID:         m.ID,
		UserID:     m.UserID,
		CourseID:   m.CourseID,
		RankScore:  m.RankScore,
		LevelScore: m.LevelScore,
		Level:      entity.Level(m.Level),
		CreatedAt:  m.CreatedAt,
	}
}
