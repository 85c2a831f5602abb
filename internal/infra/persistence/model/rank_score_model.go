package model

import (
	"time"

	"github.com/google/uuid"
)

// RankScoreModel is the GORM-specific struct for the append-only 'rank_scores' table.
type RankScoreModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     string    `gorm:"type:varchar(128);not null;index:idx_rank_scores_user_course,priority:1"`
	CourseID   string    `gorm:"type:varchar(128);not null;index:idx_rank_scores_user_course,priority:2;index"`
	RankScore  int       `gorm:"not null;check:rank_score BETWEEN 0 AND 100"`
	LevelScore int       `gorm:"not null;check:level_score BETWEEN 0 AND 100"`
	Level      string    `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (RankScoreModel) TableName() string {
	return "rank_scores"
}

// ScoreSummaryRow is the scan target of the rank score aggregation queries.
type ScoreSummaryRow struct {
	UserID        string
	CourseID      string
	MaxRankScore  int
	LevelScore    int
	Level         string
	LastAttemptAt time.Time
	Attempts      int
}
