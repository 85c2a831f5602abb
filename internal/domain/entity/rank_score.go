package entity

import (
	"time"

	"github.com/google/uuid"
)

// Level is the ordered skill bracket attached to a rank score.
type Level string

const (
	LevelBeginner Level = "Beginner"
	LevelMedium   Level = "Medium"
	LevelAdvanced Level = "Advanced"
	LevelPro      Level = "Pro"
)

// Levels lists every level in ascending order.
var Levels = []Level{LevelBeginner, LevelMedium, LevelAdvanced, LevelPro}

// IsValid checks if the Level is a known value.
func (l Level) IsValid() bool {
	for _, level := range Levels {
		if l == level {
			return true
		}
	}

	return false
}

// RankScore is one attempt in the append-only score log.
type RankScore struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"userId"`
	CourseID   string    `json:"courseId"`
	RankScore  int       `json:"rankScore"`
	LevelScore int       `json:"levelScore"`
	Level      Level     `json:"level"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RankScoreFilter is the whitelisted exact-match filter for listing attempts.
type RankScoreFilter struct {
	UserID   string
	CourseID string
	Level    Level
}

// ScoreSummary is the per-group reduction of attempts: the best score, the level
// fields of the attempt that produced it, the latest attempt time and the count.
type ScoreSummary struct {
	UserID        string    `json:"userId,omitempty"`
	CourseID      string    `json:"courseId,omitempty"`
	MaxRankScore  int       `json:"maxRankScore"`
	LevelScore    int       `json:"levelScore"`
	Level         Level     `json:"level"`
	LastAttemptAt time.Time `json:"lastAttemptAt"`
	Attempts      int       `json:"attempts"`
}

// LeaderboardEntry is a ranked row of a course leaderboard.
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	ScoreSummary
}
