package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlanModel is the GORM-specific struct for the 'subscription_plans' table.
// Course and ebook references belong to other services and are stored as opaque IDs.
type PlanModel struct {
	ID             uuid.UUID                      `gorm:"type:uuid;primary_key"`
	Name           string                         `gorm:"type:varchar(255);not null"`
	Title          string                         `gorm:"type:varchar(255);not null;default:''"`
	Amount         float64                        `gorm:"type:numeric(12,2);not null;check:amount >= 0"`
	DurationInDays int                            `gorm:"not null;check:duration_in_days >= 1"`
	Priority       int                            `gorm:"not null;default:0;index"`
	Status         string                         `gorm:"type:varchar(16);not null;default:'active';index"`
	CourseIDs      datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null;default:'[]'"`
	EbookIDs       datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null;default:'[]'"`
	CouponIDs      datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "subscription_plans"
}
