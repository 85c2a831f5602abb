package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
type CouponModel struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primary_key"`
	Code                string                      `gorm:"type:varchar(64);not null;uniqueIndex"`
	Description         string                      `gorm:"type:text;not null;default:''"`
	Type                string                      `gorm:"type:varchar(16);not null;index"`
	DiscountValue       float64                     `gorm:"type:numeric(12,2);not null;check:discount_value >= 0"`
	UsageLimitPerUser   int                         `gorm:"not null;default:1;check:usage_limit_per_user >= 1"`
	StartDate           time.Time                   `gorm:"type:timestamptz;not null"`
	ExpireDate          time.Time                   `gorm:"type:timestamptz;not null"`
	IsActive            bool                        `gorm:"not null;default:true;index"`
	ApplicableCourseIDs datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
