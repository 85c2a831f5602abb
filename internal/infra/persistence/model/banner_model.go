// Package model contains the GORM table definitions of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BannerModel is the GORM-specific struct for the 'banners' table.
// The partial unique index keeps priorities unique among active banners only.
type BannerModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	Title          string     `gorm:"type:varchar(255);not null;default:''"`
	ImageURL       string     `gorm:"type:text;not null"`
	ImageKey       string     `gorm:"type:varchar(512);not null;default:''"`
	MobileImageURL string     `gorm:"type:text;not null;default:''"`
	MobileImageKey string     `gorm:"type:varchar(512);not null;default:''"`
	RedirectURL    string     `gorm:"type:text;not null;default:''"`
	Priority       int        `gorm:"not null;uniqueIndex:idx_banners_active_priority,where:is_active = true"`
	IsActive       bool       `gorm:"not null;default:true;index"`
	StartDate      *time.Time `gorm:"type:timestamptz"`
	EndDate        *time.Time `gorm:"type:timestamptz"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}
