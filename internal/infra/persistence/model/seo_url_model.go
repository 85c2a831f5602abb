package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SEOURLModel is the GORM-specific struct for the 'seo_urls' table.
type SEOURLModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key"`
	URL             string                      `gorm:"type:varchar(2048);not null;uniqueIndex"`
	Title           string                      `gorm:"type:varchar(255);not null;default:''"`
	MetaDescription string                      `gorm:"type:text;not null;default:''"`
	Keywords        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Priority        float64                     `gorm:"not null;default:0.5;check:priority BETWEEN 0 AND 1"`
	IsActive        bool                        `gorm:"not null;default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SEOURLModel) TableName() string {
	return "seo_urls"
}
