package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel is the GORM-specific struct for the 'sections' table.
type SectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text;not null;default:''"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SectionModel) TableName() string {
	return "sections"
}

// TeacherModel is the GORM-specific struct for the 'teachers' table.
type TeacherModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Designation string    `gorm:"type:varchar(255);not null;default:''"`
	Description string    `gorm:"type:text;not null;default:''"`
	ImageURL    string    `gorm:"type:text;not null;default:''"`
	ImageKey    string    `gorm:"type:varchar(512);not null;default:''"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}
