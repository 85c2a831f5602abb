package postgres

import (
	"courseadmin/internal/domain/entity"

	"gorm.io/gorm"
)

// paginate applies offset pagination to a query.
func paginate(page entity.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit <= 0 {
			return db
		}

		return db.Offset(page.Offset()).Limit(page.Limit)
	}
}

// whereActive filters on is_active when the filter sets it.
func whereActive(isActive *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if isActive == nil {
			return db
		}

		return db.Where("is_active = ?", *isActive)
	}
}

// updateAll overwrites every column except the key and creation time, and
// reports ErrNotFound through rowsAffected == 0.
func updateAll(db *gorm.DB, row any, id any) *gorm.DB {
	return db.Model(row).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(row)
}
