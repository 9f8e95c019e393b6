package database

import (
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// NotDeleted excludes soft-deleted rows. Default for list and lookup
// queries; direct-by-id resolution skips it so callers can tell
// "already deleted" from "never existed".
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}
