package repository

import (
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID finds a comment by ID regardless of deletion state
func (r *GormCommentRepository) FindByID(id uint64) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByProject retrieves non-deleted comments attached to a project
func (r *GormCommentRepository) ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Comment, int64, error) {
	return r.list(r.db.Where("project_id = ?", projectID), params)
}

// ListByTask retrieves non-deleted comments attached to a task
func (r *GormCommentRepository) ListByTask(taskID uint64, params utils.PaginationParams) ([]models.Comment, int64, error) {
	return r.list(r.db.Where("task_id = ?", taskID), params)
}

func (r *GormCommentRepository) list(base *gorm.DB, params utils.PaginationParams) ([]models.Comment, int64, error) {
	base = base.Model(&models.Comment{}).Scopes(database.NotDeleted)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	if err := base.Scopes(database.Paginate(params)).
		Order("created_at").
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Update persists comment mutations
func (r *GormCommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}
