package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a task and its creator admin row in one transaction
func (r *GormTaskRepository) Create(task *models.Task, admin *models.TaskAdmin) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		admin.TaskID = task.ID
		return tx.Create(admin).Error
	})
}

// FindByID finds a task by ID with admins preloaded, regardless of
// deletion state
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Admins").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject retrieves non-deleted tasks for a project
func (r *GormTaskRepository) ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	base := r.db.Model(&models.Task{}).Scopes(database.NotDeleted).
		Where("project_id = ?", projectID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := base.Preload("Admins").
		Scopes(database.Paginate(params)).
		Order("name").
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update persists task mutations. Admin rows are managed through
// AddAdmin and RemoveAdmin, so the association is skipped here.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// AddAdmin adds an admin row
func (r *GormTaskRepository) AddAdmin(admin *models.TaskAdmin) error {
	return r.db.Create(admin).Error
}

// RemoveAdmin removes an admin row
func (r *GormTaskRepository) RemoveAdmin(taskID, userID uint64) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAdmin{}).Error
}
