package repository

import (
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID regardless of deletion state
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByTeam retrieves non-deleted projects for a team
func (r *GormProjectRepository) ListByTeam(teamID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	base := r.db.Model(&models.Project{}).Scopes(database.NotDeleted).
		Where("team_id = ?", teamID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := base.Scopes(database.Paginate(params)).
		Order("name").
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// Update persists project mutations
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}
