package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a team and its owner membership in one transaction
func (r *GormTeamRepository) Create(team *models.Team, owner *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		owner.TeamID = team.ID
		return tx.Create(owner).Error
	})
}

// FindByID finds a team by ID with members preloaded, regardless of
// deletion state
func (r *GormTeamRepository) FindByID(id uint64) (*models.Team, error) {
	var team models.Team
	if err := r.db.Preload("Members").First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListForUser retrieves the non-deleted teams a user belongs to
func (r *GormTeamRepository) ListForUser(userID uint64, params utils.PaginationParams) ([]models.Team, int64, error) {
	base := r.db.Model(&models.Team{}).Scopes(database.NotDeleted).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var teams []models.Team
	if err := base.Preload("Members").
		Scopes(database.Paginate(params)).
		Order("teams.name").
		Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

// Update persists team mutations. Membership rows are managed through
// AddMember and RemoveMember, so the association is skipped here.
func (r *GormTeamRepository) Update(team *models.Team) error {
	return r.db.Omit(clause.Associations).Save(team).Error
}

// AddMember adds a membership row
func (r *GormTeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a membership row
func (r *GormTeamRepository) RemoveMember(teamID, userID uint64) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{}).Error
}

// ListMembers lists team members with users preloaded
func (r *GormTeamRepository) ListMembers(teamID uint64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("joined_at").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
