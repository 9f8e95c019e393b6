package repository

import (
	"gorm.io/gorm"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormInviteRepository is a GORM implementation of InviteRepository
type GormInviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new InviteRepository
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &GormInviteRepository{db: db}
}

// Create creates a new invite
func (r *GormInviteRepository) Create(invite *models.Invite) error {
	return r.db.Create(invite).Error
}

// FindByID finds an invite by ID regardless of deletion state
func (r *GormInviteRepository) FindByID(id uint64) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.First(&invite, id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// ListByTeam retrieves outstanding invites for a team
func (r *GormInviteRepository) ListByTeam(teamID uint64, params utils.PaginationParams) ([]models.Invite, int64, error) {
	base := r.db.Model(&models.Invite{}).Scopes(database.NotDeleted).
		Where("team_id = ?", teamID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invites []models.Invite
	if err := base.Scopes(database.Paginate(params)).
		Order("created_at").
		Find(&invites).Error; err != nil {
		return nil, 0, err
	}
	return invites, total, nil
}

// FindOutstanding finds the pending invite for an (email, team) pair
func (r *GormInviteRepository) FindOutstanding(email string, teamID uint64) (*models.Invite, error) {
	var invite models.Invite
	if err := r.db.Scopes(database.NotDeleted).
		Where("email = ? AND team_id = ? AND status = ?", email, teamID, models.InviteStatusPending).
		First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// Update persists invite mutations
func (r *GormInviteRepository) Update(invite *models.Invite) error {
	return r.db.Save(invite).Error
}

// Accept persists the accepted invite and the new membership together.
// Acceptance touches two entities, so both writes share a transaction.
func (r *GormInviteRepository) Accept(invite *models.Invite, member *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(invite).Error; err != nil {
			return err
		}
		return tx.Create(member).Error
	})
}
