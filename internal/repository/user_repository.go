package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdullah0f/projectEase/internal/database"
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID regardless of deletion state
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a non-deleted user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.NotDeleted).
		Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a non-deleted user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Scopes(database.NotDeleted).
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves non-deleted users ordered by username
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Scopes(database.NotDeleted).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.Scopes(database.NotDeleted, database.Paginate(params)).
		Order("username").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update persists user mutations
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteWithTeamCascade soft deletes the user and re-homes every team
// the user belongs to. Owned teams transfer to the earliest-joined
// remaining member; teams left with no members are deleted instead.
func (r *GormUserRepository) DeleteWithTeamCascade(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var teams []models.Team
		if err := tx.Preload("Members").Scopes(database.NotDeleted).
			Joins("JOIN team_members ON team_members.team_id = teams.id").
			Where("team_members.user_id = ?", user.ID).
			Find(&teams).Error; err != nil {
			return err
		}

		for i := range teams {
			team := &teams[i]
			if team.OwnerID == user.ID {
				if _, deleted := team.ChangeOwner(); deleted {
					if err := tx.Omit(clause.Associations).Save(team).Error; err != nil {
						return err
					}
					continue
				}
			} else if len(team.Members) <= 1 {
				team.Delete()
				if err := tx.Omit(clause.Associations).Save(team).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Where("team_id = ? AND user_id = ?", team.ID, user.ID).
				Delete(&models.TeamMember{}).Error; err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Save(team).Error; err != nil {
				return err
			}
		}

		user.Delete()
		return tx.Save(user).Error
	})
}
