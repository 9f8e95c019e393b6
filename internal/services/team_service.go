package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/repository"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

var (
	ErrAlreadyTeamMember = errors.New("user is already a member of this team")
	ErrNotTeamMember     = errors.New("this user is not a member of this team")
	ErrLastMemberRemoval = errors.New("you cannot remove the last member of a team")
)

// TeamService provides business logic for team and membership operations.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeamInput represents parameters to create a new team.
type CreateTeamInput struct {
	Name        string
	Description string
	OwnerID     uint64
}

// CreateTeam creates a team with the owner as its sole member.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	team := &models.Team{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
	}
	owner := &models.TeamMember{
		UserID:   input.OwnerID,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.Create(team, owner); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Members = []models.TeamMember{*owner}
	return team, nil
}

// ListTeamsForUser returns the non-deleted teams the user belongs to.
func (s *TeamService) ListTeamsForUser(userID uint64, params utils.PaginationParams) ([]models.Team, int64, error) {
	teams, total, err := s.teamRepo.ListForUser(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, total, nil
}

// UpdateTeamInput lists every mutable team field.
type UpdateTeamInput struct {
	Name        *string
	Description *string
}

// UpdateTeam merges the update into the team and persists it.
func (s *TeamService) UpdateTeam(team *models.Team, input UpdateTeamInput) (*models.Team, error) {
	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.Description != nil {
		team.Description = *input.Description
	}

	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// DeleteTeam soft deletes the team.
func (s *TeamService) DeleteTeam(team *models.Team) error {
	team.Delete()
	if err := s.teamRepo.Update(team); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// ListMembers lists team members with users preloaded.
func (s *TeamService) ListMembers(teamID uint64) ([]models.TeamMember, error) {
	members, err := s.teamRepo.ListMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// AddMember adds the user to the team. Adding an existing member fails
// with ErrAlreadyTeamMember.
func (s *TeamService) AddMember(team *models.Team, user *models.User) error {
	if team.IsMember(user.ID) {
		return ErrAlreadyTeamMember
	}

	member := &models.TeamMember{
		TeamID:   team.ID,
		UserID:   user.ID,
		JoinedAt: time.Now(),
	}
	if err := s.teamRepo.AddMember(member); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	team.Members = append(team.Members, *member)
	return nil
}

// RemoveMember removes the user from the team. Removing the last member
// is refused; the caller must delete the team instead. Removing the
// owner promotes the earliest-joined remaining member.
func (s *TeamService) RemoveMember(team *models.Team, userID uint64) error {
	if !team.IsMember(userID) {
		return ErrNotTeamMember
	}
	if len(team.Members) == 1 {
		return ErrLastMemberRemoval
	}

	if team.OwnerID == userID {
		team.ChangeOwner()
		if err := s.teamRepo.Update(team); err != nil {
			return fmt.Errorf("failed to transfer ownership: %w", err)
		}
	}

	if err := s.teamRepo.RemoveMember(team.ID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	team.Members = removeMember(team.Members, userID)
	return nil
}

func removeMember(members []models.TeamMember, userID uint64) []models.TeamMember {
	for i, m := range members {
		if m.UserID == userID {
			return append(members[:i], members[i+1:]...)
		}
	}
	return members
}
