package dto

import (
	"time"

	"github.com/Abdullah0f/projectEase/internal/models"
)

// TeamDTO represents a team in API responses, members as user ids.
type TeamDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OwnerID     uint64     `json:"owner_id"`
	Members     []uint64   `json:"members"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TeamMemberDTO represents a member in member listings
type TeamMemberDTO struct {
	User     UserDTO   `json:"user"`
	JoinedAt time.Time `json:"joined_at"`
}

// ToTeamDTO converts a Team model (members preloaded) to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	memberIDs := make([]uint64, len(team.Members))
	for i, m := range team.Members {
		memberIDs[i] = m.UserID
	}

	return TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OwnerID:     team.OwnerID,
		Members:     memberIDs,
		IsDeleted:   team.IsDeleted,
		DeletedAt:   team.DeletedAt,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

// ToTeamDTOs converts a slice of teams
func ToTeamDTOs(teams []models.Team) []TeamDTO {
	dtos := make([]TeamDTO, len(teams))
	for i, t := range teams {
		dtos[i] = ToTeamDTO(t)
	}
	return dtos
}

// ToTeamMemberDTO converts a membership row (user preloaded)
func ToTeamMemberDTO(member models.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		User:     ToUserDTO(member.User),
		JoinedAt: member.JoinedAt,
	}
}

// ToTeamMemberDTOs converts a slice of membership rows
func ToTeamMemberDTOs(members []models.TeamMember) []TeamMemberDTO {
	dtos := make([]TeamMemberDTO, len(members))
	for i, m := range members {
		dtos[i] = ToTeamMemberDTO(m)
	}
	return dtos
}
