package repository

import (
	"github.com/Abdullah0f/projectEase/internal/models"
	"github.com/Abdullah0f/projectEase/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID regardless of deletion state
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a non-deleted user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a non-deleted user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves non-deleted users ordered by username
	List(params utils.PaginationParams) ([]models.User, int64, error)

	// Update persists user mutations
	Update(user *models.User) error

	// DeleteWithTeamCascade soft deletes the user and, inside one
	// transaction, transfers or deletes every team the user belongs to.
	DeleteWithTeamCascade(user *models.User) error
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a team and its owner membership in one transaction
	Create(team *models.Team, owner *models.TeamMember) error

	// FindByID finds a team by ID with members preloaded, regardless of
	// deletion state
	FindByID(id uint64) (*models.Team, error)

	// ListForUser retrieves the non-deleted teams a user belongs to
	ListForUser(userID uint64, params utils.PaginationParams) ([]models.Team, int64, error)

	// Update persists team mutations
	Update(team *models.Team) error

	// AddMember adds a membership row
	AddMember(member *models.TeamMember) error

	// RemoveMember removes a membership row
	RemoveMember(teamID, userID uint64) error

	// ListMembers lists team members with users preloaded
	ListMembers(teamID uint64) ([]models.TeamMember, error)
}

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	// Create creates a new invite
	Create(invite *models.Invite) error

	// FindByID finds an invite by ID regardless of deletion state
	FindByID(id uint64) (*models.Invite, error)

	// ListByTeam retrieves outstanding invites for a team
	ListByTeam(teamID uint64, params utils.PaginationParams) ([]models.Invite, int64, error)

	// FindOutstanding finds the pending invite for an (email, team) pair
	FindOutstanding(email string, teamID uint64) (*models.Invite, error)

	// Update persists invite mutations
	Update(invite *models.Invite) error

	// Accept persists the accepted invite and the new membership in one
	// transaction
	Accept(invite *models.Invite, member *models.TeamMember) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID regardless of deletion state
	FindByID(id uint64) (*models.Project, error)

	// ListByTeam retrieves non-deleted projects for a team
	ListByTeam(teamID uint64, params utils.PaginationParams) ([]models.Project, int64, error)

	// Update persists project mutations
	Update(project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a task and its creator admin row in one transaction
	Create(task *models.Task, admin *models.TaskAdmin) error

	// FindByID finds a task by ID with admins preloaded, regardless of
	// deletion state
	FindByID(id uint64) (*models.Task, error)

	// ListByProject retrieves non-deleted tasks for a project
	ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Task, int64, error)

	// Update persists task mutations
	Update(task *models.Task) error

	// AddAdmin adds an admin row
	AddAdmin(admin *models.TaskAdmin) error

	// RemoveAdmin removes an admin row
	RemoveAdmin(taskID, userID uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// FindByID finds a comment by ID regardless of deletion state
	FindByID(id uint64) (*models.Comment, error)

	// ListByProject retrieves non-deleted comments attached to a project
	ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Comment, int64, error)

	// ListByTask retrieves non-deleted comments attached to a task
	ListByTask(taskID uint64, params utils.PaginationParams) ([]models.Comment, int64, error)

	// Update persists comment mutations
	Update(comment *models.Comment) error
}
