package models

import "time"

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "Not Started"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

// ValidProjectStatus reports whether s is one of the known statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"type:varchar(50);not null" json:"name"`
	Description string        `gorm:"type:varchar(1024);not null" json:"description"`
	TeamID      uint64        `gorm:"not null;index" json:"team_id"`
	CreatedByID uint64        `gorm:"not null" json:"created_by_id"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'Not Started'" json:"status"`
	IsDeleted   bool          `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Team      Team `gorm:"foreignKey:TeamID" json:"-"`
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

// Delete marks the project removed and forces the terminal status.
func (p *Project) Delete() {
	now := time.Now()
	p.IsDeleted = true
	p.DeletedAt = &now
	p.Status = ProjectStatusCancelled
}
