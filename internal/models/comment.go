package models

import "time"

// Comment hangs off exactly one of a project or a task.
type Comment struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Text        string     `gorm:"type:varchar(1024);not null" json:"text"`
	CreatedByID uint64     `gorm:"not null" json:"created_by_id"`
	ProjectID   *uint64    `gorm:"index" json:"project_id,omitempty"`
	TaskID      *uint64    `gorm:"index" json:"task_id,omitempty"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

// BelongsToProject reports whether the comment's parent is the project.
func (c *Comment) BelongsToProject(projectID uint64) bool {
	return c.ProjectID != nil && *c.ProjectID == projectID
}

// BelongsToTask reports whether the comment's parent is the task.
func (c *Comment) BelongsToTask(taskID uint64) bool {
	return c.TaskID != nil && *c.TaskID == taskID
}

// Delete marks the comment as removed.
func (c *Comment) Delete() {
	now := time.Now()
	c.IsDeleted = true
	c.DeletedAt = &now
}
