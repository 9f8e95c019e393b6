package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// ValidTaskStatus reports whether s is one of the known statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task priorities run low to high.
const (
	TaskPriorityLow    = 0
	TaskPriorityMedium = 1
	TaskPriorityHigh   = 2
)

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Description string     `gorm:"type:varchar(1024);not null" json:"description"`
	ProjectID   uint64     `gorm:"not null;index" json:"project_id"`
	CreatedByID uint64     `gorm:"not null" json:"created_by_id"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Priority    int        `gorm:"not null;default:0" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Project   Project     `gorm:"foreignKey:ProjectID" json:"-"`
	CreatedBy User        `gorm:"foreignKey:CreatedByID" json:"-"`
	Admins    []TaskAdmin `gorm:"foreignKey:TaskID" json:"admins,omitempty"`
}

// IsAdmin reports whether the user appears in the preloaded admin set.
func (t *Task) IsAdmin(userID uint64) bool {
	for _, a := range t.Admins {
		if a.UserID == userID {
			return true
		}
	}
	return false
}

// IsOwner reports whether the user created the task.
func (t *Task) IsOwner(userID uint64) bool {
	return t.CreatedByID == userID
}

// Delete marks the task removed and forces the terminal status.
func (t *Task) Delete() {
	now := time.Now()
	t.IsDeleted = true
	t.DeletedAt = &now
	t.Status = TaskStatusCancelled
}
