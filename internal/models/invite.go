package models

import (
	"errors"
	"time"
)

type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "Pending"
	InviteStatusAccepted  InviteStatus = "Accepted"
	InviteStatusDeclined  InviteStatus = "Declined"
	InviteStatusCancelled InviteStatus = "Cancelled"
)

// ErrInviteTerminal is returned when a transition is attempted on an
// invite that has already reached Accepted, Declined or Cancelled.
var ErrInviteTerminal = errors.New("invite is already in a terminal status")

type Invite struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Email       string       `gorm:"type:varchar(255);not null;index" json:"email"`
	TeamID      uint64       `gorm:"not null;index" json:"team_id"`
	CreatedByID uint64       `gorm:"not null" json:"created_by_id"`
	Status      InviteStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	IsDeleted   bool         `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt   *time.Time   `json:"deleted_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`

	// Relations
	Team      Team `gorm:"foreignKey:TeamID" json:"-"`
	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

// IsTerminal reports whether no further transition is permitted.
func (i *Invite) IsTerminal() bool {
	return i.Status != InviteStatusPending
}

// Accept moves the invite to Accepted. Adding the recipient to the
// team is the caller's job.
func (i *Invite) Accept() error {
	return i.transition(InviteStatusAccepted)
}

// Decline moves the invite to Declined.
func (i *Invite) Decline() error {
	return i.transition(InviteStatusDeclined)
}

// Cancel moves the invite to Cancelled. Deleting an invite is the same
// transition.
func (i *Invite) Cancel() error {
	return i.transition(InviteStatusCancelled)
}

// Restore resets the invite to Pending. Operational escape hatch for
// test and demo data, not reachable over the API.
func (i *Invite) Restore() {
	i.Status = InviteStatusPending
	i.IsDeleted = false
	i.DeletedAt = nil
}

// Terminal statuses also retire the invite from default listings.
func (i *Invite) transition(to InviteStatus) error {
	if i.IsTerminal() {
		return ErrInviteTerminal
	}
	now := time.Now()
	i.Status = to
	i.IsDeleted = true
	i.DeletedAt = &now
	return nil
}
