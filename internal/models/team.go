package models

import "time"

type Team struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(50);not null" json:"name"`
	Description string     `gorm:"type:varchar(1024);not null" json:"description"`
	OwnerID     uint64     `gorm:"not null" json:"owner_id"`
	IsDeleted   bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Owner   User         `gorm:"foreignKey:OwnerID" json:"-"`
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// IsMember reports whether the user appears in the preloaded member set.
func (t *Team) IsMember(userID uint64) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// Delete marks the team as removed.
func (t *Team) Delete() {
	now := time.Now()
	t.IsDeleted = true
	t.DeletedAt = &now
}

// ChangeOwner hands the team to the earliest-joined member other than
// the current owner and reports the user to drop from the member set.
// With a single member left there is nobody to promote, so the team is
// deleted instead and removed is zero.
//
// Requires Members to be preloaded. Persisting the returned removal is
// the caller's job.
func (t *Team) ChangeOwner() (removed uint64, deleted bool) {
	if len(t.Members) <= 1 {
		t.Delete()
		return 0, true
	}

	var next *TeamMember
	for i := range t.Members {
		m := &t.Members[i]
		if m.UserID == t.OwnerID {
			continue
		}
		if next == nil || m.JoinedAt.Before(next.JoinedAt) {
			next = m
		}
	}

	removed = t.OwnerID
	t.OwnerID = next.UserID
	t.removeMemberLocal(removed)
	return removed, false
}

func (t *Team) removeMemberLocal(userID uint64) {
	for i, m := range t.Members {
		if m.UserID == userID {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return
		}
	}
}
