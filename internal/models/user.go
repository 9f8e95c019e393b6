package models

import "time"

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"type:varchar(50)" json:"name,omitempty"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	DOB          *time.Time `json:"dob,omitempty"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"is_deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Memberships []TeamMember `gorm:"foreignKey:UserID" json:"-"`
}

// Delete marks the user as removed without dropping the row.
func (u *User) Delete() {
	now := time.Now()
	u.IsDeleted = true
	u.DeletedAt = &now
}
