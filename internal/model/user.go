package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole tags what a user may take part in.
type UserRole string

const (
	UserRoleCitizen  UserRole = "citizen"
	UserRoleBusiness UserRole = "business"
)

// IsValid checks if the role is a known user role.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCitizen, UserRoleBusiness:
		return true
	default:
		return false
	}
}

// User represents a registered resident or business account.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Role       UserRole  `json:"role" gorm:"type:varchar(20);not null;default:citizen"`
	Reputation int       `json:"reputation" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}

// IsBusiness returns true for accounts excluded from team participation.
func (u *User) IsBusiness() bool {
	return u.Role == UserRoleBusiness
}
