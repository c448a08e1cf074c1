package model

import "time"

// Role values for User.Role. Elevated capability requires RoleAdmin; every
// other value (including the default) carries no privilege.
const (
	RoleNone  = "none"
	RoleAdmin = "admin"
)

// User represents a platform user. Email is the unique business key; a
// record is created on first sign-in and its role is mutated only by an
// existing admin.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Role      string    `json:"role" gorm:"size:50;default:'none'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
