package domain

import "gorm.io/gorm"

// Role is the authorization level of a user. It is stored as text but the
// rest of the code only ever compares against the two constants below.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account that can authenticate. TeamID is nil until the user
// joins a team (via an accepted invite or an admin edit).
type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"type:varchar(16);not null;default:user"`
	TeamID       *uint  `gorm:"index"`
}
