package domain

import "gorm.io/gorm"

// Team is the tenant boundary: users belong to at most one team and
// non-admin visibility is scoped to it. Membership lives on User.TeamID;
// deleting teams is not supported.
type Team struct {
	gorm.Model
	Name string `gorm:"not null"`
}
