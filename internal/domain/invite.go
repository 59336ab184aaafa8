package domain

import "gorm.io/gorm"

// InviteStatus is the state of a team invite. Transitions are one-way:
// pending may move to accepted or declined, terminal states never change.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// Terminal reports whether no further transition is allowed from s.
func (s InviteStatus) Terminal() bool {
	return s == InviteAccepted || s == InviteDeclined
}

// Invite is a request for the user behind Email to join TeamID. It
// references team and inviter by id only; at most one pending invite may
// exist per (email, team) pair.
type Invite struct {
	gorm.Model
	Email     string       `gorm:"index;not null"`
	TeamID    uint         `gorm:"index;not null"`
	InviterID uint         `gorm:"not null"`
	Status    InviteStatus `gorm:"type:varchar(16);not null;default:pending"`
}
