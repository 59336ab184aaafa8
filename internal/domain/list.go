package domain

import "gorm.io/gorm"

// TodoList groups tasks and anchors authorization: access to a task is
// decided by the team of its list. TeamID and OwnerID are optional so that
// admin-created lists need not belong to anyone.
type TodoList struct {
	gorm.Model
	Title   string `gorm:"not null"`
	TeamID  *uint  `gorm:"index"`
	OwnerID *uint  `gorm:"index"`
}
