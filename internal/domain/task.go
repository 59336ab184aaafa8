package domain

import "gorm.io/gorm"

// Task is a single todo item. ListID is required; a task has no team of its
// own, it inherits the team of its list.
type Task struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Done        bool `gorm:"not null"`
	ListID      uint `gorm:"index;not null"`
}
