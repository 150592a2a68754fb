package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus enumerates the lifecycle states of a writing project.
type ProjectStatus string

const (
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusOnHold     ProjectStatus = "ON_HOLD"
	StatusRetired    ProjectStatus = "RETIRED"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusOnHold, StatusRetired:
		return true
	}
	return false
}

// Label returns the human-readable form shown in selects and detail pages.
func (s ProjectStatus) Label() string {
	switch s {
	case StatusInProgress:
		return "Work in progress"
	case StatusCompleted:
		return "Completed"
	case StatusOnHold:
		return "On hold"
	case StatusRetired:
		return "Retired"
	}
	return string(s)
}

// ProjectStatuses lists every status in display order.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{StatusInProgress, StatusCompleted, StatusOnHold, StatusRetired}
}

// Project organizes work sessions. Its meaning is up to the user: a novel, a
// blog, a client. Only IN_PROGRESS projects are offered in the log-work form's
// project selector, which keeps the list tidy without preventing sessions from
// pointing at older projects.
type Project struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID      uint          `gorm:"not null;index" json:"user_id"`
	Name        string        `gorm:"not null" json:"name"`
	Slug        string        `gorm:"index" json:"slug"`
	Status      ProjectStatus `gorm:"type:text;default:IN_PROGRESS" json:"status"`
	Description string        `json:"description"`

	// Relationships
	Sessions []WorkSession `gorm:"foreignKey:ProjectID" json:"-"`
}
