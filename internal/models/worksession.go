package models

import (
	"time"

	"gorm.io/gorm"
)

// Suggested activities, offered by the log-work form. Never enforced on the
// model: the activity column is free text so users can track anything.
const (
	ActivityDrafting    = "drafting"
	ActivityEditing     = "editing"
	ActivityOutlining   = "outlining"
	ActivityResearching = "researching"
	ActivityOther       = "other"
)

// StandardActivities lists the suggested activities in display order.
func StandardActivities() []string {
	return []string{
		ActivityDrafting,
		ActivityEditing,
		ActivityOutlining,
		ActivityResearching,
		ActivityOther,
	}
}

// WorkSession is a (semi-)contiguous block of time spent working on a project.
//
// Only StartDate and UserID are required, so minimal records (a bulk-imported
// writing history with nothing but dates) can still be logged. Start and end
// times live in separate clock columns rather than datetimes to allow time of
// day analysis, and duration is stored independently so a session can be
// paused for breaks: "worked 45 minutes between 9 and 10" is representable.
type WorkSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID          uint       `gorm:"not null;index" json:"user_id"`
	StartDate       time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	StartTime       *Clock     `gorm:"index" json:"start_time"`
	EndTime         *Clock     `json:"end_time"`
	DurationSeconds *int64     `json:"duration_seconds"`
	WordCount       *int       `json:"word_count"`
	ProjectID       *uint      `gorm:"index" json:"project_id"`
	Activity        string     `gorm:"index" json:"activity"`

	// Relationships
	Project *Project `json:"project,omitempty"`
}

// InProgress reports whether this session was started by the timer workflow
// and has not been closed out yet.
func (ws *WorkSession) InProgress() bool {
	return ws.EndTime == nil && ws.DurationSeconds == nil && ws.WordCount == nil
}

// Duration returns the stored duration, or zero when none was recorded.
func (ws *WorkSession) Duration() time.Duration {
	if ws.DurationSeconds == nil {
		return 0
	}
	return time.Duration(*ws.DurationSeconds) * time.Second
}
