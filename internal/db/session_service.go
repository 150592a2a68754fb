package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inkwise/writertools/internal/models"
	"github.com/inkwise/writertools/internal/stats"
)

// LogWorkRequest holds the fields of the log-work form. Only UserID and
// StartDate are required; everything else is optional so minimal records can
// be logged. DurationMinutes, when present, is an explicitly entered duration
// and takes precedence over anything derivable from the start/end fields.
type LogWorkRequest struct {
	UserID          uint
	StartDate       time.Time
	EndDate         *time.Time
	StartTime       *models.Clock
	EndTime         *models.Clock
	DurationMinutes *int
	WordCount       *int
	ProjectID       *uint
	Activity        string
}

func (req LogWorkRequest) durationSeconds() *int64 {
	d := stats.ResolveDuration(req.DurationMinutes, req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if d == nil {
		return nil
	}
	seconds := int64(d.Seconds())
	return &seconds
}

// LogWork records a completed work session in one shot.
func LogWork(req LogWorkRequest) (*models.WorkSession, error) {
	session := models.WorkSession{
		UserID:          req.UserID,
		StartDate:       models.DateOf(req.StartDate),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationSeconds: req.durationSeconds(),
		WordCount:       req.WordCount,
		ProjectID:       req.ProjectID,
		Activity:        req.Activity,
	}
	if req.EndDate != nil {
		end := models.DateOf(*req.EndDate)
		session.EndDate = &end
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// StartTimerSession creates an in-progress session stamped with the current
// date and time. End fields, duration, and word count stay unset until the
// session is finished. Starting again while another session is in progress
// simply creates a second independent session; sessions are never merged or
// resumed implicitly.
func StartTimerSession(userID uint, now time.Time) (*models.WorkSession, error) {
	start := models.Clock{Hour: now.Hour(), Minute: now.Minute()}
	session := models.WorkSession{
		UserID:    userID,
		StartDate: models.DateOf(now),
		StartTime: &start,
	}
	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetUserSession retrieves a session by id, scoped to its owner. A session
// owned by someone else is reported as not found, never surfaced.
func GetUserSession(userID, sessionID uint) (*models.WorkSession, error) {
	var session models.WorkSession
	err := DB.Where("user_id = ?", userID).Preload("Project").First(&session, sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session #%d: %w", sessionID, ErrNotFound)
		}
		return nil, err
	}
	return &session, nil
}

// FinishSession closes out an in-progress session with the submitted log-work
// fields. The duration is resolved from the combined record: an explicitly
// entered duration wins, otherwise it is derived from the start/end fields
// when possible.
func FinishSession(userID, sessionID uint, req LogWorkRequest) (*models.WorkSession, error) {
	session, err := GetUserSession(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.StartDate = models.DateOf(req.StartDate)
	session.StartTime = req.StartTime
	session.EndTime = req.EndTime
	session.EndDate = nil
	if req.EndDate != nil {
		end := models.DateOf(*req.EndDate)
		session.EndDate = &end
	}
	session.DurationSeconds = req.durationSeconds()
	session.WordCount = req.WordCount
	session.ProjectID = req.ProjectID
	session.Activity = req.Activity

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns all of the user's sessions, latest first by start date
// and time.
func ListSessions(userID uint) ([]models.WorkSession, error) {
	var sessions []models.WorkSession
	err := DB.Where("user_id = ?", userID).
		Preload("Project").
		Order("start_date DESC, start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// SummaryForUser computes the user's trailing 7-day / 30-day / all-time
// statistics relative to today. No caching: every call recomputes from the
// user's full session set.
func SummaryForUser(userID uint, today time.Time) (stats.Summary, error) {
	var sessions []models.WorkSession
	if err := DB.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(sessions, today), nil
}

// SummaryForRange computes statistics for one half-open [start, end) date
// range, bucketed on session start date.
func SummaryForRange(userID uint, start, end time.Time) (stats.Stats, error) {
	var sessions []models.WorkSession
	if err := DB.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return stats.Stats{}, err
	}
	return stats.SummarizeRange(sessions, start, end), nil
}
