package stats

import (
	"time"

	"github.com/inkwise/writertools/internal/models"
)

// ResolveDuration decides the duration to record for a work session.
//
// An explicitly entered duration (whole minutes) always wins. Otherwise, when
// the start and end date/time are all present, the duration is the difference
// of the two naive local timestamps. Equal start and end times mean "no
// specific time was recorded" per the form's help text, so no duration is
// derived in that case even when the dates differ. Returns nil when no
// duration can be determined.
//
// Inputs are assumed valid; the form boundary rejects unparseable dates and
// times before this is called.
func ResolveDuration(explicitMinutes *int, startDate time.Time, startTime *models.Clock, endDate *time.Time, endTime *models.Clock) *time.Duration {
	if explicitMinutes != nil {
		d := time.Duration(*explicitMinutes) * time.Minute
		return &d
	}
	if startTime == nil || endDate == nil || endTime == nil {
		return nil
	}
	if *startTime == *endTime {
		return nil
	}
	d := endTime.On(*endDate).Sub(startTime.On(startDate))
	return &d
}
