package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Clock is a wall-clock time of day with minute precision, stored separately
// from its date so sessions can be analyzed by time of day. The zero value is
// midnight.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "15:04" (also accepting a trailing ":05" seconds part,
// which is discarded).
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On combines the clock with a date into a naive local timestamp.
func (c Clock) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// Value implements driver.Valuer so Clock columns round-trip as "HH:MM" text.
func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner.
func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	case time.Time:
		*c = Clock{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Clock", src)
	}
}

// GormDataType tells the migrator to store Clock values as text.
func (Clock) GormDataType() string {
	return "text"
}

// DateOf truncates a timestamp to its calendar date, normalized to midnight
// UTC so dates compare consistently regardless of where they were produced.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
