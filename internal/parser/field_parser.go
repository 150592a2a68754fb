package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inkwise/writertools/internal/models"
)

// Bounds enforced on numeric form fields. Out-of-range values are rejected
// here, at the input boundary, and never reach the duration resolver or the
// record store.
const (
	MinWordCount       = -99999
	MaxWordCount       = 999999
	MinDurationMinutes = 0
	MaxDurationMinutes = 999
)

// ParseDate parses a required "YYYY-MM-DD" form field.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input)
	}
	return models.DateOf(t), nil
}

// ParseOptionalDate parses a "YYYY-MM-DD" form field, returning nil when the
// field was left blank.
func ParseOptionalDate(input string) (*time.Time, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	t, err := ParseDate(input)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseOptionalClock parses an "HH:MM" form field, returning nil when the
// field was left blank.
func ParseOptionalClock(input string) (*models.Clock, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	c, err := models.ParseClock(strings.TrimSpace(input))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseOptionalInt parses an integer form field with inclusive bounds,
// returning nil when the field was left blank.
func ParseOptionalInt(input, label string, min, max int) (*int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected a whole number", label, input)
	}
	if n < min || n > max {
		return nil, fmt.Errorf("%s must be between %d and %d", label, min, max)
	}
	return &n, nil
}

// ParseWordCount parses the optional word count field. Negative values are
// allowed: an editing session can shrink a manuscript.
func ParseWordCount(input string) (*int, error) {
	return ParseOptionalInt(input, "word count", MinWordCount, MaxWordCount)
}

// ParseDurationMinutes parses the optional explicit duration field, in whole
// minutes.
func ParseDurationMinutes(input string) (*int, error) {
	return ParseOptionalInt(input, "duration", MinDurationMinutes, MaxDurationMinutes)
}
