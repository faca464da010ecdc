package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeInput is returned when a date or time-of-day component is
// malformed or out of range.
var ErrInvalidTimeInput = errors.New("invalid time input")

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ComposeUTC combines a calendar date ("2006-01-02") and a time of day
// ("15:04") into an absolute UTC instant.
func ComposeUTC(dateISO, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dateISO, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q: %v", ErrInvalidTimeInput, dateISO, err)
	}

	clock, err := time.ParseInLocation("15:04", timeOfDay, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q: %v", ErrInvalidTimeInput, timeOfDay, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
