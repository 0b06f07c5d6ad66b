package util

import (
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// DaysBetween counts calendar days from a's date to b's date, ignoring the clock time.
func DaysBetween(a time.Time, b time.Time) int {
	dateA := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	dateB := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	return int(dateB.Sub(dateA).Hours() / 24)
}

// WholeMinutesBetween is b - a in minutes, truncated towards zero.
func WholeMinutesBetween(a time.Time, b time.Time) int64 {
	return int64(b.Sub(a) / time.Minute)
}

// HorizonMinutes converts an ISO 8601 duration such as PT90M or P1D into minutes by shifting
// from, so calendar units follow from's calendar.
func HorizonMinutes(from time.Time, duration string) (int64, error) {
	parsed, err := iso8601.ParseISO8601(duration)
	if err != nil {
		return 0, err
	}

	return WholeMinutesBetween(from, parsed.Shift(from)), nil
}
